package numerals

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces to usym.numerals .
func tracer() tracing.Trace {
	return tracing.Select("usym.numerals")
}

// Context represents information about the typesetting environment
// relevant to numbering: the user's locale and the numeral system
// customarily used for list labels there.
type Context struct {
	Locale string // BCP 47 language tag
	System System // numeral system to use by default
}

// systemMatch matches a user locale against the languages with a
// non-Arabic customary numeral system. The first language is used as
// fallback for related tags.
var systemMatch = language.NewMatcher([]language.Tag{
	language.English, // index 0, maps to Arabic numerals
	language.Arabic,
	language.Persian,
	language.Urdu,
	language.Hindi,
	language.Bengali,
	language.Hebrew,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Japanese,
	language.Korean,
})

var systemForTag = []System{
	Arabic,
	EasternArabic,
	EasternArabicPersian,
	EasternArabicPersian,
	Devanagari,
	BengaliNumber,
	Hebrew,
	LowerSimplifiedChinese,
	LowerTraditionalChinese,
	HiraganaAiueo,
	KoreanSyllable,
}

// ContextFromEnvironment creates a numbering context from the user's
// environment, i.e. the locale settings of the process. If the locale
// cannot be detected, "en-US" with Arabic numerals is used.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("numerals set default user locale %v", userLocale)
	} else {
		tracer().Infof("numerals detected user locale %v", userLocale)
	}
	return contextFor(userLocale)
}

func contextFor(userLocale string) *Context {
	lang := language.Make(userLocale)
	sys := Arabic
	if _, index, confidence := systemMatch.Match(lang); confidence > language.No {
		sys = systemForTag[index]
	}
	return &Context{
		Locale: userLocale,
		System: sys,
	}
}
