package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// Fixture returns name and content of the given notation fixture file
// for testing.
func Fixture(file string) (string, string, error) {
	data, err := os.ReadFile(FixturePath(file))
	if err != nil {
		return "", "", err
	}

	return file, string(data), nil
}

// FixturePath returns the path of the given notation fixture file.
func FixturePath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "fixtures", file)
}
