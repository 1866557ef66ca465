package notation

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Parsers are short-lived objects, one per corpus compilation, but their
// line buffers grow to the size of the corpus. To avoid re-allocating
// those buffers for every compilation we pool parser instances.
type parserPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalParserPool *parserPool

func init() {
	globalParserPool = &parserPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			p := &parser{}
			return p, nil
		})
	globalParserPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalParserPool.opool = pool.NewObjectPool(globalParserPool.ctx, factory, config)
}

// borrowParser returns a parser from the pool, initialized for a corpus
// file. Callers release it with releaseIntoPool when compilation is done.
func borrowParser(filename string) *parser {
	o, _ := globalParserPool.opool.BorrowObject(globalParserPool.ctx)
	p := o.(*parser)
	p.file = filename
	return p
}

// Clears the parser and puts it back into the pool.
func (p *parser) releaseIntoPool() {
	p.file = ""
	p.lines = p.lines[:0]
	p.pos = 0
	_ = globalParserPool.opool.ReturnObject(globalParserPool.ctx, p)
}
