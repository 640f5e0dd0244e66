package features

import (
	"crypto/sha256"
	"sync"

	"github.com/ian-shakespeare/hsasm/internal/symbols"
)

// SymbolCache keeps the symbol table of the last document indexed. Any
// change to the document text replaces the entry.
type SymbolCache struct {
	mu    sync.Mutex
	key   [sha256.Size]byte
	table []symbols.Symbol
	valid bool
}

// Symbols returns the symbol table of document and whether it came from the
// cache.
func (c *SymbolCache) Symbols(document string) ([]symbols.Symbol, bool) {
	key := sha256.Sum256([]byte(document))

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.key == key {
		return c.table, true
	}
	c.key = key
	c.table = symbols.Index(document)
	c.valid = true
	return c.table, false
}
