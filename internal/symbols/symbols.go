package symbols

import (
	"github.com/ian-shakespeare/hsasm/internal/syntax"
	"github.com/ian-shakespeare/hsasm/pkg/iterator"
)

// EntryPoint names the symbol every program defines implicitly.
const EntryPoint = "_start"

type Symbol struct {
	Name  string
	Range syntax.Range
}

// Index collects the labels declared at the start of each line of document.
// The entry point symbol always comes first, at the zero range. Duplicates
// are kept in document order.
func Index(document string) []Symbol {
	table := []Symbol{{Name: EntryPoint}}
	for lineNo, line := range iterator.Lines(document) {
		for _, token := range syntax.Tokenize(line, lineNo) {
			if token.Type != syntax.LABEL_TOKEN {
				break
			}
			table = append(table, Symbol{Name: token.Text(), Range: token.Range})
		}
	}
	return table
}

// Resolve finds the symbol named by the token under column on line. Tokens
// are flat, so a partially unlexable line still resolves its leading part.
func Resolve(line string, lineNo int, column int, table []Symbol) (Symbol, bool) {
	tokens, _ := syntax.Scan(line, lineNo)
	for _, token := range tokens {
		if !token.Range.Covers(column) {
			continue
		}
		if symbol, ok := Lookup(table, token.Text()); ok {
			return symbol, true
		}
	}
	return Symbol{}, false
}

// Lookup returns the first symbol called name.
func Lookup(table []Symbol, name string) (Symbol, bool) {
	for _, symbol := range table {
		if symbol.Name == name {
			return symbol, true
		}
	}
	return Symbol{}, false
}
