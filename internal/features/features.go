package features

import (
	"context"
	"strings"
	"unicode"

	"github.com/ian-shakespeare/hsasm/internal/logs"
	"github.com/ian-shakespeare/hsasm/internal/operands"
	"github.com/ian-shakespeare/hsasm/internal/symbols"
	"github.com/ian-shakespeare/hsasm/internal/syntax"
	"github.com/ian-shakespeare/hsasm/pkg/iterator"
	"github.com/ian-shakespeare/hsasm/pkg/runes"
	"github.com/reusee/dscope"
	"github.com/samber/lo"
)

type Features struct {
	Logger     dscope.Inject[logs.Logger]
	GetCatalog dscope.Inject[GetCatalog]
	Cache      dscope.Inject[*SymbolCache]
}

type CompletionKind int

const (
	MethodCompletion CompletionKind = iota
	VariableCompletion
	EnumCompletion
)

type CompletionItem struct {
	Label         string
	Kind          CompletionKind
	Detail        string
	Documentation string
}

// Location is a range inside the document identified by URI. The URI is
// passed through untouched.
type Location struct {
	URI   string
	Range syntax.Range
}

type SymbolInformation struct {
	Name     string
	Location Location
}

func (f Features) symbols(ctx context.Context, document string) []symbols.Symbol {
	table, cached := f.Cache().Symbols(document)
	f.Logger().DebugContext(ctx, "symbols",
		"count", len(table),
		"cached", cached,
	)
	return table
}

// Complete offers instructions while the first word of the line is being
// typed and registers and symbols afterwards.
func (f Features) Complete(ctx context.Context, document string, lineNo int, column int) ([]CompletionItem, error) {
	ctx = logs.WithFeature(ctx, "completion")

	catalog, err := f.GetCatalog()()
	if err != nil {
		return nil, err
	}

	prefix := strings.TrimLeftFunc(runes.Prefix(lineAt(document, lineNo), column), unicode.IsSpace)
	tokens := syntax.Instruction(prefix, lineNo)
	if !strings.HasSuffix(prefix, " ") && len(tokens) <= 1 {
		return lo.Map(catalog.Mnemonics(), func(instr Instruction, _ int) CompletionItem {
			return CompletionItem{
				Label:         instr.Name,
				Kind:          MethodCompletion,
				Detail:        instr.Detail,
				Documentation: instr.Syntax,
			}
		}), nil
	}

	items := lo.Map(catalog.Registers, func(reg Register, _ int) CompletionItem {
		return CompletionItem{
			Label:  reg.Name,
			Kind:   VariableCompletion,
			Detail: reg.Detail,
		}
	})
	items = append(items, lo.Map(f.symbols(ctx, document), func(s symbols.Symbol, _ int) CompletionItem {
		return CompletionItem{
			Label:  s.Name,
			Kind:   EnumCompletion,
			Detail: "Symbol",
		}
	})...)
	return items, nil
}

// SignatureHelp describes the operand forms of the instruction on line. It
// reports false for lines without an instruction or with an unknown mnemonic.
func (f Features) SignatureHelp(ctx context.Context, line string) (operands.SignatureHelp, bool, error) {
	ctx = logs.WithFeature(ctx, "signature")

	catalog, err := f.GetCatalog()()
	if err != nil {
		return operands.SignatureHelp{}, false, err
	}

	tokens := syntax.Instruction(line, 0)
	if len(tokens) == 0 || tokens[0].Type != syntax.INSTRUCTION_TOKEN {
		return operands.SignatureHelp{}, false, nil
	}

	mnemonic := tokens[0].Text()
	family, ok := catalog.Families.Match(mnemonic)
	if !ok {
		f.Logger().DebugContext(ctx, "no operand family", "mnemonic", mnemonic)
		return operands.SignatureHelp{}, false, nil
	}

	help := operands.Help(mnemonic, tokens[1:], family)
	f.Logger().DebugContext(ctx, "operands",
		"family", family.Name,
		"arguments", help.Analysis.Arguments,
		"last", help.Analysis.Last,
		"form", help.Analysis.Form,
	)
	return help, true, nil
}

// DocumentSymbols lists every label of document, the entry point included.
func (f Features) DocumentSymbols(ctx context.Context, uri string, document string) []SymbolInformation {
	ctx = logs.WithFeature(ctx, "symbols")

	return lo.Map(f.symbols(ctx, document), func(s symbols.Symbol, _ int) SymbolInformation {
		return SymbolInformation{
			Name: s.Name,
			Location: Location{
				URI:   uri,
				Range: s.Range,
			},
		}
	})
}

// Definition locates the declaration of the symbol under the cursor.
func (f Features) Definition(ctx context.Context, uri string, document string, lineNo int, column int) (Location, bool) {
	ctx = logs.WithFeature(ctx, "definition")

	symbol, ok := symbols.Resolve(lineAt(document, lineNo), lineNo, column, f.symbols(ctx, document))
	if !ok {
		f.Logger().DebugContext(ctx, "no definition",
			"line", lineNo,
			"column", column,
		)
		return Location{}, false
	}
	return Location{
		URI:   uri,
		Range: symbol.Range,
	}, true
}

func lineAt(document string, lineNo int) string {
	for i, line := range iterator.Lines(document) {
		if i == lineNo {
			return line
		}
	}
	return ""
}
