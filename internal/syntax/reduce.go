package syntax

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ian-shakespeare/hsasm/pkg/array"
)

// Reduce folds runs of tokens into higher level tokens until no rewrite rule
// applies. The input slice is left untouched.
func Reduce(tokens []Token) []Token {
	tokens = slices.Clone(tokens)
	for {
		var ok bool
		if tokens, ok = reduceOnce(tokens); !ok {
			return tokens
		}
	}
}

// reduceOnce applies the first rule that matches anywhere, at its leftmost
// position, and reports whether anything changed.
func reduceOnce(tokens []Token) ([]Token, bool) {
	for _, rule := range rewriteRules {
		i := array.Window(tokens, rule.Pattern, func(t Token, tt TokenType) bool {
			return t.Type == tt
		})
		if i < 0 {
			continue
		}

		end := i + len(rule.Pattern)
		parts := slices.Clone(tokens[i:end])
		folded := Token{
			Type:  rule.Type,
			Value: rule.Fold(parts),
			Range: Range{Start: parts[0].Range.Start, End: parts[len(parts)-1].Range.End},
		}
		return slices.Replace(tokens, i, end, folded), true
	}
	return tokens, false
}

func foldNumber(base int) func([]Token) Value {
	return func(parts []Token) Value {
		return parseNumber(parts, base)
	}
}

func parseNumber(parts []Token, base int) Number {
	n := Number{Tokens: parts, Base: base}
	digits := strings.ReplaceAll(parts[0].Text(), "_", "")
	if v, err := strconv.ParseUint(digits, base, 64); err == nil {
		n.Int = v
		n.Valid = true
	}
	return n
}

func foldLabel(parts []Token) Value {
	return Label{Tokens: parts, Name: parts[0].Text()}
}

func foldShiftedRegister(parts []Token) Value {
	amount, _ := parts[2].Value.(Number)
	return ShiftedRegister{
		Tokens:   parts,
		Register: parts[0].Text(),
		Shift:    parts[1].Text(),
		Amount:   amount,
	}
}
