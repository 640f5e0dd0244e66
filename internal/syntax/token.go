package syntax

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	UNKNOWN_TOKEN TokenType = iota

	// Flat tokens produced by the scanner.
	SPACE_TOKEN
	SHIFT_TOKEN
	LPAREN_TOKEN
	RPAREN_TOKEN
	LBRACKET_TOKEN
	RBRACKET_TOKEN
	COMMA_TOKEN
	COLON_TOKEN
	OPL_TOKEN
	OP_TOKEN
	STRING_TOKEN
	HEX_TOKEN
	BIN_TOKEN
	DEC_TOKEN
	REGISTER_TOKEN
	IDENT_TOKEN

	// Folded tokens produced by the reducer.
	NUMBER_TOKEN
	LABEL_TOKEN
	SHIFTED_REGISTER_TOKEN

	// The mnemonic of an instruction line.
	INSTRUCTION_TOKEN
)

var tokenNames = [...]string{
	UNKNOWN_TOKEN:          "UNKNOWN",
	SPACE_TOKEN:            "SPACE",
	SHIFT_TOKEN:            "SHIFT",
	LPAREN_TOKEN:           "(",
	RPAREN_TOKEN:           ")",
	LBRACKET_TOKEN:         "[",
	RBRACKET_TOKEN:         "]",
	COMMA_TOKEN:            ",",
	COLON_TOKEN:            ":",
	OPL_TOKEN:              "OPL",
	OP_TOKEN:               "OP",
	STRING_TOKEN:           "STR",
	HEX_TOKEN:              "LIT_HEX",
	BIN_TOKEN:              "LIT_BIN",
	DEC_TOKEN:              "LIT_DEC",
	REGISTER_TOKEN:         "REG",
	IDENT_TOKEN:            "IDENT",
	NUMBER_TOKEN:           "NUM",
	LABEL_TOKEN:            "LABEL",
	SHIFTED_REGISTER_TOKEN: "SHREG",
	INSTRUCTION_TOKEN:      "INSTR",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenNames[t]
}

// Hidden token types are consumed by the scanner but never handed to the reducer.
func (t TokenType) Hidden() bool {
	return t == SPACE_TOKEN || t == LBRACKET_TOKEN || t == RBRACKET_TOKEN
}

// Position is a 0-based line and rune column.
type Position struct {
	Line   int
	Column int
}

// Range is a half-open column interval on a single line.
type Range struct {
	Start Position
	End   Position
}

// Covers reports whether column lies within r, both ends included.
func (r Range) Covers(column int) bool {
	return column >= r.Start.Column && column <= r.End.Column
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Column, r.End.Line, r.End.Column)
}

type Token struct {
	Type  TokenType
	Value Value
	Range Range
}

// Text returns the source-level text of the token's value.
func (t Token) Text() string {
	if t.Value == nil {
		return ""
	}
	return t.Value.Text()
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text(), t.Range)
}

// Value is the payload of a token: Raw for scanned tokens, or one of the folded
// values carrying the tokens it subsumes.
type Value interface {
	Text() string
	isValue()
}

// Folded is implemented by every value produced by the reducer.
type Folded interface {
	Value
	Parts() []Token
}

type Raw string

func (r Raw) Text() string { return string(r) }
func (Raw) isValue()       {}

type Number struct {
	Tokens []Token
	Base   int
	Int    uint64
	// False when the digits do not form a representable integer, e.g. "0x_".
	Valid bool
}

func (n Number) Text() string   { return joinText(n.Tokens, "") }
func (n Number) Parts() []Token { return n.Tokens }
func (Number) isValue()         {}

type Label struct {
	Tokens []Token
	Name   string
}

func (l Label) Text() string   { return l.Name }
func (l Label) Parts() []Token { return l.Tokens }
func (Label) isValue()         {}

type ShiftedRegister struct {
	Tokens   []Token
	Register string
	Shift    string
	Amount   Number
}

func (s ShiftedRegister) Text() string   { return joinText(s.Tokens, " ") }
func (s ShiftedRegister) Parts() []Token { return s.Tokens }
func (ShiftedRegister) isValue()         {}

func joinText(tokens []Token, sep string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text()
	}
	return strings.Join(parts, sep)
}
