package syntax

import (
	"io"
	"iter"
	"unicode/utf8"

	"github.com/ian-shakespeare/hsasm/pkg/runes"
)

type scanner struct {
	rest string
	pos  Position
}

func NewScanner(line string, lineNo int) *scanner {
	return &scanner{
		rest: line,
		pos:  Position{Line: lineNo},
	}
}

// NextToken returns the next token of the line, hidden tokens included. It
// returns io.EOF once the line is consumed and a *ScanError when no rule
// matches the remaining input.
func (s *scanner) NextToken() (Token, error) {
	if s.rest == "" {
		return Token{}, io.EOF
	}

	rule, n, value := firstMatch(s.rest)
	if n == 0 {
		r, _ := utf8.DecodeRuneInString(s.rest)
		return Token{}, NewSyntaxErrorf(s.pos, "unexpected character %q", r)
	}

	text := s.rest[:n]
	start := s.pos
	s.rest = s.rest[n:]
	s.pos.Column += runes.Count(text)

	return Token{
		Type:  rule.Type,
		Value: Raw(value),
		Range: Range{Start: start, End: s.pos},
	}, nil
}

// Tokens yields every token until the line is consumed. A scan error is
// yielded once and ends the sequence.
func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if err == io.EOF {
				return
			}
			if !yield(token, err) || err != nil {
				return
			}
		}
	}
}

// Remaining returns the input not consumed yet.
func (s *scanner) Remaining() string {
	return s.rest
}

// Scan splits a single line into flat tokens, dropping whitespace and
// brackets. When part of the line matches no rule, the tokens scanned so far
// are returned together with a *ScanError.
func Scan(line string, lineNo int) ([]Token, error) {
	tokens := []Token{}
	for token, err := range NewScanner(line, lineNo).Tokens() {
		if err != nil {
			return tokens, err
		}
		if !token.Type.Hidden() {
			tokens = append(tokens, token)
		}
	}
	return tokens, nil
}

// Tokenize scans a line and, if the whole line was understood, reduces it.
// A line with unlexable content yields its flat prefix only.
func Tokenize(line string, lineNo int) []Token {
	tokens, err := Scan(line, lineNo)
	if err != nil {
		return tokens
	}
	return Reduce(tokens)
}

// Instruction tokenizes a line, drops its leading labels and marks the first
// remaining token as the instruction mnemonic.
func Instruction(line string, lineNo int) []Token {
	tokens := Tokenize(line, lineNo)
	for len(tokens) > 0 && tokens[0].Type == LABEL_TOKEN {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return []Token{}
	}
	tokens[0].Type = INSTRUCTION_TOKEN
	return tokens
}
