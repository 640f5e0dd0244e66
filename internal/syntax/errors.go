package syntax

import "fmt"

type ScanError struct {
	Type    string
	Message string
	// Position of the first character no rule could match.
	Position Position
}

func NewSyntaxError(pos Position, message string) *ScanError {
	return &ScanError{
		Type:     "syntaxerror",
		Message:  message,
		Position: pos,
	}
}

func NewSyntaxErrorf(pos Position, format string, a ...any) *ScanError {
	return NewSyntaxError(pos, fmt.Sprintf(format, a...))
}

func (s *ScanError) Error() string {
	return fmt.Sprintf("%s: %d:%d: %s", s.Type, s.Position.Line, s.Position.Column, s.Message)
}
