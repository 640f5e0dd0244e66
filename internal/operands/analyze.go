package operands

import (
	"github.com/ian-shakespeare/hsasm/internal/syntax"
	"github.com/ian-shakespeare/hsasm/pkg/array"
)

// Form is the shape of an instruction's trailing operand. Its value is the
// index of the matching signature in a SignatureHelp.
type Form int

const (
	RegisterForm Form = iota
	ImmediateForm
)

func (f Form) String() string {
	if f == RegisterForm {
		return "register"
	}
	return "immediate"
}

var separatorTypes = []syntax.TokenType{
	syntax.LPAREN_TOKEN,
	syntax.RPAREN_TOKEN,
	syntax.LBRACKET_TOKEN,
	syntax.RBRACKET_TOKEN,
	syntax.COMMA_TOKEN,
	syntax.COLON_TOKEN,
	syntax.OP_TOKEN,
	syntax.OPL_TOKEN,
}

var registerTypes = []syntax.TokenType{
	syntax.REGISTER_TOKEN,
	syntax.SHIFTED_REGISTER_TOKEN,
}

type Result struct {
	// Number of separator and operator tokens seen.
	Arguments int
	// Type of the last operand token, UNKNOWN_TOKEN if there was none.
	Last            syntax.TokenType
	Form            Form
	ActiveParameter int
}

// Analyze inspects the reduced operand tokens of an instruction line, the
// mnemonic excluded. The register form is chosen only when exactly
// registerArity separators were seen and the last operand is register-like.
func Analyze(tokens []syntax.Token, arity int, registerArity int) Result {
	var r Result
	for _, token := range tokens {
		if array.Contains(separatorTypes, token.Type) {
			r.Arguments++
		} else {
			r.Last = token.Type
		}
	}

	r.Form = ImmediateForm
	if r.Arguments == registerArity && array.Contains(registerTypes, r.Last) {
		r.Form = RegisterForm
	}
	r.ActiveParameter = max(0, min(r.Arguments, arity-1))

	return r
}
