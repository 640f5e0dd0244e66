package operands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ian-shakespeare/hsasm/internal/syntax"
)

type Parameter struct {
	Label string `json:"label"`
	Doc   string `json:"doc"`
}

// Signature describes one operand form. Label may contain the placeholders
// {mnemonic}, {assign} and {op}.
type Signature struct {
	Label      string      `json:"label"`
	Doc        string      `json:"doc"`
	Parameters []Parameter `json:"parameters"`
}

// Family groups mnemonics sharing operand shapes. Arity and RegisterArity
// are configuration, not derived from the grammar.
type Family struct {
	Name string `json:"name"`
	// Regular expression matched case-insensitively against the whole mnemonic.
	Mnemonics     string `json:"mnemonics"`
	Arity         int    `json:"arity"`
	RegisterArity int    `json:"registerArity"`
	// Infix operator per upper-case mnemonic, for assignment style labels.
	Operators map[string]string `json:"operators,omitempty"`
	Register  Signature         `json:"register"`
	Immediate Signature         `json:"immediate"`
}

func (f Family) pattern() (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)^(?:` + f.Mnemonics + `)$`)
}

type Families []Family

// Validate reports the first family with an unusable definition.
func (fs Families) Validate() error {
	for _, f := range fs {
		if _, err := f.pattern(); err != nil {
			return fmt.Errorf("family %s: %w", f.Name, err)
		}
		if f.Arity < 1 {
			return fmt.Errorf("family %s: arity must be positive, got %d", f.Name, f.Arity)
		}
	}
	return nil
}

// Match returns the first family whose pattern accepts mnemonic.
func (fs Families) Match(mnemonic string) (Family, bool) {
	for _, f := range fs {
		re, err := f.pattern()
		if err != nil {
			continue
		}
		if re.MatchString(mnemonic) {
			return f, true
		}
	}
	return Family{}, false
}

type SignatureHelp struct {
	Signatures      []Signature
	ActiveSignature int
	ActiveParameter int
	Analysis        Result
}

// Help renders both signatures of family for mnemonic and selects the one
// matching the operand tokens typed so far.
func Help(mnemonic string, tokens []syntax.Token, family Family) SignatureHelp {
	r := Analyze(tokens, family.Arity, family.RegisterArity)

	assign, op := ",", ","
	if symbol, ok := family.Operators[strings.ToUpper(mnemonic)]; ok {
		assign, op = " <-", " "+symbol
	}
	replacer := strings.NewReplacer(
		"{mnemonic}", strings.ToUpper(mnemonic),
		"{assign}", assign,
		"{op}", op,
	)

	return SignatureHelp{
		Signatures: []Signature{
			family.Register.render(replacer),
			family.Immediate.render(replacer),
		},
		ActiveSignature: int(r.Form),
		ActiveParameter: r.ActiveParameter,
		Analysis:        r,
	}
}

func (s Signature) render(replacer *strings.Replacer) Signature {
	s.Label = replacer.Replace(s.Label)
	return s
}
