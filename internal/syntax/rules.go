package syntax

import (
	"regexp"
)

type patternRule struct {
	Type TokenType
	// match reports the byte length of the match anchored at the start of s
	// and the token value. A length of 0 means no match.
	match func(s string) (int, string)
}

// Rules are tried in order; the first one matching at the cursor wins.
var patternRules = []patternRule{
	regexRule(SPACE_TOKEN, `[\s\v\p{Zs}\p{Zl}\p{Zp}\x{FEFF}]+`),
	regexRule(SHIFT_TOKEN, `(shr|shl|ror|shx)`),
	regexRule(LPAREN_TOKEN, `\(`),
	regexRule(RPAREN_TOKEN, `\)`),
	regexRule(LBRACKET_TOKEN, `\[`),
	regexRule(RBRACKET_TOKEN, `\]`),
	regexRule(COMMA_TOKEN, `,|<-`),
	regexRule(COLON_TOKEN, `:`),

	regexRule(OPL_TOKEN, `(&|\||\*|\^)`),
	regexRule(OP_TOKEN, `(\+|-)`),

	{Type: STRING_TOKEN, match: matchString},
	regexRule(HEX_TOKEN, `(?:0x|0X)([A-Fa-f0-9_]+)`),
	regexRule(HEX_TOKEN, `([A-Fa-f0-9_]+)(?:h|H)`),
	regexRule(BIN_TOKEN, `(?:0b|0B)([01_]+)`),
	regexRule(BIN_TOKEN, `([01_]+)(?:b|B)`),
	regexRule(DEC_TOKEN, `([0-9]+)`),
	regexRule(REGISTER_TOKEN, `(?i:(r\d{1,2}|pc|lr))`),
	regexRule(IDENT_TOKEN, `([A-Za-z0-9_]+)`),
}

func regexRule(t TokenType, pattern string) patternRule {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	return patternRule{
		Type: t,
		match: func(s string) (int, string) {
			m := re.FindStringSubmatch(s)
			if m == nil {
				return 0, ""
			}
			if len(m) > 1 {
				return len(m[0]), m[1]
			}
			return len(m[0]), m[0]
		},
	}
}

// matchString matches a single or double quoted literal. A backslash escapes
// the following character, which is left raw in the value.
func matchString(s string) (int, string) {
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return 0, ""
	}
	quote := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return 0, ""
			}
			i++
		case quote:
			return i + 1, s[1:i]
		}
	}
	return 0, ""
}

func firstMatch(s string) (rule patternRule, n int, value string) {
	for _, rule := range patternRules {
		if n, value := rule.match(s); n > 0 {
			return rule, n, value
		}
	}
	return patternRule{}, 0, ""
}

type rewriteRule struct {
	Type    TokenType
	Pattern []TokenType
	Fold    func(parts []Token) Value
}

// Rule order is priority: every pass restarts from the first rule.
var rewriteRules = []rewriteRule{
	{NUMBER_TOKEN, []TokenType{HEX_TOKEN}, foldNumber(16)},
	{NUMBER_TOKEN, []TokenType{DEC_TOKEN}, foldNumber(10)},
	{NUMBER_TOKEN, []TokenType{BIN_TOKEN}, foldNumber(2)},

	{LABEL_TOKEN, []TokenType{IDENT_TOKEN, COLON_TOKEN}, foldLabel},
	{SHIFTED_REGISTER_TOKEN, []TokenType{REGISTER_TOKEN, SHIFT_TOKEN, NUMBER_TOKEN}, foldShiftedRegister},
}

func init() {
	// A single-token rule producing its own input would never reach a fixed point.
	for _, rule := range rewriteRules {
		if len(rule.Pattern) == 0 || len(rule.Pattern) == 1 && rule.Pattern[0] == rule.Type {
			panic("syntax: rewrite rule " + rule.Type.String() + " cannot terminate")
		}
	}
}
