package syntax_test

import (
	"errors"
	"io"
	"testing"

	"github.com/ian-shakespeare/hsasm/internal/syntax"
	"github.com/ian-shakespeare/hsasm/pkg/iterator"
	"github.com/ian-shakespeare/hsasm/pkg/runes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(tokens []syntax.Token) []syntax.TokenType {
	ret := make([]syntax.TokenType, len(tokens))
	for i, t := range tokens {
		ret[i] = t.Type
	}
	return ret
}

func texts(tokens []syntax.Token) []string {
	ret := make([]string, len(tokens))
	for i, t := range tokens {
		ret[i] = t.Text()
	}
	return ret
}

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		s := syntax.NewScanner("", 0)
		_, err := s.NextToken()
		assert.ErrorIs(t, err, io.EOF)
	})

	single := []struct {
		name      string
		value     string
		tokenType syntax.TokenType
		text      string
	}{
		{"register", "r0", syntax.REGISTER_TOKEN, "r0"},
		{"registerUpperCase", "R12", syntax.REGISTER_TOKEN, "R12"},
		{"programCounter", "PC", syntax.REGISTER_TOKEN, "PC"},
		{"linkRegister", "lr", syntax.REGISTER_TOKEN, "lr"},
		{"identifier", "loop_1", syntax.IDENT_TOKEN, "loop_1"},
		{"hexPrefix", "0x1A", syntax.HEX_TOKEN, "1A"},
		{"hexPrefixUpperCase", "0XfF", syntax.HEX_TOKEN, "fF"},
		{"hexSuffix", "1Ah", syntax.HEX_TOKEN, "1A"},
		{"binPrefix", "0b1010", syntax.BIN_TOKEN, "1010"},
		{"binSuffix", "1010b", syntax.BIN_TOKEN, "1010"},
		{"decimal", "1234567890", syntax.DEC_TOKEN, "1234567890"},
		{"shift", "shl", syntax.SHIFT_TOKEN, "shl"},
		{"comma", ",", syntax.COMMA_TOKEN, ","},
		{"arrow", "<-", syntax.COMMA_TOKEN, "<-"},
		{"colon", ":", syntax.COLON_TOKEN, ":"},
		{"plus", "+", syntax.OP_TOKEN, "+"},
		{"minus", "-", syntax.OP_TOKEN, "-"},
		{"and", "&", syntax.OPL_TOKEN, "&"},
		{"xor", "^", syntax.OPL_TOKEN, "^"},
		{"parenthesis", "(", syntax.LPAREN_TOKEN, "("},
		{"doubleQuoted", `"hello world"`, syntax.STRING_TOKEN, "hello world"},
		{"singleQuoted", `'a'`, syntax.STRING_TOKEN, "a"},
		{"escapedQuote", `"say \"hi\""`, syntax.STRING_TOKEN, `say \"hi\"`},
	}

	for _, input := range single {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := syntax.Scan(input.value, 3)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, input.tokenType, tokens[0].Type)
			assert.Equal(t, input.text, tokens[0].Text())
			assert.Equal(t, syntax.Range{
				Start: syntax.Position{Line: 3, Column: 0},
				End:   syntax.Position{Line: 3, Column: runes.Count(input.value)},
			}, tokens[0].Range)
		})
	}

	t.Run("registerBeforeIdentifier", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"r0", "R0", "r9", "Pc"} {
			tokens, err := syntax.Scan(input, 0)
			require.NoError(t, err)
			assert.Equal(t, []syntax.TokenType{syntax.REGISTER_TOKEN}, types(tokens), input)
		}
	})

	t.Run("shiftKeywordIsGreedy", func(t *testing.T) {
		t.Parallel()

		tokens, err := syntax.Scan("shrink", 0)
		require.NoError(t, err)
		assert.Equal(t, []syntax.TokenType{syntax.SHIFT_TOKEN, syntax.IDENT_TOKEN}, types(tokens))
		assert.Equal(t, []string{"shr", "ink"}, texts(tokens))
	})

	t.Run("hiddenTokens", func(t *testing.T) {
		t.Parallel()

		tokens, err := syntax.Scan("LDR r1, [r2 + 4]", 0)
		require.NoError(t, err)
		assert.Equal(t, []syntax.TokenType{
			syntax.IDENT_TOKEN,
			syntax.REGISTER_TOKEN,
			syntax.COMMA_TOKEN,
			syntax.REGISTER_TOKEN,
			syntax.OP_TOKEN,
			syntax.DEC_TOKEN,
		}, types(tokens))
	})

	t.Run("unicodeSeparators", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"x\u2028y", "x\u2029y", "x\u00a0y", "x\vy", "x\ufeffy"} {
			s := syntax.NewScanner(input, 0)
			var got []syntax.TokenType
			for token, err := range s.Tokens() {
				require.NoError(t, err, input)
				got = append(got, token.Type)
			}
			assert.Equal(t, []syntax.TokenType{
				syntax.IDENT_TOKEN,
				syntax.SPACE_TOKEN,
				syntax.IDENT_TOKEN,
			}, got, input)
		}
	})

	t.Run("unterminatedString", func(t *testing.T) {
		t.Parallel()

		tokens, err := syntax.Scan(`MOV r1, "abc`, 0)
		var scanErr *syntax.ScanError
		require.True(t, errors.As(err, &scanErr))
		assert.Equal(t, "syntaxerror", scanErr.Type)
		assert.Equal(t, syntax.Position{Line: 0, Column: 8}, scanErr.Position)
		assert.Equal(t, []string{"MOV", "r1", ","}, texts(tokens))
	})

	t.Run("unlexable", func(t *testing.T) {
		t.Parallel()

		tokens, err := syntax.Scan("@@@", 2)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, io.EOF)
		assert.Empty(t, tokens)
	})

	t.Run("coverage", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"loop: ADD r1, r1, 1",
			"  LDR r1 <- [r2 + r3 shl 2]   ",
			"\tMOV r0, 0x_FF_ 'quoted' (x) & y | z * w ^ v - u",
			"STR [r1 + 1Ah] <- r2",
			"MOV r1, \"é\", 'ü'",
		}

		for _, line := range lines {
			s := syntax.NewScanner(line, 0)
			tokens, errs := iterator.Collect2(s.Tokens())
			for _, err := range errs {
				require.NoError(t, err, line)
			}
			assert.Empty(t, s.Remaining(), line)

			column := 0
			for _, token := range tokens {
				assert.Equal(t, column, token.Range.Start.Column, line)
				assert.Greater(t, token.Range.End.Column, token.Range.Start.Column, line)
				column = token.Range.End.Column
			}
			assert.Equal(t, runes.Count(line), column, line)
		}
	})
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("label", func(t *testing.T) {
		t.Parallel()

		tokens := syntax.Tokenize("loop: ADD r1, r1, 1", 4)
		assert.Equal(t, []syntax.TokenType{
			syntax.LABEL_TOKEN,
			syntax.IDENT_TOKEN,
			syntax.REGISTER_TOKEN,
			syntax.COMMA_TOKEN,
			syntax.REGISTER_TOKEN,
			syntax.COMMA_TOKEN,
			syntax.NUMBER_TOKEN,
		}, types(tokens))

		label, ok := tokens[0].Value.(syntax.Label)
		require.True(t, ok)
		assert.Equal(t, "loop", label.Name)
		assert.Len(t, label.Parts(), 2)
		assert.Equal(t, syntax.Range{
			Start: syntax.Position{Line: 4, Column: 0},
			End:   syntax.Position{Line: 4, Column: 5},
		}, tokens[0].Range)
	})

	t.Run("numbersAgree", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"0x1A", "1Ah", "0b11010", "11010b", "26", "0x_1_A"} {
			tokens := syntax.Tokenize(input, 0)
			require.Len(t, tokens, 1, input)
			assert.Equal(t, syntax.NUMBER_TOKEN, tokens[0].Type, input)
			number, ok := tokens[0].Value.(syntax.Number)
			require.True(t, ok, input)
			assert.True(t, number.Valid, input)
			assert.Equal(t, uint64(26), number.Int, input)
		}
	})

	t.Run("invalidNumber", func(t *testing.T) {
		t.Parallel()

		tokens := syntax.Tokenize("0x__", 0)
		require.Len(t, tokens, 1)
		number, ok := tokens[0].Value.(syntax.Number)
		require.True(t, ok)
		assert.False(t, number.Valid)
		assert.Equal(t, 16, number.Base)
	})

	t.Run("shiftedRegister", func(t *testing.T) {
		t.Parallel()

		tokens := syntax.Tokenize("MOV r1, r2 shl 4", 0)
		assert.Equal(t, []syntax.TokenType{
			syntax.IDENT_TOKEN,
			syntax.REGISTER_TOKEN,
			syntax.COMMA_TOKEN,
			syntax.SHIFTED_REGISTER_TOKEN,
		}, types(tokens))

		shreg, ok := tokens[3].Value.(syntax.ShiftedRegister)
		require.True(t, ok)
		assert.Equal(t, "r2", shreg.Register)
		assert.Equal(t, "shl", shreg.Shift)
		assert.Equal(t, uint64(4), shreg.Amount.Int)
		assert.Equal(t, 8, tokens[3].Range.Start.Column)
		assert.Equal(t, 16, tokens[3].Range.End.Column)
	})

	t.Run("partialFailure", func(t *testing.T) {
		t.Parallel()

		tokens := syntax.Tokenize("x: MOV r1, 1 @@@", 0)
		assert.NotEmpty(t, tokens)
		assert.Equal(t, []syntax.TokenType{
			syntax.IDENT_TOKEN,
			syntax.COLON_TOKEN,
			syntax.IDENT_TOKEN,
			syntax.REGISTER_TOKEN,
			syntax.COMMA_TOKEN,
			syntax.DEC_TOKEN,
		}, types(tokens))
		for _, token := range tokens {
			_, folded := token.Value.(syntax.Folded)
			assert.False(t, folded)
		}
	})
}

func TestInstruction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		line   string
		expect []string
	}{
		{"plain", "add r1, r2, r3", []string{"add", "r1", ",", "r2", ",", "r3"}},
		{"labelled", "a: b: MOV r1, 1", []string{"MOV", "r1", ",", "1"}},
		{"labelOnly", "loop:", []string{}},
		{"empty", "", []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			tokens := syntax.Instruction(c.line, 0)
			assert.Equal(t, c.expect, texts(tokens))
			if len(tokens) > 0 {
				assert.Equal(t, syntax.INSTRUCTION_TOKEN, tokens[0].Type)
			}
		})
	}
}
