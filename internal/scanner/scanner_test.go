package scanner_test

import (
	"testing"

	"github.com/leonardinius/golox-expr/internal/scanner"
	"github.com/leonardinius/golox-expr/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func TestScanTokens(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
		err      string
	}{
		{"empty", "", []string{`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`}, ""},
		{"unexpected character", "⌘", nil, "[line 1] Error: Unexpected character. '⌘'"},
		{"unexpected character second line", "1\n@", nil, "[line 2] Error: Unexpected character. '@'"},
		{"underscore is not a letter", "_a", nil, "[line 1] Error: Unexpected character. '_'"},
		{"unterminated string", `"unterminated`, nil, "[line 1] Error: Unterminated string."},
		{"unterminated string multiline", "\"a\nb", nil, "[line 2] Error: Unterminated string."},
		{
			"basic",
			"(){},*+-;",
			[]string{
				`{Type: LEFT_PAREN, Lexeme: "(", Literal: <nil>, Line: 1}`,
				`{Type: RIGHT_PAREN, Lexeme: ")", Literal: <nil>, Line: 1}`,
				`{Type: LEFT_BRACE, Lexeme: "{", Literal: <nil>, Line: 1}`,
				`{Type: RIGHT_BRACE, Lexeme: "}", Literal: <nil>, Line: 1}`,
				`{Type: COMMA, Lexeme: ",", Literal: <nil>, Line: 1}`,
				`{Type: STAR, Lexeme: "*", Literal: <nil>, Line: 1}`,
				`{Type: PLUS, Lexeme: "+", Literal: <nil>, Line: 1}`,
				`{Type: MINUS, Lexeme: "-", Literal: <nil>, Line: 1}`,
				`{Type: SEMICOLON, Lexeme: ";", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"bang",
			"!",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"bangbang",
			"!!",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: <nil>, Line: 1}`,
				`{Type: BANG, Lexeme: "!", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"bangbangeqeqeqeq",
			"!====",
			[]string{
				`{Type: BANG_EQUAL, Lexeme: "!=", Literal: <nil>, Line: 1}`,
				`{Type: EQUAL_EQUAL, Lexeme: "==", Literal: <nil>, Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"lt",
			"<",
			[]string{
				`{Type: LESS, Lexeme: "<", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"lteq",
			"<=",
			[]string{
				`{Type: LESS_EQUAL, Lexeme: "<=", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"lteqeqeqeq",
			"<====",
			[]string{
				`{Type: LESS_EQUAL, Lexeme: "<=", Literal: <nil>, Line: 1}`,
				`{Type: EQUAL_EQUAL, Lexeme: "==", Literal: <nil>, Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"gt",
			">",
			[]string{
				`{Type: GREATER, Lexeme: ">", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"gteq",
			">=",
			[]string{
				`{Type: GREATER_EQUAL, Lexeme: ">=", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"gteqeqeqeq",
			">====",
			[]string{
				`{Type: GREATER_EQUAL, Lexeme: ">=", Literal: <nil>, Line: 1}`,
				`{Type: EQUAL_EQUAL, Lexeme: "==", Literal: <nil>, Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"comment",
			"//comment",
			[]string{
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"bangcomment",
			"!//comment",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"spaces",
			"! \r\t=",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: <nil>, Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"string",
			`"string"`,
			[]string{
				`{Type: STRING, Lexeme: "\"string\"", Literal: "string", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"empty-string",
			`""`,
			[]string{
				`{Type: STRING, Lexeme: "\"\"", Literal: "", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"string-nl",
			`"string\nstring"`,
			[]string{
				`{Type: STRING, Lexeme: "\"string\\nstring\"", Literal: "string\\nstring", Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"number-integer",
			`10`,
			[]string{
				`{Type: NUMBER, Lexeme: "10", Literal: 10, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"number-integer-leading-zeroes",
			`0010`,
			[]string{
				`{Type: NUMBER, Lexeme: "0010", Literal: 10, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"number-decimal",
			`12.34`,
			[]string{
				`{Type: NUMBER, Lexeme: "12.34", Literal: 12.34, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"number-decimal-leading-zeroes",
			`0012.34`,
			[]string{
				`{Type: NUMBER, Lexeme: "0012.34", Literal: 12.34, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"number-dot",
			`12.`,
			[]string{
				`{Type: NUMBER, Lexeme: "12", Literal: 12, Line: 1}`,
				`{Type: DOT, Lexeme: ".", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"identifier",
			`identifier`,
			[]string{
				`{Type: IDENTIFIER, Lexeme: "identifier", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"reserved",
			`and class else false for fun if nil or print return super this true var while`,
			[]string{
				`{Type: AND, Lexeme: "and", Literal: <nil>, Line: 1}`,
				`{Type: CLASS, Lexeme: "class", Literal: <nil>, Line: 1}`,
				`{Type: ELSE, Lexeme: "else", Literal: <nil>, Line: 1}`,
				`{Type: FALSE, Lexeme: "false", Literal: <nil>, Line: 1}`,
				`{Type: FOR, Lexeme: "for", Literal: <nil>, Line: 1}`,
				`{Type: FUN, Lexeme: "fun", Literal: <nil>, Line: 1}`,
				`{Type: IF, Lexeme: "if", Literal: <nil>, Line: 1}`,
				`{Type: NIL, Lexeme: "nil", Literal: <nil>, Line: 1}`,
				`{Type: OR, Lexeme: "or", Literal: <nil>, Line: 1}`,
				`{Type: PRINT, Lexeme: "print", Literal: <nil>, Line: 1}`,
				`{Type: RETURN, Lexeme: "return", Literal: <nil>, Line: 1}`,
				`{Type: SUPER, Lexeme: "super", Literal: <nil>, Line: 1}`,
				`{Type: THIS, Lexeme: "this", Literal: <nil>, Line: 1}`,
				`{Type: TRUE, Lexeme: "true", Literal: <nil>, Line: 1}`,
				`{Type: VAR, Lexeme: "var", Literal: <nil>, Line: 1}`,
				`{Type: WHILE, Lexeme: "while", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"string-real-newline",
			"\"a\nb\" 1",
			[]string{
				`{Type: STRING, Lexeme: "\"a\nb\"", Literal: "a\nb", Line: 2}`,
				`{Type: NUMBER, Lexeme: "1", Literal: 1, Line: 2}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 2}`,
			},
			"",
		},
		{
			"lines",
			"1\n// comment\n\n2",
			[]string{
				`{Type: NUMBER, Lexeme: "1", Literal: 1, Line: 1}`,
				`{Type: NUMBER, Lexeme: "2", Literal: 2, Line: 4}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 4}`,
			},
			"",
		},
		{
			"slash",
			"4/2",
			[]string{
				`{Type: NUMBER, Lexeme: "4", Literal: 4, Line: 1}`,
				`{Type: SLASH, Lexeme: "/", Literal: <nil>, Line: 1}`,
				`{Type: NUMBER, Lexeme: "2", Literal: 2, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"identifier-digits",
			"a1b2 orchid",
			[]string{
				`{Type: IDENTIFIER, Lexeme: "a1b2", Literal: <nil>, Line: 1}`,
				`{Type: IDENTIFIER, Lexeme: "orchid", Literal: <nil>, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
		{
			"expression",
			"(1 + 2) * 3 >= -4",
			[]string{
				`{Type: LEFT_PAREN, Lexeme: "(", Literal: <nil>, Line: 1}`,
				`{Type: NUMBER, Lexeme: "1", Literal: 1, Line: 1}`,
				`{Type: PLUS, Lexeme: "+", Literal: <nil>, Line: 1}`,
				`{Type: NUMBER, Lexeme: "2", Literal: 2, Line: 1}`,
				`{Type: RIGHT_PAREN, Lexeme: ")", Literal: <nil>, Line: 1}`,
				`{Type: STAR, Lexeme: "*", Literal: <nil>, Line: 1}`,
				`{Type: NUMBER, Lexeme: "3", Literal: 3, Line: 1}`,
				`{Type: GREATER_EQUAL, Lexeme: ">=", Literal: <nil>, Line: 1}`,
				`{Type: MINUS, Lexeme: "-", Literal: <nil>, Line: 1}`,
				`{Type: NUMBER, Lexeme: "4", Literal: 4, Line: 1}`,
				`{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`,
			},
			"",
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(tt *testing.T) {
			tt.Parallel()

			s := scanner.NewScanner(tc.input)
			tokens, err := s.Scan()
			if tc.err != "" {
				assert.EqualErrorf(tt, err, tc.err, "expected error %v, got %v", tc.err, err)
				assert.Nil(tt, tokens)
			} else {
				require.NoError(tt, err)
				tokensAsStrings := make([]string, len(tokens))
				for i, token := range tokens {
					tokensAsStrings[i] = token.GoString()
				}
				assert.Equal(tt, tc.expected, tokensAsStrings)
			}
		})
	}
}

func TestScanEndsWithSingleEOF(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "1", "1 + 2", "\n\n", "// only comment", `"s" == "s"`, "!!true", "nil != false"}
	for _, input := range inputs {
		tokens, err := scanner.NewScanner(input).Scan()
		require.NoError(t, err, input)
		require.NotEmpty(t, tokens, input)

		eofs := 0
		for _, tok := range tokens {
			if tok.Type == token.EOF {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs, input)
		assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type, input)
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	keywords := scanner.Keywords()
	names := maps.Keys(keywords)
	slices.Sort(names)

	assert.Equal(t, []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}, names)

	for _, name := range names {
		tokens, err := scanner.NewScanner(name).Scan()
		require.NoError(t, err)
		assert.Equal(t, keywords[name], tokens[0].Type, name)
		assert.Equal(t, name, tokens[0].Lexeme)
	}

	// Callers get a copy, the table itself stays intact.
	delete(keywords, "and")
	assert.Contains(t, scanner.Keywords(), "and")
}
