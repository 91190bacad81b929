package lexer_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-fcubed/internal/lexer"
	"github.com/KimNorgaard/go-fcubed/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := "Name=\"Alice\";\r\n" +
		"active=\"True\";\n" +
		"\n" +
		"initial='A';\n" +
		"count=-42;\n" +
		"missing=[NONE];\n" +
		"x=hello\n" +
		"url=\"a=b\";"

	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
		expectedLine    int
		expectedColumn  int
	}{
		{token.KEY, "Name", 1, 1},
		{token.ASSIGN, "=", 1, 5},
		{token.STRING, "Alice", 1, 6},
		{token.SEMICOLON, ";", 1, 13},
		{token.NEWLINE, "\n", 1, 14},
		{token.KEY, "active", 2, 1},
		{token.ASSIGN, "=", 2, 7},
		{token.TRUE, "True", 2, 8},
		{token.SEMICOLON, ";", 2, 14},
		{token.NEWLINE, "\n", 2, 15},
		{token.NEWLINE, "\n", 3, 1},
		{token.KEY, "initial", 4, 1},
		{token.ASSIGN, "=", 4, 8},
		{token.CHAR, "A", 4, 9},
		{token.SEMICOLON, ";", 4, 12},
		{token.NEWLINE, "\n", 4, 13},
		{token.KEY, "count", 5, 1},
		{token.ASSIGN, "=", 5, 6},
		{token.INT, "-42", 5, 7},
		{token.SEMICOLON, ";", 5, 10},
		{token.NEWLINE, "\n", 5, 11},
		{token.KEY, "missing", 6, 1},
		{token.ASSIGN, "=", 6, 8},
		{token.NONE, "[NONE]", 6, 9},
		{token.SEMICOLON, ";", 6, 15},
		{token.NEWLINE, "\n", 6, 16},
		{token.KEY, "x", 7, 1},
		{token.ASSIGN, "=", 7, 2},
		{token.BARE, "hello", 7, 3},
		{token.NEWLINE, "\n", 7, 8},
		{token.KEY, "url", 8, 1},
		{token.ASSIGN, "=", 8, 4},
		{token.STRING, "a=b", 8, 5},
		{token.SEMICOLON, ";", 8, 10},
		{token.EOF, "", 9, 1},
	}

	l := lexer.New(strings.NewReader(input))

	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong. literal=%q", i, tok.Literal)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
		require.Equal(t, tt.expectedLine, tok.Line, "tests[%d] - line wrong", i)
		require.Equal(t, tt.expectedColumn, tok.Column, "tests[%d] - column wrong", i)
	}
}

func TestNextToken_MissingSeparator(t *testing.T) {
	l := lexer.New(strings.NewReader("ok=1;\nbroken;\n"))

	var illegal []token.Token
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		if tok.Type == token.ILLEGAL {
			illegal = append(illegal, tok)
		}
	}

	require.Len(t, illegal, 1)
	require.Equal(t, 2, illegal[0].Line)
	require.Equal(t, 1, illegal[0].Column)
	require.Contains(t, illegal[0].Literal, "missing '=' separator")
}

func TestNextToken_BlankLinesOnly(t *testing.T) {
	l := lexer.New(strings.NewReader(" \t\n\n"))
	require.Equal(t, token.NEWLINE, l.NextToken().Type)
	require.Equal(t, token.NEWLINE, l.NextToken().Type)
	require.Equal(t, token.EOF, l.NextToken().Type)
	require.Equal(t, token.EOF, l.NextToken().Type, "EOF must be sticky")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedTyp token.Type
		expectedLit string
	}{
		{"double quoted string", `"hello"`, token.STRING, "hello"},
		{"empty double quoted", `""`, token.STRING, ""},
		{"quoted bool", `"False"`, token.FALSE, "False"},
		{"single quoted", `'x'`, token.CHAR, "x"},
		{"single quoted too long", `'xy'`, token.CHAR, "xy"},
		{"lone double quote", `"`, token.BARE, `"`},
		{"mismatched quotes", `"abc'`, token.BARE, `"abc'`},
		{"integer", "42", token.INT, "42"},
		{"signed integer", "+7", token.INT, "+7"},
		{"integer with spaces", " 9 ", token.INT, " 9 "},
		{"overflow", "2147483648", token.BARE, "2147483648"},
		{"none", "[NONE]", token.NONE, "[NONE]"},
		{"empty", "", token.BARE, ""},
		{"float", "1.5", token.BARE, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, lit := lexer.Classify(tt.input)
			require.Equal(t, tt.expectedTyp, typ)
			require.Equal(t, tt.expectedLit, lit)
		})
	}
}

func TestParseInt32(t *testing.T) {
	n, ok := lexer.ParseInt32("-2147483648")
	require.True(t, ok)
	require.Equal(t, int32(-2147483648), n)

	_, ok = lexer.ParseInt32("0x10")
	require.False(t, ok)

	_, ok = lexer.ParseInt32("1_000")
	require.False(t, ok)
}
