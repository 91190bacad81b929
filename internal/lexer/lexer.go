package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-fcubed/internal/token"
)

// Lexer holds the state for tokenizing FCubed source.
//
// FCubed is line oriented, so the lexer reads one line at a time and
// queues the tokens it produces for that line.
type Lexer struct {
	r       *bufio.Reader
	line    int
	pending []token.Token
	done    bool
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r)}
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() token.Token {
	for len(l.pending) == 0 {
		if l.done {
			return token.Token{Type: token.EOF, Line: l.line + 1, Column: 1}
		}
		l.scanLine()
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok
}

func (l *Lexer) emit(typ token.Type, lit string, column int) {
	l.pending = append(l.pending, token.Token{Type: typ, Literal: lit, Line: l.line, Column: column})
}

func (l *Lexer) scanLine() {
	raw, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.line++
			l.emit(token.ILLEGAL, fmt.Sprintf("read error: %v", err), 1)
			return
		}
		if raw == "" {
			return
		}
	}
	l.line++

	text, terminated := strings.CutSuffix(raw, "\n")
	text = strings.TrimSuffix(text, "\r")
	width := utf8.RuneCountInString(text)

	if strings.Trim(text, " \t") != "" {
		l.scanAssignment(text)
	}
	if terminated {
		l.emit(token.NEWLINE, "\n", width+1)
	}
}

// scanAssignment tokenizes a single non-blank line of the form key=value;.
func (l *Lexer) scanAssignment(text string) {
	key, value, found := strings.Cut(text, "=")
	if !found {
		l.emit(token.ILLEGAL, fmt.Sprintf("missing '=' separator in %q", text), 1)
		return
	}

	col := 1
	l.emit(token.KEY, key, col)
	col += utf8.RuneCountInString(key)
	l.emit(token.ASSIGN, "=", col)
	col++

	value, terminated := strings.CutSuffix(value, ";")
	typ, lit := Classify(value)
	l.emit(typ, lit, col)
	if terminated {
		l.emit(token.SEMICOLON, ";", col+utf8.RuneCountInString(value))
	}
}

// Classify returns the token type of a value segment and its literal.
// Quoted segments have their quotes removed from the literal.
func Classify(value string) (token.Type, string) {
	switch {
	case isWrapped(value, '"'):
		content := value[1 : len(value)-1]
		return token.LookupQuoted(content), content
	case isWrapped(value, '\''):
		return token.CHAR, value[1 : len(value)-1]
	case value == token.NoneLiteral:
		return token.NONE, value
	}
	if _, ok := ParseInt32(value); ok {
		return token.INT, value
	}
	return token.BARE, value
}

// ParseInt32 parses a decimal 32-bit integer with an optional sign.
// Surrounding whitespace is ignored.
func ParseInt32(lit string) (int32, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(lit), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

func isWrapped(s string, quote byte) bool {
	return len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote
}
