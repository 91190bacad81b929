package token

import "strings"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A line that cannot be tokenized
	EOF     Type = "EOF"     // End of file

	// Structure
	KEY       Type = "KEY"     // everything before the first '='
	ASSIGN    Type = "="       // the key/value separator
	SEMICOLON Type = ";"       // the line terminator
	NEWLINE   Type = "NEWLINE" // \n or \r\n

	// Values
	STRING Type = "STRING" // "hello"
	CHAR   Type = "CHAR"   // 'c'
	INT    Type = "INT"    // -42
	NONE   Type = "NONE"   // [NONE]
	BARE   Type = "BARE"   // any other unquoted value

	// Keywords, only recognized inside double quotes
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
)

// NoneLiteral is the textual form of a null value.
const NoneLiteral = "[NONE]"

var keywords = map[string]Type{
	"true":  TRUE,
	"false": FALSE,
}

// LookupQuoted classifies the content of a double-quoted value.
// Boolean keywords match case-insensitively and may be surrounded by
// whitespace. Everything else is a STRING.
func LookupQuoted(content string) Type {
	if tok, ok := keywords[strings.ToLower(strings.TrimSpace(content))]; ok {
		return tok
	}
	return STRING
}
