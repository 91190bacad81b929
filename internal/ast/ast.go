package ast

import (
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-fcubed/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal value of the token associated with the node.
	TokenLiteral() string
	// String returns the canonical FCubed representation of the node.
	String() string
}

// Expression is a node that represents a value.
type Expression interface {
	Node
	expressionNode()
}

// Document is the root node of an FCubed document.
type Document struct {
	Assignments []*Assignment
}

// TokenLiteral returns the literal value of the token associated with the node.
func (d *Document) TokenLiteral() string {
	if len(d.Assignments) > 0 {
		return d.Assignments[0].TokenLiteral()
	}
	return ""
}

// String returns one line per assignment, joined by newlines.
func (d *Document) String() string {
	lines := make([]string, 0, len(d.Assignments))
	for _, a := range d.Assignments {
		lines = append(lines, a.String())
	}
	return strings.Join(lines, "\n")
}

// Assignment binds a key to a value: key=value;
type Assignment struct {
	Token token.Token // the token.KEY token
	Key   string
	Value Expression
}

func (a *Assignment) TokenLiteral() string { return a.Token.Literal }
func (a *Assignment) String() string {
	var value string
	if a.Value != nil {
		value = a.Value.String()
	}
	return a.Key + "=" + value + ";"
}

// StringLiteral represents a double-quoted string.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return `"` + sl.Value + `"` }

// CharLiteral represents a single-quoted character.
type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()      {}
func (cl *CharLiteral) TokenLiteral() string { return cl.Token.Literal }
func (cl *CharLiteral) String() string       { return "'" + string(cl.Value) + "'" }

// IntegerLiteral represents a 32-bit integer.
type IntegerLiteral struct {
	Token token.Token
	Value int32
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return strconv.FormatInt(int64(il.Value), 10) }

// BooleanLiteral represents a double-quoted boolean.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return `"` + FormatBool(b.Value) + `"` }

// NullLiteral represents [NONE]. A NullLiteral whose token is a
// token.BARE was coerced from an unparsable value.
type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) String() string       { return token.NoneLiteral }

// Coerced reports whether the null was produced from an unparsable token.
func (nl *NullLiteral) Coerced() bool { return nl.Token.Type == token.BARE }

// FormatBool returns the capitalized textual form of b, "True" or "False",
// which existing FCubed files use.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
