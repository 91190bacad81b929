package fcubed

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-fcubed/internal/ast"
)

// formatter writes an FCubed AST to an output stream.
type formatter struct {
	w io.Writer
}

// newFormatter returns a new formatter that writes to w.
func newFormatter(w io.Writer) *formatter {
	return &formatter{w: w}
}

// format writes the FCubed representation of the AST node to the writer.
func (f *formatter) format(node ast.Node) error {
	return f.writeNode(node)
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) writeNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Document:
		for i, a := range n.Assignments {
			if i > 0 {
				if err := f.write("\n"); err != nil {
					return err
				}
			}
			if err := f.writeNode(a); err != nil {
				return err
			}
		}
		return nil

	case *ast.Assignment:
		if err := f.write(n.Key + "="); err != nil {
			return err
		}
		if err := f.writeNode(n.Value); err != nil {
			return err
		}
		return f.write(";")

	case *ast.StringLiteral, *ast.CharLiteral, *ast.IntegerLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return f.write(n.String())

	default:
		return fmt.Errorf("unsupported node type for formatting: %T", n)
	}
}
