package fcubed

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-fcubed/internal/ast"
	"github.com/KimNorgaard/go-fcubed/internal/lexer"
	"github.com/KimNorgaard/go-fcubed/internal/parser"
)

// Decoder reads and decodes FCubed documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and returns its entries in line order.
//
// If the input contains lines without a '=' separator, or single-quoted
// values that are not exactly one character, Decode returns an
// errors.ParseErrors value and no entries. Values that match no literal
// form are not an error; they decode as null.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() ([]Entry, error) {
	entries, _, err := d.decode()
	return entries, err
}

// DecodeCollection is like Decode but returns the entries as a Collection
// whose lookups use the configured Language.
func (d *Decoder) DecodeCollection() (*Collection, error) {
	entries, o, err := d.decode()
	if err != nil {
		return nil, err
	}
	return &Collection{entries: entries, lang: o.lang}, nil
}

func (d *Decoder) decode() ([]Entry, *options, error) {
	if d.r == nil {
		return nil, nil, fmt.Errorf("fcubed: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return nil, nil, err
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, nil, err
	}
	entries, err := decodeDocument(data, o)
	if err != nil {
		return nil, nil, err
	}
	return entries, o, nil
}

func decodeDocument(data []byte, o *options) ([]Entry, error) {
	l := lexer.New(bytes.NewReader(data))
	p := parser.New(l)
	doc := p.Parse()

	if len(p.Errors()) > 0 {
		return nil, p.Errors()
	}

	ds := &decodeState{opts: o}
	entries := make([]Entry, 0, len(doc.Assignments))
	for _, a := range doc.Assignments {
		entries = append(entries, ds.mapAssignment(a))
	}
	return entries, nil
}

type decodeState struct {
	opts *options
}

// mapAssignment converts a parsed line to an Entry. The parser only
// produces the five literal nodes; anything else is null.
func (ds *decodeState) mapAssignment(a *ast.Assignment) Entry {
	var v Value
	switch node := a.Value.(type) {
	case *ast.StringLiteral:
		v = StringValue(node.Value)
	case *ast.CharLiteral:
		v = CharValue(Char(node.Value))
	case *ast.IntegerLiteral:
		v = Int32Value(node.Value)
	case *ast.BooleanLiteral:
		v = BoolValue(node.Value)
	case *ast.NullLiteral:
		if node.Coerced() {
			ds.opts.logger.Debug("fcubed: unparsable value decoded as null",
				"key", a.Key,
				"literal", node.TokenLiteral(),
				"line", node.Token.Line,
				"column", node.Token.Column,
			)
		}
	}
	return NewEntry(a.Key, v)
}
