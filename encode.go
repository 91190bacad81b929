package fcubed

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-fcubed/internal/ast"
	"github.com/KimNorgaard/go-fcubed/internal/token"
)

// Encoder writes FCubed documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the FCubed encoding of entries to the stream.
//
// Each entry becomes one line terminated by ';'. Lines are separated by
// '\n' and the last line is not followed by a newline. Keys of String
// entries are written as given; keys of every other kind are lower-cased.
func (e *Encoder) Encode(entries []Entry) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	es := &encodeState{opts: o}
	doc := es.document(entries)

	f := newFormatter(e.w)
	if err := f.format(doc); err != nil {
		return fmt.Errorf("fcubed: %w", err)
	}
	return nil
}

type encodeState struct {
	opts *options
}

func (es *encodeState) document(entries []Entry) *ast.Document {
	doc := &ast.Document{Assignments: make([]*ast.Assignment, 0, len(entries))}
	for _, e := range entries {
		doc.Assignments = append(doc.Assignments, es.assignment(e))
	}
	return doc
}

// assignment builds the line for e. String keys are treated as canonical
// names and keep their case; the keys of all other kinds are settings flags
// and are lower-cased. Existing readers of the format depend on this.
func (es *encodeState) assignment(e Entry) *ast.Assignment {
	key := e.key
	if e.value.Kind() != KindString {
		key = lowerKey(es.opts.lang, key)
	}
	return &ast.Assignment{
		Token: token.Token{Type: token.KEY, Literal: key},
		Key:   key,
		Value: e.value.literal(),
	}
}
