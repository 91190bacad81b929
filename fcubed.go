package fcubed

import (
	"bytes"
)

// Encode returns the FCubed encoding of entries using the default options.
func Encode(entries []Entry) string {
	// The default options are valid and a bytes.Buffer never fails a write.
	b, _ := Marshal(entries)
	return string(b)
}

// Decode parses FCubed text using the default options.
func Decode(text string) ([]Entry, error) {
	return Unmarshal([]byte(text))
}

// Marshal returns the FCubed encoding of entries.
func Marshal(entries []Entry, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the FCubed-encoded data and returns its entries in
// line order.
func Unmarshal(data []byte, opts ...Option) ([]Entry, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data, o)
}

// UnmarshalCollection is like Unmarshal but returns a Collection whose
// lookups use the configured Language.
func UnmarshalCollection(data []byte, opts ...Option) (*Collection, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	entries, err := decodeDocument(data, o)
	if err != nil {
		return nil, err
	}
	return &Collection{entries: entries, lang: o.lang}, nil
}
