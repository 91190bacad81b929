package fcubed

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
)

// Option configures encoding and decoding.
type Option func(*options) error

type options struct {
	lang   language.Tag
	logger *slog.Logger
}

var (
	defaultLanguage = language.Und
	discardLogger   = slog.New(slog.DiscardHandler)
)

func newOptions(opts []Option) (*options, error) {
	o := &options{
		lang:   defaultLanguage,
		logger: discardLogger,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Language returns an Option that sets the language whose casing rules are
// used to lower-case keys on encode and to match keys in the decoded
// collection. The default is language.Und, which applies the Unicode
// default casing.
func Language(tag language.Tag) Option {
	return func(o *options) error {
		o.lang = tag
		return nil
	}
}

// Logger returns an Option that sets the logger used to report values
// that were coerced to null while decoding. Nothing is logged by default.
func Logger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("fcubed: logger cannot be nil")
		}
		o.logger = l
		return nil
	}
}
