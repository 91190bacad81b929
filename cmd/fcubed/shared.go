package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/KimNorgaard/go-fcubed"
	"golang.org/x/text/language"
)

type globalOptions struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" enum:"debug,info,warn,error" env:"FCUBED_LOG_LEVEL"`
	Lang     string `help:"Locale whose casing rules apply to keys, e.g. tr_TR.UTF-8." env:"LANG"`

	stdout io.Writer `kong:"-"`
}

func (g *globalOptions) out() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}

func (g *globalOptions) logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("app", appName)
}

func (g *globalOptions) codecOptions() []fcubed.Option {
	return []fcubed.Option{
		fcubed.Language(parseLocale(g.Lang)),
		fcubed.Logger(g.logger()),
	}
}

// parseLocale turns a POSIX locale name such as "tr_TR.UTF-8" into a
// language tag. Unknown or neutral locales map to language.Und.
func parseLocale(locale string) language.Tag {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	switch locale {
	case "", "C", "POSIX":
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

type settingsFile struct {
	path       string
	size       int64
	mode       fs.FileMode
	collection *fcubed.Collection
}

// loadFile decodes the settings file at path. A missing file is an error
// unless allowMissing is set, in which case an empty collection is returned.
func loadFile(path string, g *globalOptions, allowMissing bool) (*settingsFile, error) {
	sf := &settingsFile{path: path, mode: 0o644}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) && allowMissing {
		sf.collection = fcubed.NewCollection().WithLanguage(parseLocale(g.Lang))
		return sf, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	sf.size = info.Size()
	sf.mode = info.Mode().Perm()

	sf.collection, err = fcubed.NewDecoder(f, g.codecOptions()...).DecodeCollection()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}

// encodeCollection returns the canonical FCubed text of c.
func encodeCollection(c *fcubed.Collection, g *globalOptions) (string, error) {
	data, err := fcubed.Marshal(c.Entries(), g.codecOptions()...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// save encodes c and writes it to the file, keeping its permissions.
func (sf *settingsFile) save(c *fcubed.Collection, g *globalOptions) error {
	text, err := encodeCollection(c, g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(sf.path, []byte(text+"\n"), sf.mode); err != nil {
		return err
	}
	g.logger().Debug("wrote settings file", "path", sf.path, "entries", c.Len())
	return nil
}

// displayValue renders v without the quoting used by the file format.
func displayValue(v fcubed.Value) string {
	if v.IsNull() {
		return "[NONE]"
	}
	if c, ok := v.AsChar(); ok {
		return string(rune(c))
	}
	if b, ok := v.AsBool(); ok {
		if b {
			return "True"
		}
		return "False"
	}
	return fmt.Sprint(v.Interface())
}
