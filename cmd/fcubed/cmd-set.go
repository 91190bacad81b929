package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/KimNorgaard/go-fcubed"
)

type setCmd struct {
	File  string `arg:"" help:"FCubed file to update. It is created if missing."`
	Key   string `arg:"" help:"Key to bind."`
	Value string `arg:"" optional:"" help:"Value to bind. Ignored for --kind=null."`
	Kind  string `help:"Kind of the value." default:"string" enum:"string,char,int32,bool,null" short:"t"`
}

func (cmd *setCmd) Run(ctx *globalOptions) error {
	if cmd.Key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	v, err := parseValue(cmd.Kind, cmd.Value)
	if err != nil {
		return err
	}

	sf, err := loadFile(cmd.File, ctx, true)
	if err != nil {
		return err
	}

	updated := sf.collection.With(fcubed.NewEntry(cmd.Key, v))
	return sf.save(updated, ctx)
}

// parseValue builds a value of the named kind from its command-line form.
func parseValue(kind, raw string) (fcubed.Value, error) {
	switch kind {
	case "string":
		return fcubed.StringValue(raw), nil
	case "char":
		if utf8.RuneCountInString(raw) != 1 {
			return fcubed.Value{}, fmt.Errorf("char value must be exactly one character, got %q", raw)
		}
		r, _ := utf8.DecodeRuneInString(raw)
		return fcubed.CharValue(fcubed.Char(r)), nil
	case "int32":
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fcubed.Value{}, fmt.Errorf("invalid int32 value %q: %w", raw, err)
		}
		return fcubed.Int32Value(int32(n)), nil
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fcubed.Value{}, fmt.Errorf("invalid bool value %q: %w", raw, err)
		}
		return fcubed.BoolValue(b), nil
	case "null":
		return fcubed.NullValue(), nil
	default:
		return fcubed.Value{}, fmt.Errorf("unknown kind %q", kind)
	}
}
