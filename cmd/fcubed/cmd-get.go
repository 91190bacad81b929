package main

import (
	"fmt"
)

type getCmd struct {
	File string `arg:"" help:"FCubed file to read." type:"existingfile"`
	Key  string `arg:"" help:"Key to look up, matched case-insensitively."`
	Kind bool   `help:"Print the kind of the value before it." short:"k"`
}

func (cmd *getCmd) Run(ctx *globalOptions) error {
	sf, err := loadFile(cmd.File, ctx, false)
	if err != nil {
		return err
	}

	v, ok := sf.collection.Find(cmd.Key)
	if !ok {
		return fmt.Errorf("key %q not found in %s", cmd.Key, cmd.File)
	}

	if cmd.Kind {
		_, err = fmt.Fprintf(ctx.out(), "%s\t%s\n", v.Kind(), displayValue(v))
		return err
	}
	_, err = fmt.Fprintln(ctx.out(), displayValue(v))
	return err
}
