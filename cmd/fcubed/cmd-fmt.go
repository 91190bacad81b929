package main

import (
	"fmt"
)

type fmtCmd struct {
	File  string `arg:"" help:"FCubed file to format." type:"existingfile"`
	Write bool   `help:"Write the result back to the file instead of printing it." short:"w"`
}

func (cmd *fmtCmd) Run(ctx *globalOptions) error {
	sf, err := loadFile(cmd.File, ctx, false)
	if err != nil {
		return err
	}

	if cmd.Write {
		return sf.save(sf.collection, ctx)
	}

	text, err := encodeCollection(sf.collection, ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.out(), text)
	return err
}
