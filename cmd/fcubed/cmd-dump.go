package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

type dumpCmd struct {
	File string `arg:"" help:"FCubed file to read." type:"existingfile"`
}

func (cmd *dumpCmd) Run(ctx *globalOptions) error {
	sf, err := loadFile(cmd.File, ctx, false)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.out())
	t.AppendHeader(table.Row{"#", "key", "kind", "value"})
	for i, e := range sf.collection.All() {
		t.AppendRow(table.Row{i + 1, e.Key(), e.Value().Kind(), displayValue(e.Value())})
	}
	t.AppendFooter(table.Row{"", "", "entries", sf.collection.Len()})
	t.AppendFooter(table.Row{"", "", "size", humanize.Bytes(uint64(sf.size))})
	t.Render()

	if sf.collection.Len() == 0 {
		_, err = fmt.Fprintf(ctx.out(), "%s holds no entries\n", cmd.File)
	}
	return err
}
