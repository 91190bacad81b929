package main

import (
	"fmt"

	"facette.io/natsort"
	"github.com/KimNorgaard/go-fcubed"
)

type keysCmd struct {
	File string `arg:"" help:"FCubed file to read." type:"existingfile"`
}

func (cmd *keysCmd) Run(ctx *globalOptions) error {
	sf, err := loadFile(cmd.File, ctx, false)
	if err != nil {
		return err
	}

	for _, k := range distinctKeys(sf.collection) {
		if _, err := fmt.Fprintln(ctx.out(), k); err != nil {
			return err
		}
	}
	return nil
}

// distinctKeys returns each key of c once, spelled as its first occurrence,
// in natural order. Keys are compared the way lookups compare them.
func distinctKeys(c *fcubed.Collection) []string {
	seen := fcubed.NewCollection().WithLanguage(c.Language())
	var keys []string
	for _, e := range c.All() {
		if _, ok := seen.Find(e.Key()); ok {
			continue
		}
		seen = seen.With(e)
		keys = append(keys, e.Key())
	}
	natsort.Sort(keys)
	return keys
}
