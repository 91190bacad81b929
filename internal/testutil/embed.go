// Package testutil gives tests access to the embedded FCubed fixtures.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed testdata/*.fc3
var fixtures embed.FS

// ReadTestData reads and returns the content of an embedded fixture.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(fixtures, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %q: %w", name, err)
	}
	return data, nil
}

// AllTestData returns every embedded fixture keyed by file name.
func AllTestData() (map[string][]byte, error) {
	names, err := fs.Glob(fixtures, "testdata/*.fc3")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fixtures, name)
		if err != nil {
			return nil, err
		}
		out[path.Base(name)] = data
	}
	return out, nil
}
