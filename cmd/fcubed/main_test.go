package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-fcubed"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const sample = "Name=\"Alice\";\ncount=42;\nactive=\"True\";\nitem10=1;\nitem2=2;\nCOUNT=7;\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.fc3")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	return path
}

func testOptions() (*globalOptions, *bytes.Buffer) {
	var buf bytes.Buffer
	return &globalOptions{LogLevel: "error", stdout: &buf}, &buf
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected language.Tag
	}{
		{"", language.Und},
		{"C", language.Und},
		{"POSIX", language.Und},
		{"C.UTF-8", language.Und},
		{"tr_TR.UTF-8", language.MustParse("tr-TR")},
		{"de_DE@euro", language.MustParse("de-DE")},
		{"en", language.English},
		{"not a locale!", language.Und},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, parseLocale(tt.input))
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind     string
		raw      string
		expected fcubed.Value
		wantErr  bool
	}{
		{"string", "hello", fcubed.StringValue("hello"), false},
		{"char", "x", fcubed.CharValue('x'), false},
		{"char", "xy", fcubed.Value{}, true},
		{"int32", "-12", fcubed.Int32Value(-12), false},
		{"int32", "99999999999", fcubed.Value{}, true},
		{"bool", "true", fcubed.BoolValue(true), false},
		{"bool", "maybe", fcubed.Value{}, true},
		{"null", "ignored", fcubed.NullValue(), false},
		{"float", "1.5", fcubed.Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.raw, func(t *testing.T) {
			v, err := parseValue(tt.kind, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestGetCmd(t *testing.T) {
	path := writeSample(t)
	opts, out := testOptions()

	require.NoError(t, (&getCmd{File: path, Key: "NAME"}).Run(opts))
	require.Equal(t, "Alice\n", out.String())

	out.Reset()
	require.NoError(t, (&getCmd{File: path, Key: "Count", Kind: true}).Run(opts))
	require.Equal(t, "int32\t42\n", out.String())

	err := (&getCmd{File: path, Key: "missing"}).Run(opts)
	require.ErrorContains(t, err, `key "missing" not found`)
}

func TestGetCmd_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.fc3")
	require.NoError(t, os.WriteFile(path, []byte("no separator here\n"), 0o600))
	opts, _ := testOptions()

	err := (&getCmd{File: path, Key: "x"}).Run(opts)
	require.ErrorContains(t, err, "missing '=' separator")
	require.True(t, strings.HasPrefix(err.Error(), path+": "))
}

func TestDumpCmd(t *testing.T) {
	path := writeSample(t)
	opts, out := testOptions()

	require.NoError(t, (&dumpCmd{File: path}).Run(opts))
	s := out.String()
	require.Contains(t, s, "Alice")
	require.Contains(t, s, "int32")
	require.Contains(t, s, "True")
	require.Contains(t, s, "ENTRIES")
}

func TestKeysCmd(t *testing.T) {
	path := writeSample(t)
	opts, out := testOptions()

	require.NoError(t, (&keysCmd{File: path}).Run(opts))
	require.Equal(t, "Name\nactive\ncount\nitem2\nitem10\n", out.String())
}

func TestFmtCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.fc3")
	require.NoError(t, os.WriteFile(path, []byte("Active=\"true\"\r\n\r\nLimit= 5 ;\n"), 0o600))
	opts, out := testOptions()

	require.NoError(t, (&fmtCmd{File: path}).Run(opts))
	require.Equal(t, "active=\"True\";\nlimit=5;\n", out.String())

	require.NoError(t, (&fmtCmd{File: path, Write: true}).Run(opts))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "active=\"True\";\nlimit=5;\n", string(data))
}

func TestSetCmd(t *testing.T) {
	path := writeSample(t)
	opts, _ := testOptions()

	require.NoError(t, (&setCmd{File: path, Key: "COUNT", Value: "43", Kind: "int32"}).Run(opts))
	require.NoError(t, (&setCmd{File: path, Key: "Theme", Kind: "null"}).Run(opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries, err := fcubed.Decode(string(data))
	require.NoError(t, err)

	c := fcubed.NewCollection(entries...)
	require.Equal(t, fcubed.Int32Value(43), c.Lookup("count"))
	require.Equal(t, fcubed.Int32Value(7), c.Entries()[5].Value(), "only the first match is replaced")
	v, ok := c.Find("theme")
	require.True(t, ok)
	require.True(t, v.IsNull())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSetCmd_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.fc3")
	opts, _ := testOptions()

	require.NoError(t, (&setCmd{File: path, Key: "Greeting", Value: "hi", Kind: "string"}).Run(opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Greeting=\"hi\";\n", string(data))
}

func TestSetCmd_Errors(t *testing.T) {
	path := writeSample(t)
	opts, _ := testOptions()

	require.Error(t, (&setCmd{File: path, Key: "", Value: "x", Kind: "string"}).Run(opts))
	require.Error(t, (&setCmd{File: path, Key: "k", Value: "abc", Kind: "char"}).Run(opts))
}
