/*
Package fcubed reads and writes FCubed, a line-oriented text format for flat
key/value settings, and provides the small in-memory model the format
operates over.

An FCubed document holds one entry per line:

	Name="Alice";
	active="True";
	initial='A';
	count=42;
	theme=[NONE];

Five value kinds exist: String, Char, Int32, Bool and Null. A Value is a
tagged union over those kinds, an Entry binds a key to a Value, and a
Collection is an ordered list of entries with case-insensitive lookup:

	entries := []fcubed.Entry{
		fcubed.NewEntry("Name", fcubed.StringValue("Alice")),
		fcubed.NewEntry("Count", fcubed.Int32Value(42)),
	}
	text := fcubed.Encode(entries)
	// Name="Alice";
	// count=42;

	decoded, err := fcubed.Decode(text)
	if err != nil {
		// handle error
	}
	c := fcubed.NewCollection(decoded...)
	c.Lookup("COUNT") // Int32Value(42)

Encoding keeps the case of keys bound to strings and lower-cases every other
key. Booleans are written as "True" and "False" inside double quotes.

Decoding splits each line at its first '=' and strips one trailing ';'.
Double-quoted text decodes as a Bool when it reads true or false (in any
case) and as a String otherwise; single-quoted text decodes as a Char. Quotes
are removed from decoded values. Unquoted text decodes as an Int32 when it is
a decimal 32-bit integer and as Null otherwise, so a value of an unknown form
never fails a decode. A line without '=' does: Decode returns
errors.ParseErrors listing every such line.

Go values outside the five kinds, such as float64, encode as [NONE] and read
back as Null.

ArgEntry attaches a Collection of named arguments to an entry. ValueByArgKey
looks up an argument by key and kind:

	a := fcubed.NewArgEntry("retry", fcubed.BoolValue(true), fcubed.NewCollection(
		fcubed.NewEntry("attempts", fcubed.Int32Value(3)),
	))
	fcubed.ValueByArgKey[int32](a, "Attempts")  // 3
	fcubed.ValueByArgKey[string](a, "attempts") // "", the kind differs
*/
package fcubed
