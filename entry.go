package fcubed

import (
	"iter"
	"slices"

	"golang.org/x/text/language"
)

// Entry binds a key to a value. Entries are immutable.
type Entry struct {
	key   string
	value Value
}

// NewEntry returns an entry binding key to value.
// An empty key yields the empty entry, whose key is "" and whose value is
// null, regardless of value.
func NewEntry(key string, value Value) Entry {
	if key == "" {
		return Entry{}
	}
	return Entry{key: key, value: value}
}

// Key returns the key of e.
func (e Entry) Key() string { return e.key }

// Value returns the value of e.
func (e Entry) Value() Value { return e.value }

// IsEmpty reports whether e is the empty entry.
func (e Entry) IsEmpty() bool { return e.key == "" }

// Collection is an ordered sequence of entries. Duplicate keys are allowed.
// A Collection is never modified after construction, so it can be shared
// between goroutines; methods that change content return a new Collection.
// A nil *Collection is empty.
type Collection struct {
	entries []Entry
	lang    language.Tag
}

// NewCollection returns a collection holding a copy of entries.
func NewCollection(entries ...Entry) *Collection {
	return &Collection{entries: slices.Clone(entries), lang: language.Und}
}

// WithLanguage returns a copy of c whose lookups fold keys using the casing
// rules of tag.
func (c *Collection) WithLanguage(tag language.Tag) *Collection {
	return &Collection{entries: c.Entries(), lang: tag}
}

// Len returns the number of entries in c.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the entries of c, in order.
func (c *Collection) Entries() []Entry {
	if c == nil {
		return nil
	}
	return slices.Clone(c.entries)
}

// All returns an iterator over the index and entry of each element of c.
func (c *Collection) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		if c == nil {
			return
		}
		for i, e := range c.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Language returns the language whose casing rules c uses to match keys.
func (c *Collection) Language() language.Tag {
	if c == nil {
		return language.Und
	}
	return c.lang
}

// index returns the position of the first entry whose key matches key
// case-insensitively and for which accept returns true, or -1.
func (c *Collection) index(key string, accept func(Value) bool) int {
	if c.Len() == 0 {
		return -1
	}
	match := keyMatcher(c.Language(), key)
	for i, e := range c.entries {
		if match(e.key) && (accept == nil || accept(e.value)) {
			return i
		}
	}
	return -1
}

// Find returns the value of the first entry whose key matches key
// case-insensitively, and whether such an entry exists.
func (c *Collection) Find(key string) (Value, bool) {
	i := c.index(key, nil)
	if i < 0 {
		return NullValue(), false
	}
	return c.entries[i].value, true
}

// Lookup returns the value of the first entry whose key matches key
// case-insensitively, or the null value when there is none.
func (c *Collection) Lookup(key string) Value {
	v, _ := c.Find(key)
	return v
}

// HasValue reports whether Lookup(key) equals value in kind and content.
func (c *Collection) HasValue(key string, value Value) bool {
	return c.Lookup(key).Equal(value)
}

// With returns a new collection in which the first entry matching the key
// of e is replaced by e. If no entry matches, e is appended.
// The receiver is left unchanged.
func (c *Collection) With(e Entry) *Collection {
	next := &Collection{entries: c.Entries(), lang: c.Language()}
	if i := c.index(e.key, nil); i >= 0 {
		next.entries[i] = e
		return next
	}
	next.entries = append(next.entries, e)
	return next
}

// FindAs returns the first entry value whose key matches key
// case-insensitively and whose kind is the kind of T. Entries with a
// matching key but another kind are skipped.
func FindAs[T Scalar](c *Collection, key string) (T, bool) {
	want := kindOf[T]()
	i := c.index(key, func(v Value) bool { return v.Kind() == want })
	if i < 0 {
		var zero T
		return zero, false
	}
	return valueAs[T](c.entries[i].value)
}

// ArgEntry is an entry that owns a collection of named arguments.
type ArgEntry struct {
	Entry
	args *Collection
}

// NewArgEntry returns an ArgEntry binding key to value with the given
// arguments. A nil args is replaced by an empty collection. As with
// NewEntry, an empty key yields the empty entry, but the arguments are
// kept.
func NewArgEntry(key string, value Value, args *Collection) ArgEntry {
	if args == nil {
		args = NewCollection()
	}
	return ArgEntry{Entry: NewEntry(key, value), args: args}
}

// Args returns the argument collection of a.
func (a ArgEntry) Args() *Collection { return a.args }

// IsArgSetEmpty reports whether a has no arguments.
func (a ArgEntry) IsArgSetEmpty() bool { return a.args.Len() == 0 }

// IsValueEmpty reports whether the value of a is null.
func (a ArgEntry) IsValueEmpty() bool { return a.value.IsNull() }

// ContainsArgValue reports whether the argument looked up by key equals
// value in kind and content.
func (a ArgEntry) ContainsArgValue(key string, value Value) bool {
	return a.args.HasValue(key, value)
}

// ValueByArgKey returns the first argument of a whose key matches key
// case-insensitively and whose kind is the kind of T, or the zero T.
// An argument with a matching key but another kind counts as absent.
func ValueByArgKey[T Scalar](a ArgEntry, key string) T {
	v, _ := FindAs[T](a.args, key)
	return v
}
