package keyword

import "fmt"

// Builder accumulates (keyword, value) cases for a Matcher. The zero value
// is ready to use.
type Builder[V any] struct {
	entries map[string]V
	def     V
	hasDef  bool
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder[V any]() *Builder[V] {
	return &Builder[V]{entries: make(map[string]V)}
}

// Case registers value under each of the given keywords. Keywords must be
// lowercase ASCII and not previously registered; violations are reported by
// Build.
func (b *Builder[V]) Case(value V, keywords ...string) *Builder[V] {
	if b.entries == nil {
		b.entries = make(map[string]V)
	}
	for _, k := range keywords {
		if b.err != nil {
			return b
		}
		if p := firstUpper(k); p >= 0 {
			b.err = fmt.Errorf("keyword: case %q contains uppercase ASCII at index %d", k, p)
			return b
		}
		if _, dup := b.entries[k]; dup {
			b.err = fmt.Errorf("keyword: duplicate case %q", k)
			return b
		}
		b.entries[k] = value
	}
	return b
}

// Default sets the value returned by Match when no case matches.
func (b *Builder[V]) Default(value V) *Builder[V] {
	b.def = value
	b.hasDef = true
	return b
}

// Build validates the registered cases and returns the Matcher.
func (b *Builder[V]) Build() (*Matcher[V], error) {
	if b.err != nil {
		return nil, b.err
	}
	d, err := NewDictionary(b.entries)
	if err != nil {
		return nil, err
	}
	return &Matcher[V]{dict: d, def: b.def}, nil
}

// MustBuild is like Build but panics on error. Intended for matchers built
// from literals at package init.
func (b *Builder[V]) MustBuild() *Matcher[V] {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// Matcher resolves inputs against a fixed case set, ASCII
// case-insensitively, with an optional default value.
type Matcher[V any] struct {
	dict *Dictionary[V]
	def  V
}

// Match returns the value for input, or the default (zero value if none was
// set) when no case matches.
func (m *Matcher[V]) Match(input string) V {
	if v, ok := m.dict.Lookup(input); ok {
		return v
	}
	return m.def
}

// Lookup is like Match but distinguishes a miss from a matched zero value.
// The default does not apply.
func (m *Matcher[V]) Lookup(input string) (V, bool) {
	return m.dict.Lookup(input)
}
