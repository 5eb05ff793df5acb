package keyword

import (
	"fmt"
	"sort"
)

// scratchSize is the capacity of the stack buffer used to fold mixed-case
// inputs. It covers the longest key of every built-in dictionary; inputs
// longer than this (but still within the dictionary's max key length) fall
// back to a transient allocation.
const scratchSize = 64

// Dictionary is an immutable mapping from lowercase ASCII keywords to
// values. It is built once via NewDictionary and safe for any number of
// concurrent readers.
type Dictionary[V any] struct {
	entries map[string]V
	maxLen  int
}

// NewDictionary builds a Dictionary from entries. Every key must be free of
// ASCII uppercase bytes; a key containing one could never be matched, so it
// is rejected here rather than silently accepted.
func NewDictionary[V any](entries map[string]V) (*Dictionary[V], error) {
	d := &Dictionary[V]{entries: make(map[string]V, len(entries))}
	for k, v := range entries {
		if p := firstUpper(k); p >= 0 {
			return nil, fmt.Errorf("keyword: key %q contains uppercase ASCII at index %d", k, p)
		}
		d.entries[k] = v
		if len(k) > d.maxLen {
			d.maxLen = len(k)
		}
	}
	return d, nil
}

// MustDictionary is like NewDictionary but panics on invalid keys. Intended
// for dictionaries built from literals at package init.
func MustDictionary[V any](entries map[string]V) *Dictionary[V] {
	d, err := NewDictionary(entries)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup resolves input against the dictionary, folding ASCII uppercase
// bytes before the probe. It returns the zero value and false when no entry
// matches, including when input is longer than the longest key (folding
// never changes length, so such inputs cannot match anything).
func (d *Dictionary[V]) Lookup(input string) (V, bool) {
	var zero V
	if len(input) > d.maxLen {
		return zero, false
	}
	p := firstUpper(input)
	if p < 0 {
		v, ok := d.entries[input]
		return v, ok
	}
	var scratch [scratchSize]byte
	var buf []byte
	if len(input) <= scratchSize {
		buf = scratch[:len(input)]
	} else {
		buf = make([]byte, len(input))
	}
	copy(buf, input)
	foldSuffix(buf, p)
	v, ok := d.entries[string(buf)]
	return v, ok
}

// Contains reports whether input resolves to an entry.
func (d *Dictionary[V]) Contains(input string) bool {
	_, ok := d.Lookup(input)
	return ok
}

// Len returns the number of entries.
func (d *Dictionary[V]) Len() int { return len(d.entries) }

// MaxKeyLen returns the length in bytes of the longest key. Inputs longer
// than this always miss.
func (d *Dictionary[V]) MaxKeyLen() int { return d.maxLen }

// Keys returns the dictionary keys in sorted order.
func (d *Dictionary[V]) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
