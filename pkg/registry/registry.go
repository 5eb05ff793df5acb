// Package registry provides the built-in keyword dictionaries shipped with
// keyfold: the CSS named colors and the well-known certificate property
// OIDs. Each is exposed both in its typed form and as a display-string
// dictionary for uniform CLI consumption.
package registry

import (
	"github.com/keyfold/keyfold/pkg/keyword"
)

// Built-in dictionary names.
const (
	NameColors = "css-colors"
	NameOIDs   = "certificate-oids"
)

// index resolves dictionary names themselves case-insensitively.
var index = keyword.MustDictionary(map[string]func() *keyword.Dictionary[string]{
	NameColors: colorStrings,
	NameOIDs:   CertificateOIDs,
})

var colorStringsDict *keyword.Dictionary[string]

func init() {
	entries := make(map[string]string, colors.Len())
	for _, k := range colors.Keys() {
		c, _ := colors.Lookup(k)
		entries[k] = c.Hex()
	}
	colorStringsDict = keyword.MustDictionary(entries)
}

func colorStrings() *keyword.Dictionary[string] {
	return colorStringsDict
}

// Names returns the built-in dictionary names in sorted order.
func Names() []string {
	return index.Keys()
}

// Get returns the built-in dictionary with the given name, resolved ASCII
// case-insensitively, in display-string form.
func Get(name string) (*keyword.Dictionary[string], bool) {
	f, ok := index.Lookup(name)
	if !ok {
		return nil, false
	}
	return f(), true
}
