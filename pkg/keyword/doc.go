// Package keyword provides ASCII case-insensitive keyword matching against
// fixed dictionaries.
//
// A Dictionary maps lowercase ASCII keywords to values. It is built once,
// validated at construction, and is safe for concurrent readers. Lookups
// fold the input to lowercase in the ASCII range only, without allocating
// on the common paths: already-lowercase inputs are probed directly, and
// mixed-case inputs are folded into a stack scratch buffer.
//
// Folding is restricted to bytes 'A'..'Z'. Non-ASCII bytes are never
// touched, so folding a well-formed UTF-8 string cannot corrupt it.
package keyword
