package keyword

// caseBit is the bit that distinguishes ASCII lowercase from uppercase.
const caseBit = 0x20

func isUpper(c byte) bool { return c-'A' <= 'Z'-'A' }

// firstUpper returns the index of the first ASCII uppercase byte in s,
// or -1 if s contains none.
func firstUpper(s string) int {
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) {
			return i
		}
	}
	return -1
}

// foldSuffix lowercases buf in place starting at index from. Bytes before
// from are assumed already lowercase by the caller's scan.
func foldSuffix(buf []byte, from int) {
	for i := from; i < len(buf); i++ {
		if isUpper(buf[i]) {
			buf[i] |= caseBit
		}
	}
}

// IsLower reports whether s contains no ASCII uppercase byte.
func IsLower(s string) bool {
	return firstUpper(s) < 0
}

// Fold returns s lowercased in the ASCII range. Bytes outside 'A'..'Z',
// including UTF-8 continuation bytes, pass through unchanged. When s is
// already lowercase, Fold returns s itself without allocating.
func Fold(s string) string {
	p := firstUpper(s)
	if p < 0 {
		return s
	}
	buf := []byte(s)
	foldSuffix(buf, p)
	return string(buf)
}

// AppendFold appends the ASCII-lowercased bytes of s to dst and returns the
// extended slice.
func AppendFold(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUpper(c) {
			c |= caseBit
		}
		dst = append(dst, c)
	}
	return dst
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// Unlike strings.EqualFold it never folds outside the ASCII range, so
// multi-byte runes must match byte for byte.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if isUpper(ca) {
			ca |= caseBit
		}
		if isUpper(cb) {
			cb |= caseBit
		}
		if ca != cb {
			return false
		}
	}
	return true
}
