package keyword

import (
	"testing"
	"unicode/utf8"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "already lowercase", input: "background-color", want: "background-color"},
		{name: "all uppercase", input: "RGBA", want: "rgba"},
		{name: "mixed case", input: "LineHeight", want: "lineheight"},
		{name: "uppercase suffix only", input: "margin-TOP", want: "margin-top"},
		{name: "digits and punctuation untouched", input: "H1~!@#", want: "h1~!@#"},
		{name: "non-ascii untouched", input: "Grüße", want: "grüße"},
		{name: "multibyte only", input: "日本語", want: "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFoldZeroCopy(t *testing.T) {
	// An already-lowercase input must come back byte-identical, not copied.
	in := "border-radius"
	if out := Fold(in); out != in {
		t.Fatalf("Fold(%q) = %q", in, out)
	}
	if IsLower("abc-123_日本") != true {
		t.Error("IsLower rejected a lowercase string")
	}
	if IsLower("abC") {
		t.Error("IsLower accepted an uppercase byte")
	}
}

func TestAppendFold(t *testing.T) {
	dst := []byte("x:")
	dst = AppendFold(dst, "BOLD")
	if string(dst) != "x:bold" {
		t.Errorf("AppendFold = %q, want %q", dst, "x:bold")
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"rgb", "RGB", true},
		{"rgb", "rgb", true},
		{"rgb", "rgba", false},
		{"", "", true},
		{"straße", "STRAße", true},
		// strings.EqualFold would match these via Unicode folding; the
		// ASCII-only variant must not.
		{"k", "K", false},
		{"grüße", "grÜße", false},
	}

	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func FuzzFold(f *testing.F) {
	f.Add("Background-Color")
	f.Add("ÉCOLE")
	f.Add("mixed日本Case")

	f.Fuzz(func(t *testing.T, in string) {
		out := Fold(in)
		if len(out) != len(in) {
			t.Fatalf("Fold changed length: %q -> %q", in, out)
		}
		if Fold(out) != out {
			t.Errorf("Fold not idempotent on %q", in)
		}
		if utf8.ValidString(in) && !utf8.ValidString(out) {
			t.Errorf("Fold corrupted UTF-8: %q -> %q", in, out)
		}
		for i := 0; i < len(in); i++ {
			if in[i] >= 0x80 && out[i] != in[i] {
				t.Errorf("Fold touched non-ASCII byte at %d in %q", i, in)
			}
		}
	})
}
