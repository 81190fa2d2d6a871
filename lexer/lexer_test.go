package lexer

import (
	"testing"
)

func TestIsBareIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"a", true},
		{"_", true},
		{"_foo9", true},
		{"Point", true},
		{"9lives", false},
		{"a-b", false},
		{"a b", false},
		{"é", false},
		{"while", true},
	}
	for _, tt := range tests {
		if got := IsBareIdentifier(tt.in); got != tt.want {
			t.Errorf("IsBareIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsPrintable(t *testing.T) {
	for _, c := range []byte("azAZ09 .~`!@#$%^&*()_-+={}[];?/<>,") {
		if !IsPrintable(c) {
			t.Errorf("%q should be printable", c)
		}
	}
	for _, c := range []byte{0, '\n', '\t', 0x7f, 0x80, 0xff, '\'', '"', '\\', ':', '|'} {
		if IsPrintable(c) {
			t.Errorf("%q should not be printable", c)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "hello world"},
		{"a\ab", `a\ab`},
		{"\b", `\b`},
		{"\t", `\t`},
		{"\n", `\n`},
		{"\r", `\r`},
		{"\f", `\f`},
		{"\v", `\v`},
		{`\`, `\\`},
		{`'`, `\'`},
		{`"`, `\"`},
		{"\x00", `\x0`},
		{"\x01", `\x1`},
		{"\x7f", `\x7f`},
		{"\xff", `\xff`},
		{"a:b", `a\x3ab`},
		{"é", `\xc3\xa9`},
	}
	for _, tt := range tests {
		if got := Escape([]byte(tt.in)); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeKeepsPrintableInput(t *testing.T) {
	in := []byte(printables)
	if got := Escape(in); got != printables {
		t.Fatalf("Escape changed printable input: %q", got)
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo", "foo"},
		{"_bar2", "_bar2"},
		{"while", `@"while"`},
		{"type", `@"type"`},
		{"a-b", `@"a-b"`},
		{"", `@""`},
		{"9x", `@"9x"`},
		{"new\nline", `@"new\nline"`},
		{`q"uote`, `@"q\"uote"`},
	}
	for _, tt := range tests {
		if got := QuoteIdentifier(tt.in); got != tt.want {
			t.Errorf("QuoteIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuoteIdentifierIdempotentOnBare(t *testing.T) {
	for _, name := range []string{"x", "Point", "snake_case_9"} {
		once := QuoteIdentifier(name)
		if twice := QuoteIdentifier(once); once != name || twice != name {
			t.Errorf("QuoteIdentifier not stable for %q: %q then %q", name, once, twice)
		}
	}
}
