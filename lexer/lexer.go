package lexer

import (
	"strconv"
	"strings"
)

var keywords = map[string]struct{}{
	"asm":       {},
	"break":     {},
	"const":     {},
	"continue":  {},
	"defer":     {},
	"else":      {},
	"enum":      {},
	"error":     {},
	"export":    {},
	"extern":    {},
	"false":     {},
	"fn":        {},
	"for":       {},
	"goto":      {},
	"if":        {},
	"inline":    {},
	"noalias":   {},
	"null":      {},
	"pub":       {},
	"return":    {},
	"struct":    {},
	"switch":    {},
	"this":      {},
	"true":      {},
	"type":      {},
	"undefined": {},
	"union":     {},
	"use":       {},
	"var":       {},
	"volatile":  {},
	"while":     {},
	"zeroes":    {},
}

// IsKeyword reports whether name is reserved and cannot appear as a bare
// identifier.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

func firstChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func otherChar(c byte) bool {
	return firstChar(c) || (c >= '0' && c <= '9')
}

// IsBareIdentifier reports whether name is a non-empty run of letters,
// digits and underscores that does not start with a digit.
func IsBareIdentifier(name string) bool {
	if len(name) == 0 || !firstChar(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !otherChar(name[i]) {
			return false
		}
	}
	return true
}

const printables = " abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.~`!@#$%^&*()_-+={}[];?/<>,"

var printable [256]bool

func init() {
	for i := 0; i < len(printables); i++ {
		printable[printables[i]] = true
	}
}

// IsPrintable reports whether c may appear verbatim inside a quoted literal.
// The set is an explicit list; quotes, backslash, control bytes and anything
// above 0x7f are never printable.
func IsPrintable(c byte) bool {
	return printable[c]
}

var namedEscapes = map[byte]string{
	'\'': `\'`,
	'"':  `\"`,
	'\\': `\\`,
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
}

// HexEscape returns c as \x followed by its lowercase hex digits, without
// zero padding.
func HexEscape(c byte) string {
	return `\x` + strconv.FormatUint(uint64(c), 16)
}

// Escape returns src with every non-printable byte replaced by its named
// escape, or a hex escape when it has no name.
func Escape(src []byte) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, c := range src {
		if IsPrintable(c) {
			b.WriteByte(c)
		} else if esc, ok := namedEscapes[c]; ok {
			b.WriteString(esc)
		} else {
			b.WriteString(HexEscape(c))
		}
	}
	return b.String()
}

// QuoteIdentifier returns name as it must be written in source: verbatim when
// it is a bare identifier that is not a keyword, otherwise @"<escaped>".
func QuoteIdentifier(name string) string {
	if !IsKeyword(name) && IsBareIdentifier(name) {
		return name
	}
	return `@"` + Escape([]byte(name)) + `"`
}
