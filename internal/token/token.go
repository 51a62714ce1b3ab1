package token

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style is the rendering style chosen for a scalar.
type Style string

const (
	PLAIN   Style = "PLAIN"   // hello world
	QUOTED  Style = "QUOTED"  // "- hello"
	LITERAL Style = "LITERAL" // |
)

// Indicator characters that change the meaning of a plain scalar when they
// appear at its start.
var indicators = map[rune]bool{
	'-': true, '?': true, ':': true, ',': true,
	'[': true, ']': true, '{': true, '}': true,
	'#': true, '&': true, '*': true, '!': true,
	'|': true, '>': true, '\'': true, '"': true,
	'%': true, '@': true, '`': true,
}

// IsIndicator reports whether ch is a structural indicator character.
func IsIndicator(ch rune) bool {
	return indicators[ch]
}

// StyleOf returns the style a scalar holding s is rendered in.
func StyleOf(s string) Style {
	if strings.ContainsRune(s, '\n') {
		if literalSafe(s) {
			return LITERAL
		}
		return QUOTED
	}
	if NeedsQuote(s) {
		return QUOTED
	}
	return PLAIN
}

// literalSafe reports whether multi-line text can be written as a clipped
// "|" block. The first non-empty line must not be indented, a clipped block
// keeps at most one trailing newline, and YAML forbids control characters
// other than tab in block scalars.
func literalSafe(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	body := strings.TrimSuffix(s, "\n")
	if strings.TrimLeft(body, "\n") == "" || strings.HasSuffix(body, "\n") {
		return false
	}
	if first := strings.TrimLeft(body, "\n"); first[0] == ' ' || first[0] == '\t' {
		return false
	}
	for _, ch := range s {
		if ch != '\n' && ch != '\t' && unicode.IsControl(ch) {
			return false
		}
	}
	return true
}

// NeedsQuote reports whether a single-line scalar must be quoted to be read
// back as the same string. Only the empty string, a leading indicator,
// leading or trailing whitespace, embedded ": " or " #", a trailing colon,
// control characters and invalid UTF-8 trigger quoting.
func NeedsQuote(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return true
	}
	first := []rune(s)[0]
	if IsIndicator(first) || unicode.IsSpace(first) {
		return true
	}
	last := s[len(s)-1]
	if last == ' ' || last == '\t' || last == ':' {
		return true
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") {
		return true
	}
	for _, ch := range s {
		if unicode.IsControl(ch) {
			return true
		}
	}
	return false
}

// Quote returns s as a double-quoted scalar with minimal escaping.
func Quote(s string) string {
	return strconv.Quote(s)
}

// Render returns the single-line form of s: s itself if it can stay plain,
// otherwise its quoted form. Callers handle LITERAL text themselves.
func Render(s string) string {
	if StyleOf(s) == PLAIN {
		return s
	}
	return Quote(s)
}
