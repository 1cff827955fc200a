package field

import (
	"strings"

	"github.com/jkxr/tenkey/internal/grapheme"
)

// AppendDigit appends digit d (0 through 9) to the buffer. For Text kind
// the digit is appended as an ordinary character.
func (s *State) AppendDigit(d int) bool {
	if d < 0 || d > 9 {
		return false
	}
	next := s.raw + string(rune('0'+d))
	if !s.validRaw(next) {
		return false
	}
	return s.apply(next)
}

// InsertSeparator appends the decimal separator. Declined when decimals
// are not allowed or the buffer already holds a separator. On an empty
// buffer it produces "0"+separator.
func (s *State) InsertSeparator() bool {
	if !s.decimal {
		return false
	}
	// Checked here, not in validRaw: the Text grammar accepts any string,
	// but the one-separator rule binds this operation on every kind.
	if strings.Contains(s.raw, s.sep) {
		return false
	}
	next := s.raw + s.sep
	if s.raw == "" {
		next = "0" + s.sep
	}
	if !s.validRaw(next) {
		return false
	}
	return s.apply(next)
}

// Backspace removes the last character. A trailing multi-character
// separator is removed whole, and Text kind removes one grapheme cluster.
// Empty buffers decline.
func (s *State) Backspace() bool {
	if s.raw == "" {
		return false
	}
	var next string
	switch {
	case s.kind == Text:
		next = grapheme.TrimLast(s.raw)
	case strings.HasSuffix(s.raw, s.sep):
		next = strings.TrimSuffix(s.raw, s.sep)
	default:
		r := []rune(s.raw)
		next = string(r[:len(r)-1])
	}
	return s.apply(next)
}

// Clear empties the buffer. Reports false only when already empty.
func (s *State) Clear() bool {
	if s.raw == "" {
		return false
	}
	return s.apply("")
}

// ToggleSign strips a leading minus, or prepends one. Declined when the
// minus sign is not allowed, on an empty buffer, and when the result
// would read as negative zero. Stripping an existing minus always works.
func (s *State) ToggleSign() bool {
	if !s.negative || s.raw == "" {
		return false
	}
	if strings.HasPrefix(s.raw, "-") {
		return s.apply(strings.TrimPrefix(s.raw, "-"))
	}
	next := "-" + s.raw
	if !s.validRaw(next) {
		return false
	}
	if f, ok := parseFloat(next, s.sep); ok && f == 0 {
		return false
	}
	return s.apply(next)
}

// AppendText appends text verbatim. It is the character hook for Text
// kind fields; numeric kinds decline it, their edits go through the
// dedicated operations so capabilities cannot be bypassed.
func (s *State) AppendText(text string) bool {
	if text == "" || s.kind != Text {
		return false
	}
	return s.apply(s.raw + text)
}

// validRaw reports whether raw satisfies the kind grammar and the
// field's capabilities. Grammars are prefix-closed: every prefix that
// does not split the separator is valid. The capability checks keep
// SetRaw and the initial Raw consistent with what editing can produce.
func (s *State) validRaw(raw string) bool {
	switch s.kind {
	case Integer, Decimal:
		rest := strings.TrimPrefix(raw, "-")
		if rest != raw && !s.negative {
			return false
		}
		if s.kind == Integer {
			return digitsOnly(rest)
		}
		head, tail, found := strings.Cut(rest, s.sep)
		if !digitsOnly(head) {
			return false
		}
		if !found {
			return true
		}
		return s.decimal && digitsOnly(tail)
	default:
		return true
	}
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
