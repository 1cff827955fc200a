package field

import (
	"strconv"
	"strings"
)

// Value is the typed parse of a field's raw text. OK is false while the
// text is an incomplete prefix ("", "-", "12.") or fails to parse; the
// raw text is kept verbatim either way.
type Value struct {
	Kind  Kind
	OK    bool
	Int   int64
	Float float64
	Text  string
}

// Value re-parses the current buffer. Called after every effective edit
// when building events, and cheap enough to call per frame.
func (s *State) Value() Value {
	switch s.kind {
	case Integer:
		n, ok := parseInt(s.raw)
		return Value{Kind: Integer, OK: ok, Int: n, Float: float64(n)}
	case Decimal:
		f, ok := parseFloat(s.raw, s.sep)
		return Value{Kind: Decimal, OK: ok, Float: f}
	default:
		return Value{Kind: Text, OK: s.raw != "", Text: s.raw}
	}
}

// Int returns the parsed integer value, if one is available.
func (s *State) Int() (int64, bool) {
	v := s.Value()
	if v.Kind != Integer || !v.OK {
		return 0, false
	}
	return v.Int, true
}

// Float returns the parsed numeric value, if one is available. Integer
// fields report their value widened to float64.
func (s *State) Float() (float64, bool) {
	v := s.Value()
	if v.Kind == Text || !v.OK {
		return 0, false
	}
	return v.Float, true
}

// Format returns the canonical text of the current value: no redundant
// zeros, Places decimals for Decimal kind (free precision when zero),
// the field separator in place of the point. No value formats as "".
func (s *State) Format() string {
	v := s.Value()
	switch s.kind {
	case Integer:
		if !v.OK {
			return ""
		}
		return strconv.FormatInt(v.Int, 10)
	case Decimal:
		if !v.OK {
			return ""
		}
		prec := -1
		if s.places > 0 {
			prec = s.places
		}
		out := strconv.FormatFloat(v.Float, 'f', prec, 64)
		if s.sep != "." {
			out = strings.Replace(out, ".", s.sep, 1)
		}
		return out
	default:
		return s.raw
	}
}

// Commit rewrites the buffer to its canonical formatted text and returns
// the committed value. With no complete value it leaves the buffer
// untouched and reports false. Places rounding happens here, never while
// editing, so the returned value is re-read after canonicalizing.
func (s *State) Commit() (Value, bool) {
	v := s.Value()
	if !v.OK {
		return v, false
	}
	s.apply(s.Format())
	return s.Value(), true
}

func parseInt(raw string) (int64, bool) {
	if raw == "" || raw == "-" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloat(raw, sep string) (float64, bool) {
	if raw == "" || raw == "-" {
		return 0, false
	}
	norm := raw
	if sep != "." {
		norm = strings.Replace(norm, sep, ".", 1)
	}
	// "12." style prefixes are incomplete even though ParseFloat takes them.
	if strings.HasSuffix(norm, ".") {
		return 0, false
	}
	f, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
