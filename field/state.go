package field

import (
	"strings"

	"github.com/jkxr/tenkey/internal/grapheme"
)

type Options struct {
	Kind      Kind
	Separator string // decimal separator, default "."
	Places    int    // decimal places applied by Format/Commit; 0 = free
	Negative  Cap    // override the kind default for the minus sign
	Decimal   Cap    // override the kind default for the separator
	Raw       string // initial text, dropped if the grammar rejects it
	OnChange  func(Event)
}

// Event describes one effective edit.
type Event struct {
	Version uint64
	Raw     string
	Value   Value
}

// State is the pure field state: the raw text buffer plus the editing
// grammar derived from its options. The raw text always satisfies the
// kind grammar, where every string is a valid prefix of a complete value.
type State struct {
	kind     Kind
	sep      string
	places   int
	negative bool
	decimal  bool

	raw     string
	version uint64

	onChange func(Event)
}

func New(opt Options) *State {
	if opt.Separator == "" || strings.ContainsAny(opt.Separator, "0123456789-") {
		opt.Separator = "."
	}
	if opt.Places < 0 {
		opt.Places = 0
	}
	s := &State{
		kind:     opt.Kind,
		sep:      opt.Separator,
		places:   opt.Places,
		negative: opt.Negative.resolve(defaultNegative(opt.Kind)),
		decimal:  opt.Decimal.resolve(defaultDecimal(opt.Kind)),
		onChange: opt.OnChange,
	}
	if opt.Raw != "" && s.validRaw(opt.Raw) {
		s.raw = opt.Raw
	}
	return s
}

func (s *State) Raw() string { return s.raw }

func (s *State) Version() uint64 { return s.version }

func (s *State) Kind() Kind { return s.kind }

func (s *State) DecimalSeparator() string { return s.sep }

func (s *State) Places() int { return s.places }

func (s *State) AllowsDecimal() bool { return s.decimal }

func (s *State) AllowsNegative() bool { return s.negative }

// Len returns the user-perceived character count of the buffer.
func (s *State) Len() int { return grapheme.Count(s.raw) }

// OnChange registers fn to receive an event after every effective edit.
// Declined and no-op edits fire nothing.
func (s *State) OnChange(fn func(Event)) { s.onChange = fn }

// SetRaw replaces the buffer text, declining strings the grammar rejects.
func (s *State) SetRaw(raw string) bool {
	if !s.validRaw(raw) {
		return false
	}
	return s.apply(raw)
}

func (s *State) apply(raw string) bool {
	if raw == s.raw {
		return false
	}
	s.raw = raw
	s.version++
	s.notify()
	return true
}

func (s *State) notify() {
	if s.onChange == nil {
		return
	}
	s.onChange(Event{Version: s.version, Raw: s.raw, Value: s.Value()})
}
