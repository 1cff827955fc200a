package field

import "testing"

func TestNew_NormalizesOptions(t *testing.T) {
	s := New(Options{Kind: Decimal, Separator: "", Places: -2})
	if got, want := s.DecimalSeparator(), "."; got != want {
		t.Fatalf("separator=%q, want %q", got, want)
	}
	if got, want := s.Places(), 0; got != want {
		t.Fatalf("places=%d, want %d", got, want)
	}

	// Separators that collide with the grammar fall back to the point.
	for _, sep := range []string{"0", "-", "1,5"} {
		s := New(Options{Kind: Decimal, Separator: sep})
		if got, want := s.DecimalSeparator(), "."; got != want {
			t.Fatalf("separator %q: got %q, want %q", sep, got, want)
		}
	}
}

func TestNew_CapabilityDefaultsPerKind(t *testing.T) {
	cases := []struct {
		kind     Kind
		negative bool
		decimal  bool
	}{
		{kind: Integer, negative: true, decimal: false},
		{kind: Decimal, negative: true, decimal: true},
		{kind: Text, negative: false, decimal: false},
	}

	for _, tc := range cases {
		s := New(Options{Kind: tc.kind})
		if got := s.AllowsNegative(); got != tc.negative {
			t.Fatalf("%v negative=%v, want %v", tc.kind, got, tc.negative)
		}
		if got := s.AllowsDecimal(); got != tc.decimal {
			t.Fatalf("%v decimal=%v, want %v", tc.kind, got, tc.decimal)
		}
	}

	s := New(Options{Kind: Integer, Negative: CapOff})
	if s.AllowsNegative() {
		t.Fatalf("capability override ignored")
	}
}

func TestNew_DropsInvalidInitialRaw(t *testing.T) {
	cases := []struct {
		kind Kind
		sep  string
		raw  string
		want string
	}{
		{kind: Integer, raw: "42", want: "42"},
		{kind: Integer, raw: "abc", want: ""},
		{kind: Integer, raw: "1.5", want: ""},
		{kind: Decimal, raw: "1.5", want: "1.5"},
		{kind: Decimal, sep: ",", raw: "3,14", want: "3,14"},
		{kind: Decimal, sep: ",", raw: "3.14", want: ""},
		{kind: Decimal, raw: "1.2.3", want: ""},
		{kind: Text, raw: "anything.", want: "anything."},
	}

	for _, tc := range cases {
		s := New(Options{Kind: tc.kind, Separator: tc.sep, Raw: tc.raw})
		if got := s.Raw(); got != tc.want {
			t.Fatalf("initial raw %q: got %q, want %q", tc.raw, got, tc.want)
		}
		if got := s.Version(); got != 0 {
			t.Fatalf("fresh state version=%d, want 0", got)
		}
	}
}

func TestNew_RawRespectsCapabilityOverrides(t *testing.T) {
	s := New(Options{Kind: Integer, Negative: CapOff, Raw: "-7"})
	if got := s.Raw(); got != "" {
		t.Fatalf("minus raw with negative off: got %q, want %q", got, "")
	}

	s = New(Options{Kind: Decimal, Decimal: CapOff, Raw: "1.5"})
	if got := s.Raw(); got != "" {
		t.Fatalf("separator raw with decimal off: got %q, want %q", got, "")
	}

	// SetRaw is held to the same rule.
	if s.SetRaw("2.5") {
		t.Fatalf("SetRaw bypassed the decimal capability")
	}
	if !s.SetRaw("25") {
		t.Fatalf("separator-free SetRaw declined")
	}
}

func TestState_SetRaw(t *testing.T) {
	var events []Event
	s := New(Options{Kind: Decimal})
	s.OnChange(func(e Event) { events = append(events, e) })

	if !s.SetRaw("-12.5") {
		t.Fatalf("valid SetRaw declined")
	}
	if got, want := s.Version(), uint64(1); got != want {
		t.Fatalf("version=%d, want %d", got, want)
	}
	if s.SetRaw("nope") {
		t.Fatalf("invalid SetRaw accepted")
	}
	if s.SetRaw("-12.5") {
		t.Fatalf("identical SetRaw reported a change")
	}
	if got, want := len(events), 1; got != want {
		t.Fatalf("event count=%d, want %d", got, want)
	}
	if got, want := s.Raw(), "-12.5"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
}

func TestState_Len_CountsGraphemes(t *testing.T) {
	s := New(Options{Kind: Text, Raw: "aé"})
	if got, want := s.Len(), 2; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got := New(Options{Kind: Integer}).Len(); got != 0 {
		t.Fatalf("empty len=%d, want 0", got)
	}
}
