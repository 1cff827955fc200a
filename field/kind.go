package field

// Kind selects a field's editing grammar and the keypad layout it gets.
type Kind uint8

const (
	// Integer accepts an optional leading minus followed by digits.
	Integer Kind = iota
	// Decimal additionally accepts one decimal separator.
	Decimal
	// Text accepts arbitrary characters.
	Text
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Cap is a tri-state capability override. The zero value defers to the
// kind's default, so Options remain useful uninitialized.
type Cap uint8

const (
	CapDefault Cap = iota
	CapOn
	CapOff
)

func (c Cap) resolve(def bool) bool {
	switch c {
	case CapOn:
		return true
	case CapOff:
		return false
	default:
		return def
	}
}

func defaultNegative(k Kind) bool { return k == Integer || k == Decimal }

func defaultDecimal(k Kind) bool { return k == Decimal }
