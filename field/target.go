package field

// Target is the contract between a field and whatever drives its edits,
// usually the keypad through a Router. It pairs the capability probes the
// keypad lays itself out from with the total editing operations. Every
// operation reports whether it changed the field; declined edits return
// false and fire no event.
type Target interface {
	Kind() Kind
	DecimalSeparator() string
	AllowsDecimal() bool
	AllowsNegative() bool

	AppendDigit(d int) bool
	InsertSeparator() bool
	Backspace() bool
	Clear() bool
	ToggleSign() bool
	AppendText(text string) bool
}

var _ Target = (*State)(nil)
