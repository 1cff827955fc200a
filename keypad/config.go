package keypad

import "github.com/jkxr/tenkey/field"

// Config configures the keypad Model.
type Config struct {
	// Router supplies the bound field and receives every press. New
	// creates a private router when nil, reachable via Model.Router.
	Router *field.Router

	// FallbackKind picks the layout shown while no field is bound.
	FallbackKind field.Kind

	// KeyMap falls back to DefaultKeyMap when left empty. Style has no
	// such fallback; pass DefaultStyle for the stock look.
	KeyMap KeyMap
	Style  Style
}
