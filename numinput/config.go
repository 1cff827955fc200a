package numinput

import "github.com/jkxr/tenkey/field"

// Config configures the input Model.
type Config struct {
	// Field is forwarded to field.New.
	Field field.Options

	// Placeholder shows dimmed while the field is empty and blurred.
	Placeholder string

	// Width is the content width in cells, frame excluded. Zero means
	// size to content.
	Width int

	// Style has no zero-value fallback; pass DefaultStyle for the stock
	// look.
	Style Style

	// OnChange is installed as the field's change hook. When set it
	// replaces any hook carried in Field.
	OnChange func(field.Event)
}
