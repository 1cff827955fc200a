// Package numinput provides a Bubble Tea input box for a single numeric
// or text field backed by the field package.
//
// The box displays the field's raw text and relays physical typing into
// the field state. It pairs with the keypad package: register the box's
// Field with a shared router and the typed and on-screen input paths
// edit the same state.
package numinput
