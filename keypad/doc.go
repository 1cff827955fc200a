// Package keypad provides a Bubble Tea on-screen keypad component that
// drives field edits through a field.Router.
//
// The keypad renders the layout for the bound field's kind, relays every
// press as a routed editing operation, and never touches field state
// directly. Keys whose capability the bound field lacks render disabled;
// pressing them is a no-op by way of the field core's decline semantics.
package keypad
