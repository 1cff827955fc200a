// Package field implements the pure state model for keypad-driven input
// fields: the text buffer with its per-kind editing grammar, value parsing,
// and the focus router that binds one field at a time to the keypad.
//
// Nothing in this package depends on a UI framework. Components hold a
// *State and render from it; the keypad drives edits through a Router.
// Editing operations are total: an edit the grammar or capabilities refuse
// is declined by returning false, never by panicking or erroring.
package field
