// Package grapheme wraps uniseg segmentation for user-perceived characters.
package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// TrimLast returns text with its final grapheme cluster removed.
func TrimLast(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	end := 0
	for g.Next() {
		start, _ := g.Positions()
		end = start
	}
	return text[:end]
}
