package layout

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// Width measures the display width of s in Unicode grapheme-cluster columns,
// using uniseg to segment s into user-perceived characters and
// golang.org/x/text/width to classify each cluster's leading rune against
// the East-Asian-width table. A wide or fullwidth leading rune counts as 2
// columns; everything else (narrow, halfwidth, neutral, ambiguous) counts as
// 1, which matches how a monospace terminal renders this language's
// identifiers and strings.
func Width(s string) int {
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		total += runeClusterWidth(runes[0])
	}
	return total
}

func runeClusterWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
