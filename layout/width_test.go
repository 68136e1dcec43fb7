package layout

import "testing"

func TestWidthASCII(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"a":     1,
		"hello": 5,
		"f(A)":  4,
	}
	for s, want := range cases {
		if got := Width(s); got != want {
			t.Errorf("Width(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestWidthWideRuneCountsDouble(t *testing.T) {
	// A fullwidth CJK ideogram occupies two terminal columns, unlike an
	// ASCII letter, even though both are a single grapheme cluster.
	cjk := string(rune(0x65E5))
	if got := Width(cjk); got != 2 {
		t.Errorf("Width(CJK ideogram) = %d, want 2", got)
	}
}

func TestWidthAccentedLetterIsOneColumn(t *testing.T) {
	accented := string(rune(0x00E9))
	if got := Width(accented); got != 1 {
		t.Errorf("Width(accented letter) = %d, want 1", got)
	}
}
