package ssd1306

import (
	"testing"

	"github.com/flavioheleno/ssd1306/bitfont"
)

// testFont covers the digits; '1' is a single lit pixel at the top left and
// the other digits are 3x5 blocks.
func testFont(t *testing.T) *bitfont.Font {
	t.Helper()
	b, err := bitfont.NewBuilder('0', '9', 8)
	if err != nil {
		t.Fatal(err)
	}
	for c := uint16('0'); c <= '9'; c++ {
		rows := []string{"###", "###", "###", "###", "###"}
		if c == '1' {
			rows = []string{"#"}
		}
		if err := b.SetRows(c, rows...); err != nil {
			t.Fatal(err)
		}
	}
	f, err := b.Font()
	if err != nil {
		t.Fatal(err)
	}
	return f
}
