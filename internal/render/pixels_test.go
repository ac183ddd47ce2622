package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	for i, c := range cells {
		base := i * 4
		want := off
		if c != 0 {
			want = on
		}
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, expected %v", i, got, want)
		}
	}
}
