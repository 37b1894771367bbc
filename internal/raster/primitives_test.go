package raster

import (
	"fmt"
	"math"
	"testing"
)

const testColor Color = 0xFFFF00

// painted returns the coordinates of every pixel equal to c.
func painted(cv *Canvas, c Color) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for y := 0; y < cv.Height(); y++ {
		for x := 0; x < cv.Width(); x++ {
			if cv.At(x, y) == c {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestLineHorizontalSixPixels(t *testing.T) {
	cv := NewCanvasSize(320, 200)
	cv.Line(testColor, 0, 0, 5, 0)

	got := painted(cv, testColor)
	if len(got) != 6 {
		t.Fatalf("painted %d pixels, want 6", len(got))
	}
	for x := 0; x <= 5; x++ {
		if !got[[2]int{x, 0}] {
			t.Errorf("pixel (%d,0) not painted", x)
		}
	}
}

func TestSinglePixelLines(t *testing.T) {
	tests := []struct {
		name string
		draw func(cv *Canvas)
	}{
		{"vline", func(cv *Canvas) { cv.VLine(testColor, 7, 9, 9) }},
		{"hline", func(cv *Canvas) { cv.HLine(testColor, 7, 7, 9) }},
		{"point line", func(cv *Canvas) { cv.Line(testColor, 7, 9, 7, 9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewCanvasSize(32, 32)
			tt.draw(cv)
			got := painted(cv, testColor)
			if len(got) != 1 || !got[[2]int{7, 9}] {
				t.Errorf("painted %v, want only (7,9)", got)
			}
		})
	}
}

func TestVLineClampsToArea(t *testing.T) {
	cv := NewCanvasSize(64, 64)
	cv.SetArea(10, 10, 20, 20)

	cv.VLine(testColor, 15, -100, 100)
	got := painted(cv, testColor)
	if len(got) != 10 {
		t.Errorf("painted %d pixels, want 10", len(got))
	}
	for p := range got {
		if p[0] != 15 || p[1] < 10 || p[1] > 19 {
			t.Errorf("pixel %v outside column 15 rows 10..19", p)
		}
	}

	cv.Clear(0)
	cv.VLine(testColor, 25, 12, 14) // column outside the area
	if n := len(painted(cv, testColor)); n != 0 {
		t.Errorf("painted %d pixels for column outside area, want 0", n)
	}
}

func TestHLineReversedEndpoints(t *testing.T) {
	cv := NewCanvasSize(16, 16)
	cv.HLine(testColor, 9, 3, 4)
	got := painted(cv, testColor)
	if len(got) != 7 {
		t.Errorf("painted %d pixels, want 7", len(got))
	}
}

func TestLineIsOffsetByArea(t *testing.T) {
	cv := NewCanvasSize(320, 200)
	cv.SetArea(215, 50, 315, 150)
	cv.Line(testColor, 0, 0, 0, 0)

	if cv.At(215, 50) != testColor {
		t.Error("area-local (0,0) should land on absolute (215,50)")
	}
}

func TestLineDiagonalConnected(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 float64
	}{
		{0, 0, 10, 10},
		{2, 1, 30, 9},
		{30, 9, 2, 1},
		{4, 2, 7, 25},
		{20, 3, 1, 17},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v,%v-%v,%v", tt.x0, tt.y0, tt.x1, tt.y1), func(t *testing.T) {
			cv := NewCanvasSize(32, 32)
			cv.Line(testColor, tt.x0, tt.y0, tt.x1, tt.y1)
			got := painted(cv, testColor)

			start := [2]int{int(tt.x0), int(tt.y0)}
			end := [2]int{int(tt.x1), int(tt.y1)}
			if !got[start] || !got[end] {
				t.Fatalf("endpoints %v %v not both painted", start, end)
			}

			dx, dy := end[0]-start[0], end[1]-start[1]
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			want := dx
			if dy > want {
				want = dy
			}
			if len(got) != want+1 {
				t.Errorf("painted %d pixels, want one per major step (%d)", len(got), want+1)
			}

			// every pixel has an 8-neighbour on the line
			for p := range got {
				found := false
				for ox := -1; ox <= 1 && !found; ox++ {
					for oy := -1; oy <= 1; oy++ {
						if (ox != 0 || oy != 0) && got[[2]int{p[0] + ox, p[1] + oy}] {
							found = true
							break
						}
					}
				}
				if !found {
					t.Errorf("pixel %v is isolated", p)
				}
			}
		})
	}
}

func TestLineNeverLeavesArea(t *testing.T) {
	area := Rect{40, 30, 90, 70}
	segments := [][4]float64{
		{-100, -100, 300, 250},
		{-50, 20, 200, 5},
		{25, -80, 10, 120},
		{-10, -10, -1, -1},
		{200, 200, 300, 100},
		{0, 0, 49, 39},
	}
	for _, s := range segments {
		cv := NewCanvasSize(128, 100)
		cv.SetAreaRect(area)
		cv.Line(testColor, s[0], s[1], s[2], s[3])
		for p := range painted(cv, testColor) {
			if !area.Contains(p[0], p[1]) {
				t.Errorf("segment %v painted %v outside %v", s, p, area)
			}
		}
	}
}

func TestLineFullyInsideKeepsEndpoints(t *testing.T) {
	cv := NewCanvasSize(64, 64)
	cv.SetArea(8, 8, 56, 56)
	cv.Line(testColor, 3, 4, 40, 21)

	if cv.At(11, 12) != testColor || cv.At(48, 29) != testColor {
		t.Error("unclipped line must start and end on its own endpoints")
	}
}

func TestAreaLargerThanBuffer(t *testing.T) {
	cv := NewCanvasSize(16, 16)
	cv.SetArea(-10, -10, 40, 40)
	cv.Line(testColor, 0, 0, 50, 30)
	cv.VLine(testColor, 3, -10, 39)
	cv.HLine(testColor, -10, 39, 5)
	cv.Rect(testColor, 0, 0, 49, 49)
	// reaching here without an index panic is the assertion
}

func TestMisorderedAreaDrawsNothing(t *testing.T) {
	cv := NewCanvasSize(32, 32)
	cv.SetArea(20, 20, 10, 10)

	cv.VLine(testColor, 15, 0, 31)
	cv.HLine(testColor, 0, 31, 15)
	cv.Line(testColor, -5, -5, 3, 7)
	cv.Rect(testColor, 0, 0, 5, 5)

	if n := len(painted(cv, testColor)); n != 0 {
		t.Errorf("painted %d pixels with a misordered area, want 0", n)
	}
}

func TestZeroSizeAreaDrawsNothing(t *testing.T) {
	cv := NewCanvasSize(32, 32)
	cv.SetArea(10, 10, 10, 20)

	cv.VLine(testColor, 10, 10, 19)
	cv.HLine(testColor, 0, 31, 12)
	cv.Line(testColor, 0, 0, 0, 5)
	cv.Line(testColor, -3, 0, 3, 9)

	if n := len(painted(cv, testColor)); n != 0 {
		t.Errorf("painted %d pixels into a zero-width area, want 0", n)
	}
}

func TestNonFiniteLineIgnored(t *testing.T) {
	cv := NewCanvasSize(16, 16)
	cv.Line(testColor, 0, 0, math.Inf(1), 3)
	cv.Line(testColor, math.NaN(), 2, 9, 3)
	if n := len(painted(cv, testColor)); n != 0 {
		t.Errorf("painted %d pixels for an infinite endpoint, want 0", n)
	}
}

func TestRectOutline(t *testing.T) {
	cv := NewCanvasSize(320, 200)
	cv.SetArea(5, 50, 105, 150)
	cv.Rect(0xFF0000, 0, 0, cv.AreaWidth()-1, cv.AreaHeight()-1)

	got := painted(cv, 0xFF0000)
	if len(got) != 4*99 {
		t.Errorf("border has %d pixels, want %d", len(got), 4*99)
	}
	corners := [][2]int{{5, 50}, {104, 50}, {5, 149}, {104, 149}}
	for _, c := range corners {
		if !got[c] {
			t.Errorf("corner %v missing", c)
		}
	}
	if got[[2]int{50, 100}] {
		t.Error("rect outline must not fill the interior")
	}
}

func TestClearIgnoresArea(t *testing.T) {
	cv := NewCanvasSize(8, 8)
	cv.SetArea(2, 2, 4, 4)
	cv.Clear(0x123456)
	for _, p := range cv.Pix() {
		if p != 0x123456 {
			t.Fatal("Clear must fill the whole buffer")
		}
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0x336699).RGB()
	if r != 0x33 || g != 0x66 || b != 0x99 {
		t.Errorf("RGB() = %x %x %x", r, g, b)
	}
}
