package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestDrawRectFilledScales(t *testing.T) {
	// 10 columns x 5 rows => 10 x 10 sub-pixels for a 100 x 100 arena.
	c := NewScaledCanvas(10, 5, 100, 100)
	c.DrawRect(0, 0, 50, 50, true)

	if !c.IsSet(0, 0) || !c.IsSet(4, 4) {
		t.Error("expected top-left quadrant to be lit")
	}
	if c.IsSet(5, 5) || c.IsSet(9, 9) {
		t.Error("pixels outside the rect must stay dark")
	}
}

func TestDrawRectOutline(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawRect(2, 2, 10, 10, false)

	if !c.IsSet(2, 2) || !c.IsSet(12, 12) {
		t.Error("corners should be lit")
	}
	if c.IsSet(7, 7) {
		t.Error("outline must leave the interior dark")
	}
}

func TestDrawRectTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 1000)
	c.DrawRect(500, 500, 1, 1, true)
	if !c.IsSet(5, 5) {
		t.Error("a sub-pixel rect should light at least one pixel")
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 9, Y: 9})

	for i := 0; i <= 9; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("pixel (%d, %d) should be on the line", i, i)
		}
	}
	if c.IsSet(5, 0) || c.IsSet(0, 5) {
		t.Error("line lit pixels off the diagonal")
	}
}

func TestDrawPolygonFilledDiamond(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	pts := c.BorrowPoints(4)
	pts[0] = Point{X: 10, Y: 2}
	pts[1] = Point{X: 18, Y: 10}
	pts[2] = Point{X: 10, Y: 18}
	pts[3] = Point{X: 2, Y: 10}
	c.DrawPolygon(pts, true)

	if !c.IsSet(10, 10) {
		t.Error("diamond centre should be filled")
	}
	if !c.IsSet(10, 2) || !c.IsSet(2, 10) {
		t.Error("diamond tips should be on the outline")
	}
	if c.IsSet(3, 3) || c.IsSet(17, 17) {
		t.Error("corners outside the diamond must stay dark")
	}
}

func TestDrawPolygonNeedsThreePoints(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 8, Y: 8}}, true)
	if c.IsSet(1, 1) || c.IsSet(4, 4) {
		t.Error("a two-point polygon should draw nothing")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetFloat(0, 0) // top half of cell 1
	c.SetFloat(1, 0)
	c.SetFloat(1, 1) // cell 2 both halves

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "\033[1;1H"+string(BlockUpperHalf)) {
		t.Errorf("missing upper half block in %q", out)
	}
	if !strings.Contains(out, "\033[1;2H"+string(BlockFull)) {
		t.Errorf("missing full block in %q", out)
	}
}

func TestClearResetsPixels(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.DrawRect(0, 0, 4, 4, true)
	c.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c.IsSet(x, y) {
				t.Fatalf("pixel (%d,%d) still set after Clear", x, y)
			}
		}
	}
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	cw.WriteCentered(10, 2, "abcd")

	if out.Len() != 0 {
		t.Fatal("nothing should reach the writer before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "\033[3;4Hhi") {
		t.Errorf("offset not applied: %q", got)
	}
	if !strings.Contains(got, "\033[4;11Habcd") {
		t.Errorf("centered text misplaced: %q", got)
	}
	if cw.Len() != 0 {
		t.Error("buffer should be empty after Flush")
	}
}

func TestChunkWriterLargeFrame(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(big)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != big {
		t.Error("chunked flush altered the frame")
	}
}
