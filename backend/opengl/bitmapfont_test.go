package opengl

import (
	"testing"

	"github.com/go-theft-auto/imcore"
)

func TestAppendBitmapText(t *testing.T) {
	run := imcore.TextRun{Pos: imcore.Vec2{X: 10, Y: 20}, Text: "A b\nC", Color: 0xFFFFFFFF, Size: 16}
	vtx, idx := appendBitmapText(nil, nil, run)
	// Three visible glyphs; the space only advances.
	if len(vtx) != 12 || len(idx) != 18 {
		t.Fatalf("got %d vertices, %d indices", len(vtx), len(idx))
	}
	if vtx[0].Pos != [2]float32{10, 20} {
		t.Errorf("first glyph at %v", vtx[0].Pos)
	}
	if vtx[4].Pos[0] != 10+32 {
		t.Errorf("'b' x = %v, want 42", vtx[4].Pos[0])
	}
	if vtx[8].Pos != [2]float32{10, 36} {
		t.Errorf("'C' at %v, want start of second line", vtx[8].Pos)
	}
	if idx[6] != 4 {
		t.Errorf("second quad base = %d, want 4", idx[6])
	}
}

func TestAppendBitmapTextUnknownRune(t *testing.T) {
	vtx, _ := appendBitmapText(nil, nil, imcore.TextRun{Text: "é", Size: 8})
	if len(vtx) != 4 {
		t.Fatalf("len(vtx) = %d, want 4", len(vtx))
	}
	cell := int('?' - bitmapFirst)
	wantU := float32(cell%bitmapCols*bitmapCell) / bitmapTexW
	if vtx[0].TexCoord[0] != wantU {
		t.Errorf("u0 = %v, want %v for '?'", vtx[0].TexCoord[0], wantU)
	}
}

func TestBitmapPixels(t *testing.T) {
	px := bitmapPixels()
	if len(px) != bitmapTexW*bitmapTexH {
		t.Fatalf("len = %d", len(px))
	}
	// Top row of '|' (cell 92) has its two middle bits set.
	cell := int('|' - bitmapFirst)
	x0, y0 := cell%bitmapCols*bitmapCell, cell/bitmapCols*bitmapCell
	if px[y0*bitmapTexW+x0+3] != 255 || px[y0*bitmapTexW+x0] != 0 {
		t.Error("'|' not rasterized as expected")
	}
}
