package sprite

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateDimensions(t *testing.T) {
	sheet := Generate()

	bounds := sheet.Bounds()
	if bounds.Dx() != SheetWidth || bounds.Dy() != SheetHeight {
		t.Fatalf("Generate() = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), SheetWidth, SheetHeight)
	}
}

func TestGenerateAnimationProgresses(t *testing.T) {
	sheet := Generate()

	tests := []struct {
		name string
		row  int
	}{
		{"cross", CrossRow},
		{"knot", KnotRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := tileCoverage(sheet, 0, tt.row)
			if prev == 0 {
				t.Fatal("first frame is blank")
			}
			// Coverage grows monotonically across the animation.
			for f := 1; f < Columns; f++ {
				cov := tileCoverage(sheet, f, tt.row)
				if cov < prev {
					t.Fatalf("frame %d coverage %d < frame %d coverage %d", f, cov, f-1, prev)
				}
				prev = cov
			}
			if last := tileCoverage(sheet, Columns-1, tt.row); last <= tileCoverage(sheet, 0, tt.row) {
				t.Errorf("last frame coverage %d not above first frame", last)
			}
		})
	}
}

func TestGenerateBackgroundTile(t *testing.T) {
	sheet := Generate()

	// The background tile is fully opaque.
	for y := 0; y < TileSize; y += 7 {
		for x := 0; x < TileSize; x += 7 {
			_, _, _, a := sheet.At(x, BackgroundRow*TileSize+y).RGBA()
			if a != 0xffff {
				t.Fatalf("background pixel (%d,%d) alpha = %#x, want opaque", x, y, a)
			}
		}
	}

	// Grid lines darken the tile thirds.
	third := TileSize / 3
	center := BackgroundRow*TileSize + TileSize/2
	rLine, gLine, bLine, _ := sheet.At(third, center).RGBA()
	rBg, gBg, bBg, _ := sheet.At(third/2, center).RGBA()
	if rLine+gLine+bLine >= rBg+gBg+bBg {
		t.Error("grid line is not darker than the tile background")
	}

	// Columns past the first stay empty in the background row.
	_, _, _, a := sheet.At(TileSize+TileSize/2, center).RGBA()
	if a != 0 {
		t.Errorf("background row column 1 alpha = %#x, want transparent", a)
	}
}

func TestLoad(t *testing.T) {
	t.Run("accepts matching aspect and rescales", func(t *testing.T) {
		path := writeSheetPNG(t, SheetWidth/2, SheetHeight/2)

		sheet, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		bounds := sheet.Bounds()
		if bounds.Dx() != SheetWidth || bounds.Dy() != SheetHeight {
			t.Errorf("Load() = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), SheetWidth, SheetHeight)
		}
	})

	t.Run("rejects wrong aspect", func(t *testing.T) {
		path := writeSheetPNG(t, SheetWidth, SheetWidth)

		if _, err := Load(path); err == nil {
			t.Fatal("Load() accepted a square sheet")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.png")); err == nil {
			t.Fatal("Load() accepted a missing file")
		}
	})

	t.Run("not a PNG", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sheet.png")
		if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("Load() accepted garbage data")
		}
	})
}

// tileCoverage counts non-transparent pixels in tile (col, row).
func tileCoverage(sheet *image.RGBA, col, row int) int {
	n := 0
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			_, _, _, a := sheet.At(col*TileSize+x, row*TileSize+y).RGBA()
			if a > 0 {
				n++
			}
		}
	}
	return n
}

// writeSheetPNG writes a blank PNG of the given size and returns its path.
func writeSheetPNG(t *testing.T, w, h int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}
