// Package sprite defines the sprite-sheet contract shared by the mesh
// generator and the renderer, and produces the sheet's pixels.
//
// The sheet is 20 columns by 3 rows of square tiles. Rows 0 and 1 hold the
// 20 animation frames of the cross and knot placement animations; row 2
// holds the static board background in its first column. The mesh
// generator's texture-coordinate math depends on this layout exactly.
package sprite

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Sheet layout contract.
const (
	// Columns is the number of animation frames per mark.
	Columns = 20

	// Rows is the number of sprite rows: cross, knot, background.
	Rows = 3

	// CrossRow and KnotRow hold the placement animations.
	CrossRow = 0
	KnotRow  = 1

	// BackgroundRow holds the static board sprite in column 0.
	BackgroundRow = 2

	// TileSize is the pixel side length of one sheet tile.
	TileSize = 100
)

// Sheet pixel dimensions.
const (
	SheetWidth  = Columns * TileSize
	SheetHeight = Rows * TileSize
)

// Drawing parameters for the generated art.
const (
	strokeWidth = TileSize / 10.0
	inset       = TileSize / 5.0
)

// Generate draws the full sprite sheet and returns it as RGBA pixels.
//
// Frame f of each animation shows the mark drawn to completion fraction
// (f+1)/Columns: the cross paints its two strokes one after the other,
// the knot sweeps its circle clockwise from the top. The last frame is
// the finished mark, which the board keeps showing once the tile's frame
// counter saturates.
func Generate() *image.RGBA {
	pm := gg.NewPixmap(SheetWidth, SheetHeight)
	dc := gg.NewContext(SheetWidth, SheetHeight, gg.WithPixmap(pm))

	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	for f := 0; f < Columns; f++ {
		progress := float64(f+1) / Columns
		drawCrossFrame(dc, f, progress)
		drawKnotFrame(dc, f, progress)
	}
	drawBackground(dc)

	return pm.ToImage()
}

// drawCrossFrame paints animation frame f of the cross in row 0.
// The first diagonal stroke grows over the first half of the animation,
// the second over the remaining half.
func drawCrossFrame(dc *gg.Context, f int, progress float64) {
	x0 := float64(f*TileSize) + inset
	y0 := float64(CrossRow*TileSize) + inset
	span := float64(TileSize) - 2*inset

	dc.SetRGBA(0.85, 0.2, 0.2, 1)
	dc.SetLineWidth(strokeWidth)
	dc.SetLineCap(gg.LineCapRound)

	first := math.Min(1, progress*2)
	dc.DrawLine(x0, y0, x0+span*first, y0+span*first)
	_ = dc.Stroke()

	second := math.Max(0, progress*2-1)
	if second > 0 {
		dc.DrawLine(x0+span, y0, x0+span-span*second, y0+span*second)
		_ = dc.Stroke()
	}
}

// drawKnotFrame paints animation frame f of the knot in row 1 as a
// circular arc swept clockwise from the top of the circle.
func drawKnotFrame(dc *gg.Context, f int, progress float64) {
	cx := float64(f*TileSize) + TileSize/2.0
	cy := float64(KnotRow*TileSize) + TileSize/2.0
	r := float64(TileSize)/2.0 - inset

	dc.SetRGBA(0.2, 0.3, 0.85, 1)
	dc.SetLineWidth(strokeWidth)
	dc.SetLineCap(gg.LineCapRound)

	start := -math.Pi / 2
	dc.DrawArc(cx, cy, r, start, start+2*math.Pi*progress)
	_ = dc.Stroke()
}

// drawBackground paints the static board sprite: a white tile crossed by
// the four grid lines. It occupies column 0 of the background row.
func drawBackground(dc *gg.Context) {
	x0 := 0.0
	y0 := float64(BackgroundRow * TileSize)

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(x0, y0, TileSize, TileSize)
	_ = dc.Fill()

	dc.SetRGB(0.15, 0.15, 0.15)
	dc.SetLineWidth(strokeWidth / 2)
	dc.SetLineCap(gg.LineCapButt)
	for i := 1; i < 3; i++ {
		offset := float64(i) * TileSize / 3.0
		dc.DrawLine(x0+offset, y0, x0+offset, y0+TileSize)
		_ = dc.Stroke()
		dc.DrawLine(x0, y0+offset, x0+TileSize, y0+offset)
		_ = dc.Stroke()
	}
}
