// Package mesh converts board state into a flat textured-triangle vertex
// list for the sprite renderer.
//
// The board spans the full surface in normalized device coordinates,
// [-1,1] on both axes, so each cell quad covers a 2/3 x 2/3 square.
// Texture coordinates address the sprite sheet described by the sprite
// package: 20 animation columns by 3 rows, crosses in row 0, knots in
// row 1, the static background in row 2.
package mesh

import (
	tictactoe "github.com/gogpu/tictactoe"
	"github.com/gogpu/tictactoe/sprite"
)

// Texture-space size of one sprite tile.
const (
	tileU = 1.0 / sprite.Columns
	tileV = 1.0 / sprite.Rows
)

// CellStep is the side length of one board cell in normalized device
// coordinates.
const CellStep = 2.0 / 3.0

// VerticesPerQuad is the vertex count of one textured quad (two triangles,
// non-indexed).
const VerticesPerQuad = 6

// Vertex is one corner of a textured triangle, matching the vertex layout
// of the sprite shader: clip-space position, then texture coordinates.
type Vertex struct {
	Pos       [2]float32
	TexCoords [2]float32
}

// Generate produces the vertex list for the current board: one full-screen
// background quad followed by one quad per occupied cell, in board
// traversal order (columns left to right, rows top to bottom within each
// column).
//
// As a side effect each occupied cell's animation frame advances by one,
// saturating at [tictactoe.FrameMax]; calling Generate once per redraw is
// what plays the placement animation.
//
// The result always holds 6 + 6*k vertices for k occupied cells.
func Generate(board *tictactoe.Board) []Vertex {
	verts := make([]Vertex, 0, VerticesPerQuad*(1+board.Occupied()))

	// Background sprite lives in the bottom sheet row, first column.
	verts = appendQuad(verts,
		-1, 1, 1, -1,
		0, tileV*sprite.BackgroundRow, tileU, tileV*(sprite.BackgroundRow+1))

	for col := 0; col < tictactoe.BoardSize; col++ {
		for row := 0; row < tictactoe.BoardSize; row++ {
			cell := board.At(col, row)
			if cell.Mark == tictactoe.Empty {
				continue
			}

			x := -1 + float32(col)*CellStep
			y := 1 - float32(row)*CellStep
			u := tileU * float32(cell.Frame)
			v := tileV * float32(cell.Mark-tictactoe.Cross)

			verts = appendQuad(verts,
				x, y, x+CellStep, y-CellStep,
				u, v, u+tileU, v+tileV)

			if cell.Frame < tictactoe.FrameMax {
				cell.Frame++
			}
		}
	}

	return verts
}

// appendQuad emits the six vertices of a quad as two triangles.
// (x0,y0) is the top-left corner in NDC, (x1,y1) the bottom-right;
// (u0,v0)-(u1,v1) is the matching texture rectangle.
func appendQuad(verts []Vertex, x0, y0, x1, y1, u0, v0, u1, v1 float32) []Vertex {
	return append(verts,
		Vertex{Pos: [2]float32{x0, y0}, TexCoords: [2]float32{u0, v0}},
		Vertex{Pos: [2]float32{x0, y1}, TexCoords: [2]float32{u0, v1}},
		Vertex{Pos: [2]float32{x1, y1}, TexCoords: [2]float32{u1, v1}},

		Vertex{Pos: [2]float32{x0, y0}, TexCoords: [2]float32{u0, v0}},
		Vertex{Pos: [2]float32{x1, y1}, TexCoords: [2]float32{u1, v1}},
		Vertex{Pos: [2]float32{x1, y0}, TexCoords: [2]float32{u1, v0}},
	)
}
