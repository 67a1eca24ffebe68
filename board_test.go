package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "cross", Cross.String())
	assert.Equal(t, "knot", Knot.String())
	assert.Equal(t, "unknown", Mark(42).String())
}

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	assert.Equal(t, 0, board.Occupied())
	assert.False(t, board.Full())

	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			cell := board.At(col, row)
			assert.Equal(t, Empty, cell.Mark)
			assert.Equal(t, uint8(0), cell.Frame)
		}
	}
}

func TestBoardAt(t *testing.T) {
	board := NewBoard()

	// At returns a live pointer, not a copy.
	board.At(1, 2).Mark = Cross
	assert.Equal(t, Cross, board[1][2].Mark)
	assert.Equal(t, 1, board.Occupied())
}

func TestBoardFull(t *testing.T) {
	board := NewBoard()

	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			assert.False(t, board.Full())
			board.At(col, row).Mark = Cross
		}
	}
	assert.True(t, board.Full())
	assert.Equal(t, BoardSize*BoardSize, board.Occupied())
}
