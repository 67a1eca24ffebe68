package tictactoe

// BoardSize is the number of cells along each edge of the board.
const BoardSize = 3

// FrameMax is the last animation frame of a placed mark. Frame counters
// saturate here; the sprite sheet carries FrameMax+1 frames per mark.
const FrameMax = 19

// Mark identifies the occupant of a board cell.
type Mark uint8

const (
	// Empty marks an unoccupied cell.
	Empty Mark = iota

	// Cross is the mark of the first player.
	Cross

	// Knot is the mark of the second player.
	Knot
)

// String returns the display name of the mark.
func (m Mark) String() string {
	switch m {
	case Empty:
		return "empty"
	case Cross:
		return "cross"
	case Knot:
		return "knot"
	default:
		return "unknown"
	}
}

// Cell is a single tile on the game board. It records the occupying mark
// and the current animation frame of its sprite. Frame starts at zero when
// a mark is placed and advances once per render until it saturates at
// [FrameMax].
type Cell struct {
	Mark  Mark
	Frame uint8
}

// Board is the 3x3 game grid, indexed by (column, row), both in [0,2].
// The zero value is a fully empty board ready for play.
type Board [BoardSize][BoardSize]Cell

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns a pointer to the cell at (col, row).
// Both indices must be in [0, BoardSize).
func (b *Board) At(col, row int) *Cell {
	return &b[col][row]
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for col := range b {
		for row := range b[col] {
			if b[col][row].Mark != Empty {
				n++
			}
		}
	}
	return n
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return b.Occupied() == BoardSize*BoardSize
}
