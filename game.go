package tictactoe

// Window titles shown for each game state. The turn titles announce whose
// move it is; the winner titles are set once and never change afterwards.
const (
	TitleCrossTurn = "tic tac toe: cross turn"
	TitleKnotTurn  = "tic tac toe: knots turn"
	TitleCrossWins = "Congratulations Cross!"
	TitleKnotWins  = "Congratulations Knots!"
)

// TitleSetter receives display-title updates from the game. The windowing
// host implements this; the game itself has no platform dependency.
type TitleSetter interface {
	SetTitle(title string)
}

// NullTitleSetter is a TitleSetter that discards all updates.
// Used when no window is attached (tests, benchmarks).
type NullTitleSetter struct{}

// SetTitle discards the title.
func (NullTitleSetter) SetTitle(string) {}

var _ TitleSetter = NullTitleSetter{}

// winTriples lists every winning line as cell coordinates (col, row).
// Evaluation order is fixed: columns left to right, then rows top to
// bottom, then the two diagonals. Victory checks must preserve this order
// so behavior stays deterministic.
var winTriples = [8][3][2]int{
	// columns
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// rows
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Game tracks whose turn it is and whether the match has ended.
// It owns no board; the board is passed to the operations that need it,
// so click handling and rendering never alias the same mutable state.
type Game struct {
	turn     Mark
	finished bool
	titles   TitleSetter
}

// NewGame creates a game with Cross to move. The titles collaborator
// receives turn and winner announcements; pass nil to discard them.
func NewGame(titles TitleSetter) *Game {
	if titles == nil {
		titles = NullTitleSetter{}
	}
	return &Game{turn: Cross, titles: titles}
}

// Turn returns the mark of the player to move.
func (g *Game) Turn() Mark {
	return g.turn
}

// Finished reports whether the game has been won.
// A full board with no winning line does NOT finish the game; further
// clicks are no-ops simply because no empty cell remains.
func (g *Game) Finished() bool {
	return g.finished
}

// HandleClick processes a mouse press at pixel position (x, y) inside a
// window of the given size. The window is divided into three equal bands
// per axis to locate the target cell; coordinates outside the window are
// clamped onto the edge cells.
//
// The click is silently ignored when the game is finished or the target
// cell is occupied — neither is an error. On an accepted move the cell
// receives the current player's mark with its animation frame reset,
// victory is checked, and the turn flips if the move did not win.
func (g *Game) HandleClick(x, y float64, board *Board, width, height int) {
	if g.finished {
		return
	}
	if width <= 0 || height <= 0 {
		return
	}

	col := clampIndex(int(x / (float64(width) / BoardSize)))
	row := clampIndex(int(y / (float64(height) / BoardSize)))

	cell := board.At(col, row)
	if cell.Mark != Empty {
		return
	}

	*cell = Cell{Mark: g.turn, Frame: 0}
	Logger().Debug("mark placed", "mark", g.turn.String(), "col", col, "row", row)

	g.CheckVictory(board)
	if !g.finished {
		g.ChangeTurn()
	}
}

// CheckVictory scans the eight winning lines in their fixed order and
// finishes the game on the first line whose three cells carry the same
// non-empty mark. The winner announced is the player currently to move,
// since only that player's move can have completed a line.
func (g *Game) CheckVictory(board *Board) {
	for _, triple := range winTriples {
		a := board.At(triple[0][0], triple[0][1]).Mark
		b := board.At(triple[1][0], triple[1][1]).Mark
		c := board.At(triple[2][0], triple[2][1]).Mark
		if a != Empty && a == b && b == c {
			g.finished = true
			if g.turn == Cross {
				g.titles.SetTitle(TitleCrossWins)
			} else {
				g.titles.SetTitle(TitleKnotWins)
			}
			Logger().Info("game finished", "winner", g.turn.String())
			return
		}
	}
}

// ChangeTurn flips the player to move and announces the new turn.
func (g *Game) ChangeTurn() {
	if g.turn == Cross {
		g.turn = Knot
		g.titles.SetTitle(TitleKnotTurn)
	} else {
		g.turn = Cross
		g.titles.SetTitle(TitleCrossTurn)
	}
}

// clampIndex confines a cell index to [0, BoardSize).
func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= BoardSize {
		return BoardSize - 1
	}
	return i
}
