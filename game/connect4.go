package game

import "fmt"

const (
	Connect4Rows = 6
	Connect4Cols = 7
	connect4Run  = 4
)

// Connect4Game is the Connect-4 rule engine. Moves name a column; the piece falls to the
// lowest empty row.
type Connect4Game struct {
	board Board
}

func NewConnect4(rows, cols int) (*Connect4Game, error) {
	if rows < connect4Run && cols < connect4Run {
		return nil, fmt.Errorf("%w: connect-4 needs a side of at least %d, got %dx%d", ErrInvalidDimensions, connect4Run, rows, cols)
	}
	b, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Connect4Game{board: b}, nil
}

// NewConnect4FromBoard starts a game from an existing position. The position is taken
// as given; floating pieces are not rejected.
func NewConnect4FromBoard(b Board) *Connect4Game {
	return &Connect4Game{board: b.Copy()}
}

func (g *Connect4Game) Kind() Kind {
	return Connect4
}

func (g *Connect4Game) Dimensions() (int, int) {
	return g.board.rows, g.board.cols
}

func (g *Connect4Game) CellAt(row, col int) Cell {
	return g.board.At(row, col)
}

// IsLegalMove ignores row: a column is playable while its top cell is empty.
func (g *Connect4Game) IsLegalMove(_, col int, p Player) bool {
	return p.Valid() && g.board.At(0, col) == Empty
}

// LandingRow returns the lowest empty row of the column, or -1 when the column is full
// or off the board.
func (g *Connect4Game) LandingRow(col int) int {
	for r := g.board.rows - 1; r >= 0; r-- {
		if g.board.At(r, col) == Empty {
			return r
		}
	}
	return -1
}

// ApplyMove drops a piece in col and returns the row it landed on.
func (g *Connect4Game) ApplyMove(row, col int, p Player) (int, error) {
	if !p.Valid() {
		return -1, fmt.Errorf("%w: %d", ErrInvalidPlayer, p)
	}
	if !g.IsLegalMove(row, col, p) {
		return -1, fmt.Errorf("%w: %v in column %d", ErrIllegalMove, p, col)
	}
	landing := g.LandingRow(col)
	g.board.set(landing, col, p.Cell())
	return landing, nil
}

// LegalMoves lists playable columns left to right. Row holds the landing row.
func (g *Connect4Game) LegalMoves(p Player) []Move {
	if !p.Valid() {
		return nil
	}
	var moves []Move
	for c := 0; c < g.board.cols; c++ {
		if g.board.At(0, c) == Empty {
			moves = append(moves, Move{Row: g.LandingRow(c), Col: c})
		}
	}
	return moves
}

func (g *Connect4Game) CountLegalMoves(p Player) int {
	return len(g.LegalMoves(p))
}

func (g *Connect4Game) HasLegalMove(p Player) bool {
	return p.Valid() && !g.topRowFull()
}

func (g *Connect4Game) IsTerminal() bool {
	return g.Winner() != NoOutcome
}

// Winner rescans the whole board on every call.
func (g *Connect4Game) Winner() Outcome {
	if winner := g.board.findRun(connect4Run); winner != NoPlayer {
		return Won(winner)
	}
	if g.topRowFull() {
		return Draw
	}
	return NoOutcome
}

func (g *Connect4Game) topRowFull() bool {
	for c := 0; c < g.board.cols; c++ {
		if g.board.At(0, c) == Empty {
			return false
		}
	}
	return true
}

func (g *Connect4Game) Board() Board {
	return g.board.Copy()
}

func (g *Connect4Game) Copy() Engine {
	return &Connect4Game{board: g.board.Copy()}
}

func (g *Connect4Game) Hash() StateHash {
	return g.board.Hash()
}
