package game

import "fmt"

const ReversiSize = 8

// ReversiGame is the Reversi/Othello rule engine.
type ReversiGame struct {
	board Board
}

// NewReversi sets up the four centre pieces in the standard crisscross layout. Both
// dimensions must be even and at least 4.
func NewReversi(rows, cols int) (*ReversiGame, error) {
	if rows < 4 || cols < 4 || rows%2 != 0 || cols%2 != 0 {
		return nil, fmt.Errorf("%w: reversi needs even sides of at least 4, got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	b, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	midRow, midCol := rows/2, cols/2
	b.set(midRow-1, midCol-1, P2)
	b.set(midRow-1, midCol, P1)
	b.set(midRow, midCol-1, P1)
	b.set(midRow, midCol, P2)
	return &ReversiGame{board: b}, nil
}

// NewReversiFromBoard starts a game from an existing position.
func NewReversiFromBoard(b Board) *ReversiGame {
	return &ReversiGame{board: b.Copy()}
}

func (g *ReversiGame) Kind() Kind {
	return Reversi
}

func (g *ReversiGame) Dimensions() (int, int) {
	return g.board.rows, g.board.cols
}

func (g *ReversiGame) CellAt(row, col int) Cell {
	return g.board.At(row, col)
}

// brackets reports whether walking from (row, col) along d crosses one or more opponent
// pieces and then reaches one of p's pieces. Leaving the board or meeting an empty cell
// first fails.
func (g *ReversiGame) brackets(row, col int, d direction, p Player) bool {
	own, opponent := p.Cell(), p.Opponent().Cell()
	r, c := row+d.dRow, col+d.dCol
	if g.board.At(r, c) != opponent {
		return false
	}
	for {
		r, c = r+d.dRow, c+d.dCol
		switch g.board.At(r, c) {
		case opponent:
			continue
		case own:
			return true
		default: // Empty or OutOfBounds
			return false
		}
	}
}

func (g *ReversiGame) IsLegalMove(row, col int, p Player) bool {
	if !p.Valid() || g.board.At(row, col) != Empty {
		return false
	}
	for _, d := range allDirections {
		if g.brackets(row, col, d, p) {
			return true
		}
	}
	return false
}

// ApplyMove places p's piece, flips every bracketed run and returns the number of
// flipped pieces.
func (g *ReversiGame) ApplyMove(row, col int, p Player) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayer, p)
	}
	if !g.IsLegalMove(row, col, p) {
		return 0, fmt.Errorf("%w: %v at (%d,%d)", ErrIllegalMove, p, row, col)
	}

	// Collect directions before mutating so the checks see the original board
	var flipping []direction
	for _, d := range allDirections {
		if g.brackets(row, col, d, p) {
			flipping = append(flipping, d)
		}
	}

	own, opponent := p.Cell(), p.Opponent().Cell()
	g.board.set(row, col, own)
	flipped := 0
	for _, d := range flipping {
		r, c := row+d.dRow, col+d.dCol
		for g.board.At(r, c) == opponent {
			g.board.set(r, c, own)
			flipped++
			r, c = r+d.dRow, c+d.dCol
		}
	}
	return flipped, nil
}

// LegalMoves lists playable cells in row-major order.
func (g *ReversiGame) LegalMoves(p Player) []Move {
	if !p.Valid() {
		return nil
	}
	var moves []Move
	for r := 0; r < g.board.rows; r++ {
		for c := 0; c < g.board.cols; c++ {
			if g.IsLegalMove(r, c, p) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// CountLegalMoves is the mobility of p.
func (g *ReversiGame) CountLegalMoves(p Player) int {
	return len(g.LegalMoves(p))
}

func (g *ReversiGame) HasLegalMove(p Player) bool {
	if !p.Valid() {
		return false
	}
	for r := 0; r < g.board.rows; r++ {
		for c := 0; c < g.board.cols; c++ {
			if g.IsLegalMove(r, c, p) {
				return true
			}
		}
	}
	return false
}

// IsTerminal is true once neither player can move, whether or not the board is full.
func (g *ReversiGame) IsTerminal() bool {
	return !g.HasLegalMove(Player1) && !g.HasLegalMove(Player2)
}

// Score returns the piece count of each player.
func (g *ReversiGame) Score() (p1, p2 int) {
	return g.board.Count(P1), g.board.Count(P2)
}

// Winner compares piece counts once the game is over.
func (g *ReversiGame) Winner() Outcome {
	if !g.IsTerminal() {
		return NoOutcome
	}
	p1, p2 := g.Score()
	switch {
	case p1 > p2:
		return Player1Won
	case p2 > p1:
		return Player2Won
	default:
		return Draw
	}
}

func (g *ReversiGame) Board() Board {
	return g.board.Copy()
}

func (g *ReversiGame) Copy() Engine {
	return &ReversiGame{board: g.board.Copy()}
}

func (g *ReversiGame) Hash() StateHash {
	return g.board.Hash()
}
