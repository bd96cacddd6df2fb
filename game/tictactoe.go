package game

import "fmt"

const (
	TicTacToeSize = 3
	ticTacToeRun  = 3
)

// TicTacToeGame is the Tic-Tac-Toe rule engine: three equal marks in a row, column or
// diagonal win, a full board without one is a draw.
type TicTacToeGame struct {
	board Board
}

func NewTicTacToe() *TicTacToeGame {
	t, err := NewTicTacToeWithSize(TicTacToeSize, TicTacToeSize)
	if err != nil {
		panic(err) // Default dimensions are always valid
	}
	return t
}

// NewTicTacToeWithSize creates a board of the given size. Lines still need three marks.
func NewTicTacToeWithSize(rows, cols int) (*TicTacToeGame, error) {
	if rows < ticTacToeRun && cols < ticTacToeRun {
		return nil, fmt.Errorf("%w: tic-tac-toe needs a side of at least %d, got %dx%d", ErrInvalidDimensions, ticTacToeRun, rows, cols)
	}
	b, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &TicTacToeGame{board: b}, nil
}

// NewTicTacToeFromBoard starts a game from an existing position.
func NewTicTacToeFromBoard(b Board) *TicTacToeGame {
	return &TicTacToeGame{board: b.Copy()}
}

func (t *TicTacToeGame) Kind() Kind {
	return TicTacToe
}

func (t *TicTacToeGame) Dimensions() (int, int) {
	return t.board.rows, t.board.cols
}

func (t *TicTacToeGame) CellAt(row, col int) Cell {
	return t.board.At(row, col)
}

func (t *TicTacToeGame) IsLegalMove(row, col int, p Player) bool {
	return p.Valid() && t.board.At(row, col) == Empty
}

func (t *TicTacToeGame) ApplyMove(row, col int, p Player) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayer, p)
	}
	if !t.IsLegalMove(row, col, p) {
		return 0, fmt.Errorf("%w: %v at (%d,%d)", ErrIllegalMove, p, row, col)
	}
	t.board.set(row, col, p.Cell())
	return 1, nil
}

// LegalMoves lists empty cells in row-major order.
func (t *TicTacToeGame) LegalMoves(p Player) []Move {
	if !p.Valid() {
		return nil
	}
	var moves []Move
	for r := 0; r < t.board.rows; r++ {
		for c := 0; c < t.board.cols; c++ {
			if t.board.At(r, c) == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (t *TicTacToeGame) CountLegalMoves(p Player) int {
	return len(t.LegalMoves(p))
}

func (t *TicTacToeGame) HasLegalMove(p Player) bool {
	return p.Valid() && !t.board.IsFull()
}

func (t *TicTacToeGame) IsTerminal() bool {
	return t.Winner() != NoOutcome
}

func (t *TicTacToeGame) Winner() Outcome {
	if winner := t.board.findRun(ticTacToeRun); winner != NoPlayer {
		return Won(winner)
	}
	if t.board.IsFull() {
		return Draw
	}
	return NoOutcome
}

func (t *TicTacToeGame) Board() Board {
	return t.board.Copy()
}

func (t *TicTacToeGame) Copy() Engine {
	return &TicTacToeGame{board: t.board.Copy()}
}

func (t *TicTacToeGame) Hash() StateHash {
	return t.board.Hash()
}
