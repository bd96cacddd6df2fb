package game

import (
	"errors"
	"fmt"

	"boardgames/utils"
)

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrUnknownKind       = errors.New("unknown game kind")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

// Player identifies a seat. Only Player1 and Player2 may move.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other seat. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Cell returns the mark the player leaves on the board.
func (p Player) Cell() Cell {
	if !p.Valid() {
		return Empty
	}
	return Cell(p)
}

func (p Player) String() string {
	if !p.Valid() {
		return "NoPlayer"
	}
	return fmt.Sprintf("Player%d", int(p))
}

// Outcome is the result of a game as seen by the rule engine.
type Outcome int

const (
	NoOutcome Outcome = iota
	Player1Won
	Player2Won
	Draw
)

// Won returns the outcome in which p is the winner.
func Won(p Player) Outcome {
	switch p {
	case Player1:
		return Player1Won
	case Player2:
		return Player2Won
	default:
		return NoOutcome
	}
}

// Winner returns the winning player, or NoPlayer for draws and unfinished games.
func (o Outcome) Winner() Player {
	switch o {
	case Player1Won:
		return Player1
	case Player2Won:
		return Player2
	default:
		return NoPlayer
	}
}

func (o Outcome) String() string {
	switch o {
	case Player1Won:
		return "Player1"
	case Player2Won:
		return "Player2"
	case Draw:
		return "Draw"
	default:
		return ""
	}
}

// Move is a board coordinate. Connect-4 only reads Col.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

type StateHash uint64

// Engine is the rule engine every game implements. Queries never mutate the board;
// ApplyMove mutates it only when the move is legal.
type Engine interface {
	Kind() Kind
	Dimensions() (rows, cols int)
	CellAt(row, col int) Cell
	IsLegalMove(row, col int, p Player) bool
	// ApplyMove returns the number of effects of the move (marks placed, landing row,
	// pieces flipped) or ErrIllegalMove without touching the board.
	ApplyMove(row, col int, p Player) (int, error)
	// LegalMoves enumerates legal moves in the engine's fixed order.
	LegalMoves(p Player) []Move
	CountLegalMoves(p Player) int
	HasLegalMove(p Player) bool
	IsTerminal() bool
	Winner() Outcome
	Board() Board
	Copy() Engine
	Hash() StateHash
}

// Evaluate scores a non-terminal position from the perspective of player p. Higher is
// better for p.
type Evaluate func(e Engine, p Player) float64

type Kind int

const (
	TicTacToe Kind = iota + 1
	Connect4
	Reversi
)

var kindNames = []string{"tictactoe", "connect4", "reversi"}

func (k Kind) String() string {
	if k < TicTacToe || k > Reversi {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k-1]
}

// ParseKind maps a game name to its Kind.
func ParseKind(name string) (Kind, error) {
	i := utils.IndexFold(kindNames, name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return Kind(i + 1), nil
}

// DefaultDimensions returns the standard board size of a game kind.
func DefaultDimensions(kind Kind) (rows, cols int, err error) {
	switch kind {
	case TicTacToe:
		return TicTacToeSize, TicTacToeSize, nil
	case Connect4:
		return Connect4Rows, Connect4Cols, nil
	case Reversi:
		return ReversiSize, ReversiSize, nil
	default:
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// New creates an engine of the given kind with its default dimensions.
func New(kind Kind) (Engine, error) {
	rows, cols, err := DefaultDimensions(kind)
	if err != nil {
		return nil, err
	}
	return NewWithSize(kind, rows, cols)
}

// NewWithSize creates an engine of the given kind and board size.
func NewWithSize(kind Kind, rows, cols int) (Engine, error) {
	var (
		e   Engine
		err error
	)
	switch kind {
	case TicTacToe:
		e, err = NewTicTacToeWithSize(rows, cols)
	case Connect4:
		e, err = NewConnect4(rows, cols)
	case Reversi:
		e, err = NewReversi(rows, cols)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err != nil { // Avoid returning a typed nil inside the interface
		return nil, err
	}
	return e, nil
}
