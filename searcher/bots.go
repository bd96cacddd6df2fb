package searcher

import (
	"fmt"

	"boardgames/game"
)

// NewTicTacToeBot searches the full game tree: a win scores 1, a draw 0.
func NewTicTacToeBot(options ...Option) *Minimax {
	defaults := []Option{
		WithDepth(Unbounded),
		WithWinScore(TicTacToeWinScore),
		WithEvaluationFn(game.EvaluateNeutral),
	}
	return NewMinimax(append(defaults, options...)...)
}

func NewConnect4Bot(options ...Option) *Minimax {
	defaults := []Option{
		WithDepth(Connect4Depth),
		WithWinScore(Connect4WinScore),
		WithEvaluationFn(game.EvaluateConnect4),
	}
	return NewMinimax(append(defaults, options...)...)
}

func NewReversiBot(options ...Option) *Minimax {
	defaults := []Option{
		WithDepth(ReversiDepth),
		WithWinScore(ReversiWinScore),
		WithEvaluationFn(game.EvaluateReversi),
	}
	return NewMinimax(append(defaults, options...)...)
}

// NewBot returns the default bot for a game kind. Options override the defaults.
func NewBot(kind game.Kind, options ...Option) (*Minimax, error) {
	switch kind {
	case game.TicTacToe:
		return NewTicTacToeBot(options...), nil
	case game.Connect4:
		return NewConnect4Bot(options...), nil
	case game.Reversi:
		return NewReversiBot(options...), nil
	default:
		return nil, fmt.Errorf("%w: %v", game.ErrUnknownKind, kind)
	}
}
