package searcher

import (
	"errors"

	"boardgames/experiments/metrics"
	"boardgames/game"
)

var ErrNoMoveAvailable = errors.New("no legal move available")

// Bot chooses a move for p without mutating e.
type Bot interface {
	FindNextMove(e game.Engine, p game.Player) (game.Move, error)
}

// Searcher is a Bot that also reports how much work each move took.
type Searcher interface {
	Bot
	Search(e game.Engine, p game.Player) (game.Move, metrics.SearchMetric, error)
}
