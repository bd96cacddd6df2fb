package searcher

import (
	"fmt"

	"boardgames/experiments/metrics"
	"boardgames/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. Used as a baseline opponent.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindNextMove(e game.Engine, p game.Player) (game.Move, error) {
	move, _, err := r.Search(e, p)
	return move, err
}

func (r *Random) Search(e game.Engine, p game.Player) (game.Move, metrics.SearchMetric, error) {
	if !p.Valid() {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %d", game.ErrInvalidPlayer, p)
	}
	moves := e.LegalMoves(p)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %v on %v", ErrNoMoveAvailable, p, e.Kind())
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{Goroutines: 1, Nodes: 1}, nil
}
