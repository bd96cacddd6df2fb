package searcher

import (
	"fmt"
	"math"
	"sync"

	"boardgames/experiments/metrics"
	"boardgames/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax searcher without pruning. A Minimax must not be
// shared between concurrent searches: its metrics belong to one search at a time.
type Minimax struct {
	depth      int
	winScore   float64
	evaluate   game.Evaluate
	goroutines int
	metrics    metrics.Collector
}

// WithDepth limits the search to depth plies, the candidate move included. Unbounded
// searches to terminal positions.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 || depth == Unbounded {
			m.depth = depth
		}
	}
}

func WithWinScore(score float64) Option {
	return func(m *Minimax) {
		if score > 0 {
			m.winScore = score
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithGoroutines scores root candidates on a pool of goroutines.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      Unbounded,
		winScore:   TicTacToeWinScore,
		evaluate:   game.EvaluateNeutral,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) FindNextMove(e game.Engine, p game.Player) (game.Move, error) {
	move, _, err := m.Search(e, p)
	return move, err
}

// Search returns the best move for p. Ties go to the earliest candidate in the engine's
// enumeration order.
func (m *Minimax) Search(e game.Engine, p game.Player) (game.Move, metrics.SearchMetric, error) {
	if !p.Valid() {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %d", game.ErrInvalidPlayer, p)
	}
	moves := e.LegalMoves(p)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %v on %v", ErrNoMoveAvailable, p, e.Kind())
	}

	m.metrics.Start(m.goroutines, m.depth)
	var scores []float64
	if m.goroutines > 1 && len(moves) > 1 {
		scores = m.scoreParallel(e, p, moves)
	} else {
		scores = m.scoreSequential(e, p, moves)
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] { // Strictly greater keeps the first best
			best = i
		}
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("%v picked %v with score %.2f out of %d candidates", p, moves[best], scores[best], len(moves))
	return moves[best], metric, nil
}

func (m *Minimax) scoreSequential(e game.Engine, p game.Player, moves []game.Move) []float64 {
	scores := make([]float64, len(moves))
	for i, move := range moves {
		scores[i] = m.scoreCandidate(e, p, move)
	}
	return scores
}

// scoreParallel stores each score at its candidate's index so the selection afterwards
// matches the sequential order.
func (m *Minimax) scoreParallel(e game.Engine, p game.Player, moves []game.Move) []float64 {
	scores := make([]float64, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < min(m.goroutines, len(moves)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				scores[i] = m.scoreCandidate(e, p, moves[i])
			}
		}()
	}

	wg.Wait()
	return scores
}

func (m *Minimax) scoreCandidate(e game.Engine, p game.Player, move game.Move) float64 {
	child := play(e, move, p)
	return m.minimax(child, nextDepth(m.depth), p, p.Opponent())
}

// minimax scores e from p's perspective with toMove about to act.
func (m *Minimax) minimax(e game.Engine, depth int, p, toMove game.Player) float64 {
	m.metrics.AddNode()

	if e.IsTerminal() {
		m.metrics.AddTerminalLeaf()
		switch e.Winner() {
		case game.Won(p):
			return m.winScore
		case game.Won(p.Opponent()):
			return -m.winScore
		default:
			return 0
		}
	}

	if depth == 0 {
		m.metrics.AddHeuristicLeaf()
		return m.evaluate(e, p)
	}

	moves := e.LegalMoves(toMove)
	if len(moves) == 0 { // Pass
		return m.minimax(e, nextDepth(depth), p, toMove.Opponent())
	}

	maximizing := toMove == p
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, move := range moves {
		score := m.minimax(play(e, move, toMove), nextDepth(depth), p, toMove.Opponent())
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

func nextDepth(depth int) int {
	if depth == Unbounded {
		return Unbounded
	}
	return depth - 1
}

// play applies a move taken from LegalMoves to a copy of e.
func play(e game.Engine, move game.Move, p game.Player) game.Engine {
	child := e.Copy()
	if _, err := child.ApplyMove(move.Row, move.Col, p); err != nil {
		panic(fmt.Sprintf("listed move %v rejected: %v", move, err))
	}
	return child
}
