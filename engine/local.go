package engine

import (
	"fmt"
	"time"

	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine runs a game between two in-process agents. It is not safe for concurrent
// use.
type LocalEngine struct {
	state    game.Engine
	agents   []Agent
	starting game.Player
	toMove   game.Player
	maxTurns int
	turn     int
	passes   int
	moves    []metrics.MoveMetric
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithStartingPlayer(p game.Player) Option {
	return func(e *LocalEngine) {
		if p.Valid() {
			e.starting = p
		}
	}
}

// WithState starts from a copy of an existing position instead of the opening.
func WithState(state game.Engine) Option {
	return func(e *LocalEngine) {
		if state != nil {
			e.state = state.Copy()
		}
	}
}

// NewLocalEngine seats agents[0] as Player1 and agents[1] as Player2.
func NewLocalEngine(kind game.Kind, agents []Agent, options ...Option) (*LocalEngine, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("need exactly two agents, got %d", len(agents))
	}

	e := &LocalEngine{ // Default values
		agents:   agents,
		starting: game.Player1,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}

	if e.state == nil {
		state, err := game.New(kind)
		if err != nil {
			return nil, err
		}
		e.state = state
	} else if e.state.Kind() != kind {
		return nil, fmt.Errorf("starting state is %v, want %v", e.state.Kind(), kind)
	}
	e.toMove = e.starting
	return e, nil
}

// State returns a copy of the current position.
func (e *LocalEngine) State() game.Engine {
	return e.state.Copy()
}

func (e *LocalEngine) ToMove() game.Player {
	return e.toMove
}

// Play applies move for the player to move.
func (e *LocalEngine) Play(move game.Move) error {
	return e.play(move, metrics.SearchMetric{})
}

// Pass hands the turn over. Only a player without legal moves may pass.
func (e *LocalEngine) Pass() error {
	if e.state.IsTerminal() {
		return ErrGameOver
	}
	if e.state.HasLegalMove(e.toMove) {
		return fmt.Errorf("%w: %v", ErrCannotPass, e.toMove)
	}

	e.turn++
	e.passes++
	e.moves = append(e.moves, metrics.MoveMetric{
		Step:   e.turn,
		Player: int(e.toMove),
		Pass:   true,
	})
	log.Debug().Msgf("turn %d: %v passes", e.turn, e.toMove)

	e.toMove = e.toMove.Opponent()
	return nil
}

func (e *LocalEngine) play(move game.Move, metric metrics.SearchMetric) error {
	if e.state.IsTerminal() {
		return ErrGameOver
	}
	if !e.state.HasLegalMove(e.toMove) {
		return fmt.Errorf("%w: %v", ErrMustPass, e.toMove)
	}
	if _, err := e.state.ApplyMove(move.Row, move.Col, e.toMove); err != nil {
		return fmt.Errorf("%v rejected %v: %w", e.state.Kind(), move, err)
	}

	e.turn++
	e.moves = append(e.moves, metrics.MoveMetric{
		Step:         e.turn,
		Player:       int(e.toMove),
		Move:         move.String(),
		SearchMetric: metric,
	})
	log.Debug().Msgf("turn %d: %v plays %v", e.turn, e.toMove, move)

	e.toMove = e.toMove.Opponent()
	return nil
}

// Run executes the game loop until the game ends or the turn limit is reached.
func (e *LocalEngine) Run() (Result, error) {
	startTime := time.Now()
	log.Info().Msgf("starting %v with %v to move", e.state.Kind(), e.toMove)

	for !e.state.IsTerminal() && e.turn < e.maxTurns {
		if !e.state.HasLegalMove(e.toMove) {
			if err := e.Pass(); err != nil {
				panic(fmt.Sprintf("pass rejected without legal moves: %v", err))
			}
			continue
		}

		agent := e.agents[e.toMove-1]
		move, metric, err := agent.FindMove(e.state.Copy(), e.toMove)
		if err != nil {
			return e.result(startTime), fmt.Errorf("agent for %v failed on turn %d: %w", e.toMove, e.turn+1, err)
		}
		if err := e.play(move, metric); err != nil {
			return e.result(startTime), err
		}
	}

	result := e.result(startTime)
	if result.Outcome == game.NoOutcome {
		log.Warn().Msgf("stopped %v after %d turns without a result", e.state.Kind(), e.turn)
	} else {
		log.Info().Msgf("%v ended after %d turns with result: %v", e.state.Kind(), e.turn, result.Outcome)
	}
	return result, nil
}

func (e *LocalEngine) result(startTime time.Time) Result {
	endTime := time.Now()
	outcome := e.state.Winner()
	return Result{
		Outcome: outcome,
		GameMetric: metrics.GameMetric{
			Kind:           e.state.Kind().String(),
			StartingPlayer: int(e.starting),
			Winner:         outcome.String(),
			StartTime:      startTime,
			EndTime:        endTime,
			Duration:       endTime.Sub(startTime),
			TotalMoves:     e.turn - e.passes,
			Passes:         e.passes,
		},
		MoveMetrics: e.moves,
	}
}
