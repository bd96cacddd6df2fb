package engine

import (
	"errors"
	"fmt"

	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/searcher"
)

var (
	ErrGameOver        = errors.New("game is over")
	ErrMustPass        = errors.New("player has no legal move and must pass")
	ErrCannotPass      = errors.New("player has a legal move and cannot pass")
	ErrScriptExhausted = errors.New("scripted agent has no moves left")
)

type Engine interface {
	// Run plays until the game ends or the turn limit is reached
	Run() (Result, error)
}

type Result struct {
	Outcome     game.Outcome
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

// Agent picks moves for one seat. It receives a copy of the game and may mutate it.
type Agent interface {
	FindMove(e game.Engine, p game.Player) (game.Move, metrics.SearchMetric, error)
}

// BotAgent plays the moves of a search bot.
type BotAgent struct {
	Bot searcher.Bot
}

func NewBotAgent(bot searcher.Bot) *BotAgent {
	return &BotAgent{Bot: bot}
}

func (a *BotAgent) FindMove(e game.Engine, p game.Player) (game.Move, metrics.SearchMetric, error) {
	if s, ok := a.Bot.(searcher.Searcher); ok {
		return s.Search(e, p)
	}
	move, err := a.Bot.FindNextMove(e, p)
	return move, metrics.SearchMetric{}, err
}

// ScriptedAgent replays a fixed list of moves, standing in for a human at the keyboard.
type ScriptedAgent struct {
	Moves []game.Move
	next  int
}

func NewScriptedAgent(moves ...game.Move) *ScriptedAgent {
	return &ScriptedAgent{Moves: moves}
}

func (a *ScriptedAgent) FindMove(e game.Engine, p game.Player) (game.Move, metrics.SearchMetric, error) {
	if a.next >= len(a.Moves) {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %v after %d moves", ErrScriptExhausted, p, a.next)
	}
	move := a.Moves[a.next]
	a.next++
	return move, metrics.SearchMetric{}, nil
}
