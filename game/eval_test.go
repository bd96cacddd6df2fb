package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, 0.0, normalize(0, 0))
	require.Equal(t, 1.0, normalize(4, 0))
	require.Equal(t, -1.0, normalize(0, 4))
	require.Equal(t, 0.5, normalize(3, 1))
}

func TestEvaluateReversi(t *testing.T) {
	t.Run("balanced opening", func(t *testing.T) {
		g, _ := NewReversi(ReversiSize, ReversiSize)
		require.Equal(t, 0.0, EvaluateReversi(g, Player1))
		require.Equal(t, 0.0, EvaluateReversi(g, Player2))
	})

	t.Run("weighing mobility and corners", func(t *testing.T) {
		g := mustReversi(t,
			"X...",
			".O..",
			"....",
			"....",
		)
		// Mobility 1-0, corner 25 against interior 1
		require.InDelta(t, 34.0, EvaluateReversi(g, Player1), 1e-9)
		require.InDelta(t, -34.0, EvaluateReversi(g, Player2), 1e-9)
	})

	t.Run("square weights", func(t *testing.T) {
		b, _ := NewBoard(8, 8)
		require.Equal(t, ReversiCornerWeight, squareWeight(b, 7, 0))
		require.Equal(t, ReversiEdgeWeight, squareWeight(b, 0, 3))
		require.Equal(t, ReversiEdgeWeight, squareWeight(b, 4, 7))
		require.Equal(t, ReversiInteriorWeight, squareWeight(b, 3, 3))
	})
}

func TestEvaluateConnect4(t *testing.T) {
	t.Run("empty board is neutral", func(t *testing.T) {
		g, _ := NewConnect4(Connect4Rows, Connect4Cols)
		require.Equal(t, 0.0, EvaluateConnect4(g, Player1))
	})

	t.Run("favouring open threes", func(t *testing.T) {
		g := mustConnect4(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			".XXX.O.",
		)
		score := EvaluateConnect4(g, Player1)
		require.Greater(t, score, 0.0)
		require.LessOrEqual(t, score, Connect4EvalScale, "Heuristic should stay below a win")
		require.InDelta(t, -score, EvaluateConnect4(g, Player2), 1e-9)
	})

	t.Run("blocked windows score nothing", func(t *testing.T) {
		b, _ := ParseBoard("XXOX")
		counts, ok := windowCounts(b, 0, 0, direction{0, 1}, 4)
		require.True(t, ok)
		require.Equal(t, 0.0, windowScore(counts[P1], counts[P2]))

		_, ok = windowCounts(b, 0, 1, direction{0, 1}, 4)
		require.False(t, ok, "Window leaving the board should be skipped")
	})
}

func TestEvaluateNeutral(t *testing.T) {
	g := NewTicTacToe()
	require.Equal(t, 0.0, EvaluateNeutral(g, Player1))
}
