package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustReversi(t *testing.T, lines ...string) *ReversiGame {
	t.Helper()
	b, err := ParseBoard(lines...)
	require.NoError(t, err)
	return NewReversiFromBoard(b)
}

func TestReversiSetup(t *testing.T) {
	t.Run("crisscross opening", func(t *testing.T) {
		g, err := NewReversi(ReversiSize, ReversiSize)
		require.NoError(t, err)

		require.Equal(t, P2, g.CellAt(3, 3))
		require.Equal(t, P1, g.CellAt(3, 4))
		require.Equal(t, P1, g.CellAt(4, 3))
		require.Equal(t, P2, g.CellAt(4, 4))
		p1, p2 := g.Score()
		require.Equal(t, 2, p1)
		require.Equal(t, 2, p2)
	})

	t.Run("four opening moves for Player1", func(t *testing.T) {
		g, _ := NewReversi(ReversiSize, ReversiSize)
		require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, g.LegalMoves(Player1))
		require.Equal(t, 4, g.CountLegalMoves(Player2))
		require.False(t, g.IsTerminal())
		require.Equal(t, NoOutcome, g.Winner())
	})

	t.Run("rejecting odd or small boards", func(t *testing.T) {
		_, err := NewReversi(3, 4)
		require.ErrorIs(t, err, ErrInvalidDimensions)
		_, err = NewReversi(8, 9)
		require.ErrorIs(t, err, ErrInvalidDimensions)
		_, err = NewReversi(2, 2)
		require.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestReversiMoves(t *testing.T) {
	t.Run("flipping a single bracketed piece", func(t *testing.T) {
		g, _ := NewReversi(ReversiSize, ReversiSize)

		flipped, err := g.ApplyMove(2, 3, Player1)
		require.NoError(t, err)
		require.Equal(t, 1, flipped)
		require.Equal(t, P1, g.CellAt(2, 3))
		require.Equal(t, P1, g.CellAt(3, 3), "Bracketed piece should be flipped")
		p1, p2 := g.Score()
		require.Equal(t, 4, p1)
		require.Equal(t, 1, p2)
	})

	t.Run("flipping along several directions at once", func(t *testing.T) {
		g := mustReversi(t,
			"X.X.",
			".OO.",
			"XO..",
			"....",
		)

		flipped, err := g.ApplyMove(2, 2, Player1)
		require.NoError(t, err)
		require.Equal(t, 3, flipped)

		want, _ := ParseBoard(
			"X.X.",
			".XX.",
			"XXX.",
			"....",
		)
		require.True(t, want.Equal(g.Board()), "Unexpected board:\n%v", g.Board())
	})

	t.Run("rejecting moves that bracket nothing", func(t *testing.T) {
		g, _ := NewReversi(ReversiSize, ReversiSize)
		before := g.Hash()

		require.False(t, g.IsLegalMove(0, 0, Player1))
		_, err := g.ApplyMove(0, 0, Player1)
		require.ErrorIs(t, err, ErrIllegalMove)

		require.False(t, g.IsLegalMove(3, 3, Player1), "Occupied cell should be illegal")
		require.False(t, g.IsLegalMove(8, 8, Player1), "Off-board cell should be illegal")
		require.Equal(t, before, g.Hash())
	})

	t.Run("not bracketing across an empty gap", func(t *testing.T) {
		g := mustReversi(t,
			".O.X",
			"....",
			"....",
			"....",
		)
		require.False(t, g.IsLegalMove(0, 0, Player1))
	})
}

func TestReversiOutcome(t *testing.T) {
	t.Run("one side passing is not the end", func(t *testing.T) {
		g := mustReversi(t,
			"OX..",
			"....",
			"....",
			"....",
		)
		require.False(t, g.HasLegalMove(Player1))
		require.True(t, g.HasLegalMove(Player2))
		require.False(t, g.IsTerminal())
		require.Equal(t, NoOutcome, g.Winner())
	})

	t.Run("terminal when neither side can move on a partial board", func(t *testing.T) {
		g := mustReversi(t,
			"XX..",
			"....",
			"....",
			"....",
		)
		require.True(t, g.IsTerminal())
		require.Equal(t, Player1Won, g.Winner())
	})

	t.Run("equal counts are a draw", func(t *testing.T) {
		g := mustReversi(t,
			"X..O",
			"....",
			"....",
			"....",
		)
		require.True(t, g.IsTerminal())
		require.Equal(t, Draw, g.Winner())
	})

	t.Run("full board with majority for Player2", func(t *testing.T) {
		g := mustReversi(t,
			"OOOO",
			"OOXX",
			"XXOO",
			"OOOO",
		)
		require.True(t, g.IsTerminal())
		require.Equal(t, Player2Won, g.Winner())
	})
}
