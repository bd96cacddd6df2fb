package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("rejecting non-positive dimensions", func(t *testing.T) {
		_, err := NewBoard(0, 3)
		require.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("reporting out of bounds instead of failing", func(t *testing.T) {
		b, err := NewBoard(2, 3)
		require.NoError(t, err)

		require.Equal(t, Empty, b.At(1, 2))
		require.Equal(t, OutOfBounds, b.At(-1, 0), "Negative row should be out of bounds")
		require.Equal(t, OutOfBounds, b.At(2, 0), "Row past the end should be out of bounds")
		require.Equal(t, OutOfBounds, b.At(0, 3), "Column past the end should be out of bounds")
	})

	t.Run("copying without sharing cells", func(t *testing.T) {
		b, err := ParseBoard("X.", ".O")
		require.NoError(t, err)

		copied := b.Copy()
		copied.set(0, 1, P2)

		require.Equal(t, Empty, b.At(0, 1), "Original should not see writes to the copy")
		require.False(t, b.Equal(copied))
		require.NotEqual(t, b.Hash(), copied.Hash())
	})

	t.Run("comparing boards cell by cell", func(t *testing.T) {
		a, _ := ParseBoard("X.O", "...")
		b, _ := ParseBoard("X.O", "...")
		c, _ := ParseBoard("X.O")

		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
		require.False(t, a.Equal(c), "Different dimensions should never be equal")
	})

	t.Run("parsing rejects ragged rows", func(t *testing.T) {
		_, err := ParseBoard("XO", "X")
		require.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("finding runs in every direction", func(t *testing.T) {
		horizontal, _ := ParseBoard("....", ".XXX", "....")
		vertical, _ := ParseBoard("O..", "O..", "O..")
		diagonal, _ := ParseBoard("X..", ".X.", "..X")
		antiDiagonal, _ := ParseBoard("..O", ".O.", "O..")
		none, _ := ParseBoard("XXO", "OOX", "XXO")

		require.Equal(t, Player1, horizontal.findRun(3))
		require.Equal(t, Player2, vertical.findRun(3))
		require.Equal(t, Player1, diagonal.findRun(3))
		require.Equal(t, Player2, antiDiagonal.findRun(3))
		require.Equal(t, NoPlayer, none.findRun(3))
	})
}

func TestNew(t *testing.T) {
	t.Run("creating each kind with default dimensions", func(t *testing.T) {
		cases := []struct {
			kind       Kind
			rows, cols int
		}{
			{TicTacToe, 3, 3},
			{Connect4, 6, 7},
			{Reversi, 8, 8},
		}
		for _, tc := range cases {
			e, err := New(tc.kind)
			require.NoError(t, err)
			require.Equal(t, tc.kind, e.Kind())
			rows, cols := e.Dimensions()
			require.Equal(t, tc.rows, rows, "Unexpected rows for %v", tc.kind)
			require.Equal(t, tc.cols, cols, "Unexpected cols for %v", tc.kind)
		}
	})

	t.Run("failing on unknown kinds", func(t *testing.T) {
		e, err := New(Kind(42))
		require.ErrorIs(t, err, ErrUnknownKind)
		require.Nil(t, e, "Should not fall back to another game")
	})

	t.Run("failing on invalid dimensions without a typed nil", func(t *testing.T) {
		e, err := NewWithSize(Reversi, 7, 8)
		require.ErrorIs(t, err, ErrInvalidDimensions)
		require.Nil(t, e)
	})

	t.Run("parsing kind names", func(t *testing.T) {
		kind, err := ParseKind(" Connect4 ")
		require.NoError(t, err)
		require.Equal(t, Connect4, kind)

		_, err = ParseKind("chess")
		require.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
	require.Equal(t, NoPlayer, NoPlayer.Opponent())
	require.False(t, NoPlayer.Valid())
	require.Equal(t, "Player2", Player2.String())
	require.Equal(t, Player1, Player1Won.Winner())
	require.Equal(t, NoPlayer, Draw.Winner())
}
