package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillColumn(b Board, column int) Board {
	side := SideTheirs
	for i := 0; i < Rows; i++ {
		b = b.Apply(column, side)
		side = side.Opponent()
	}
	return b
}

func TestApply(t *testing.T) {
	t.Run("pieces stack from the bottom", func(t *testing.T) {
		b := NewBoard().Apply(2, SideTheirs).Apply(2, SideMine)

		require.Equal(t, Theirs, b[0][2])
		require.Equal(t, Mine, b[1][2])
		require.Equal(t, 2, b.Height(2))
	})

	t.Run("original board is left untouched", func(t *testing.T) {
		b := NewBoard()
		_ = b.Apply(0, SideMine)

		require.Equal(t, NewBoard(), b)
	})

	t.Run("full column is a no-op", func(t *testing.T) {
		b := fillColumn(NewBoard(), 4)
		require.True(t, b.IsColumnFull(4))

		require.Equal(t, b, b.Apply(4, SideMine))
	})

	t.Run("out of range column is a no-op", func(t *testing.T) {
		b := NewBoard().Apply(1, SideTheirs)

		require.Equal(t, b, b.Apply(-1, SideMine))
		require.Equal(t, b, b.Apply(Columns, SideMine))
	})
}

func TestPlayableColumns(t *testing.T) {
	t.Run("empty board has every column", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, NewBoard().PlayableColumns())
	})

	t.Run("full columns are skipped and order is ascending", func(t *testing.T) {
		b := fillColumn(NewBoard(), 0)
		b = fillColumn(b, 3)
		b = fillColumn(b, 6)

		require.Equal(t, []int{1, 2, 4, 5}, b.PlayableColumns())
	})

	t.Run("full board has none", func(t *testing.T) {
		b := NewBoard()
		for col := 0; col < Columns; col++ {
			b = fillColumn(b, col)
		}

		require.Empty(t, b.PlayableColumns())
		require.True(t, b.IsFull())
	})
}

func TestSwapped(t *testing.T) {
	b := NewBoard().Apply(0, SideTheirs).Apply(1, SideMine)
	s := b.Swapped()

	require.Equal(t, Mine, s[0][0])
	require.Equal(t, Theirs, s[0][1])
	require.Equal(t, b, s.Swapped())
}

func TestSide(t *testing.T) {
	require.Equal(t, SideTheirs, SideMine.Opponent())
	require.Equal(t, SideMine, SideTheirs.Opponent())
	require.Equal(t, Mine, SideMine.Cell())
	require.Equal(t, Theirs, SideTheirs.Cell())
}

func TestBoardString(t *testing.T) {
	b := NewBoard().Apply(0, SideTheirs).Apply(0, SideMine).Apply(6, SideTheirs)

	expected := "" +
		"0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0\n" +
		"m 0 0 0 0 0 0\n" +
		"h 0 0 0 0 0 h\n" +
		"1 2 3 4 5 6 7\n"
	require.Equal(t, expected, b.String())
}
