package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func place(b Board, cell Cell, points ...Point) Board {
	for _, p := range points {
		b[p.Row][p.Col] = cell
	}
	return b
}

func TestLineTable(t *testing.T) {
	require.Len(t, LinesFor(Horizontal), Rows)
	require.Len(t, LinesFor(Vertical), Columns)
	require.Len(t, LinesFor(Diagonal), Rows+Columns-1)
	require.Len(t, LinesFor(MirroredDiagonal), Rows+Columns-1)

	for _, dir := range []Direction{Diagonal, MirroredDiagonal} {
		cells := 0
		for _, line := range LinesFor(dir) {
			cells += len(line)
		}
		require.Equal(t, Cells, cells, "every cell sits on exactly one %s", dir)
	}
}

func TestRunLengths(t *testing.T) {
	b := NewBoard()
	b = place(b, Mine, Point{0, 0}, Point{0, 1}, Point{0, 3}, Point{0, 4}, Point{0, 5})
	b = place(b, Theirs, Point{0, 2})
	row := LinesFor(Horizontal)[0]

	require.Equal(t, []int{2, 3}, RunLengths(&b, row, Mine))
	require.Equal(t, []int{1}, RunLengths(&b, row, Theirs))
	require.Nil(t, RunLengths(&b, LinesFor(Horizontal)[1], Mine))
	require.Equal(t, 3, LongestRun(&b, row, Mine))
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name   string
		points []Point
	}{
		{"horizontal", []Point{{0, 2}, {0, 3}, {0, 4}, {0, 5}}},
		{"vertical", []Point{{1, 6}, {2, 6}, {3, 6}, {4, 6}}},
		{"diagonal", []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"mirrored diagonal", []Point{{2, 6}, {3, 5}, {4, 4}, {5, 3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := place(NewBoard(), Mine, tc.points...)

			require.Equal(t, Win, Detect(b, SideMine))
			require.Equal(t, Loss, Detect(b, SideTheirs))

			winner, ok := Winner(b)
			require.True(t, ok)
			require.Equal(t, SideMine, winner)
		})
	}

	t.Run("three in a row is ongoing", func(t *testing.T) {
		b := place(NewBoard(), Theirs, Point{0, 0}, Point{0, 1}, Point{0, 2})

		require.Equal(t, Ongoing, Detect(b, SideMine))
		_, ok := Winner(b)
		require.False(t, ok)
	})

	t.Run("run broken by the other side is not a win", func(t *testing.T) {
		b := place(NewBoard(), Theirs, Point{0, 0}, Point{0, 1}, Point{0, 3}, Point{0, 4})
		b = place(b, Mine, Point{0, 2})

		require.Equal(t, Ongoing, Detect(b, SideTheirs))
	})

	t.Run("full board without four is a tie", func(t *testing.T) {
		b := tieBoard()

		require.True(t, b.IsFull())
		require.Equal(t, Tie, Detect(b, SideMine))
		require.Equal(t, Tie, Detect(b, SideTheirs))
	})
}

const tieEncoding = "mhhmhmhmhmhhhmmmhhmhmhmmmmmhhmhmhmmhhhhmhm"

func tieBoard() Board {
	b, err := ParseBoard(tieEncoding)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCheckGameOver(t *testing.T) {
	t.Run("ongoing", func(t *testing.T) {
		require.NoError(t, CheckGameOver(NewBoard().Apply(3, SideTheirs)))
	})

	t.Run("tie", func(t *testing.T) {
		err := CheckGameOver(tieBoard())
		require.ErrorIs(t, err, ErrGameOver)
		require.ErrorIs(t, err, ErrBoardFull)
		require.Equal(t, "Board full", err.Error())
	})

	t.Run("machine won", func(t *testing.T) {
		b := place(NewBoard(), Mine, Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0})
		err := CheckGameOver(b)
		require.ErrorIs(t, err, ErrMachineWon)
		require.False(t, errors.Is(err, ErrHumanWon))
	})

	t.Run("human won", func(t *testing.T) {
		b := place(NewBoard(), Theirs, Point{0, 3}, Point{0, 4}, Point{0, 5}, Point{0, 6})
		err := CheckGameOver(b)
		require.ErrorIs(t, err, ErrGameOver)
		require.ErrorIs(t, err, ErrHumanWon)
	})
}
