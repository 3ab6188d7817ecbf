package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
)

func mustParse(t *testing.T, s string) domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(s)
	require.NoError(t, err)
	return b
}

var sampleBoards = []string{
	"m00000h00000mm0000hmh000h00000h00000000000",
	"h00000000000000000000000000000000000000000",
	"hm0000hmh000mh0000hm0000000000000000000000",
	"000000hh0000mmh000hmm000hmmh00h00000000000",
	"hmhm00mh0000hmh000mhm000hm0000h00000000000",
}

func TestEvaluate(t *testing.T) {
	t.Run("empty board is neutral", func(t *testing.T) {
		require.Equal(t, 0, Evaluate(domain.NewBoard(), domain.SideMine, 5))
	})

	t.Run("single corner piece", func(t *testing.T) {
		b := domain.NewBoard().Apply(0, domain.SideTheirs)

		// the piece sits on one row, one column and two diagonals
		require.Equal(t, -8, Evaluate(b, domain.SideMine, 1))
		require.Equal(t, 4, Evaluate(b, domain.SideTheirs, 1))
		require.Equal(t, -24, Evaluate(b, domain.SideMine, 3))
	})

	t.Run("runs use the weight of their length", func(t *testing.T) {
		b := domain.NewBoard().
			Apply(1, domain.SideMine).
			Apply(2, domain.SideMine).
			Apply(3, domain.SideMine)

		// row run of 3, three column runs of 1 and six diagonal runs of 1
		require.Equal(t, 100+3+6, Evaluate(b, domain.SideMine, 1))
		require.Equal(t, -2*(100+3+6), Evaluate(b, domain.SideTheirs, 1))
	})

	t.Run("runs longer than four weigh like four", func(t *testing.T) {
		four := domain.NewBoard()
		five := domain.NewBoard()
		for col := 0; col < 4; col++ {
			four = four.Apply(col, domain.SideMine)
		}
		for col := 0; col < 5; col++ {
			five = five.Apply(col, domain.SideMine)
		}

		// one more column run and two more diagonal runs, same row weight
		require.Equal(t, Evaluate(four, domain.SideMine, 1)+3, Evaluate(five, domain.SideMine, 1))
	})

	t.Run("scaled by depth", func(t *testing.T) {
		for _, s := range sampleBoards {
			b := mustParse(t, s)
			require.Equal(t, 4*Evaluate(b, domain.SideMine, 1), Evaluate(b, domain.SideMine, 4))
		}
	})
}

func TestEvaluateSymmetry(t *testing.T) {
	t.Run("swapping pieces swaps perspective", func(t *testing.T) {
		for _, s := range sampleBoards {
			b := mustParse(t, s)
			for _, side := range []domain.Side{domain.SideMine, domain.SideTheirs} {
				require.Equal(t, Evaluate(b, side, 3), Evaluate(b.Swapped(), side.Opponent(), 3), s)
			}
		}
	})

	t.Run("negated on the empty board", func(t *testing.T) {
		b := domain.NewBoard()
		require.Equal(t, Evaluate(b, domain.SideMine, 2), -Evaluate(b.Swapped(), domain.SideMine, 2))
	})
}

func TestSimulateReply(t *testing.T) {
	t.Run("ties keep the leftmost column", func(t *testing.T) {
		b := domain.NewBoard()
		got := SimulateReply(b, b.PlayableColumns(), domain.SideTheirs, 1)

		require.Equal(t, b.Apply(0, domain.SideTheirs), got)
	})

	t.Run("picks the highest scoring reply", func(t *testing.T) {
		b := domain.NewBoard().
			Apply(0, domain.SideTheirs).
			Apply(6, domain.SideMine).
			Apply(1, domain.SideTheirs).
			Apply(6, domain.SideMine)
		got := SimulateReply(b, b.PlayableColumns(), domain.SideTheirs, 1)

		// extending the bottom row pair to three is worth the most
		require.Equal(t, b.Apply(2, domain.SideTheirs), got)
	})

	t.Run("keeps the board when no reply is positive", func(t *testing.T) {
		b := domain.NewBoard().
			Apply(0, domain.SideMine).
			Apply(1, domain.SideMine).
			Apply(2, domain.SideMine)
		got := SimulateReply(b, b.PlayableColumns(), domain.SideTheirs, 1)

		require.Equal(t, b, got)
	})

	t.Run("only the given columns are tried", func(t *testing.T) {
		b := domain.NewBoard()
		got := SimulateReply(b, []int{5}, domain.SideMine, 2)

		require.Equal(t, b.Apply(5, domain.SideMine), got)
	})
}
