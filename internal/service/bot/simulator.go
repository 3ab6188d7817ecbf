package bot

import (
	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
)

// SimulateReply plays the greedy reply for side: the column whose
// resulting board side itself scores highest. Only a strictly positive
// score beats the untouched board, and ties keep the leftmost column.
func SimulateReply(b domain.Board, columns []int, side domain.Side, depth int) domain.Board {
	best := b
	bestScore := 0

	for _, col := range columns {
		candidate := b.Apply(col, side)
		score := Evaluate(candidate, side, depth)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	return best
}
