package bot

import (
	"math"

	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
)

const (
	DefaultDepth = 4

	// NoMove is reported for positions that are already decided.
	NoMove = -1

	minScore = math.MinInt
	maxScore = math.MaxInt
)

// Result is the column picked at a node and the score backing it.
type Result struct {
	Column int `json:"column"`
	Score  int `json:"score"`
}

// Search runs depth limited minimax with alpha-beta pruning. study is the
// side the returned move is optimised for and current is the side to
// move at this node.
func Search(b domain.Board, depth, alpha, beta int, maximizing bool, study, current domain.Side) Result {
	s := searcher{prune: true}
	return s.search(b, depth, alpha, beta, maximizing, study, current)
}

// searcher carries per-search bookkeeping. It is never shared between
// goroutines.
type searcher struct {
	prune bool
	nodes int64
}

func (s *searcher) search(b domain.Board, depth, alpha, beta int, maximizing bool, study, current domain.Side) Result {
	s.nodes++

	if depth == 0 || domain.Detect(b, current) != domain.Ongoing {
		return Result{Column: NoMove, Score: Evaluate(b, study, depth+1)}
	}

	columns := b.PlayableColumns()
	if len(columns) == 0 {
		return Result{Column: NoMove, Score: Evaluate(b, study, depth+1)}
	}

	// the opponent commits to its greedy reply before we branch
	if current != study {
		b = SimulateReply(b, columns, current, depth)
	}

	best := Result{Column: columns[0], Score: maxScore}
	if maximizing {
		best.Score = minScore
	}

	for _, col := range columns {
		child := b.Apply(col, current)
		score := s.search(child, depth-1, alpha, beta, !maximizing, study, current.Opponent()).Score

		if maximizing {
			if score > best.Score {
				best = Result{Column: col, Score: score}
			}
			alpha = max(alpha, score)
		} else {
			if score < best.Score {
				best = Result{Column: col, Score: score}
			}
			beta = min(beta, score)
		}

		if s.prune && alpha >= beta {
			break
		}
	}

	return best
}
