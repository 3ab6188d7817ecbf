package bot

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
)

type Option func(e *Engine)

// WithDepth sets the search depth in plies.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithParallelRoot searches the root moves on up to workers goroutines.
// Values below 2 keep the search sequential.
func WithParallelRoot(workers int) Option {
	return func(e *Engine) {
		e.workers = workers
	}
}

// WithoutPruning turns the search into plain minimax. The result is the
// same, only slower.
func WithoutPruning() Option {
	return func(e *Engine) {
		e.prune = false
	}
}

type Engine struct {
	depth   int
	workers int
	prune   bool
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{ // Default values
		depth:   DefaultDepth,
		workers: 1,
		prune:   true,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Depth() int {
	return e.depth
}

// Decision is the outcome of a whole search.
type Decision struct {
	Result
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

// BestMove searches b for side, which is both the side to move and the
// side being optimised for. ctx is only looked at between root moves.
func (e *Engine) BestMove(ctx context.Context, b domain.Board, side domain.Side) (Decision, error) {
	start := time.Now()

	var (
		result Result
		nodes  int64
		err    error
	)
	if e.workers > 1 {
		result, nodes, err = e.searchRootParallel(ctx, b, side)
	} else {
		result, nodes, err = e.searchRoot(ctx, b, side)
	}
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Result:  result,
		Depth:   e.depth,
		Nodes:   nodes,
		Elapsed: time.Since(start),
	}, nil
}

// leaf handles the root when there is nothing to search.
func (e *Engine) leaf(b domain.Board, side domain.Side) ([]int, *Result) {
	if e.depth == 0 || domain.Detect(b, side) != domain.Ongoing {
		return nil, &Result{Column: NoMove, Score: Evaluate(b, side, e.depth+1)}
	}
	columns := b.PlayableColumns()
	if len(columns) == 0 {
		return nil, &Result{Column: NoMove, Score: Evaluate(b, side, e.depth+1)}
	}
	return columns, nil
}

func (e *Engine) searchRoot(ctx context.Context, b domain.Board, side domain.Side) (Result, int64, error) {
	s := searcher{prune: e.prune, nodes: 1}

	columns, done := e.leaf(b, side)
	if done != nil {
		return *done, s.nodes, nil
	}

	best := Result{Column: columns[0], Score: minScore}
	alpha := minScore
	for _, col := range columns {
		if err := ctx.Err(); err != nil {
			return Result{}, s.nodes, err
		}

		score := s.search(b.Apply(col, side), e.depth-1, alpha, maxScore, false, side, side.Opponent()).Score
		if score > best.Score {
			best = Result{Column: col, Score: score}
		}
		alpha = max(alpha, score)
	}

	return best, s.nodes, nil
}

// searchRootParallel gives every root move its own goroutine and a full
// window. Exact child values make the final pick identical to the
// sequential one.
func (e *Engine) searchRootParallel(ctx context.Context, b domain.Board, side domain.Side) (Result, int64, error) {
	columns, done := e.leaf(b, side)
	if done != nil {
		return *done, 1, nil
	}

	scores := make([]int, len(columns))
	nodes := make([]int64, len(columns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, col := range columns {
		i, col := i, col
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := searcher{prune: e.prune}
			scores[i] = s.search(b.Apply(col, side), e.depth-1, minScore, maxScore, false, side, side.Opponent()).Score
			nodes[i] = s.nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, 0, err
	}

	total := int64(1)
	best := Result{Column: columns[0], Score: minScore}
	for i, col := range columns {
		total += nodes[i]
		if scores[i] > best.Score {
			best = Result{Column: col, Score: scores[i]}
		}
	}

	return best, total, nil
}

// CalculateBestMove selects the best column based on difficulty
func CalculateBestMove(b domain.Board, side domain.Side, difficulty string) (int, error) {
	depth, err := DepthForDifficulty(difficulty)
	if err != nil {
		return NoMove, err
	}

	decision, err := NewEngine(WithDepth(depth)).BestMove(context.Background(), b, side)
	if err != nil {
		return NoMove, err
	}
	return decision.Column, nil
}
