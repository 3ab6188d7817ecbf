package solver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
	"github.com/iamasit07/4-in-a-row/solver/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/solver/pkg/logger"
)

const cacheKeyPrefix = "move:"

// ErrNoMove means the engine found nothing to play on a board that passed
// the game over check. It indicates a bug, not bad input.
var ErrNoMove = errors.New("no playable column")

type CacheRepository interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Del(ctx context.Context, keys ...string) error
}

type Settings struct {
	Depth        int
	ParallelRoot int
	CacheTTL     time.Duration
}

// Move is the answer handed to clients. Column is 1-based.
type Move struct {
	Column int   `json:"column"`
	Score  int   `json:"score"`
	Depth  int   `json:"depth"`
	Nodes  int64 `json:"nodes"`
	Cached bool  `json:"cached"`
}

// Service is the entry point for move requests (facade)
type Service struct {
	settings Settings
	cache    CacheRepository
	logger   zerolog.Logger
}

// NewService builds the service. cache may be nil.
func NewService(settings Settings, cache CacheRepository) *Service {
	if settings.Depth <= 0 {
		settings.Depth = bot.DefaultDepth
	}
	return &Service{
		settings: settings,
		cache:    cache,
		logger:   logger.Component("solver"),
	}
}

// BestMove validates the encoded board, refuses finished games and
// returns the machine's next move. difficulty overrides the configured
// depth when not empty.
func (s *Service) BestMove(ctx context.Context, encoded, difficulty string) (Move, error) {
	board, err := domain.ParseBoard(encoded)
	if err != nil {
		return Move{}, err
	}

	if err := domain.CheckGameOver(board); err != nil {
		return Move{}, err
	}

	depth := s.settings.Depth
	if difficulty != "" {
		if depth, err = bot.DepthForDifficulty(difficulty); err != nil {
			return Move{}, err
		}
	}

	key := CacheKey(depth, encoded)
	if move, ok := s.fromCache(ctx, key); ok {
		return move, nil
	}

	engine := bot.NewEngine(bot.WithDepth(depth), bot.WithParallelRoot(s.settings.ParallelRoot))
	decision, err := engine.BestMove(ctx, board, domain.SideMine)
	if err != nil {
		return Move{}, err
	}
	if decision.Column == bot.NoMove {
		return Move{}, fmt.Errorf("%w for board %s", ErrNoMove, encoded)
	}

	move := Move{
		Column: decision.Column + 1,
		Score:  decision.Score,
		Depth:  decision.Depth,
		Nodes:  decision.Nodes,
	}

	s.logger.Debug().
		Str("board", encoded).
		Int("depth", depth).
		Int("column", move.Column).
		Int("score", move.Score).
		Int64("nodes", decision.Nodes).
		Dur("elapsed", decision.Elapsed).
		Msg("move computed")

	s.toCache(ctx, key, move)
	return move, nil
}

func CacheKey(depth int, encoded string) string {
	return fmt.Sprintf("%s%d:%s", cacheKeyPrefix, depth, encoded)
}

func (s *Service) fromCache(ctx context.Context, key string) (Move, bool) {
	if s.cache == nil {
		return Move{}, false
	}

	value, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return Move{}, false
	}
	if !found {
		return Move{}, false
	}

	var move Move
	if err := json.Unmarshal([]byte(value), &move); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("dropping corrupt cache entry")
		_ = s.cache.Del(ctx, key)
		return Move{}, false
	}
	move.Cached = true
	return move, true
}

func (s *Service) toCache(ctx context.Context, key string, move Move) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(move)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.settings.CacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
