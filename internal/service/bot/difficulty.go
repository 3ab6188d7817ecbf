package bot

import (
	"errors"
	"fmt"
	"strings"
)

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// ErrUnknownDifficulty is returned for anything but easy, medium or hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

var difficultyDepths = map[BotDifficulty]int{
	DifficultyEasy:   2,
	DifficultyMedium: 3,
	DifficultyHard:   DefaultDepth,
}

// ParseDifficulty validates the difficulty name. An empty name means hard.
func ParseDifficulty(difficulty string) (BotDifficulty, error) {
	d := BotDifficulty(strings.ToLower(strings.TrimSpace(difficulty)))
	if d == "" {
		return DifficultyHard, nil
	}
	if _, ok := difficultyDepths[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
	return d, nil
}

// Depth is the search depth in plies for the difficulty.
func (d BotDifficulty) Depth() int {
	if depth, ok := difficultyDepths[d]; ok {
		return depth
	}
	return DefaultDepth
}

func DepthForDifficulty(difficulty string) (int, error) {
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return 0, err
	}
	return d.Depth(), nil
}
