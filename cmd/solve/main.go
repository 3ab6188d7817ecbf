// Command solve prints the machine's next move for one encoded board.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
	"github.com/iamasit07/4-in-a-row/solver/internal/service/solver"
	"github.com/iamasit07/4-in-a-row/solver/pkg/auth"
	"github.com/iamasit07/4-in-a-row/solver/pkg/logger"
)

func main() {
	board := flag.String("board", strings.Repeat("0", domain.Cells), "42 characters of m, h and 0, column by column from the bottom")
	depth := flag.Int("depth", 4, "search depth")
	difficulty := flag.String("difficulty", "", "easy, medium or hard; overrides -depth")
	parallel := flag.Int("parallel", 0, "root workers, 0 searches sequentially")
	tokenFor := flag.String("token-for", "", "print an API token for this client signed with API_JWT_SECRET and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the token printed by -token-for")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger.Setup(level, "console")

	if *tokenFor != "" {
		secret := os.Getenv("API_JWT_SECRET")
		if secret == "" {
			log.Fatal().Msg("API_JWT_SECRET is not set")
		}
		token, err := auth.GenerateAPIToken(secret, *tokenFor, *tokenTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("signing token")
		}
		fmt.Println(token)
		return
	}

	parsed, err := domain.ParseBoard(*board)
	if err != nil {
		log.Fatal().Err(err).Msg("bad board")
	}
	fmt.Println(parsed.String())

	svc := solver.NewService(solver.Settings{Depth: *depth, ParallelRoot: *parallel}, nil)
	move, err := svc.BestMove(context.Background(), *board, *difficulty)
	if errors.Is(err, domain.ErrGameOver) {
		fmt.Printf("game over: %v\n", err)
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}

	fmt.Printf("next move: column %d (score %d, depth %d, %d nodes)\n", move.Column, move.Score, move.Depth, move.Nodes)
}
