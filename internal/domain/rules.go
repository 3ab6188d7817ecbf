package domain

// Detect reports whether the game on b is over, from ref's point of view.
// Lines are scanned rows, columns, diagonals, mirrored diagonals and the
// first four-in-a-row found decides the result.
func Detect(b Board, ref Side) Outcome {
	own, other := ref.Cell(), ref.Opponent().Cell()

	for _, dir := range Directions {
		for _, line := range LinesFor(dir) {
			if len(line) < ToWin {
				continue
			}
			if LongestRun(&b, line, own) >= ToWin {
				return Win
			}
			if LongestRun(&b, line, other) >= ToWin {
				return Loss
			}
		}
	}

	if b.IsFull() {
		return Tie
	}
	return Ongoing
}

// Winner returns the side holding a four-in-a-row, if any.
func Winner(b Board) (Side, bool) {
	switch Detect(b, SideMine) {
	case Win:
		return SideMine, true
	case Loss:
		return SideTheirs, true
	default:
		return 0, false
	}
}

// CheckGameOver is the precondition run before a search. It returns nil
// while the game can go on, otherwise one of ErrBoardFull, ErrMachineWon,
// ErrHumanWon wrapped in ErrGameOver.
func CheckGameOver(b Board) error {
	switch Detect(b, SideMine) {
	case Tie:
		return gameOver(ErrBoardFull)
	case Win:
		return gameOver(ErrMachineWon)
	case Loss:
		return gameOver(ErrHumanWon)
	default:
		return nil
	}
}

type gameOverError struct {
	reason Error
}

func gameOver(reason Error) error {
	return &gameOverError{reason: reason}
}

func (e *gameOverError) Error() string {
	return e.reason.Error()
}

func (e *gameOverError) Unwrap() []error {
	return []error{ErrGameOver, e.reason}
}
