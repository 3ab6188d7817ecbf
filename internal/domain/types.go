package domain

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
	Cells   = Rows * Columns
)

// Cell is the value stored in one grid square. It keeps the signed
// convention of the wire format: the machine is +1, the human is -1.
type Cell int8

const (
	Empty  Cell = 0
	Mine   Cell = 1
	Theirs Cell = -1
)

// Side identifies who places a piece. The engine only ever works with
// sides; cells are derived from them when the grid is touched.
type Side uint8

const (
	SideMine Side = iota + 1
	SideTheirs
)

func (s Side) Opponent() Side {
	if s == SideMine {
		return SideTheirs
	}
	return SideMine
}

func (s Side) Cell() Cell {
	if s == SideMine {
		return Mine
	}
	return Theirs
}

func (s Side) String() string {
	switch s {
	case SideMine:
		return "machine"
	case SideTheirs:
		return "human"
	default:
		return "unknown"
	}
}

// Outcome is the state of a board as seen by a reference side.
type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Loss
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	default:
		return "ongoing"
	}
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidBoard     Error = "invalid board"
	ErrInvalidLength    Error = "board must be exactly 42 characters long"
	ErrInvalidCharacter Error = "board may only contain 'm', 'h' and '0'"
	ErrInvalidTurnCount Error = "human must have as many pieces as the machine or exactly one more"
	ErrFloatingPiece    Error = "pieces must rest on the bottom or on another piece"

	ErrGameOver   Error = "game over"
	ErrBoardFull  Error = "Board full"
	ErrMachineWon Error = "machine won"
	ErrHumanWon   Error = "human won"
)
