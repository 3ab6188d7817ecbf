package domain

import "fmt"

const (
	mineChar   = 'm'
	theirsChar = 'h'
	emptyChar  = '0'
)

// ParseBoard decodes the 42 character wire format. The string is column
// major: character i belongs to column i/6, row i%6 counted from the
// bottom. Checks run in order length, alphabet, piece count, gravity and
// every failure wraps ErrInvalidBoard.
func ParseBoard(s string) (Board, error) {
	var board Board

	if len(s) != Cells {
		return board, fmt.Errorf("%w: %w (got %d)", ErrInvalidBoard, ErrInvalidLength, len(s))
	}

	for i := 0; i < len(s); i++ {
		cell, ok := byteToCell(s[i])
		if !ok {
			return board, fmt.Errorf("%w: %w (found %q at position %d)", ErrInvalidBoard, ErrInvalidCharacter, s[i], i)
		}
		board[i%Rows][i/Rows] = cell
	}

	mine, theirs := board.Count(Mine), board.Count(Theirs)
	if theirs != mine && theirs != mine+1 {
		return board, fmt.Errorf("%w: %w (machine %d, human %d)", ErrInvalidBoard, ErrInvalidTurnCount, mine, theirs)
	}

	for col := 0; col < Columns; col++ {
		seenEmpty := false
		for row := 0; row < Rows; row++ {
			if board[row][col] == Empty {
				seenEmpty = true
				continue
			}
			if seenEmpty {
				return board, fmt.Errorf("%w: %w (column %d)", ErrInvalidBoard, ErrFloatingPiece, col+1)
			}
		}
	}

	return board, nil
}

// Encode is the inverse of ParseBoard.
func (b Board) Encode() string {
	out := make([]byte, Cells)
	for i := range out {
		out[i] = cellToByte(b[i%Rows][i/Rows])
	}
	return string(out)
}

func byteToCell(c byte) (Cell, bool) {
	switch c {
	case mineChar:
		return Mine, true
	case theirsChar:
		return Theirs, true
	case emptyChar:
		return Empty, true
	default:
		return Empty, false
	}
}

func cellToByte(c Cell) byte {
	switch c {
	case Mine:
		return mineChar
	case Theirs:
		return theirsChar
	default:
		return emptyChar
	}
}
