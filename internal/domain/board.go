package domain

import "strings"

// Board is the 6x7 grid. Row 0 is the bottom row, so pieces fall
// towards lower row indexes. Board is a value: assigning or passing it
// copies the whole grid.
type Board [Rows][Columns]Cell

func NewBoard() Board {
	return Board{}
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// Height is the number of pieces stacked in column.
func (b Board) Height(column int) int {
	height := 0
	for row := 0; row < Rows; row++ {
		if b[row][column] != Empty {
			height++
		}
	}
	return height
}

func (b Board) IsColumnFull(column int) bool {
	return b.Height(column) == Rows
}

// Apply returns a copy of the board with side's piece dropped into column.
// A full or out of range column gives back the board unchanged.
func (b Board) Apply(column int, side Side) Board {
	if !IsValidColumn(column) {
		return b
	}
	for row := 0; row < Rows; row++ {
		if b[row][column] == Empty {
			b[row][column] = side.Cell()
			return b
		}
	}
	return b
}

// PlayableColumns lists the columns that still have room, left to right.
func (b Board) PlayableColumns() []int {
	columns := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if !b.IsColumnFull(col) {
			columns = append(columns, col)
		}
	}
	return columns
}

func (b Board) Count(cell Cell) int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == cell {
				count++
			}
		}
	}
	return count
}

func (b Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// Swapped exchanges the machine and human pieces.
func (b Board) Swapped() Board {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			b[row][col] = -b[row][col]
		}
	}
	return b
}

// String draws the board top row first, the way it looks on screen.
func (b Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellToByte(b[row][col]))
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('1' + col))
	}
	sb.WriteByte('\n')
	return sb.String()
}
