package domain

// Point addresses one cell of the grid.
type Point struct {
	Row int
	Col int
}

// Line is an ordered list of grid positions: a row, a column or a
// diagonal. Lines only hold indexes, never cells.
type Line []Point

type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal         // bottom-left to top-right
	MirroredDiagonal // bottom-right to top-left
)

// Directions in the order the detectors walk them.
var Directions = [...]Direction{Horizontal, Vertical, Diagonal, MirroredDiagonal}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "mirrored diagonal"
	}
}

// computed once, read only afterwards
var lineTable = [...][]Line{
	Horizontal:       rowLines(),
	Vertical:         columnLines(),
	Diagonal:         diagonalLines(),
	MirroredDiagonal: mirroredDiagonalLines(),
}

// LinesFor returns every line of the given direction, including the
// short diagonals in the corners.
func LinesFor(d Direction) []Line {
	return lineTable[d]
}

func rowLines() []Line {
	lines := make([]Line, 0, Rows)
	for row := 0; row < Rows; row++ {
		line := make(Line, 0, Columns)
		for col := 0; col < Columns; col++ {
			line = append(line, Point{Row: row, Col: col})
		}
		lines = append(lines, line)
	}
	return lines
}

func columnLines() []Line {
	lines := make([]Line, 0, Columns)
	for col := 0; col < Columns; col++ {
		line := make(Line, 0, Rows)
		for row := 0; row < Rows; row++ {
			line = append(line, Point{Row: row, Col: col})
		}
		lines = append(lines, line)
	}
	return lines
}

// cells where col-row is constant
func diagonalLines() []Line {
	lines := make([]Line, 0, Rows+Columns-1)
	for offset := -(Rows - 1); offset < Columns; offset++ {
		row := max(0, -offset)
		col := row + offset
		var line Line
		for row < Rows && col < Columns {
			line = append(line, Point{Row: row, Col: col})
			row++
			col++
		}
		lines = append(lines, line)
	}
	return lines
}

// the diagonals of the horizontally mirrored grid: col+row is constant
func mirroredDiagonalLines() []Line {
	lines := make([]Line, 0, Rows+Columns-1)
	for sum := 0; sum < Rows+Columns-1; sum++ {
		row := max(0, sum-(Columns-1))
		col := sum - row
		var line Line
		for row < Rows && col >= 0 {
			line = append(line, Point{Row: row, Col: col})
			row++
			col--
		}
		lines = append(lines, line)
	}
	return lines
}

// RunLengths returns the length of every maximal run of cell along
// line, in order. Cells with any other value, including Empty, end a run.
func RunLengths(b *Board, line Line, cell Cell) []int {
	var runs []int
	run := 0
	for _, p := range line {
		if b[p.Row][p.Col] == cell {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, run)
			run = 0
		}
	}
	if run > 0 {
		runs = append(runs, run)
	}
	return runs
}

// LongestRun is the length of the longest run of cell along line.
func LongestRun(b *Board, line Line, cell Cell) int {
	longest, run := 0, 0
	for _, p := range line {
		if b[p.Row][p.Col] == cell {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}
