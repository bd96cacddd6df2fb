package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Cell is the content of a board square.
type Cell int

const (
	OutOfBounds Cell = -1 // Returned for coordinates off the board
	Empty       Cell = 0
	P1          Cell = 1
	P2          Cell = 2
)

// Owner returns the player holding the cell, NoPlayer otherwise.
func (c Cell) Owner() Player {
	if c == P1 || c == P2 {
		return Player(c)
	}
	return NoPlayer
}

func (c Cell) String() string {
	switch c {
	case P1:
		return "X"
	case P2:
		return "O"
	case Empty:
		return "."
	default:
		return "#"
	}
}

// direction is a unit step on the board.
type direction struct {
	dRow, dCol int
}

// Half of the eight neighbours: enough to find every straight run once.
var lineDirections = []direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{-1, 1}, // diagonal up-right
}

var allDirections = []direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a rectangular grid of cells with dimensions fixed at construction. Boards are
// values: Copy returns an independent grid.
type Board struct {
	rows  int
	cols  int
	cells []Cell // Row-major
}

// NewBoard returns an empty board.
func NewBoard(rows, cols int) (Board, error) {
	if rows <= 0 || cols <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (b Board) Rows() int {
	return b.rows
}

func (b Board) Cols() int {
	return b.cols
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col), or OutOfBounds.
func (b Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return OutOfBounds
	}
	return b.cells[row*b.cols+col]
}

// set writes a cell. Callers check bounds first.
func (b Board) set(row, col int, c Cell) {
	b.cells[row*b.cols+col] = c
}

// Copy returns a deep copy of the board.
func (b Board) Copy() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}

// Equal compares dimensions and every cell.
func (b Board) Equal(other Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

func (b Board) IsFull() bool {
	return b.Count(Empty) == 0
}

func (b Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.rows))
	binary.Write(hasher, binary.LittleEndian, int64(b.cols))
	for _, c := range b.cells {
		hasher.Write([]byte{byte(c)})
	}

	return StateHash(hasher.Sum64())
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			sb.WriteString(b.At(r, c).String())
		}
		if r < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// findRun scans every cell as the origin of a straight run of length equal non-empty
// cells and returns the owner of the first run found.
func (b Board) findRun(length int) Player {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			cell := b.At(r, c)
			if cell == Empty {
				continue
			}
			for _, d := range lineDirections {
				if b.runFrom(r, c, d, cell, length) {
					return cell.Owner()
				}
			}
		}
	}
	return NoPlayer
}

func (b Board) runFrom(row, col int, d direction, cell Cell, length int) bool {
	for i := 1; i < length; i++ {
		if b.At(row+i*d.dRow, col+i*d.dCol) != cell {
			return false
		}
	}
	return true
}

// ParseBoard builds a board from rows of X (P1), O (P2) and . (empty). Used to set up
// positions directly.
func ParseBoard(lines ...string) (Board, error) {
	if len(lines) == 0 {
		return Board{}, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	b, err := NewBoard(len(lines), len(lines[0]))
	if err != nil {
		return Board{}, err
	}
	for r, line := range lines {
		if len(line) != b.cols {
			return Board{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, r, len(line), b.cols)
		}
		for c, ch := range line {
			switch ch {
			case 'X', 'x':
				b.set(r, c, P1)
			case 'O', 'o':
				b.set(r, c, P2)
			case '.', ' ':
				b.set(r, c, Empty)
			default:
				return Board{}, fmt.Errorf("unexpected cell %q at (%d,%d)", ch, r, c)
			}
		}
	}
	return b, nil
}
