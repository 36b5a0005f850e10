// Package board implements the draughts board: a square grid of cells
// with bounds-checked accessors and the standard initial arrangement.
// The board knows nothing about move legality; that is the move
// generator's and the game's business.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDim is the side length of a standard board.
const DefaultDim = 8

// ErrOutOfBounds is returned when an accessor is called with a row or
// column outside [0, Dim).
var ErrOutOfBounds = errors.New("row and col must be within the board")

// A GameBoard is a draughts board. The zero value is not usable; create
// one with NewBoard.
type GameBoard struct {
	squares [][]Cell
	dim     int
}

// NewBoard creates a dim x dim board with the standard initial fill.
// A dim of 0 means DefaultDim. The dimension must be even and at least 4.
func NewBoard(dim int) (*GameBoard, error) {
	if dim == 0 {
		dim = DefaultDim
	}
	if dim < 4 || dim%2 != 0 {
		return nil, fmt.Errorf("board dimension must be even and at least 4, got %d", dim)
	}
	g := &GameBoard{dim: dim}
	g.squares = make([][]Cell, dim)
	for row := range g.squares {
		g.squares[row] = make([]Cell, dim)
		for col := range g.squares[row] {
			g.squares[row][col] = EmptyCell(row, col)
		}
	}
	g.FillInitial()
	return g, nil
}

// Dim returns the board dimension.
func (g *GameBoard) Dim() int {
	return g.dim
}

// IsDark returns true if the square at row, col is a dark (playable)
// square.
func IsDark(row, col int) bool {
	return row%2 != col%2
}

// EmptyCell returns the empty cell value of the proper shade for the
// square at row, col.
func EmptyCell(row, col int) Cell {
	if IsDark(row, col) {
		return EmptyDark
	}
	return EmptyLight
}

// PiecesPerSide returns the number of men each side starts with on a
// board of the given dimension.
func PiecesPerSide(dim int) int {
	return (dim/2 - 1) * (dim / 2)
}

// FillInitial resets the board to the standard starting arrangement:
// black men on the dark squares of the top (dim-2)/2 rows, white men
// mirrored at the bottom, the two middle rows empty.
func (g *GameBoard) FillInitial() {
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			g.squares[row][col] = EmptyCell(row, col)
		}
	}
	pieceRows := (g.dim - 2) / 2
	for row := 0; row < pieceRows; row++ {
		for col := 0; col < g.dim; col++ {
			if IsDark(row, col) {
				g.squares[row][col] = BlackMan
			}
		}
	}
	for row := g.dim - pieceRows; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			if IsDark(row, col) {
				g.squares[row][col] = WhiteMan
			}
		}
	}
}

func (g *GameBoard) checkBounds(row, col int) error {
	if row < 0 || row >= g.dim || col < 0 || col >= g.dim {
		return fmt.Errorf("%w: row %d, col %d, dim %d", ErrOutOfBounds, row, col, g.dim)
	}
	return nil
}

// GetCell returns the cell at row, col.
func (g *GameBoard) GetCell(row, col int) (Cell, error) {
	if err := g.checkBounds(row, col); err != nil {
		return EmptyLight, err
	}
	return g.squares[row][col], nil
}

// SetCell overwrites the cell at row, col. It does not validate that
// the assignment is legal under the rules.
func (g *GameBoard) SetCell(row, col int, cell Cell) error {
	if err := g.checkBounds(row, col); err != nil {
		return err
	}
	g.squares[row][col] = cell
	return nil
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	n := &GameBoard{dim: g.dim}
	n.squares = make([][]Cell, g.dim)
	for row := range g.squares {
		n.squares[row] = make([]Cell, g.dim)
		copy(n.squares[row], g.squares[row])
	}
	return n
}

// CopyFrom copies the squares of another board of the same dimension
// into this one, without allocating.
func (g *GameBoard) CopyFrom(other *GameBoard) {
	for row := range other.squares {
		copy(g.squares[row], other.squares[row])
	}
}

// SquareSnapshot returns a copy of the full grid, for rendering or
// analysis. Mutating the snapshot does not affect the board.
func (g *GameBoard) SquareSnapshot() [][]Cell {
	return g.Copy().squares
}

// ToDisplayText turns the board into a displayable string.
func (g *GameBoard) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("   ")
	for col := 0; col < g.dim; col++ {
		fmt.Fprintf(&str, "%c ", 'a'+col)
	}
	str.WriteString("\n   " + strings.Repeat("-", g.dim*2) + "\n")
	for row := 0; row < g.dim; row++ {
		fmt.Fprintf(&str, "%2d|", row)
		for col := 0; col < g.dim; col++ {
			str.WriteString(g.squares[row][col].DisplayString())
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", g.dim*2) + "\n")
	return str.String()
}
