package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestNewBoardDefaultDim(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(0)
	is.NoErr(err)
	is.Equal(b.Dim(), DefaultDim)
}

func TestNewBoardBadDims(t *testing.T) {
	is := is.New(t)
	for _, dim := range []int{2, 3, 5, 7, -8} {
		_, err := NewBoard(dim)
		is.True(err != nil)
	}
}

func TestFillInitial(t *testing.T) {
	is := is.New(t)
	b, err := NewBoard(8)
	is.NoErr(err)

	blacks, whites := 0, 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cell, err := b.GetCell(row, col)
			is.NoErr(err)
			if !IsDark(row, col) {
				// Light squares never hold pieces.
				is.Equal(cell, EmptyLight)
				continue
			}
			switch cell {
			case BlackMan:
				blacks++
				is.True(row <= 2)
			case WhiteMan:
				whites++
				is.True(row >= 5)
			default:
				is.Equal(cell, EmptyDark)
				is.True(row == 3 || row == 4)
			}
		}
	}
	is.Equal(blacks, 12)
	is.Equal(whites, 12)
	is.Equal(PiecesPerSide(8), 12)
}

func TestGetSetCellOutOfBounds(t *testing.T) {
	is := is.New(t)
	b, _ := NewBoard(8)

	_, err := b.GetCell(8, 0)
	is.True(errors.Is(err, ErrOutOfBounds))
	_, err = b.GetCell(0, 8)
	is.True(errors.Is(err, ErrOutOfBounds))
	_, err = b.GetCell(-1, 3)
	is.True(errors.Is(err, ErrOutOfBounds))
	err = b.SetCell(8, 8, BlackMan)
	is.True(errors.Is(err, ErrOutOfBounds))
}

func TestSetCellNoRulesValidation(t *testing.T) {
	is := is.New(t)
	b, _ := NewBoard(8)
	// SetCell is a raw write; putting a king in the middle of the board
	// is fine by it.
	is.NoErr(b.SetCell(4, 3, WhiteKing))
	cell, err := b.GetCell(4, 3)
	is.NoErr(err)
	is.Equal(cell, WhiteKing)
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b, _ := NewBoard(8)
	c := b.Copy()
	is.NoErr(c.SetCell(3, 4, BlackKing))
	orig, _ := b.GetCell(3, 4)
	is.Equal(orig, EmptyDark)

	b.CopyFrom(c)
	cell, _ := b.GetCell(3, 4)
	is.Equal(cell, BlackKing)
}

func TestSquareSnapshot(t *testing.T) {
	is := is.New(t)
	b, _ := NewBoard(8)
	snap := b.SquareSnapshot()
	is.Equal(len(snap), 8)
	snap[2][1] = EmptyDark
	cell, _ := b.GetCell(2, 1)
	is.Equal(cell, BlackMan)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	b, _ := NewBoard(8)
	text := b.ToDisplayText()
	is.True(strings.Contains(text, "b "))
	is.True(strings.Contains(text, "w "))
	is.True(strings.Contains(text, "__"))
	// One line per row plus headers and borders.
	is.Equal(len(strings.Split(strings.TrimRight(text, "\n"), "\n")), 11)
}

func TestCellHelpers(t *testing.T) {
	is := is.New(t)
	is.True(EmptyDark.IsEmpty())
	is.True(EmptyLight.IsEmpty())
	is.True(!BlackMan.IsEmpty())
	is.True(BlackKing.IsKing())
	is.True(!WhiteMan.IsKing())

	c, ok := WhiteKing.ColorOf()
	is.True(ok)
	is.Equal(c, White)
	_, ok = EmptyDark.ColorOf()
	is.True(!ok)

	is.Equal(BlackMan.Crowned(), BlackKing)
	is.Equal(WhiteMan.Crowned(), WhiteKing)
	is.Equal(WhiteKing.Crowned(), WhiteKing)

	is.Equal(Black.Other(), White)
	is.Equal(White.Other(), Black)
	is.Equal(ManFor(Black), BlackMan)
	is.Equal(ManFor(White), WhiteMan)
}
