package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

// emptyBoard creates a board with all pieces removed.
func emptyBoard(t *testing.T, dim int) *board.GameBoard {
	t.Helper()
	b, err := board.NewBoard(dim)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			b.SetCell(row, col, board.EmptyCell(row, col))
		}
	}
	return b
}

func boardsEqual(t *testing.T, a, b *board.GameBoard) bool {
	t.Helper()
	for row := 0; row < a.Dim(); row++ {
		for col := 0; col < a.Dim(); col++ {
			ca, _ := a.GetCell(row, col)
			cb, _ := b.GetCell(row, col)
			if ca != cb {
				return false
			}
		}
	}
	return true
}

func mv(start move.Coord, steps ...move.Coord) *move.Move {
	return move.NewMove(start, steps...)
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g, err := NewGame(8, 0)
	is.NoErr(err)
	is.Equal(g.Turn(), board.Black)
	is.Equal(g.Opponent(), board.White)
	is.Equal(g.State(), Unfinished)
	is.True(g.Playing())
	is.Equal(g.BlackCount(), 12)
	is.Equal(g.WhiteCount(), 12)
	is.Equal(g.TieMax(), 32)
	is.Equal(len(g.GetAllMoves()), 7)
}

func TestMakeMoveFlipsTurn(t *testing.T) {
	is := is.New(t)
	g, _ := NewGame(8, 0)
	is.NoErr(g.MakeMove(mv(move.Coord{Row: 2, Col: 1}, move.Coord{Row: 3, Col: 2})))
	is.Equal(g.Turn(), board.White)
	is.Equal(g.TieCounter(), 1)
	is.Equal(g.NumMoves(), 1)
}

func TestMakeMoveRejectsIllegalMoves(t *testing.T) {
	is := is.New(t)
	g, _ := NewGame(8, 0)
	before := g.Board().Copy()

	// Not a move at all.
	is.True(errors.Is(g.MakeMove(nil), ErrWrongMove))
	is.True(errors.Is(g.MakeMove(mv(move.Coord{Row: 2, Col: 1})), ErrWrongMove))
	// A white piece while black is on turn.
	is.True(errors.Is(g.MakeMove(mv(move.Coord{Row: 5, Col: 0}, move.Coord{Row: 4, Col: 1})), ErrWrongMove))
	// Bad geometry.
	is.True(errors.Is(g.MakeMove(mv(move.Coord{Row: 2, Col: 1}, move.Coord{Row: 4, Col: 1})), ErrWrongMove))
	// An empty source square.
	is.True(errors.Is(g.MakeMove(mv(move.Coord{Row: 3, Col: 0}, move.Coord{Row: 4, Col: 1})), ErrWrongMove))

	// No partial mutation happened.
	is.True(boardsEqual(t, g.Board(), before))
	is.Equal(g.Turn(), board.Black)
	is.Equal(g.NumMoves(), 0)
}

func TestMakeMoveRejectsSimpleMoveWhenCaptureForced(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(2, 1, board.BlackMan)
	b.SetCell(3, 2, board.WhiteMan)
	b.SetCell(2, 5, board.BlackMan)
	b.SetCell(7, 0, board.WhiteMan)
	g := NewGameFromBoard(b, 0, board.Black)

	err := g.MakeMove(mv(move.Coord{Row: 2, Col: 5}, move.Coord{Row: 3, Col: 4}))
	is.True(errors.Is(err, ErrWrongMove))
	is.NoErr(g.MakeMove(mv(move.Coord{Row: 2, Col: 1}, move.Coord{Row: 4, Col: 3})))
}

func TestCaptureToWin(t *testing.T) {
	// Lone black man jumps the lone white man and wins on the spot.
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(2, 3, board.BlackMan)
	b.SetCell(3, 4, board.WhiteMan)
	g := NewGameFromBoard(b, 0, board.Black)
	is.Equal(g.BlackCount(), 1)
	is.Equal(g.WhiteCount(), 1)

	moves := g.GetAllMoves()
	is.Equal(len(moves), 1)
	is.True(moves[0].Equals(mv(move.Coord{Row: 2, Col: 3}, move.Coord{Row: 4, Col: 5})))

	is.NoErr(g.MakeMove(moves[0]))
	is.Equal(g.WhiteCount(), 0)
	is.Equal(g.BlackCount(), 1)
	is.Equal(g.State(), BlackWon)
	is.True(!g.Playing())
	is.Equal(g.TieCounter(), 0)

	cell, _ := g.Board().GetCell(3, 4)
	is.True(cell.IsEmpty())
	cell, _ = g.Board().GetCell(4, 5)
	is.Equal(cell, board.BlackMan)

	// The game is over; further moves are rejected.
	err := g.MakeMove(mv(move.Coord{Row: 4, Col: 5}, move.Coord{Row: 5, Col: 6}))
	is.True(errors.Is(err, ErrWrongMove))
}

func TestBlockedSideLoses(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	// White is boxed into the corner: pieces remain but no legal move.
	b.SetCell(7, 0, board.WhiteMan)
	b.SetCell(6, 1, board.BlackMan)
	b.SetCell(5, 2, board.BlackMan)
	g := NewGameFromBoard(b, 0, board.White)
	is.Equal(g.State(), BlackWon)
}

func TestMultiCaptureCountsAllPieces(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(2, 3, board.BlackMan)
	b.SetCell(3, 4, board.WhiteMan)
	b.SetCell(5, 6, board.WhiteMan)
	b.SetCell(5, 0, board.WhiteMan)
	g := NewGameFromBoard(b, 0, board.Black)
	is.Equal(g.WhiteCount(), 3)

	moves := g.GetAllMoves()
	is.Equal(len(moves), 1)
	is.Equal(moves[0].NumSteps(), 2)
	is.NoErr(g.MakeMove(moves[0]))

	is.Equal(g.WhiteCount(), 1)
	is.Equal(g.State(), Unfinished)
	for _, c := range []move.Coord{{Row: 3, Col: 4}, {Row: 5, Col: 6}} {
		cell, _ := g.Board().GetCell(c.Row, c.Col)
		is.True(cell.IsEmpty())
	}
	cell, _ := g.Board().GetCell(6, 7)
	is.Equal(cell, board.BlackMan)
}

func TestPromotionOnBackRow(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(6, 1, board.BlackMan)
	b.SetCell(4, 7, board.WhiteMan)
	g := NewGameFromBoard(b, 0, board.Black)

	is.NoErr(g.MakeMove(mv(move.Coord{Row: 6, Col: 1}, move.Coord{Row: 7, Col: 2})))
	cell, _ := g.Board().GetCell(7, 2)
	is.Equal(cell, board.BlackKing)
	// Promotion does not change the piece count.
	is.Equal(g.BlackCount(), 1)

	// White answers; the king moves off the back row and stays a king.
	is.NoErr(g.MakeMove(mv(move.Coord{Row: 4, Col: 7}, move.Coord{Row: 3, Col: 6})))
	is.NoErr(g.MakeMove(mv(move.Coord{Row: 7, Col: 2}, move.Coord{Row: 6, Col: 3})))
	cell, _ = g.Board().GetCell(6, 3)
	is.Equal(cell, board.BlackKing)
}

func TestWhitePromotionRowZero(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(1, 2, board.WhiteMan)
	b.SetCell(5, 6, board.BlackMan)
	g := NewGameFromBoard(b, 0, board.White)

	is.NoErr(g.MakeMove(mv(move.Coord{Row: 1, Col: 2}, move.Coord{Row: 0, Col: 1})))
	cell, _ := g.Board().GetCell(0, 1)
	is.Equal(cell, board.WhiteKing)
}

func TestMakeMoveUndoRoundTrip(t *testing.T) {
	is := is.New(t)
	g, _ := NewGame(8, 0)

	// Walk into a forced capture: black baits, white steps next to it.
	is.NoErr(g.MakeMove(mv(move.Coord{Row: 2, Col: 1}, move.Coord{Row: 3, Col: 2})))
	is.NoErr(g.MakeMove(mv(move.Coord{Row: 5, Col: 4}, move.Coord{Row: 4, Col: 3})))

	moves := g.GetAllMoves()
	is.Equal(len(moves), 1)
	is.True(moves[0].IsCapture())

	boardBefore := g.Board().Copy()
	turnBefore := g.Turn()
	stateBefore := g.State()
	blackBefore, whiteBefore := g.BlackCount(), g.WhiteCount()
	tieBefore := g.TieCounter()

	is.NoErr(g.MakeMove(moves[0]))
	is.Equal(g.WhiteCount(), whiteBefore-1)
	is.Equal(g.TieCounter(), 0)

	is.NoErr(g.Undo())
	is.True(boardsEqual(t, g.Board(), boardBefore))
	is.Equal(g.Turn(), turnBefore)
	is.Equal(g.State(), stateBefore)
	is.Equal(g.BlackCount(), blackBefore)
	is.Equal(g.WhiteCount(), whiteBefore)
	is.Equal(g.TieCounter(), tieBefore)

	// And the same capture is still legal afterwards.
	again := g.GetAllMoves()
	is.Equal(len(again), 1)
	is.True(again[0].Equals(moves[0]))
}

func TestUndoPromotionDemotes(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(6, 1, board.BlackMan)
	b.SetCell(0, 5, board.WhiteMan)
	g := NewGameFromBoard(b, 0, board.Black)

	is.NoErr(g.MakeMove(mv(move.Coord{Row: 6, Col: 1}, move.Coord{Row: 7, Col: 2})))
	is.NoErr(g.Undo())
	cell, _ := g.Board().GetCell(6, 1)
	is.Equal(cell, board.BlackMan)
	cell, _ = g.Board().GetCell(7, 2)
	is.True(cell.IsEmpty())
	is.Equal(g.Turn(), board.Black)
}

func TestUndoOutOfTerminalState(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(2, 3, board.BlackMan)
	b.SetCell(3, 4, board.WhiteMan)
	g := NewGameFromBoard(b, 0, board.Black)

	is.NoErr(g.MakeMove(mv(move.Coord{Row: 2, Col: 3}, move.Coord{Row: 4, Col: 5})))
	is.Equal(g.State(), BlackWon)
	is.NoErr(g.Undo())
	is.Equal(g.State(), Unfinished)
	is.Equal(g.WhiteCount(), 1)
	is.Equal(g.Turn(), board.Black)
}

func TestUndoEmptyHistory(t *testing.T) {
	is := is.New(t)
	g, _ := NewGame(8, 0)
	is.True(errors.Is(g.Undo(), ErrEmptyHistory))

	is.NoErr(g.MakeMove(g.GetAllMoves()[0]))
	is.NoErr(g.Undo())
	is.True(errors.Is(g.Undo(), ErrEmptyHistory))
}

func TestTieAfterCapturelessPlies(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	// Two kings far apart shuffling in their own corners.
	b.SetCell(0, 1, board.BlackKing)
	b.SetCell(7, 6, board.WhiteKing)
	g := NewGameFromBoard(b, 4, board.Black)

	script := []*move.Move{
		mv(move.Coord{Row: 0, Col: 1}, move.Coord{Row: 1, Col: 0}),
		mv(move.Coord{Row: 7, Col: 6}, move.Coord{Row: 6, Col: 7}),
		mv(move.Coord{Row: 1, Col: 0}, move.Coord{Row: 0, Col: 1}),
		mv(move.Coord{Row: 6, Col: 7}, move.Coord{Row: 7, Col: 6}),
	}
	for i, m := range script {
		is.Equal(g.State(), Unfinished)
		is.NoErr(g.MakeMove(m))
		is.Equal(g.TieCounter(), i+1)
	}
	is.Equal(g.State(), Tie)
	is.Equal(g.BlackCount(), 1)
	is.Equal(g.WhiteCount(), 1)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	g, _ := NewGame(8, 0)
	c := g.Copy()
	is.NoErr(c.MakeMove(c.GetAllMoves()[0]))
	is.Equal(g.Turn(), board.Black)
	is.Equal(g.NumMoves(), 0)
	is.Equal(c.Turn(), board.White)
}

func TestNewGameFromBoardTerminalPosition(t *testing.T) {
	is := is.New(t)
	b := emptyBoard(t, 8)
	b.SetCell(4, 3, board.BlackKing)
	g := NewGameFromBoard(b, 0, board.White)
	// White has nothing at all; black has already won.
	is.Equal(g.State(), BlackWon)
	is.Equal(g.WhiteCount(), 0)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g, _ := NewGame(8, 0)
	text := g.ToDisplayText()
	is.True(len(text) > 0)
	is.True(strings.Contains(text, "black to move"))
	is.True(strings.Contains(text, "black: 12  white: 12"))
}
