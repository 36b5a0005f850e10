// Package game encapsulates the main mechanics for a game of English
// draughts. It owns the board and the turn state machine; move
// generation is delegated to the movegen package. A Game doesn't care
// how it is played. AI players, human players, etc will play a game
// outside of the scope of this package.
//
// A Game is not safe for concurrent use. Callers that want to analyze
// hypothetical positions in parallel must work on their own Copy.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
	"github.com/domino14/draughts/movegen"
)

// GameState is the result state of a game. Unfinished is the only
// non-terminal state; the terminal states are only left via Undo.
type GameState uint8

const (
	Unfinished GameState = iota
	BlackWon
	WhiteWon
	Tie
)

func (s GameState) String() string {
	switch s {
	case Unfinished:
		return "unfinished"
	case BlackWon:
		return "black won"
	case WhiteWon:
		return "white won"
	case Tie:
		return "tie"
	}
	return "unknown"
}

var (
	// ErrWrongMove is returned when MakeMove is given a move that is
	// not in the current legal-move set, or when the game is over.
	ErrWrongMove = errors.New("move is not legal in the current position")
	// ErrEmptyHistory is returned by Undo when there is no move to
	// undo.
	ErrEmptyHistory = errors.New("no move to undo")
)

// Game is the actual internal game structure that controls the entire
// business logic of the game: whose turn it is, applying and undoing
// moves, and detecting the end of the game.
type Game struct {
	board  *board.GameBoard
	gen    movegen.MoveGenerator
	state  GameState
	onturn board.Color

	blackCount int
	whiteCount int

	// tieCounter counts consecutive captureless plies; the game is a
	// tie once it reaches tieMax.
	tieCounter int
	tieMax     int

	history []*undoRecord
}

// NewGame creates a game on a dim x dim board with the standard fill.
// Black moves first. A dim of 0 means the default board; a tieMax of 0
// means dim*dim/2 captureless plies before the game is called a tie.
func NewGame(dim, tieMax int) (*Game, error) {
	b, err := board.NewBoard(dim)
	if err != nil {
		return nil, err
	}
	if tieMax == 0 {
		tieMax = b.Dim() * b.Dim() / 2
	}
	count := board.PiecesPerSide(b.Dim())
	return &Game{
		board:      b,
		gen:        movegen.NewGenerator(b),
		onturn:     board.Black,
		blackCount: count,
		whiteCount: count,
		tieMax:     tieMax,
	}, nil
}

// NewGameFromBoard creates a game from an arbitrary position, taking
// ownership of the board. Piece counts are recounted from the grid and
// the state is evaluated immediately, so a position where the side to
// move is already lost comes back in the appropriate terminal state.
func NewGameFromBoard(b *board.GameBoard, tieMax int, onturn board.Color) *Game {
	if tieMax == 0 {
		tieMax = b.Dim() * b.Dim() / 2
	}
	g := &Game{
		board:  b,
		gen:    movegen.NewGenerator(b),
		onturn: onturn,
		tieMax: tieMax,
	}
	for row := 0; row < b.Dim(); row++ {
		for col := 0; col < b.Dim(); col++ {
			cell, _ := b.GetCell(row, col)
			if color, ok := cell.ColorOf(); ok {
				(*g.countFor(color))++
			}
		}
	}
	g.updateState()
	return g
}

// Board returns the game's board. It is exposed for display and
// read-only inspection; mutate it and the game's counts and history
// are no longer meaningful.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

// SquareSnapshot returns a read-only copy of the full cell grid.
func (g *Game) SquareSnapshot() [][]board.Cell {
	return g.board.SquareSnapshot()
}

// State returns the current game state.
func (g *Game) State() GameState {
	return g.state
}

// Playing returns true while the game is unfinished.
func (g *Game) Playing() bool {
	return g.state == Unfinished
}

// Turn returns the side to move.
func (g *Game) Turn() board.Color {
	return g.onturn
}

// Opponent returns the side not on turn.
func (g *Game) Opponent() board.Color {
	return g.onturn.Other()
}

// BlackCount returns the number of black pieces on the board.
func (g *Game) BlackCount() int {
	return g.blackCount
}

// WhiteCount returns the number of white pieces on the board.
func (g *Game) WhiteCount() int {
	return g.whiteCount
}

// TieCounter returns the number of consecutive captureless plies.
func (g *Game) TieCounter() int {
	return g.tieCounter
}

// TieMax returns the tie threshold.
func (g *Game) TieMax() int {
	return g.tieMax
}

// NumMoves returns the number of plies played (and not undone).
func (g *Game) NumMoves() int {
	return len(g.history)
}

// GetAllMoves returns all legal moves for the side to move. It is a
// pure query; the board is not mutated.
func (g *Game) GetAllMoves() []*move.Move {
	return g.gen.GenAll(g.onturn)
}

// countFor returns a pointer to the piece tally of a color.
func (g *Game) countFor(c board.Color) *int {
	if c == board.Black {
		return &g.blackCount
	}
	return &g.whiteCount
}

// MakeMove validates and applies a move for the side on turn. The move
// must be geometrically equal to one of GetAllMoves' results; anything
// else fails with ErrWrongMove and leaves the game untouched. On
// success the piece is moved, captured pieces are removed, a man
// ending on the far row is crowned, the turn flips and the game state
// is recomputed. The whole mutation is recorded so Undo can reverse it
// exactly.
func (g *Game) MakeMove(m *move.Move) error {
	if g.state != Unfinished {
		return fmt.Errorf("%w: the game is over", ErrWrongMove)
	}
	if m == nil || m.NumSteps() == 0 {
		return fmt.Errorf("%w: empty move", ErrWrongMove)
	}
	if !lo.ContainsBy(g.GetAllMoves(), func(legal *move.Move) bool {
		return legal.Equals(m)
	}) {
		return fmt.Errorf("%w: %s", ErrWrongMove, m.ShortDescription())
	}

	rec := g.newUndoRecord()
	if m.IsCapture() {
		g.applyCapture(rec, m)
		g.tieCounter = 0
	} else {
		g.applySimple(rec, m)
		g.tieCounter++
	}
	g.maybeCrown(rec, m.Final())
	g.onturn = g.onturn.Other()
	g.history = append(g.history, rec)
	g.updateState()

	log.Debug().Str("move", m.ShortDescription()).
		Str("onturn", g.onturn.String()).
		Str("state", g.state.String()).
		Int("black", g.blackCount).Int("white", g.whiteCount).
		Msg("made-move")
	return nil
}

// setCell writes a cell and records its prior value on the undo record.
func (g *Game) setCell(rec *undoRecord, row, col int, cell board.Cell) {
	prev, _ := g.board.GetCell(row, col)
	rec.changes = append(rec.changes, cellChange{row: row, col: col, before: prev})
	g.board.SetCell(row, col, cell)
}

func (g *Game) applySimple(rec *undoRecord, m *move.Move) {
	start := m.Start()
	to := m.Steps()[0]
	cell, _ := g.board.GetCell(start.Row, start.Col)
	g.setCell(rec, to.Row, to.Col, cell)
	g.setCell(rec, start.Row, start.Col, board.EmptyCell(start.Row, start.Col))
}

func (g *Game) applyCapture(rec *undoRecord, m *move.Move) {
	prev := m.Start()
	cell, _ := g.board.GetCell(prev.Row, prev.Col)
	for _, step := range m.Steps() {
		mid := move.Coord{Row: (prev.Row + step.Row) / 2, Col: (prev.Col + step.Col) / 2}
		g.setCell(rec, mid.Row, mid.Col, board.EmptyCell(mid.Row, mid.Col))
		g.setCell(rec, prev.Row, prev.Col, board.EmptyCell(prev.Row, prev.Col))
		g.setCell(rec, step.Row, step.Col, cell)
		prev = step
	}
	(*g.countFor(g.onturn.Other())) -= m.NumSteps()
}

// maybeCrown crowns a man that finished its move on the opponent's
// back row. Kings are already crowned; nothing happens for them.
func (g *Game) maybeCrown(rec *undoRecord, final move.Coord) {
	cell, _ := g.board.GetCell(final.Row, final.Col)
	crowned := cell.Crowned()
	if crowned == cell {
		return
	}
	backRow := 0
	if g.onturn == board.Black {
		backRow = g.board.Dim() - 1
	}
	if final.Row == backRow {
		g.setCell(rec, final.Row, final.Col, crowned)
	}
}

// updateState recomputes the game state after a move, with the turn
// already flipped to the opponent. The mover wins if the side now on
// turn has no pieces or no legal moves; otherwise the game ties once
// enough captureless plies accumulate.
func (g *Game) updateState() {
	if *g.countFor(g.onturn) == 0 || len(g.GetAllMoves()) == 0 {
		if g.onturn == board.White {
			g.state = BlackWon
		} else {
			g.state = WhiteWon
		}
		return
	}
	if g.tieCounter >= g.tieMax {
		g.state = Tie
	}
}

// Copy returns a deep copy of the game, with its own board and
// generator. The history is not copied; a copy starts with nothing to
// undo. Use this for hypothetical analysis on another goroutine.
func (g *Game) Copy() *Game {
	b := g.board.Copy()
	return &Game{
		board:      b,
		gen:        movegen.NewGenerator(b),
		state:      g.state,
		onturn:     g.onturn,
		blackCount: g.blackCount,
		whiteCount: g.whiteCount,
		tieCounter: g.tieCounter,
		tieMax:     g.tieMax,
	}
}
