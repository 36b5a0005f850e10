package game

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/board"
)

// A cellChange records one cell's value before a move touched it.
type cellChange struct {
	row    int
	col    int
	before board.Cell
}

// An undoRecord aggregates everything one MakeMove call changed: every
// touched cell's prior value plus the prior scalar state. Undo replays
// it verbatim instead of recomputing, because recomputation after the
// fact is not generally invertible (the tie counter and state cannot
// be derived from the board alone).
type undoRecord struct {
	changes    []cellChange
	onturn     board.Color
	state      GameState
	blackCount int
	whiteCount int
	tieCounter int
}

// newUndoRecord snapshots the scalar state before a move is applied.
func (g *Game) newUndoRecord() *undoRecord {
	return &undoRecord{
		onturn:     g.onturn,
		state:      g.state,
		blackCount: g.blackCount,
		whiteCount: g.whiteCount,
		tieCounter: g.tieCounter,
	}
}

// Undo reverses the most recent move not yet undone, restoring the
// board, turn, piece counts, tie counter and state to their exact
// values before that move. Undoing from a terminal state steps the
// game back to Unfinished. It returns ErrEmptyHistory when there is
// nothing to undo.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return ErrEmptyHistory
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	// Cells are restored in reverse write order so squares written
	// more than once during a chain end up at their original value.
	for i := len(rec.changes) - 1; i >= 0; i-- {
		ch := rec.changes[i]
		g.board.SetCell(ch.row, ch.col, ch.before)
	}
	g.onturn = rec.onturn
	g.state = rec.state
	g.blackCount = rec.blackCount
	g.whiteCount = rec.whiteCount
	g.tieCounter = rec.tieCounter

	log.Debug().Str("onturn", g.onturn.String()).
		Str("state", g.state.String()).
		Msg("unplayed-move")
	return nil
}
