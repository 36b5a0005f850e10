// Package movegen contains all the move-generating functions. Given a
// board and a side to move it enumerates exactly the legal moves under
// English draughts rules: men step and capture diagonally forward,
// kings in all four diagonal directions, captures are mandatory
// board-wide, and a capturing piece must keep jumping while a further
// capture is available, each distinct maximal chain being its own move.
package movegen

import (
	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

// MoveGenerator is an interface for generating moves.
type MoveGenerator interface {
	GenAll(onturn board.Color) []*move.Move
}

// Generator enumerates legal moves on a board it does not own. It
// temporarily lifts the moving piece during the capture search but
// always restores the board before returning; callers see no mutation.
type Generator struct {
	board *board.GameBoard
}

// NewGenerator returns a Generator bound to the given board.
func NewGenerator(b *board.GameBoard) *Generator {
	return &Generator{board: b}
}

// directionsFor returns the diagonal directions the piece in the cell
// may move in. Black men advance toward higher rows.
func directionsFor(cell board.Cell) []move.Coord {
	switch cell {
	case board.BlackMan:
		return []move.Coord{{Row: 1, Col: -1}, {Row: 1, Col: 1}}
	case board.WhiteMan:
		return []move.Coord{{Row: -1, Col: -1}, {Row: -1, Col: 1}}
	case board.BlackKing, board.WhiteKing:
		return []move.Coord{
			{Row: -1, Col: -1}, {Row: -1, Col: 1},
			{Row: 1, Col: -1}, {Row: 1, Col: 1},
		}
	}
	return nil
}

// isEmpty returns true if the square is on the board and empty.
func (gen *Generator) isEmpty(c move.Coord) bool {
	cell, err := gen.board.GetCell(c.Row, c.Col)
	if err != nil {
		return false
	}
	return cell.IsEmpty()
}

// holdsOpponent returns true if the square is on the board and holds a
// piece of the color opposing onturn.
func (gen *Generator) holdsOpponent(c move.Coord, onturn board.Color) bool {
	cell, err := gen.board.GetCell(c.Row, c.Col)
	if err != nil {
		return false
	}
	color, ok := cell.ColorOf()
	return ok && color != onturn
}

// GenAll generates all legal moves for the side to move. If any piece
// of that side has a capture available, only capture moves are
// returned. An empty result means the side has no legal move.
func (gen *Generator) GenAll(onturn board.Color) []*move.Move {
	var captures, simples []*move.Move
	dim := gen.board.Dim()
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			cell, err := gen.board.GetCell(row, col)
			if err != nil {
				continue
			}
			color, ok := cell.ColorOf()
			if !ok || color != onturn {
				continue
			}
			start := move.Coord{Row: row, Col: col}
			dirs := directionsFor(cell)
			for _, chain := range gen.captureChains(start, onturn, dirs) {
				captures = append(captures, move.NewMove(start, chain...))
			}
			if len(captures) > 0 {
				// Forced capture: no point collecting simple moves.
				continue
			}
			for _, d := range dirs {
				to := move.Coord{Row: row + d.Row, Col: col + d.Col}
				if gen.isEmpty(to) {
					simples = append(simples, move.NewMove(start, to))
				}
			}
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return simples
}

// captureChains returns every maximal capture chain for the piece at
// from, as step sequences. The origin square counts as empty for the
// duration of the search so a king can jump back across it.
func (gen *Generator) captureChains(from move.Coord, onturn board.Color, dirs []move.Coord) [][]move.Coord {
	cached, err := gen.board.GetCell(from.Row, from.Col)
	if err != nil {
		return nil
	}
	gen.board.SetCell(from.Row, from.Col, board.EmptyCell(from.Row, from.Col))
	chains := gen.extendChain(from, onturn, dirs, map[move.Coord]bool{})
	gen.board.SetCell(from.Row, from.Col, cached)
	return chains
}

// extendChain recursively extends a capture chain from the given
// square. Pieces already jumped in this chain stay on the board during
// the search but cannot be jumped twice, so every jump consumes a
// distinct opponent piece and the recursion terminates.
func (gen *Generator) extendChain(from move.Coord, onturn board.Color,
	dirs []move.Coord, captured map[move.Coord]bool) [][]move.Coord {

	var chains [][]move.Coord
	for _, d := range dirs {
		mid := move.Coord{Row: from.Row + d.Row, Col: from.Col + d.Col}
		land := move.Coord{Row: from.Row + 2*d.Row, Col: from.Col + 2*d.Col}
		if captured[mid] || !gen.holdsOpponent(mid, onturn) || !gen.isEmpty(land) {
			continue
		}
		captured[mid] = true
		tails := gen.extendChain(land, onturn, dirs, captured)
		if len(tails) == 0 {
			chains = append(chains, []move.Coord{land})
		}
		for _, tail := range tails {
			chain := make([]move.Coord, 0, len(tail)+1)
			chain = append(chain, land)
			chain = append(chain, tail...)
			chains = append(chains, chain)
		}
		delete(captured, mid)
	}
	return chains
}
