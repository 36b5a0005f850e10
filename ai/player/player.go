// Package player contains AI players for draughts. The only
// implementation is a uniformly random selector; it has no evaluation
// function or search, it just mirrors the game on a private board and
// picks any legal move.
package player

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/game"
	"github.com/domino14/draughts/move"
)

// ErrNoMoves is returned when the player is asked to move in a
// position with no legal moves (the game is over for its side).
var ErrNoMoves = errors.New("no legal moves for player")

// A Player selects a move for its side. MakeMove is handed the
// opponent's last move (nil on the very first call when the player
// opens the game) so the player can keep its private game in sync,
// and returns the move it chose and already committed to that game.
type Player interface {
	MakeMove(opponentMove *move.Move) (*move.Move, error)
	Color() board.Color
}

// RandomPlayer picks a uniformly random legal move. It holds its own
// Game purely as a mirror of the real one; the driver remains the
// owner of the authoritative game.
type RandomPlayer struct {
	game  *game.Game
	color board.Color
}

// NewRandomPlayer creates a random player for the given side, with a
// private mirror game on a dim x dim board. The dim and tieMax must
// match the authoritative game's (0 means the same defaults) or the
// mirror will diverge from it.
func NewRandomPlayer(dim, tieMax int, color board.Color) (*RandomPlayer, error) {
	g, err := game.NewGame(dim, tieMax)
	if err != nil {
		return nil, err
	}
	return &RandomPlayer{game: g, color: color}, nil
}

// Color returns the side this player plays.
func (p *RandomPlayer) Color() board.Color {
	return p.color
}

// MakeMove applies the opponent's move (if any) to the mirror game,
// then selects, applies and returns a random legal move. An opponent
// move the mirror considers illegal means the driver and mirror have
// diverged; that is a driver bug and comes back as an error.
func (p *RandomPlayer) MakeMove(opponentMove *move.Move) (*move.Move, error) {
	if opponentMove != nil {
		if err := p.game.MakeMove(opponentMove); err != nil {
			return nil, fmt.Errorf("mirroring opponent move: %w", err)
		}
	}
	moves := p.game.GetAllMoves()
	if len(moves) == 0 || !p.game.Playing() {
		return nil, ErrNoMoves
	}
	m := moves[frand.Intn(len(moves))]
	if err := p.game.MakeMove(m); err != nil {
		return nil, err
	}
	log.Debug().Str("color", p.color.String()).
		Str("move", m.ShortDescription()).
		Int("choices", len(moves)).
		Msg("random-player-move")
	return m, nil
}
