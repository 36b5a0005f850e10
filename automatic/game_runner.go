// Package automatic contains the logic for computer vs computer
// draughts: it pits two random players against each other, optionally
// many games at a time across worker goroutines, and tallies results.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/draughts/ai/player"
	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/game"
	"github.com/domino14/draughts/move"
)

// A Result summarizes one finished self-play game.
type Result struct {
	State game.GameState
	Plies int
}

func (r Result) String() string {
	return fmt.Sprintf("%s,%d", r.State, r.Plies)
}

// GameRunner plays full random-vs-random games. One runner is meant to
// be owned by one goroutine.
type GameRunner struct {
	cfg     *config.Config
	logchan chan<- string
}

// NewGameRunner instantiates a game runner. The logchan may be nil;
// when set, each finished game writes one "state,plies" line to it.
func NewGameRunner(logchan chan<- string, cfg *config.Config) *GameRunner {
	return &GameRunner{cfg: cfg, logchan: logchan}
}

// PlayGame plays a single game to its terminal state. The driver game
// here is authoritative; the players mirror it privately, so every
// move is validated twice.
func (r *GameRunner) PlayGame() (Result, error) {
	dim := r.cfg.GetInt(config.KeyBoardDim)
	tieMax := r.cfg.GetInt(config.KeyTieMax)

	g, err := game.NewGame(dim, tieMax)
	if err != nil {
		return Result{}, err
	}
	black, err := player.NewRandomPlayer(dim, tieMax, board.Black)
	if err != nil {
		return Result{}, err
	}
	white, err := player.NewRandomPlayer(dim, tieMax, board.White)
	if err != nil {
		return Result{}, err
	}

	var last *move.Move
	plies := 0
	for g.Playing() {
		p := player.Player(black)
		if g.Turn() == board.White {
			p = white
		}
		m, err := p.MakeMove(last)
		if err != nil {
			return Result{}, fmt.Errorf("ply %d: %w", plies, err)
		}
		if err := g.MakeMove(m); err != nil {
			return Result{}, fmt.Errorf("ply %d: %w", plies, err)
		}
		last = m
		plies++
	}
	res := Result{State: g.State(), Plies: plies}
	if r.logchan != nil {
		r.logchan <- res.String()
	}
	log.Debug().Str("result", res.State.String()).Int("plies", plies).Msg("game-over")
	return res, nil
}

// StartCompVCompGames plays numGames random-vs-random games across the
// given number of worker goroutines and returns a tally of results by
// terminal state. It stops early if the context is canceled. When
// logchan is non-nil every game writes a result line to it; the caller
// must keep draining it, and it is closed before this returns.
func StartCompVCompGames(ctx context.Context, cfg *config.Config,
	numGames, threads int, logchan chan string) (map[game.GameState]int, error) {

	if threads < 1 {
		threads = 1
	}
	log.Debug().Msgf("starting %v games, %v threads", numGames, threads)

	jobs := make(chan int)
	results := make(chan Result)
	eg, ctx := errgroup.WithContext(ctx)

	go func() {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	for i := 0; i < threads; i++ {
		eg.Go(func() error {
			r := NewGameRunner(logchan, cfg)
			for range jobs {
				res, err := r.PlayGame()
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	var collected []Result
	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range results {
			collected = append(collected, res)
		}
	}()

	err := eg.Wait()
	close(results)
	<-done
	if logchan != nil {
		close(logchan)
	}

	tally := lo.CountValuesBy(collected, func(r Result) game.GameState {
		return r.State
	})
	log.Info().Int("games", len(collected)).
		Int("black-won", tally[game.BlackWon]).
		Int("white-won", tally[game.WhiteWon]).
		Int("ties", tally[game.Tie]).
		Msg("self-play-finished")
	return tally, err
}
