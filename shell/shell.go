// Package shell implements the interactive driver: a readline REPL
// that owns the authoritative Game, lets a human pick from the
// generated legal moves, and can hand either side to the random AI.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/draughts/ai/player"
	"github.com/domino14/draughts/automatic"
	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/game"
	"github.com/domino14/draughts/move"
)

const helpText = `Commands:
  new [dim]     start a new game (default 8x8; dim must be even, >= 4)
  show          display the board
  gen           list the legal moves, numbered
  play <n>      play move number n from the last gen list
  ai            let the computer answer with a random move
  undo          take back the last move
  autoplay [n]  play n computer-vs-computer games (default from config)
  help          this text
  exit          leave the shell

Strict alternation is expected between play and ai; after undo the ai
needs a new game before it can continue.`

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	game        *game.Game
	aiplayer    player.Player
	curGenPlays []*move.Move
	// pendingForAI is the human move the AI has not mirrored yet.
	pendingForAI *move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mdraughts>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

// Loop runs the REPL until exit or EOF. Command errors are shown to
// the user and the prompt comes back; they never end the loop.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		exit, err := sc.handle(line, sc.l.Stderr())
		if err != nil {
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
		if exit {
			break
		}
	}
	log.Debug().Msg("exiting shell loop")
}

func (sc *ShellController) requireGame() error {
	if sc.game == nil {
		return errors.New("no game in progress; start one with new")
	}
	return nil
}

func (sc *ShellController) newGame(dim int, w io.Writer) error {
	tieMax := sc.cfg.GetInt(config.KeyTieMax)
	g, err := game.NewGame(dim, tieMax)
	if err != nil {
		return err
	}
	ai, err := player.NewRandomPlayer(dim, tieMax, g.Opponent())
	if err != nil {
		return err
	}
	sc.game = g
	sc.aiplayer = ai
	sc.curGenPlays = nil
	sc.pendingForAI = nil
	showMessage(g.ToDisplayText(), w)
	return nil
}

func (sc *ShellController) genMoves(w io.Writer) {
	sc.curGenPlays = sc.game.GetAllMoves()
	if len(sc.curGenPlays) == 0 {
		showMessage("no legal moves", w)
		return
	}
	lines := lo.Map(sc.curGenPlays, func(m *move.Move, i int) string {
		return fmt.Sprintf("%3d: %s", i+1, m.ShortDescription())
	})
	showMessage(strings.Join(lines, "\n"), w)
}

func (sc *ShellController) playNumbered(arg string, w io.Writer) error {
	if sc.curGenPlays == nil {
		sc.curGenPlays = sc.game.GetAllMoves()
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("the move number must be an integer: %w", err)
	}
	if n < 1 || n > len(sc.curGenPlays) {
		return fmt.Errorf("move number must be between 1 and %d", len(sc.curGenPlays))
	}
	m := sc.curGenPlays[n-1]
	if err := sc.game.MakeMove(m); err != nil {
		return err
	}
	sc.pendingForAI = m
	sc.curGenPlays = nil
	showMessage(sc.game.ToDisplayText(), w)
	return nil
}

func (sc *ShellController) aiMove(w io.Writer) error {
	if sc.aiplayer == nil {
		return errors.New("the ai lost track of the game; start a new one")
	}
	m, err := sc.aiplayer.MakeMove(sc.pendingForAI)
	if err != nil {
		return err
	}
	sc.pendingForAI = nil
	if err := sc.game.MakeMove(m); err != nil {
		return err
	}
	sc.curGenPlays = nil
	showMessage("ai played "+m.ShortDescription(), w)
	showMessage(sc.game.ToDisplayText(), w)
	return nil
}

func (sc *ShellController) autoplay(args []string, w io.Writer) error {
	numGames := sc.cfg.GetInt(config.KeyNumGames)
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("the number of games must be an integer: %w", err)
		}
		numGames = n
	}
	threads := sc.cfg.GetInt(config.KeyThreads)
	tally, err := automatic.StartCompVCompGames(
		context.Background(), sc.cfg, numGames, threads, nil)
	if err != nil {
		return err
	}
	showMessage(fmt.Sprintf("black won: %d  white won: %d  ties: %d",
		tally[game.BlackWon], tally[game.WhiteWon], tally[game.Tie]), w)
	return nil
}

// handle executes a single command line. It returns true when the
// shell should exit.
func (sc *ShellController) handle(line string, w io.Writer) (bool, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "exit", "quit":
		return true, nil
	case "help":
		showMessage(helpText, w)
	case "new":
		dim := sc.cfg.GetInt(config.KeyBoardDim)
		if len(args) > 0 {
			dim, err = strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("the dimension must be an integer: %w", err)
			}
		}
		return false, sc.newGame(dim, w)
	case "show":
		if err := sc.requireGame(); err != nil {
			return false, err
		}
		showMessage(sc.game.ToDisplayText(), w)
	case "gen":
		if err := sc.requireGame(); err != nil {
			return false, err
		}
		sc.genMoves(w)
	case "play":
		if err := sc.requireGame(); err != nil {
			return false, err
		}
		if len(args) != 1 {
			return false, errors.New("play needs one move number; see gen")
		}
		return false, sc.playNumbered(args[0], w)
	case "ai":
		if err := sc.requireGame(); err != nil {
			return false, err
		}
		return false, sc.aiMove(w)
	case "undo":
		if err := sc.requireGame(); err != nil {
			return false, err
		}
		if err := sc.game.Undo(); err != nil {
			return false, err
		}
		// The AI's mirror cannot follow an undo.
		sc.aiplayer = nil
		sc.pendingForAI = nil
		sc.curGenPlays = nil
		showMessage(sc.game.ToDisplayText(), w)
	case "autoplay":
		return false, sc.autoplay(args, w)
	default:
		return false, fmt.Errorf("unknown command %q; try help", cmd)
	}
	return false, nil
}
