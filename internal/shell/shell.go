// Package shell is the interactive loop: a human plays coordinates against
// the engine, which always answers with its best move.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/perfectplay/tictactoe-engine/internal/apperror"
	"github.com/perfectplay/tictactoe-engine/internal/bitboard"
	"github.com/perfectplay/tictactoe-engine/internal/engine"
)

const helpText = `commands:
  a1 .. c3      play your mark on that cell
  show          print the board
  set <board>   set the board to a nine-character string, e.g. x...o....
  hint          suggest a move for you
  reset         start over
  help          this message
  exit          leave`

const prompt = "\033[31mtictactoe>\033[0m "

// errQuit signals a clean exit requested by the user.
var errQuit = errors.New("quit")

type Shell struct {
	logger *slog.Logger
	l      *readline.Instance
	engine *engine.Engine

	randomize bool
	user      string
	bot       string
}

func filterInput(r rune) (rune, bool) {
	// block CtrlZ feature
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}

// New creates a shell around a fresh engine.
func New(logger *slog.Logger, historyFile string, randomize bool) (*Shell, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &Shell{
		logger:    logger.With("component", "shell"),
		l:         l,
		engine:    engine.New(),
		randomize: randomize,
		user:      "x",
		bot:       "o",
	}, nil
}

// Run drives the game loop until the game ends, the user quits, or the
// context is canceled.
func (that *Shell) Run(ctx context.Context) error {
	defer func() {
		if err := that.l.Close(); err != nil {
			that.logger.Error("failed to close readline", "error", err)
		}
	}()

	that.showMessage(that.engine.Pretty())

	if err := that.chooseSides(); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := that.l.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		out, err := that.execute(strings.TrimSpace(line))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			that.showMessage(err.Error())
			continue
		}

		if out != "" {
			that.showMessage(out)
		}

		if that.engine.IsFinished() {
			that.showMessage(that.result())
			return nil
		}
	}
}

// chooseSides asks who starts; the starter plays x. If the engine starts it
// answers immediately.
func (that *Shell) chooseSides() error {
	that.l.SetPrompt("Do you want to start? [Y/n] ")
	defer that.l.SetPrompt(prompt)

	for {
		line, err := that.l.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return errQuit
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y":
			that.user, that.bot = "x", "o"
			that.showMessage("You play x")
			return nil
		case "n":
			that.user, that.bot = "o", "x"
			that.showMessage("You play o")
			that.engine.PlayBest(that.bot, that.randomize)
			that.showMessage(that.engine.Pretty())
			return nil
		}
	}
}

// execute runs one command or move and returns the text to display.
func (that *Shell) execute(line string) (string, error) {
	cmd, arg, _ := strings.Cut(line, " ")

	switch cmd {
	case "":
		return "", nil
	case "help":
		return helpText, nil
	case "show":
		return that.engine.Pretty(), nil
	case "reset":
		that.engine.Reset()
		return that.engine.Pretty(), nil
	case "exit", "quit":
		return "", errQuit
	case "set":
		if !that.engine.Set(arg) {
			return "", fmt.Errorf("%w: %q", apperror.ErrIllegalBoard, arg)
		}
		return that.engine.Pretty(), nil
	case "hint":
		return that.hint()
	default:
		return that.playTurn(line)
	}
}

// playTurn applies the user's move, then the engine's best answer.
func (that *Shell) playTurn(move string) (string, error) {
	if that.engine.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	if !that.engine.Play(that.user, move) {
		return "", fmt.Errorf("%w: %q", apperror.ErrIllegalMove, move)
	}

	that.engine.PlayBest(that.bot, that.randomize)

	return that.engine.Pretty(), nil
}

// hint suggests the user's best move on the current board.
func (that *Shell) hint() (string, error) {
	if that.engine.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	b, ok := bitboard.TextToBoard(that.engine.String())
	if !ok {
		return "", apperror.ErrIllegalBoard
	}

	p, ok := bitboard.TextToPlayer(that.user)
	if !ok {
		return "", apperror.ErrIllegalPlayer
	}

	m, _ := bitboard.BestMove(b, p, that.randomize)
	if m < 0 {
		return "", apperror.ErrGameFinished
	}

	return "try " + bitboard.MoveToText(m), nil
}

func (that *Shell) result() string {
	switch {
	case that.engine.IsWon(that.user):
		// should not be possible against an exhaustive search
		return color.GreenString("You win!")
	case that.engine.IsWon(that.bot):
		return color.RedString("I win!")
	default:
		return color.YellowString("Game draw!")
	}
}

func (that *Shell) showMessage(msg string) {
	if _, err := io.WriteString(that.l.Stdout(), msg+"\n"); err != nil {
		that.logger.Error("failed to write message", "error", err)
	}
}
