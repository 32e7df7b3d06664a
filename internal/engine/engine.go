// Package engine is the interface between the low-level bitboards and
// string input. Nothing here panics or returns an error: every command
// reports success through a boolean and false always means "board
// unchanged".
package engine

import (
	"fmt"

	"github.com/perfectplay/tictactoe-engine/internal/bitboard"
)

const emptyBoard = "........."

// Engine owns exactly one board and validates every command before calling
// into the unchecked bitboard primitives.
type Engine struct {
	board bitboard.Board
}

// New returns an engine with an empty board.
func New() *Engine {
	return &Engine{board: bitboard.Empty}
}

// Reset puts the board back to its initial empty state.
func (that *Engine) Reset() {
	that.board = bitboard.Empty
}

// Set replaces the board with the parsed text. It returns false if the text
// is not a valid board or equals the current position.
func (that *Engine) Set(text string) bool {
	b, ok := bitboard.TextToBoard(text)
	if !ok || b == that.board {
		return false
	}

	that.board = b

	return true
}

// String renders the current board as its nine-character form.
func (that *Engine) String() string {
	if s := bitboard.BoardToText(that.board); s != "" {
		return s
	}

	return emptyBoard
}

// Pretty renders the board as a 2D grid, top row first, columns labeled a-c.
func (that *Engine) Pretty() string {
	s := that.String()

	return fmt.Sprintf("3|%s|\n2|%s|\n1|%s|\n  --- \n  abc ", s[6:9], s[3:6], s[0:3])
}

// IsFull reports whether every cell is occupied.
func (that *Engine) IsFull() bool {
	return bitboard.IsFull(that.board)
}

// IsWon reports whether the given player owns a line. An unparsable player
// token reports false.
func (that *Engine) IsWon(player string) bool {
	p, ok := bitboard.TextToPlayer(player)
	if !ok {
		return false
	}

	return bitboard.IsWon(that.board, p)
}

// IsFinished reports whether the game is over: board full or either player
// has won.
func (that *Engine) IsFinished() bool {
	return bitboard.IsFull(that.board) ||
		bitboard.IsWon(that.board, bitboard.PlayerOne) ||
		bitboard.IsWon(that.board, bitboard.PlayerTwo)
}

// Play applies the move for the player. It returns false without touching
// the board when the game is finished, the move text is invalid, the cell
// is occupied, or the player token is invalid.
func (that *Engine) Play(player, move string) bool {
	if that.IsFinished() {
		return false
	}

	m := bitboard.TextToMove(move)
	if !bitboard.IsMove(that.board, m) {
		return false
	}

	p, ok := bitboard.TextToPlayer(player)
	if !ok {
		return false
	}

	that.board = bitboard.Play(that.board, p, m)

	return true
}

// PlayBest searches for the player's best move and applies it. If randomize
// is set, ties are broken by coin flips.
func (that *Engine) PlayBest(player string, randomize bool) bool {
	if that.IsFinished() {
		return false
	}

	p, ok := bitboard.TextToPlayer(player)
	if !ok {
		return false
	}

	m, _ := bitboard.BestMove(that.board, p, randomize)
	if m < 0 {
		return false
	}

	that.board = bitboard.Play(that.board, p, m)

	return true
}
