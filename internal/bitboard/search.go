package bitboard

import "math/rand"

// Eval is a game-theoretic score from the perspective of the side to move.
type Eval int

const (
	Draw Eval = 0
	Won  Eval = 1
	Lost      = -Won
)

// Minimax returns the score of a board for p via plain negamax. The won
// check applies to p because the recursion always advances with the other
// player: a set line for p here means the opponent just moved into it.
func Minimax(b Board, p Player) Eval {
	if IsWon(b, p) {
		return Won
	}
	if IsFull(b) {
		return Draw
	}

	o := Other(p)
	sc := Won
	for m := range Moves(b) {
		if sc = min(sc, -Minimax(Play(b, o, m), o)); sc == Lost {
			break
		}
	}

	return sc
}

// Score returns the score of a board for p using alpha-beta pruning. Same
// result as Minimax, fewer visited nodes.
func Score(b Board, p Player) Eval {
	return alphabeta(b, p, Lost)
}

func alphabeta(b Board, p Player, alpha Eval) Eval {
	if IsWon(b, p) {
		return Won
	}
	if IsFull(b) {
		return Draw
	}

	o := Other(p)
	beta := Won
	for m := range Moves(b) {
		beta = min(beta, -alphabeta(Play(b, o, m), o, -beta))
		if beta <= alpha {
			break
		}
	}

	return beta
}

// BestMove returns the best cell for p and its score. If randomize is set,
// every later move scoring equal to the running best replaces it on a coin
// flip, so the pick is not uniform over tied moves: later ties are
// progressively less likely to stick. With no legal move the result is
// (-1, 2*Lost).
func BestMove(b Board, p Player, randomize bool) (int, Eval) {
	sc := 2 * Lost
	move := -1
	for m := range Moves(b) {
		switch sci := Score(Play(b, p, m), p); {
		case sci > sc:
			sc = sci
			move = m
		case randomize && sci == sc && rand.Intn(2) == 1: //nolint: gosec // not used for security
			move = m
		}
	}

	return move, sc
}
