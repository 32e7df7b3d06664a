// Package bitboard holds the low-level board representation and the
// exhaustive search. A Board packs three 9-bit fields into one integer:
// player one's occupancy at bit 0, player two's at bit 9, and the combined
// occupancy at bit 18. Use with care: the primitives perform no boundary
// checks for performance reasons; callers go through the checked codecs or
// IsMove first.
package bitboard

import "iter"

// Player is the bit offset of a player's field inside a Board.
type Player uint32

const (
	PlayerOne Player = 0
	PlayerTwo Player = 9

	// both is the offset of the combined-occupancy field.
	both Player = 18
)

// Other returns the other player. It is its own inverse.
func Other(p Player) Player {
	return p ^ PlayerTwo
}

// Board is the full packed state, BBoard a single extracted 9-bit field.
type (
	Board  uint32
	BBoard uint32
)

const (
	Empty Board = 0

	// Length is the number of cells, FullBB a field with every cell set.
	Length        = 9
	FullBB BBoard = 0b111111111
)

// wins are the eight lines: three rows, three columns, two diagonals.
var wins = [8]BBoard{
	0b000000111, 0b000111000, 0b111000000,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Bits extracts the 9-bit field starting at offset p.
func Bits(b Board, p Player) BBoard {
	return BBoard(b>>p) & FullBB
}

// Play puts a mark for p on cell m and returns the new board. The cell must
// be empty; no boundary nor occupancy check is performed.
func Play(b Board, p Player, m int) Board {
	return b | 1<<(m+int(p)) | 1<<(m+int(both))
}

// IsLegal reports whether the player fields are disjoint and their union
// matches the combined field. Only needed for externally supplied boards;
// boards built through Play hold this by construction.
func IsLegal(b Board) bool {
	one := Bits(b, PlayerOne)
	two := Bits(b, PlayerTwo)

	return one&two == 0 && one|two == Bits(b, both)
}

// IsFull reports whether every cell is occupied.
func IsFull(b Board) bool {
	return Bits(b, both) == FullBB
}

// IsWon reports whether p owns a complete line.
func IsWon(b Board, p Player) bool {
	bb := Bits(b, p)
	for _, w := range wins {
		if bb&w == w {
			return true
		}
	}

	return false
}

// IsMove reports whether m is a playable cell: inside the board and empty.
func IsMove(b Board, m int) bool {
	return m >= 0 && m < Length && Bits(b, both)>>m&1 == 0
}

// Moves yields every empty cell in ascending order. The sequence is
// restartable; the board is a value, so no state is shared between ranges.
func Moves(b Board) iter.Seq[int] {
	return func(yield func(int) bool) {
		bb := Bits(b, both)
		for m := 0; m < Length; m++ {
			if bb>>m&1 == 0 && !yield(m) {
				return
			}
		}
	}
}
