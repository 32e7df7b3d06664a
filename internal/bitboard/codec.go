package bitboard

import (
	"regexp"
	"strings"
)

// Codecs between the packed representation and user-facing text. Parsing
// never panics: a failed move parse returns -1, a failed board or player
// parse returns ok == false, and an illegal board renders as "".

var (
	moveRe   = regexp.MustCompile(`^[a-cA-C][1-3]$`)
	boardRe  = regexp.MustCompile(`^[.xoXO]{9}$`)
	playerRe = regexp.MustCompile(`^[xoXO12]$`)
)

// MoveToText renders a cell as coordinates: column letter a-c, row digit
// 1-3. Cells outside [0,8] render as "".
func MoveToText(m int) string {
	if m < 0 || m >= Length {
		return ""
	}

	return string([]byte{byte('a' + m%3), byte('1' + m/3)})
}

// TextToMove parses coordinates into a cell, -1 if the text is not a
// two-character [a-c][1-3] pair. The letter is case-insensitive.
func TextToMove(text string) int {
	if !moveRe.MatchString(text) {
		return -1
	}

	row := int(text[1] - '1')
	col := int((text[0] | 0x20) - 'a')

	return row*3 + col
}

// TextToBoard parses a nine-character board string ('.', 'x', 'o',
// case-insensitive) by replaying each mark through Play.
func TextToBoard(text string) (Board, bool) {
	if !boardRe.MatchString(text) {
		return Empty, false
	}

	b := Empty
	for i := 0; i < Length; i++ {
		switch text[i] {
		case 'x', 'X':
			b = Play(b, PlayerOne, i)
		case 'o', 'O':
			b = Play(b, PlayerTwo, i)
		}
	}

	return b, true
}

// BoardToText renders a board as its nine-character lowercase string, or ""
// if the board is not legal.
func BoardToText(b Board) string {
	if !IsLegal(b) {
		return ""
	}

	one := Bits(b, PlayerOne)
	two := Bits(b, PlayerTwo)

	s := []byte(".........")
	for m := 0; m < Length; m++ {
		switch bit := BBoard(1) << m; {
		case one&bit != 0:
			s[m] = 'x'
		case two&bit != 0:
			s[m] = 'o'
		}
	}

	return string(s)
}

// TextToPlayer parses a one-character player token: '1'/'x'/'X' is player
// one, '2'/'o'/'O' player two.
func TextToPlayer(text string) (Player, bool) {
	if !playerRe.MatchString(text) {
		return PlayerOne, false
	}

	switch strings.ToLower(text) {
	case "1", "x":
		return PlayerOne, true
	default:
		return PlayerTwo, true
	}
}
