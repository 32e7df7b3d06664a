package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrIllegalMove    = errors.New("illegal move")
	ErrIllegalBoard   = errors.New("illegal board")
	ErrIllegalPlayer  = errors.New("illegal player")
	ErrUnknownCommand = errors.New("unknown command")
)
