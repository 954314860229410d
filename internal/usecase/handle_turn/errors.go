package handle_turn

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном входящем событии
	ErrInvalidInput = errors.New("handle_turn: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("handle_turn: internal error")
)
