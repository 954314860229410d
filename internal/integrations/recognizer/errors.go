package recognizer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("recognizer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса распознавания
	ErrInvalidResponse = errors.New("recognizer client: invalid response")
)
