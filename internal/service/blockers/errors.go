package blockers

import "errors"

var (
	// ErrBlockerNotFound возвращается, когда блокировка не найдена
	ErrBlockerNotFound = errors.New("blocker not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
