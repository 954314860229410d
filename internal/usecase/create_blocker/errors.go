package create_blocker

import "errors"

var (
	// ErrForbidden возвращается, когда пользователь не администратор автомойки
	ErrForbidden = errors.New("create_blocker: forbidden")

	// ErrInvalidTimeRange возвращается, когда конец блокировки не позже начала
	ErrInvalidTimeRange = errors.New("create_blocker: end time should be after the start time")

	// ErrOverlapping возвращается, когда блокировка пересекается с существующей
	ErrOverlapping = errors.New("create_blocker: blockers cannot overlap")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_blocker: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_blocker: internal error")
)
