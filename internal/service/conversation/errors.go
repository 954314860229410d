package conversation

import "errors"

var (
	// ErrCorruptedState возвращается, когда сохранённое состояние не удаётся разобрать
	ErrCorruptedState = errors.New("conversation: corrupted state")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("conversation: storage error")
)
