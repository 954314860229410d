package dialog

import "errors"

var (
	// ErrStorage возвращается, когда состояние диалога не удалось прочитать или сохранить
	ErrStorage = errors.New("dialog: state storage error")
)
