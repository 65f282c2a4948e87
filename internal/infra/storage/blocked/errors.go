package blocked

import "errors"

var (
	// ErrStorage возвращается, когда хранилище недоступно
	ErrStorage = errors.New("blocked.repository: storage error")

	// ErrConcurrentModification возвращается, когда список изменялся конкурентно и попытки исчерпаны
	ErrConcurrentModification = errors.New("blocked.repository: concurrent modification")

	// ErrDecode возвращается, когда сохранённый список не удаётся разобрать
	ErrDecode = errors.New("blocked.repository: failed to decode blocked slots")

	// ErrEncode возвращается при ошибке сериализации списка
	ErrEncode = errors.New("blocked.repository: failed to encode blocked slots")
)
