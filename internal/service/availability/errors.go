package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных значениях настроек
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrStorage возвращается, когда хранилище настроек недоступно
	ErrStorage = errors.New("availability: storage error")
)
