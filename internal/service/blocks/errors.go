package blocks

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировки с такой областью нет
	ErrBlockNotFound = errors.New("blocks: block not found")

	// ErrInvalidInput возвращается при некорректной дате или времени
	ErrInvalidInput = errors.New("blocks: invalid input data")

	// ErrStorage возвращается, когда хранилище недоступно
	ErrStorage = errors.New("blocks: storage error")
)
