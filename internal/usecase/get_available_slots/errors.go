package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных датах запроса
	ErrInvalidInput = errors.New("invalid input data")
)
