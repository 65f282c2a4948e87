package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят, заблокирован или не разрешён политикой
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrStorage возвращается, когда хранилище недоступно
	ErrStorage = errors.New("create_booking: storage error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
