package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStorage возвращается, когда хранилище недоступно
	ErrStorage = errors.New("booking.repository: storage error")

	// ErrConcurrentModification возвращается, когда список изменялся конкурентно и попытки исчерпаны
	ErrConcurrentModification = errors.New("booking.repository: concurrent modification")

	// ErrDecode возвращается, когда сохранённый список не удаётся разобрать
	ErrDecode = errors.New("booking.repository: failed to decode bookings")

	// ErrEncode возвращается при ошибке сериализации списка
	ErrEncode = errors.New("booking.repository: failed to encode bookings")
)
