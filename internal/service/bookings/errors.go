package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrSlotTaken возвращается, когда слот отменённого бронирования уже занят другим клиентом
	ErrSlotTaken = errors.New("slot is already taken by another booking")

	// ErrCannotRemind возвращается при попытке напомнить об отменённом бронировании
	ErrCannotRemind = errors.New("reminder is not possible for a cancelled booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotificationFailed возвращается, когда синхронная отправка уведомления не удалась
	ErrNotificationFailed = errors.New("notification failed")

	// ErrStorage возвращается, когда хранилище недоступно
	ErrStorage = errors.New("service: storage error")
)
