package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе почтового API
	ErrInvalidResponse = errors.New("notifier: invalid response")

	// ErrRejected возвращается, когда почтовый API отклонил письмо (4xx), повтор бессмысленен
	ErrRejected = errors.New("notifier: message rejected")

	// ErrPublish возвращается при ошибке публикации события в Kafka
	ErrPublish = errors.New("notifier: failed to publish event")

	// ErrUnknownKind возвращается для неизвестного типа уведомления
	ErrUnknownKind = errors.New("notifier: unknown notification kind")
)
