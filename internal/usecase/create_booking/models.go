package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Name         string
	Email        string
	Phone        string
	BusinessName string // опционально
	Date         string // YYYY-MM-DD или RFC 3339, берётся календарная дата
	Time         string // метка слота, например "9:00 AM"
}

// Response модель ответа с созданным бронированием, без токена отмены
type Response struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	BusinessName string
	Date         string
	Time         string
	Status       string
	CreatedAt    time.Time
	StorageType  string
}
