package list_bookings

import (
	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/internal/service/bookings/models"
)

// Filter фильтр списка по query параметрам
type Filter struct {
	Status *domain.BookingStatus
	From   string
	To     string
}

// ParseFilter разбирает status, from и to; даты сравниваются как ключи YYYY-MM-DD
func ParseFilter(status, from, to string) (Filter, error) {
	var f Filter
	if status != "" {
		s, err := domain.ParseBookingStatus(status)
		if err != nil {
			return f, err
		}
		f.Status = &s
	}
	f.From = from
	f.To = to
	return f, nil
}

// Apply возвращает отфильтрованную копию списка
func (f Filter) Apply(resp *models.BookingListResponse) *models.BookingListResponse {
	if f.Status == nil && f.From == "" && f.To == "" {
		return resp
	}

	items := make([]*models.BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		if f.Status != nil && b.Status != string(*f.Status) {
			continue
		}
		if f.From != "" && b.Date < f.From {
			continue
		}
		if f.To != "" && b.Date > f.To {
			continue
		}
		items = append(items, b)
	}
	return &models.BookingListResponse{
		Bookings:    items,
		Total:       len(items),
		StorageType: resp.StorageType,
	}
}
