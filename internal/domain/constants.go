package domain

// Slot grid
const (
	SlotMinutes = 30
)

// Default availability values
const (
	DefaultStartHour = 9
	DefaultEndHour   = 16
)

// DefaultAvailableDays Monday to Friday
var DefaultAvailableDays = []int{1, 2, 3, 4, 5}

// Validation limits
const (
	MinHour           = 0
	MaxHour           = 24
	MinWeekday        = 0
	MaxWeekday        = 6
	MaxNameLength     = 200
	MaxEmailLength    = 254
	MaxPhoneLength    = 40
	MaxBusinessLength = 200
	MaxNotesLength    = 2000
)

// Format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
