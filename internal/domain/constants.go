package domain

import "github.com/mahadtoukaleh/CodeClarity/pkg/types"

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Окна консультаций. Слот часовой и должен целиком помещаться в окно
const (
	SlotDurationMinutes = 60

	WeekendOpenTime  types.TimeString = "07:00"
	WeekendCloseTime types.TimeString = "19:00"
	WeekdayOpenTime  types.TimeString = "15:00"
	WeekdayCloseTime types.TimeString = "22:00"
)
