package get_time_slots

import (
	"time"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	getTimeSlots "github.com/mahadtoukaleh/CodeClarity/internal/usecase/get_time_slots"
	"github.com/mahadtoukaleh/CodeClarity/pkg/types"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date         string   `json:"date"`
	Weekend      bool     `json:"weekend"`
	Slots        []string `json:"slots"`
	SelectedTime string   `json:"selectedTime"`
	Cleared      bool     `json:"cleared"`
}

// ToUseCaseRequest парсит query-параметры date и time
func ToUseCaseRequest(dateStr, timeStr string) (*getTimeSlots.Request, error) {
	date, err := domain.ParseDate(dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	req := &getTimeSlots.Request{Date: date}
	if timeStr != "" {
		selected, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, err
		}
		req.SelectedTime = selected
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	return &TimeSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Weekend:      resp.Weekend,
		Slots:        domain.SlotSet(resp.Slots).Strings(),
		SelectedTime: resp.SelectedTime.String(),
		Cleared:      resp.Cleared,
	}
}
