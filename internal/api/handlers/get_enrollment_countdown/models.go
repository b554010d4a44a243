package get_enrollment_countdown

import (
	"time"

	getCountdown "github.com/mahadtoukaleh/CodeClarity/internal/usecase/get_enrollment_countdown"
)

// CountdownResponse HTTP response model
type CountdownResponse struct {
	Deadline string `json:"deadline"`
	Expired  bool   `json:"expired"`
	Days     int    `json:"days"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Seconds  int    `json:"seconds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCountdown.Response) *CountdownResponse {
	return &CountdownResponse{
		Deadline: resp.Deadline.Format(time.RFC3339),
		Expired:  resp.Expired,
		Days:     resp.Days,
		Hours:    resp.Hours,
		Minutes:  resp.Minutes,
		Seconds:  resp.Seconds,
	}
}
