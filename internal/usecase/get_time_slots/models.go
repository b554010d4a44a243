package get_time_slots

import (
	"time"

	"github.com/mahadtoukaleh/CodeClarity/pkg/types"
)

// Request модель запроса слотов на дату
type Request struct {
	Date         time.Time        // Дата (без времени)
	SelectedTime types.TimeString // Ранее выбранное время (опционально)
}

// Response модель ответа со слотами
type Response struct {
	Date         time.Time
	Weekend      bool
	Slots        []types.TimeString
	SelectedTime types.TimeString // пусто, если выбранное время не входит в новый набор
	Cleared      bool             // выбор был сброшен при смене даты
}
