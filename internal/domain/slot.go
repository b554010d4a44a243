package domain

import (
	"slices"
	"time"

	"github.com/mahadtoukaleh/CodeClarity/pkg/types"
)

// SlotSet упорядоченный набор времени начала консультаций на конкретную дату
type SlotSet []types.TimeString

// Contains проверяет, что время входит в набор
func (s SlotSet) Contains(t types.TimeString) bool {
	return slices.Contains(s, t)
}

// Strings возвращает набор в виде строк для ответа API
func (s SlotSet) Strings() []string {
	result := make([]string, len(s))
	for i, slot := range s {
		result[i] = slot.String()
	}
	return result
}

// IsWeekend true для субботы и воскресенья.
// День недели берется из даты как есть, без перевода часовых поясов
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// SlotsFor возвращает слоты на дату:
// выходные - каждый час с 07:00 по 18:00, будни - каждый час с 15:00 по 21:00.
// Каждый вызов возвращает новый срез
func SlotsFor(date time.Time) SlotSet {
	if IsWeekend(date) {
		return generateSlots(WeekendOpenTime, WeekendCloseTime)
	}
	return generateSlots(WeekdayOpenTime, WeekdayCloseTime)
}

// ReconcileTime пересчитывает слоты при смене даты.
// Если ранее выбранное время отсутствует в новом наборе, выбор сбрасывается (нулевое значение)
func ReconcileTime(date time.Time, selected types.TimeString) (SlotSet, types.TimeString) {
	slots := SlotsFor(date)
	if selected.IsZero() || !slots.Contains(selected) {
		return slots, ""
	}
	return slots, selected
}

// generateSlots генерирует слоты с openTime с шагом SlotDurationMinutes,
// пока слот заканчивается не позже closeTime
func generateSlots(openTime, closeTime types.TimeString) SlotSet {
	slots := make(SlotSet, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		slotEnd, err := currentSlot.AddMinutes(SlotDurationMinutes)
		if err != nil || slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, currentSlot)
		currentSlot = slotEnd
	}

	return slots
}
