package domain

import (
	"time"

	"github.com/mahadtoukaleh/CodeClarity/pkg/types"
)

// Subject предмет консультации
type Subject string

const (
	SubjectPython Subject = "python"
	SubjectJava   Subject = "java"
	SubjectWeb    Subject = "web"
	SubjectMath   Subject = "math"
)

// Label возвращает название предмета для писем
func (s Subject) Label() string {
	switch s {
	case SubjectPython:
		return "Python"
	case SubjectJava:
		return "Java"
	case SubjectWeb:
		return "Web Development"
	case SubjectMath:
		return "Math"
	default:
		return string(s)
	}
}

// Plan тарифный план
type Plan string

const (
	PlanStarter   Plan = "starter"
	PlanFocused   Plan = "focused"
	PlanQuarterly Plan = "quarterly"
	PlanNotSure   Plan = "not-sure"
)

// Label возвращает название плана для писем
func (p Plan) Label() string {
	switch p {
	case PlanStarter:
		return "Starter Plan ($120/month)"
	case PlanFocused:
		return "Focused Plan ($220/month)"
	case PlanQuarterly:
		return "Quarterly Plan ($330/3-months)"
	case PlanNotSure:
		return "Not Sure - Need Consultation"
	default:
		return string(p)
	}
}

// ConsultationRequest провалидированная заявка на консультацию
type ConsultationRequest struct {
	FirstName string
	LastName  string
	Email     string
	Subject   Subject
	Plan      Plan
	Message   string
	Date      time.Time        // Дата без времени, в локальном представлении клиента
	Time      types.TimeString // Всегда входит в SlotsFor(Date)
}

// FullName имя и фамилия через пробел
func (r *ConsultationRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}

// DisplayDate дата в формате "October 17th, 2026"
func (r *ConsultationRequest) DisplayDate() string {
	return FormatDisplayDate(r.Date)
}

// Recipient заявитель как получатель подтверждения
func (r *ConsultationRequest) Recipient() Recipient {
	return Recipient{Name: r.FullName(), Email: r.Email}
}
