package domain

// AgeGroup возрастная группа буткемпа, каждая привязана к фиксированному времени занятий
type AgeGroup string

const (
	AgeGroupKids  AgeGroup = "kids"
	AgeGroupTeens AgeGroup = "teens"
)

// Label возвращает описание группы
func (g AgeGroup) Label() string {
	if g == AgeGroupKids {
		return "Kids (9-13)"
	}
	return "Teens (14+)"
}

// SessionTime возвращает время занятий группы
func (g AgeGroup) SessionTime() string {
	if g == AgeGroupKids {
		return "Saturdays at 11AM"
	}
	return "Saturdays at 3PM"
}

// BootcampRequest провалидированная заявка на буткемп
type BootcampRequest struct {
	FirstName   string
	LastName    string
	Email       string
	AgeGroup    AgeGroup
	ParentName  string
	ParentEmail string
	ParentPhone string
}

// FullName имя и фамилия ученика
func (r *BootcampRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}
