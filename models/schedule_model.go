package models

// Schedule maps a day token to the ordered time slots a teacher offers that day.
type Schedule map[string][]string

var Weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var dayLabels = map[string]string{
	"mon": "Понедельник",
	"tue": "Вторник",
	"wed": "Среда",
	"thu": "Четверг",
	"fri": "Пятница",
	"sat": "Суббота",
	"sun": "Воскресенье",
}

// DayLabel returns the display label of a day token.
func DayLabel(day string) (string, bool) {
	label, ok := dayLabels[day]
	return label, ok
}

type DaySlots struct {
	Day   string   `json:"day"`
	Label string   `json:"label"`
	Slots []string `json:"slots"`
}

// Days lists the schedule in week order, mon first. Days missing from the
// schedule come back with no slots; unknown tokens are dropped.
func (s Schedule) Days() []DaySlots {
	days := make([]DaySlots, 0, len(Weekdays))
	for _, d := range Weekdays {
		slots := s[d]
		if slots == nil {
			slots = []string{}
		}
		days = append(days, DaySlots{Day: d, Label: dayLabels[d], Slots: slots})
	}
	return days
}
