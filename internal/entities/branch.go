package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

type Branch struct {
	ID           string
	Name         string
	WorkingHours WorkingHours
	UpdatedAt    time.Time
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseWeekday(s string) (Weekday, bool) {
	for _, day := range Weekdays {
		if string(day) == s {
			return day, true
		}
	}
	return "", false
}

func (d Weekday) String() string {
	return string(d)
}

// TimeOfDay минуты от полуночи, в JSON - "HH:MM".
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay строго "HH:MM": ровно две цифры часа и две цифры минут.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[0:2]) || !isDigits(s[3:5]) {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	hour, err := strconv.Atoi(s[0:2])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(s[3:5])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return NewTimeOfDay(hour, minute)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimeOfDay, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type TimeSlot struct {
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
}

// IsOvernight закрытие раньше открытия - слот переходит через полночь.
func (s TimeSlot) IsOvernight() bool {
	return s.Close.Minutes() < s.Open.Minutes()
}

// Overlaps пересечение полуинтервалов [open, close).
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Open.Minutes() < other.Close.Minutes() && other.Open.Minutes() < s.Close.Minutes()
}

func DefaultSlot() TimeSlot {
	return TimeSlot{
		Open:  MustTimeOfDay(10, 0),
		Close: MustTimeOfDay(22, 0),
	}
}

type DaySchedule struct {
	IsOpen bool       `json:"is_open"`
	Slots  []TimeSlot `json:"slots"`
}

func (d DaySchedule) clone() DaySchedule {
	cloned := DaySchedule{IsOpen: d.IsOpen}
	if d.Slots != nil {
		cloned.Slots = make([]TimeSlot, len(d.Slots))
		copy(cloned.Slots, d.Slots)
	}
	return cloned
}

// WorkingHours расписание филиала по дням недели.
type WorkingHours map[Weekday]DaySchedule

// DefaultWorkingHours все дни открыты, один слот по умолчанию.
func DefaultWorkingHours() WorkingHours {
	hours := make(WorkingHours, len(Weekdays))
	for _, day := range Weekdays {
		hours[day] = DaySchedule{
			IsOpen: true,
			Slots:  []TimeSlot{DefaultSlot()},
		}
	}
	return hours
}

// Clone глубокая копия: изменения копии не видны оригиналу.
func (w WorkingHours) Clone() WorkingHours {
	if w == nil {
		return nil
	}
	cloned := make(WorkingHours, len(w))
	for day, schedule := range w {
		cloned[day] = schedule.clone()
	}
	return cloned
}

// Serialize детерминированный JSON (encoding/json сортирует ключи map).
func (w WorkingHours) Serialize() ([]byte, error) {
	return json.Marshal(w)
}

// Equal сравнение сериализованных копий.
func (w WorkingHours) Equal(other WorkingHours) bool {
	left, err := w.Serialize()
	if err != nil {
		return false
	}
	right, err := other.Serialize()
	if err != nil {
		return false
	}
	return string(left) == string(right)
}
