package timing

import (
	"fmt"

	"adminpanel/internal/entities"
)

func validateWorkingHours(hours entities.WorkingHours) error {
	for _, day := range entities.Weekdays {
		schedule, ok := hours[day]
		if !ok || !schedule.IsOpen {
			continue
		}

		if len(schedule.Slots) == 0 {
			return fmt.Errorf("%w: %s", ErrOpenDayWithoutSlots, day)
		}

		for i := 0; i < len(schedule.Slots); i++ {
			for j := i + 1; j < len(schedule.Slots); j++ {
				a, b := schedule.Slots[i], schedule.Slots[j]
				if slotsConflict(a, b) {
					return fmt.Errorf("%w: %s %s-%s and %s-%s", ErrOverlappingSlots, day, a.Open, a.Close, b.Open, b.Close)
				}
			}
		}
	}
	return nil
}

// slotsConflict ночные слоты (закрытие раньше открытия) в попарную проверку не входят.
func slotsConflict(a, b entities.TimeSlot) bool {
	if a.IsOvernight() || b.IsOvernight() {
		return false
	}
	return a.Overlaps(b)
}

func parseWeekday(day string) (entities.Weekday, error) {
	weekday, ok := entities.ParseWeekday(day)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}
	return weekday, nil
}
