package timing

import "adminpanel/internal/entities"

// Draft редактируемая копия расписания одного филиала.
// Original - то, что сейчас лежит в хранилище, Working - правки пользователя.
type Draft struct {
	BranchID string
	Original entities.WorkingHours
	Working  entities.WorkingHours

	saving bool
}

func NewDraft(branchID string, hours entities.WorkingHours) *Draft {
	if hours == nil {
		hours = entities.DefaultWorkingHours()
	}
	return &Draft{
		BranchID: branchID,
		Original: hours.Clone(),
		Working:  hours.Clone(),
	}
}

func (d *Draft) HasUnsavedChanges() bool {
	return !d.Original.Equal(d.Working)
}

// ToggleDay открывает или закрывает день. Открытие пустого дня добавляет слот по умолчанию.
func (d *Draft) ToggleDay(day entities.Weekday) {
	schedule := d.Working[day]
	schedule.IsOpen = !schedule.IsOpen
	if schedule.IsOpen && len(schedule.Slots) == 0 {
		schedule.Slots = []entities.TimeSlot{entities.DefaultSlot()}
	}
	d.Working[day] = schedule
}

func (d *Draft) AddSlot(day entities.Weekday, slot entities.TimeSlot) {
	schedule := d.Working[day]
	schedule.Slots = append(schedule.Slots, slot)
	d.Working[day] = schedule
}

// RemoveSlot последний слот открытого дня не удаляется.
func (d *Draft) RemoveSlot(day entities.Weekday, index int) error {
	schedule := d.Working[day]
	if index < 0 || index >= len(schedule.Slots) {
		return ErrInvalidSlotIndex
	}
	if schedule.IsOpen && len(schedule.Slots) == 1 {
		return ErrLastSlot
	}

	slots := make([]entities.TimeSlot, 0, len(schedule.Slots)-1)
	slots = append(slots, schedule.Slots[:index]...)
	slots = append(slots, schedule.Slots[index+1:]...)
	schedule.Slots = slots
	d.Working[day] = schedule
	return nil
}

// EditSlot nil оставляет границу без изменений.
func (d *Draft) EditSlot(day entities.Weekday, index int, open, closeAt *entities.TimeOfDay) error {
	schedule := d.Working[day]
	if index < 0 || index >= len(schedule.Slots) {
		return ErrInvalidSlotIndex
	}

	if open != nil {
		schedule.Slots[index].Open = *open
	}
	if closeAt != nil {
		schedule.Slots[index].Close = *closeAt
	}
	d.Working[day] = schedule
	return nil
}

func (d *Draft) Validate() error {
	return validateWorkingHours(d.Working)
}

func (d *Draft) MarkSaved(saved entities.WorkingHours) {
	d.Original = saved.Clone()
}
