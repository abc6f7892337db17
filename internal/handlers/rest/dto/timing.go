package dto

import (
	"errors"
	"net/http"

	"adminpanel/internal/entities"
	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/service/timing"
	"adminpanel/pkg/logger"
)

func FromDraft(v timing.DraftView) api.Draft {
	return api.Draft{
		BranchID:          v.BranchID,
		WorkingHours:      FromWorkingHours(v.WorkingHours),
		HasUnsavedChanges: v.HasUnsavedChanges,
		Saving:            v.Saving,
	}
}

func FromWorkingHours(hours entities.WorkingHours) api.WorkingHours {
	result := make(api.WorkingHours, len(hours))
	for day, schedule := range hours {
		slots := make([]api.TimeSlot, 0, len(schedule.Slots))
		for _, slot := range schedule.Slots {
			slots = append(slots, api.TimeSlot{
				Open:  slot.Open.String(),
				Close: slot.Close.String(),
			})
		}
		result[day.String()] = api.DaySchedule{
			IsOpen: schedule.IsOpen,
			Slots:  slots,
		}
	}
	return result
}

// TimingStatus HTTP-код для ошибок редактора расписания.
func TimingStatus(err error) int {
	switch {
	case errors.Is(err, timing.ErrMissingBranchID),
		errors.Is(err, timing.ErrInvalidWeekday),
		errors.Is(err, timing.ErrInvalidSlotIndex),
		errors.Is(err, timing.ErrLastSlot),
		errors.Is(err, timing.ErrOpenDayWithoutSlots),
		errors.Is(err, timing.ErrOverlappingSlots),
		errors.Is(err, entities.ErrInvalidTimeOfDay):
		return http.StatusBadRequest
	case errors.Is(err, timing.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, timing.ErrBranchNotFound),
		errors.Is(err, timing.ErrNoDraft):
		return http.StatusNotFound
	case errors.Is(err, timing.ErrUnsavedChanges),
		errors.Is(err, timing.ErrSaveInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteTimingError 4xx с текстом ошибки, 5xx только в лог.
func WriteTimingError(w http.ResponseWriter, log errorLogger, err error) {
	status := TimingStatus(err)
	if status >= http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("working hours request failed")
		w.WriteHeader(status)
		return
	}
	WriteResult(w, log, status, api.Error{Error: err.Error()})
}
