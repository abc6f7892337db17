//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timings_patch_test
package timings_patch

import (
	"adminpanel/internal/entities"
	"adminpanel/internal/service/timing"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ToggleDay(principal entities.Principal, day string) (timing.DraftView, error)
	AddSlot(principal entities.Principal, day string, slot entities.TimeSlot) (timing.DraftView, error)
	RemoveSlot(principal entities.Principal, day string, index int) (timing.DraftView, error)
	EditSlot(principal entities.Principal, day string, index int, edit timing.SlotEdit) (timing.DraftView, error)
}
