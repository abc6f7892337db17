package timing

import "errors"

var (
	ErrMissingBranchID  = errors.New("branch id is required")
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidSlotIndex = errors.New("invalid slot index")
	ErrLastSlot         = errors.New("open day must keep at least one slot")

	ErrOpenDayWithoutSlots = errors.New("open day has no slots")
	ErrOverlappingSlots    = errors.New("slots overlap")

	ErrBranchNotFound = errors.New("branch not found")
	ErrForbidden      = errors.New("branch is not available for this user")
	ErrNoDraft        = errors.New("no working hours draft loaded")
	ErrUnsavedChanges = errors.New("draft has unsaved changes")
	ErrSaveInProgress = errors.New("save already in progress")
)
