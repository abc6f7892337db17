package timing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"adminpanel/internal/entities"
)

// DraftView снимок черновика для ответа клиенту.
type DraftView struct {
	BranchID          string
	WorkingHours      entities.WorkingHours
	HasUnsavedChanges bool
	Saving            bool
}

// SlotEdit изменение границ слота, nil - без изменений.
type SlotEdit struct {
	Open  *entities.TimeOfDay
	Close *entities.TimeOfDay
}

// Timing редактор расписания: по одному черновику на пользователя.
type Timing struct {
	repository Repository
	txManager  TxManager

	mu     sync.Mutex
	drafts map[string]*Draft
}

func New(repository Repository, txManager TxManager) *Timing {
	return &Timing{
		repository: repository,
		txManager:  txManager,
		drafts:     make(map[string]*Draft),
	}
}

// Load открывает расписание филиала. Если у пользователя есть несохраненный
// черновик, без confirm переключение отклоняется.
func (s *Timing) Load(ctx context.Context, principal entities.Principal, branchID string, confirm bool) (DraftView, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return DraftView{}, ErrMissingBranchID
	}
	if !principal.CanAccess([]string{branchID}) {
		return DraftView{}, ErrForbidden
	}

	s.mu.Lock()
	err := s.checkReplaceable(principal.UserID, branchID, confirm)
	s.mu.Unlock()
	if err != nil {
		return DraftView{}, err
	}

	hours, err := s.repository.GetWorkingHours(ctx, branchID)
	if err != nil {
		return DraftView{}, fmt.Errorf("load working hours: %w", err)
	}

	draft := NewDraft(branchID, hours)

	s.mu.Lock()
	defer s.mu.Unlock()

	// пока шло чтение, черновик могли изменить или начать сохранять
	if err := s.checkReplaceable(principal.UserID, branchID, confirm); err != nil {
		return DraftView{}, err
	}
	s.drafts[principal.UserID] = draft
	return viewOf(draft), nil
}

// checkReplaceable вызывается под s.mu.
func (s *Timing) checkReplaceable(userID, branchID string, confirm bool) error {
	current, ok := s.drafts[userID]
	if !ok {
		return nil
	}
	if current.saving {
		return ErrSaveInProgress
	}
	if current.HasUnsavedChanges() && !confirm {
		return fmt.Errorf("load branch %s: %w", branchID, ErrUnsavedChanges)
	}
	return nil
}

func (s *Timing) Current(principal entities.Principal) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[principal.UserID]
	if !ok {
		return DraftView{}, ErrNoDraft
	}
	return viewOf(draft), nil
}

func (s *Timing) ToggleDay(principal entities.Principal, day string) (DraftView, error) {
	return s.mutate(principal, day, func(d *Draft, weekday entities.Weekday) error {
		d.ToggleDay(weekday)
		return nil
	})
}

func (s *Timing) AddSlot(principal entities.Principal, day string, slot entities.TimeSlot) (DraftView, error) {
	return s.mutate(principal, day, func(d *Draft, weekday entities.Weekday) error {
		d.AddSlot(weekday, slot)
		return nil
	})
}

func (s *Timing) RemoveSlot(principal entities.Principal, day string, index int) (DraftView, error) {
	return s.mutate(principal, day, func(d *Draft, weekday entities.Weekday) error {
		return d.RemoveSlot(weekday, index)
	})
}

func (s *Timing) EditSlot(principal entities.Principal, day string, index int, edit SlotEdit) (DraftView, error) {
	return s.mutate(principal, day, func(d *Draft, weekday entities.Weekday) error {
		return d.EditSlot(weekday, index, edit.Open, edit.Close)
	})
}

// Save проверяет черновик и пишет расписание целиком в транзакции.
// Пока идет сохранение, повторный Save и правки отклоняются.
func (s *Timing) Save(ctx context.Context, principal entities.Principal) (DraftView, error) {
	s.mu.Lock()
	draft, ok := s.drafts[principal.UserID]
	if !ok {
		s.mu.Unlock()
		return DraftView{}, ErrNoDraft
	}
	if draft.saving {
		s.mu.Unlock()
		return DraftView{}, ErrSaveInProgress
	}
	if err := draft.Validate(); err != nil {
		s.mu.Unlock()
		return DraftView{}, err
	}
	draft.saving = true
	branchID := draft.BranchID
	snapshot := draft.Working.Clone()
	s.mu.Unlock()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.SaveWorkingHours(ctx, branchID, snapshot)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	draft.saving = false
	if err != nil {
		return DraftView{}, fmt.Errorf("save working hours: %w", err)
	}
	draft.MarkSaved(snapshot)
	return viewOf(draft), nil
}

// Discard сбрасывает черновик. Несохраненные правки теряются только с confirm.
func (s *Timing) Discard(principal entities.Principal, confirm bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[principal.UserID]
	if !ok {
		return nil
	}
	if draft.saving {
		return ErrSaveInProgress
	}
	if draft.HasUnsavedChanges() && !confirm {
		return ErrUnsavedChanges
	}
	delete(s.drafts, principal.UserID)
	return nil
}

func (s *Timing) mutate(principal entities.Principal, day string, fn func(*Draft, entities.Weekday) error) (DraftView, error) {
	weekday, err := parseWeekday(day)
	if err != nil {
		return DraftView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[principal.UserID]
	if !ok {
		return DraftView{}, ErrNoDraft
	}
	if draft.saving {
		return DraftView{}, ErrSaveInProgress
	}
	if err := fn(draft, weekday); err != nil {
		return DraftView{}, err
	}
	return viewOf(draft), nil
}

func viewOf(d *Draft) DraftView {
	return DraftView{
		BranchID:          d.BranchID,
		WorkingHours:      d.Working.Clone(),
		HasUnsavedChanges: d.HasUnsavedChanges(),
		Saving:            d.saving,
	}
}
