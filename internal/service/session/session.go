package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"adminpanel/internal/entities"
)

const (
	DefaultMaxFailedAttempts = 5
	DefaultLockoutDuration   = 15 * time.Minute
)

type Config struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
}

// State то, что видит экран входа при открытии.
type State struct {
	Locked        bool
	RemainingLock time.Duration
	FailedCount   int
}

type Service struct {
	store         AttemptsStore
	authenticator Authenticator
	tokens        TokenIssuer
	threshold     int
	lockout       time.Duration
	now           func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New(store AttemptsStore, authenticator Authenticator, tokens TokenIssuer, cfg Config) *Service {
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = DefaultMaxFailedAttempts
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = DefaultLockoutDuration
	}

	return &Service{
		store:         store,
		authenticator: authenticator,
		tokens:        tokens,
		threshold:     cfg.MaxFailedAttempts,
		lockout:       cfg.LockoutDuration,
		now:           time.Now,
		inFlight:      make(map[string]struct{}),
	}
}

func (s *Service) State(ctx context.Context, deviceID string) (State, error) {
	if strings.TrimSpace(deviceID) == "" {
		return State{}, ErrMissingDeviceID
	}

	now := s.now()
	attempts, err := s.load(ctx, deviceID, now)
	if err != nil {
		return State{}, fmt.Errorf("session state: %w", err)
	}

	state := State{FailedCount: attempts.FailedCount}
	if attempts.LockedAt(now) {
		state.Locked = true
		state.RemainingLock = attempts.LockedUntil.Sub(now)
	}
	return state, nil
}

func (s *Service) SignIn(ctx context.Context, deviceID, email, password string) (*entities.Session, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, ErrMissingDeviceID
	}
	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(password) {
		return nil, ErrEmptyPassword
	}

	if !s.acquire(deviceID) {
		return nil, ErrSubmitInProgress
	}
	defer s.release(deviceID)

	now := s.now()
	attempts, err := s.load(ctx, deviceID, now)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if attempts.LockedAt(now) {
		return nil, &LockedError{Remaining: attempts.LockedUntil.Sub(now)}
	}

	principal, err := s.authenticator.SignIn(ctx, email, password)
	if err != nil {
		return nil, s.registerFailure(ctx, deviceID, attempts, now, err)
	}

	if !attempts.IsZero() {
		if err := s.store.Clear(ctx, deviceID); err != nil {
			return nil, fmt.Errorf("clear login attempts: %w", err)
		}
	}

	token, expiresAt, err := s.tokens.Issue(principal.UserID, principal.Email, principal.Role.String(), principal.BranchIDs)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &entities.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Principal: *principal,
	}, nil
}

// load читает счетчики и, если блокировка истекла, сбрасывает их в ноль.
func (s *Service) load(ctx context.Context, deviceID string, now time.Time) (entities.LoginAttempts, error) {
	attempts, err := s.store.Get(ctx, deviceID)
	if err != nil {
		return entities.LoginAttempts{}, fmt.Errorf("load login attempts: %w", err)
	}

	if attempts.LockExpiredAt(now) {
		if err := s.store.Clear(ctx, deviceID); err != nil {
			return entities.LoginAttempts{}, fmt.Errorf("reset expired lockout: %w", err)
		}
		return entities.LoginAttempts{}, nil
	}
	return attempts, nil
}

// registerFailure любая ошибка коллаборатора считается неудачной попыткой.
func (s *Service) registerFailure(ctx context.Context, deviceID string, attempts entities.LoginAttempts, now time.Time, cause error) error {
	if !errors.Is(cause, ErrInvalidCredentials) {
		cause = fmt.Errorf("%w: %w", ErrAuthUnavailable, cause)
	}

	attempts.FailedCount++
	locked := attempts.FailedCount >= s.threshold
	if locked {
		lockedUntil := now.Add(s.lockout)
		attempts.LockedUntil = &lockedUntil
	}

	if err := s.store.Save(ctx, deviceID, attempts); err != nil {
		return errors.Join(cause, fmt.Errorf("save login attempts: %w", err))
	}

	if locked {
		return &LockedError{Remaining: s.lockout, cause: cause}
	}
	return fmt.Errorf("sign in: %w", cause)
}

func (s *Service) acquire(deviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[deviceID]; busy {
		return false
	}
	s.inFlight[deviceID] = struct{}{}
	return true
}

func (s *Service) release(deviceID string) {
	s.mu.Lock()
	delete(s.inFlight, deviceID)
	s.mu.Unlock()
}
