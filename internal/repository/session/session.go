package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"adminpanel/internal/entities"
)

const (
	failedAttemptsKey = "failed_login_attempts"
	lockoutUntilKey   = "lockout_until"
)

// Store локальное key/value хранилище в JSON-файле. На устройство две записи:
// счетчик неудачных попыток и дедлайн блокировки.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

func New(path string) (*Store, error) {
	values, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("session store %s: %w", path, err)
	}

	return &Store{
		path:   path,
		values: values,
	}, nil
}

func (s *Store) Get(_ context.Context, deviceID string) (entities.LoginAttempts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var attempts entities.LoginAttempts

	if raw, ok := s.values[key(deviceID, failedAttemptsKey)]; ok {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return entities.LoginAttempts{}, fmt.Errorf("unexpected session store get error: %w", err)
		}
		attempts.FailedCount = count
	}

	if raw, ok := s.values[key(deviceID, lockoutUntilKey)]; ok {
		lockedUntil, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return entities.LoginAttempts{}, fmt.Errorf("unexpected session store get error: %w", err)
		}
		attempts.LockedUntil = &lockedUntil
	}

	return attempts, nil
}

func (s *Store) Save(_ context.Context, deviceID string, attempts entities.LoginAttempts) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.snapshot()
	values[key(deviceID, failedAttemptsKey)] = strconv.Itoa(attempts.FailedCount)
	if attempts.LockedUntil != nil {
		values[key(deviceID, lockoutUntilKey)] = attempts.LockedUntil.UTC().Format(time.RFC3339Nano)
	} else {
		delete(values, key(deviceID, lockoutUntilKey))
	}

	if err := writeFile(s.path, values); err != nil {
		return fmt.Errorf("unexpected session store save error: %w", err)
	}
	s.values = values
	return nil
}

func (s *Store) Clear(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.snapshot()
	delete(values, key(deviceID, failedAttemptsKey))
	delete(values, key(deviceID, lockoutUntilKey))

	if err := writeFile(s.path, values); err != nil {
		return fmt.Errorf("unexpected session store clear error: %w", err)
	}
	s.values = values
	return nil
}

// snapshot копия под s.mu: память меняется только после успешной записи на диск.
func (s *Store) snapshot() map[string]string {
	return maps.Clone(s.values)
}

func key(deviceID, name string) string {
	return deviceID + ":" + name
}

func readFile(path string) (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// writeFile через временный файл и rename, чтобы не оставить файл наполовину записанным.
func writeFile(path string, values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	temp := path + ".tmp"
	if err := os.WriteFile(temp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(temp, path)
}
