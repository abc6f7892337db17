package entities

import "time"

// LoginAttempts локальное состояние ограничителя входа на устройстве.
type LoginAttempts struct {
	FailedCount int
	LockedUntil *time.Time
}

func (a LoginAttempts) IsZero() bool {
	return a.FailedCount == 0 && a.LockedUntil == nil
}

// LockedAt true, пока дедлайн блокировки не наступил.
func (a LoginAttempts) LockedAt(now time.Time) bool {
	return a.LockedUntil != nil && now.Before(*a.LockedUntil)
}

// LockExpiredAt блокировка была, но уже истекла.
func (a LoginAttempts) LockExpiredAt(now time.Time) bool {
	return a.LockedUntil != nil && !now.Before(*a.LockedUntil)
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsPrivileged() bool {
	return r == RoleAdmin
}

type Principal struct {
	UserID    string
	Email     string
	Role      Role
	BranchIDs []string
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	Principal Principal
}
