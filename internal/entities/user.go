package entities

import "time"

// User учетная запись из таблицы users, используется только сборщиком Principal.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	BranchIDs    []string
	CreatedAt    time.Time
}

func (u User) Principal() Principal {
	return Principal{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		BranchIDs: append([]string(nil), u.BranchIDs...),
	}
}
