package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adminpanel/internal/entities"
	"adminpanel/internal/gateway/auth"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT id::text, email, password_hash, role, branch_ids, created_at
		FROM users
		WHERE lower(email) = $1`

	var (
		user entities.User
		role string
	)
	err := r.querier.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).
		Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&role,
			&user.BranchIDs,
			&user.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	user.Role = entities.Role(role)
	return &user, nil
}
