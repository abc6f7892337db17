//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timing_test
package timing

import (
	"context"

	"adminpanel/internal/entities"
)

type Repository interface {
	// GetWorkingHours nil без ошибки, если расписание филиала еще не заполнено.
	GetWorkingHours(ctx context.Context, branchID string) (entities.WorkingHours, error)
	SaveWorkingHours(ctx context.Context, branchID string, hours entities.WorkingHours) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
