//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=branchnames_test
package branchnames

import "context"

type Repository interface {
	LoadNames(ctx context.Context, ids []string) (map[string]string, error)
}
