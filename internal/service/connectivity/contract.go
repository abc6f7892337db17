//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connectivity_test
package connectivity

import "context"

// Resolver реализуется *net.Resolver.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}
