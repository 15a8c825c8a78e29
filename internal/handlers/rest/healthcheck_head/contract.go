//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// Probe проверяет доступность зависимости, например пула Postgres.
type Probe interface {
	Ping(ctx context.Context) error
}
