// AngelaMos | 2026
// stats.go

package admin

import (
	"context"
)

type userCounter interface {
	CountActive(ctx context.Context) (int, error)
}

type plantCounter interface {
	CountPlants(ctx context.Context) (int, error)
}

type orderCounter interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type storeStats struct {
	users   userCounter
	catalog plantCounter
	orders  orderCounter
}

// NewStoreStats bundles the per-domain counters into the dashboard
// aggregate.
func NewStoreStats(
	users userCounter,
	catalog plantCounter,
	orders orderCounter,
) StoreStats {
	return &storeStats{users: users, catalog: catalog, orders: orders}
}

func (s *storeStats) CountActiveUsers(ctx context.Context) (int, error) {
	return s.users.CountActive(ctx)
}

func (s *storeStats) CountPlants(ctx context.Context) (int, error) {
	return s.catalog.CountPlants(ctx)
}

func (s *storeStats) CountOrdersByStatus(
	ctx context.Context,
) (map[string]int, error) {
	return s.orders.CountByStatus(ctx)
}
