// AngelaMos | 2026
// service_test.go

package order

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden-id/backend/internal/core"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusSelesai, false},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusSelesai, false},
		{StatusProcessing, StatusPending, false},
		{StatusShipped, StatusSelesai, true},
		{StatusShipped, StatusCancelled, false},
		{StatusShipped, StatusPending, false},
		{StatusSelesai, StatusCancelled, false},
		{StatusSelesai, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusProcessing, false},
	}

	for _, tc := range cases {
		name := tc.from + "_to_" + tc.to
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

type fakeRepo struct {
	orders  map[string]*Order
	updated []string
}

func newFakeRepo(orders ...*Order) *fakeRepo {
	repo := &fakeRepo{orders: make(map[string]*Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (f *fakeRepo) Create(_ context.Context, _ core.DBTX, o *Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeRepo) CreateItems(
	_ context.Context,
	_ core.DBTX,
	_ []OrderItem,
) error {
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	copied := *o
	return &copied, nil
}

func (f *fakeRepo) GetItems(
	_ context.Context,
	_ string,
) ([]OrderItem, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateStatus(
	_ context.Context,
	id, status string,
) error {
	o, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("update order status: %w", core.ErrNotFound)
	}
	o.Status = status
	f.updated = append(f.updated, id+":"+status)
	return nil
}

func (f *fakeRepo) List(
	_ context.Context,
	_ ListParams,
) ([]Order, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) CountByStatus(
	_ context.Context,
) (map[string]int, error) {
	counts := make(map[string]int)
	for _, o := range f.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo := newFakeRepo(&Order{ID: "o1", Status: StatusPending})
	svc := NewService(nil, repo)

	order, err := svc.UpdateStatus(
		context.Background(),
		"o1",
		StatusProcessing,
	)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, order.Status)
	assert.Equal(t, StatusProcessing, repo.orders["o1"].Status)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := newFakeRepo(&Order{ID: "o1", Status: StatusPending})
	svc := NewService(nil, repo)

	_, err := svc.UpdateStatus(context.Background(), "o1", StatusSelesai)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, StatusPending, repo.orders["o1"].Status)
}

func TestUpdateStatus_TerminalIsFrozen(t *testing.T) {
	for _, terminal := range []string{StatusSelesai, StatusCancelled} {
		repo := newFakeRepo(&Order{ID: "o1", Status: terminal})
		svc := NewService(nil, repo)

		_, err := svc.UpdateStatus(
			context.Background(),
			"o1",
			StatusProcessing,
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
	}
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewService(nil, newFakeRepo())

	_, err := svc.UpdateStatus(context.Background(), "ghost", StatusShipped)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestCancelOwn_WhilePending(t *testing.T) {
	repo := newFakeRepo(&Order{
		ID:     "o1",
		UserID: "u1",
		Status: StatusPending,
	})
	svc := NewService(nil, repo)

	order, err := svc.CancelOwn(context.Background(), "o1", "u1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, order.Status)
}

func TestCancelOwn_NotOwner(t *testing.T) {
	repo := newFakeRepo(&Order{
		ID:     "o1",
		UserID: "u1",
		Status: StatusPending,
	})
	svc := NewService(nil, repo)

	_, err := svc.CancelOwn(context.Background(), "o1", "someone-else")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrForbidden))
	assert.Equal(t, StatusPending, repo.orders["o1"].Status)
}

func TestCancelOwn_AfterShipping(t *testing.T) {
	repo := newFakeRepo(&Order{
		ID:     "o1",
		UserID: "u1",
		Status: StatusShipped,
	})
	svc := NewService(nil, repo)

	_, err := svc.CancelOwn(context.Background(), "o1", "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestGetOrder_OwnerScoped(t *testing.T) {
	repo := newFakeRepo(&Order{
		ID:     "o1",
		UserID: "u1",
		Status: StatusPending,
	})
	svc := NewService(nil, repo)

	_, _, err := svc.GetOrder(context.Background(), "o1", "u1", false)
	assert.NoError(t, err)

	_, _, err = svc.GetOrder(context.Background(), "o1", "intruder", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrForbidden))

	_, _, err = svc.GetOrder(context.Background(), "o1", "any-admin", true)
	assert.NoError(t, err)
}
