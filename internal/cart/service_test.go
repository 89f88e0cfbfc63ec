// AngelaMos | 2026
// service_test.go

package cart

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden-id/backend/internal/catalog"
	"github.com/greengarden-id/backend/internal/core"
)

type fakeCatalog struct {
	products map[string]catalog.Snapshot
}

func (f *fakeCatalog) ProductSnapshot(
	_ context.Context,
	_, id string,
) (catalog.Snapshot, error) {
	snap, ok := f.products[id]
	if !ok {
		return catalog.Snapshot{}, fmt.Errorf(
			"get product: %w",
			core.ErrNotFound,
		)
	}
	return snap, nil
}

type fakeCartRepo struct {
	cart  *Cart
	items map[string]*Item
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]*Item)}
}

func (f *fakeCartRepo) GetOrCreate(
	_ context.Context,
	userID string,
) (*Cart, error) {
	if f.cart == nil {
		f.cart = &Cart{ID: "cart-1", UserID: userID}
	}
	return f.cart, nil
}

func (f *fakeCartRepo) GetByUserID(
	_ context.Context,
	userID string,
) (*Cart, error) {
	if f.cart == nil || f.cart.UserID != userID {
		return nil, fmt.Errorf("get cart: %w", core.ErrNotFound)
	}
	return f.cart, nil
}

func (f *fakeCartRepo) ListItems(
	_ context.Context,
	_ string,
) ([]Item, error) {
	items := make([]Item, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, *item)
	}
	return items, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, item *Item) error {
	for _, existing := range f.items {
		if existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			*item = *existing
			return nil
		}
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeCartRepo) SetItemQuantity(
	_ context.Context,
	_, itemID string,
	quantity int,
) error {
	item, ok := f.items[itemID]
	if !ok {
		return fmt.Errorf("set cart item quantity: %w", core.ErrNotFound)
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeCartRepo) RemoveItem(
	_ context.Context,
	_, itemID string,
) error {
	if _, ok := f.items[itemID]; !ok {
		return fmt.Errorf("remove cart item: %w", core.ErrNotFound)
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, _ string) error {
	f.items = make(map[string]*Item)
	return nil
}

func (f *fakeCartRepo) PurgeStaleBefore(
	_ context.Context,
	_ time.Time,
) (int64, error) {
	return 0, nil
}

func newTestService() (*Service, *fakeCartRepo) {
	repo := newFakeCartRepo()
	cat := &fakeCatalog{products: map[string]catalog.Snapshot{
		"plant-1": {
			Name:  "Monstera Deliciosa",
			Image: "/images/monstera.jpg",
			Price: 185000,
			Stock: 12,
		},
		"plant-2": {
			Name:  "Lidah Mertua",
			Image: "/images/lidah-mertua.jpg",
			Price: 65000,
			Stock: 30,
		},
	}}
	return NewService(repo, cat), repo
}

func TestAddItem_SnapshotsProductFields(t *testing.T) {
	svc, _ := newTestService()

	_, items, err := svc.AddItem(context.Background(), "u1", AddItemRequest{
		ProductID:   "plant-1",
		ProductKind: "plant",
		Quantity:    2,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Monstera Deliciosa", items[0].ProductName)
	assert.Equal(t, "/images/monstera.jpg", items[0].ProductImage)
	assert.Equal(t, int64(185000), items[0].UnitPrice)
	assert.Equal(t, 12, items[0].StockSnapshot)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_SameProductAccumulates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := AddItemRequest{
		ProductID:   "plant-1",
		ProductKind: "plant",
		Quantity:    1,
	}

	_, _, err := svc.AddItem(ctx, "u1", req)
	require.NoError(t, err)

	_, items, err := svc.AddItem(ctx, "u1", req)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svc, repo := newTestService()

	_, _, err := svc.AddItem(context.Background(), "u1", AddItemRequest{
		ProductID:   "ghost",
		ProductKind: "plant",
		Quantity:    1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Nil(t, repo.cart)
}

func TestUpdateItem_RequiresExistingCart(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.UpdateItem(context.Background(), "u1", "item-1", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestToCartResponse_Totals(t *testing.T) {
	cart := &Cart{ID: "cart-1"}
	items := []Item{
		{ID: "i1", ProductName: "A", UnitPrice: 1000, Quantity: 3},
		{ID: "i2", ProductName: "B", UnitPrice: 2500, Quantity: 2},
	}

	resp := ToCartResponse(cart, items)

	assert.Equal(t, 5, resp.ItemCount)
	assert.Equal(t, int64(8000), resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(3000), resp.Items[0].Subtotal)
	assert.Equal(t, int64(5000), resp.Items[1].Subtotal)
}
