// AngelaMos | 2026
// service.go

package cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/greengarden-id/backend/internal/catalog"
)

// ProductCatalog resolves a product's current name, image, price and
// stock so lines can be snapshotted at add time.
type ProductCatalog interface {
	ProductSnapshot(
		ctx context.Context,
		kind, id string,
	) (catalog.Snapshot, error)
}

type Service struct {
	repo    Repository
	catalog ProductCatalog
}

func NewService(repo Repository, catalog ProductCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) GetCart(
	ctx context.Context,
	userID string,
) (*Cart, []Item, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) AddItem(
	ctx context.Context,
	userID string,
	req AddItemRequest,
) (*Cart, []Item, error) {
	snap, err := s.catalog.ProductSnapshot(
		ctx,
		req.ProductKind,
		req.ProductID,
	)
	if err != nil {
		return nil, nil, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	item := &Item{
		ID:            uuid.New().String(),
		CartID:        cart.ID,
		ProductID:     req.ProductID,
		ProductKind:   req.ProductKind,
		ProductName:   snap.Name,
		ProductImage:  snap.Image,
		UnitPrice:     snap.Price,
		StockSnapshot: snap.Stock,
		Quantity:      req.Quantity,
	}

	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, nil, err
	}

	items, err := s.repo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) UpdateItem(
	ctx context.Context,
	userID, itemID string,
	quantity int,
) (*Cart, []Item, error) {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	err = s.repo.SetItemQuantity(ctx, cart.ID, itemID, quantity)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) RemoveItem(
	ctx context.Context,
	userID, itemID string,
) (*Cart, []Item, error) {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		return nil, nil, err
	}

	items, err := s.repo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, err
	}

	return cart, items, nil
}

func (s *Service) ClearCart(ctx context.Context, userID string) error {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.repo.Clear(ctx, cart.ID)
}

func (s *Service) PurgeStaleBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	return s.repo.PurgeStaleBefore(ctx, cutoff)
}
