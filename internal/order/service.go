// AngelaMos | 2026
// service.go

package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/greengarden-id/backend/internal/cart"
	"github.com/greengarden-id/backend/internal/core"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(db *sqlx.DB, repo Repository) *Service {
	return &Service{db: db, repo: repo}
}

// Checkout converts the caller's cart into an order. The order insert,
// the line copies, and the cart drain commit or roll back together, so
// a failure never leaves a half-placed order or a drained cart with no
// order behind it.
func (s *Service) Checkout(
	ctx context.Context,
	userID string,
	req CheckoutRequest,
) (*Order, []OrderItem, error) {
	var (
		placed *Order
		lines  []OrderItem
	)

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		carts := cart.NewRepository(tx)

		userCart, err := carts.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return ErrEmptyCart
			}
			return err
		}

		cartItems, err := carts.ListItems(ctx, userCart.ID)
		if err != nil {
			return err
		}

		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var total int64
		for _, item := range cartItems {
			total += item.UnitPrice * int64(item.Quantity)
		}

		placed = &Order{
			ID:              uuid.New().String(),
			UserID:          userID,
			Status:          StatusPending,
			Total:           total,
			ShippingAddress: req.ShippingAddress,
			Notes:           req.Notes,
		}

		if err := s.repo.Create(ctx, tx, placed); err != nil {
			return err
		}

		lines = make([]OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			lines = append(lines, OrderItem{
				ID:            uuid.New().String(),
				OrderID:       placed.ID,
				ProductID:     item.ProductID,
				ProductKind:   item.ProductKind,
				ProductName:   item.ProductName,
				ProductImage:  item.ProductImage,
				UnitPrice:     item.UnitPrice,
				StockSnapshot: item.StockSnapshot,
				Quantity:      item.Quantity,
			})
		}

		if err := s.repo.CreateItems(ctx, tx, lines); err != nil {
			return err
		}

		return carts.Clear(ctx, userCart.ID)
	})
	if err != nil {
		return nil, nil, err
	}

	return placed, lines, nil
}

// GetOrder returns an order only when the requester owns it or is
// looking through the admin surface.
func (s *Service) GetOrder(
	ctx context.Context,
	orderID, requesterID string,
	isAdmin bool,
) (*Order, []OrderItem, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if !isAdmin && order.UserID != requesterID {
		return nil, nil, fmt.Errorf("get order: %w", core.ErrForbidden)
	}

	items, err := s.repo.GetItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

func (s *Service) ListUserOrders(
	ctx context.Context,
	userID string,
	params ListParams,
) ([]Order, int, error) {
	params.UserID = userID
	return s.repo.List(ctx, params)
}

func (s *Service) ListOrders(
	ctx context.Context,
	params ListParams,
) ([]Order, int, error) {
	return s.repo.List(ctx, params)
}

// UpdateStatus enforces the fulfilment state machine before touching
// the row.
func (s *Service) UpdateStatus(
	ctx context.Context,
	orderID, status string,
) (*Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(order.Status, status) {
		return nil, fmt.Errorf(
			"%w: %s to %s",
			ErrInvalidTransition,
			order.Status,
			status,
		)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

// CancelOwn lets a customer cancel their own order while it is still
// pending or processing.
func (s *Service) CancelOwn(
	ctx context.Context,
	orderID, userID string,
) (*Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, fmt.Errorf("cancel order: %w", core.ErrForbidden)
	}

	if !CanTransition(order.Status, StatusCancelled) {
		return nil, fmt.Errorf(
			"%w: %s to %s",
			ErrInvalidTransition,
			order.Status,
			StatusCancelled,
		)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return nil, err
	}

	order.Status = StatusCancelled
	return order, nil
}

func (s *Service) CountByStatus(
	ctx context.Context,
) (map[string]int, error) {
	return s.repo.CountByStatus(ctx)
}
