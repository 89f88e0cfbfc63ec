// AngelaMos | 2026
// repository.go

package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/greengarden-id/backend/internal/core"
)

type Repository interface {
	GetOrCreate(ctx context.Context, userID string) (*Cart, error)
	GetByUserID(ctx context.Context, userID string) (*Cart, error)
	ListItems(ctx context.Context, cartID string) ([]Item, error)
	AddItem(ctx context.Context, item *Item) error
	SetItemQuantity(
		ctx context.Context,
		cartID, itemID string,
		quantity int,
	) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
	PurgeStaleBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// GetOrCreate upserts the user's single cart. Concurrent first adds
// race to the same row instead of creating two carts.
func (r *repository) GetOrCreate(
	ctx context.Context,
	userID string,
) (*Cart, error) {
	query := `
		INSERT INTO carts (id, user_id)
		VALUES (gen_random_uuid(), $1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING id, user_id, created_at, updated_at`

	var cart Cart
	if err := r.db.GetContext(ctx, &cart, query, userID); err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	return &cart, nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) (*Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1`

	var cart Cart
	err := r.db.GetContext(ctx, &cart, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get cart: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return &cart, nil
}

func (r *repository) ListItems(
	ctx context.Context,
	cartID string,
) ([]Item, error) {
	query := `
		SELECT id, cart_id, product_id, product_kind, product_name,
		       product_image, unit_price, stock_snapshot, quantity,
		       created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at ASC`

	var items []Item
	if err := r.db.SelectContext(ctx, &items, query, cartID); err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	return items, nil
}

// AddItem is an atomic increment. Two concurrent adds of the same
// product both land: the database serializes the ON CONFLICT update,
// so neither write clobbers the other.
func (r *repository) AddItem(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO cart_items (
			id, cart_id, product_id, product_kind, product_name,
			product_image, unit_price, stock_snapshot, quantity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (cart_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity,
		    unit_price = EXCLUDED.unit_price,
		    product_name = EXCLUDED.product_name,
		    product_image = EXCLUDED.product_image,
		    stock_snapshot = EXCLUDED.stock_snapshot,
		    updated_at = NOW()
		RETURNING id, quantity, created_at, updated_at`

	err := r.db.GetContext(ctx, item, query,
		item.ID,
		item.CartID,
		item.ProductID,
		item.ProductKind,
		item.ProductName,
		item.ProductImage,
		item.UnitPrice,
		item.StockSnapshot,
		item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}

	return nil
}

func (r *repository) SetItemQuantity(
	ctx context.Context,
	cartID, itemID string,
	quantity int,
) error {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = NOW()
		WHERE cart_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, cartID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("set cart item quantity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set cart item quantity: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set cart item quantity: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) RemoveItem(
	ctx context.Context,
	cartID, itemID string,
) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, cartID, itemID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("remove cart item: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, cartID string) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`,
		cartID,
	)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}

// PurgeStaleBefore removes carts untouched since the cutoff, but only
// once they are empty. A stale cart that still holds lines is left
// alone so the owner finds their items intact when they come back.
func (r *repository) PurgeStaleBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	query := `
		DELETE FROM carts
		WHERE updated_at < $1
		  AND NOT EXISTS (
			SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id
		  )`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge stale carts: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge stale carts: %w", err)
	}

	return rows, nil
}
