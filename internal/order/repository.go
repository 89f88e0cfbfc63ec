// AngelaMos | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/greengarden-id/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, db core.DBTX, order *Order) error
	CreateItems(ctx context.Context, db core.DBTX, items []OrderItem) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetItems(ctx context.Context, orderID string) ([]OrderItem, error)
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, params ListParams) ([]Order, int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create takes an explicit DBTX so checkout can run it inside the same
// transaction that drains the cart.
func (r *repository) Create(
	ctx context.Context,
	db core.DBTX,
	order *Order,
) error {
	query := `
		INSERT INTO orders (
			id, user_id, status, total, shipping_address, notes
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := db.GetContext(ctx, order, query,
		order.ID,
		order.UserID,
		order.Status,
		order.Total,
		order.ShippingAddress,
		order.Notes,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (r *repository) CreateItems(
	ctx context.Context,
	db core.DBTX,
	items []OrderItem,
) error {
	query := `
		INSERT INTO order_items (
			id, order_id, product_id, product_kind, product_name,
			product_image, unit_price, stock_snapshot, quantity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for i := range items {
		_, err := db.ExecContext(ctx, query,
			items[i].ID,
			items[i].OrderID,
			items[i].ProductID,
			items[i].ProductKind,
			items[i].ProductName,
			items[i].ProductImage,
			items[i].UnitPrice,
			items[i].StockSnapshot,
			items[i].Quantity,
		)
		if err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Order, error) {
	query := `
		SELECT id, user_id, status, total, shipping_address, notes,
		       created_at, updated_at
		FROM orders
		WHERE id = $1`

	var order Order
	err := r.db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &order, nil
}

func (r *repository) GetItems(
	ctx context.Context,
	orderID string,
) ([]OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_kind, product_name,
		       product_image, unit_price, stock_snapshot, quantity,
		       created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC`

	var items []OrderItem
	if err := r.db.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}

	return items, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update order status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Order, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, params.UserID)
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM orders WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, status, total, shipping_address, notes,
		       created_at, updated_at
		FROM orders
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var orders []Order
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

func (r *repository) CountByStatus(
	ctx context.Context,
) (map[string]int, error) {
	query := `SELECT status, COUNT(*) AS count FROM orders GROUP BY status`

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
