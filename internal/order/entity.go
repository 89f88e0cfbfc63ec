// AngelaMos | 2026
// entity.go

package order

import (
	"time"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusSelesai    = "selesai"
	StatusCancelled  = "cancelled"
)

// validTransitions encodes the fulfilment state machine. Terminal
// states (selesai, cancelled) have no outgoing edges.
var validTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusSelesai},
}

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	Status          string    `db:"status"`
	Total           int64     `db:"total"`
	ShippingAddress string    `db:"shipping_address"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// OrderItem carries the cart line snapshot forward so the order is
// immutable against later catalog edits.
type OrderItem struct {
	ID            string    `db:"id"`
	OrderID       string    `db:"order_id"`
	ProductID     string    `db:"product_id"`
	ProductKind   string    `db:"product_kind"`
	ProductName   string    `db:"product_name"`
	ProductImage  string    `db:"product_image"`
	UnitPrice     int64     `db:"unit_price"`
	StockSnapshot int       `db:"stock_snapshot"`
	Quantity      int       `db:"quantity"`
	CreatedAt     time.Time `db:"created_at"`
}
