// AngelaMos | 2026
// entity.go

package cart

import (
	"time"
)

type Cart struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Item snapshots the product's name, image, unit price and stock level
// at add time so cart contents survive later catalog edits.
type Item struct {
	ID            string    `db:"id"`
	CartID        string    `db:"cart_id"`
	ProductID     string    `db:"product_id"`
	ProductKind   string    `db:"product_kind"`
	ProductName   string    `db:"product_name"`
	ProductImage  string    `db:"product_image"`
	UnitPrice     int64     `db:"unit_price"`
	StockSnapshot int       `db:"stock_snapshot"`
	Quantity      int       `db:"quantity"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
