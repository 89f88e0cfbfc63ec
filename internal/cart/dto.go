// AngelaMos | 2026
// dto.go

package cart

import (
	"time"
)

type AddItemRequest struct {
	ProductID   string `json:"product_id"   validate:"required,uuid4"`
	ProductKind string `json:"product_kind" validate:"required,oneof=plant garden_design care_package"`
	Quantity    int    `json:"quantity"     validate:"required,gt=0,lte=99"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0,lte=99"`
}

type ItemResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductKind   string    `json:"product_kind"`
	ProductName   string    `json:"product_name"`
	ProductImage  string    `json:"product_image"`
	UnitPrice     int64     `json:"unit_price"`
	StockSnapshot int       `json:"stock_snapshot"`
	Quantity      int       `json:"quantity"`
	Subtotal      int64     `json:"subtotal"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CartResponse struct {
	ID        string         `json:"id"`
	Items     []ItemResponse `json:"items"`
	ItemCount int            `json:"item_count"`
	Total     int64          `json:"total"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func ToCartResponse(c *Cart, items []Item) CartResponse {
	resp := CartResponse{
		ID:        c.ID,
		Items:     make([]ItemResponse, 0, len(items)),
		UpdatedAt: c.UpdatedAt,
	}

	for _, item := range items {
		subtotal := item.UnitPrice * int64(item.Quantity)
		resp.Items = append(resp.Items, ItemResponse{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductKind:   item.ProductKind,
			ProductName:   item.ProductName,
			ProductImage:  item.ProductImage,
			UnitPrice:     item.UnitPrice,
			StockSnapshot: item.StockSnapshot,
			Quantity:      item.Quantity,
			Subtotal:      subtotal,
			UpdatedAt:     item.UpdatedAt,
		})
		resp.ItemCount += item.Quantity
		resp.Total += subtotal
	}

	return resp
}
