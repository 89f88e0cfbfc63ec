// AngelaMos | 2026
// dto.go

package order

import (
	"time"
)

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required,min=10,max=500"`
	Notes           string `json:"notes"            validate:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped selesai cancelled"`
}

type ItemResponse struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductKind  string `json:"product_kind"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

type OrderResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Status          string         `json:"status"`
	Total           int64          `json:"total"`
	ShippingAddress string         `json:"shipping_address"`
	Notes           string         `json:"notes,omitempty"`
	Items           []ItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type ListParams struct {
	Page     int
	PageSize int
	Status   string
	UserID   string
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToOrderResponse(o *Order, items []OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.Status,
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	for _, item := range items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductKind:  item.ProductKind,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.UnitPrice * int64(item.Quantity),
		})
	}

	return resp
}

func ToOrderResponseList(orders []Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(&o, nil))
	}
	return responses
}
