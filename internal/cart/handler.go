// AngelaMos | 2026
// handler.go

package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/greengarden-id/backend/internal/core"
	"github.com/greengarden-id/backend/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes registers the cart endpoints. The cart is always the
// authenticated caller's own; there is no way to address another
// user's cart.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{itemID}", h.UpdateItem)
		r.Delete("/items/{itemID}", h.RemoveItem)
		r.Delete("/", h.ClearCart)
	})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	cart, items, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCartResponse(cart, items))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	cart, items, err := h.service.AddItem(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.BadRequest(w, "product does not exist")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCartResponse(cart, items))
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	itemID := chi.URLParam(r, "itemID")

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	cart, items, err := h.service.UpdateItem(
		r.Context(),
		userID,
		itemID,
		req.Quantity,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "cart item")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCartResponse(cart, items))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	itemID := chi.URLParam(r, "itemID")

	cart, items, err := h.service.RemoveItem(r.Context(), userID, itemID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "cart item")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCartResponse(cart, items))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.service.ClearCart(r.Context(), userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NoContent(w)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
