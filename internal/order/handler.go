// AngelaMos | 2026
// handler.go

package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/greengarden-id/backend/internal/core"
	"github.com/greengarden-id/backend/internal/middleware"
	"github.com/greengarden-id/backend/internal/user"
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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Checkout)
		r.Get("/", h.ListMyOrders)
		r.Get("/{orderID}", h.GetOrder)
		r.Post("/{orderID}/cancel", h.CancelOrder)
	})
}

// RegisterAdminRoutes registers order management. Status changes go
// through the state machine regardless of who asks.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListOrders)
		r.Get("/{orderID}", h.AdminGetOrder)
		r.Put("/{orderID}/status", h.UpdateStatus)
	})
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	order, items, err := h.service.Checkout(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			core.BadRequest(w, "cart is empty")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToOrderResponse(order, items))
}

func (h *Handler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	params := ListParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Status:   r.URL.Query().Get("status"),
	}

	orders, total, err := h.service.ListUserOrders(r.Context(), userID, params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToOrderResponseList(orders),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	isAdmin := middleware.GetUserRole(r.Context()) == user.RoleAdmin

	order, items, err := h.service.GetOrder(
		r.Context(),
		chi.URLParam(r, "orderID"),
		userID,
		isAdmin,
	)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	core.OK(w, ToOrderResponse(order, items))
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	order, err := h.service.CancelOwn(
		r.Context(),
		chi.URLParam(r, "orderID"),
		userID,
	)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	core.OK(w, ToOrderResponse(order, nil))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Status:   r.URL.Query().Get("status"),
		UserID:   r.URL.Query().Get("user_id"),
	}

	orders, total, err := h.service.ListOrders(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToOrderResponseList(orders),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	order, items, err := h.service.GetOrder(
		r.Context(),
		chi.URLParam(r, "orderID"),
		userID,
		true,
	)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	core.OK(w, ToOrderResponse(order, items))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	order, err := h.service.UpdateStatus(
		r.Context(),
		chi.URLParam(r, "orderID"),
		req.Status,
	)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	core.OK(w, ToOrderResponse(order, nil))
}

func (h *Handler) writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "order")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "insufficient permissions")
	case errors.Is(err, ErrInvalidTransition):
		core.BadRequest(w, err.Error())
	default:
		core.InternalServerError(w, err)
	}
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
