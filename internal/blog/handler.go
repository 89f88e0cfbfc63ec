// AngelaMos | 2026
// handler.go

package blog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes registers the public blog reads. Only published posts
// are visible here.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", h.ListPublished)
		r.Get("/{slug}", h.GetBySlug)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/blog", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListPosts)
		r.Post("/", h.CreatePost)
		r.Get("/{postID}", h.GetPost)
		r.Put("/{postID}", h.UpdatePost)
		r.Delete("/{postID}", h.DeletePost)
	})
}

func (h *Handler) ListPublished(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Search:   r.URL.Query().Get("search"),
	}

	posts, total, err := h.service.ListPublished(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToPostSummaryList(posts),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPublishedBySlug(
		r.Context(),
		chi.URLParam(r, "slug"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostResponse(post))
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
	}

	posts, total, err := h.service.ListPosts(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToPostSummaryList(posts),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostResponse(post))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	authorID := middleware.GetUserID(r.Context())

	post, err := h.service.CreatePost(r.Context(), authorID, req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("slug"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToPostResponse(post))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	post, err := h.service.UpdatePost(
		r.Context(),
		chi.URLParam(r, "postID"),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("slug"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPostResponse(post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeletePost(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "post")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
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
