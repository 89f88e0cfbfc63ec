// AngelaMos | 2026
// handler.go

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/greengarden-id/backend/internal/core"
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

// RegisterRoutes registers the public storefront catalog reads. No
// authentication is required; archived and inactive products are
// filtered out before they reach the response.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/plants", func(r chi.Router) {
		r.Get("/", h.ListPlants)
		r.Get("/{plantID}", h.GetPlant)
	})

	r.Route("/designs", func(r chi.Router) {
		r.Get("/", h.ListDesigns)
		r.Get("/{designID}", h.GetDesign)
	})

	r.Route("/care-packages", func(r chi.Router) {
		r.Get("/", h.ListCare)
		r.Get("/{packageID}", h.GetCare)
	})

	r.Get("/categories", h.ListCategories)
}

// RegisterAdminRoutes registers catalog management endpoints. Every
// route re-verifies the caller's token and role server-side.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Route("/plants", func(r chi.Router) {
			r.Get("/", h.AdminListPlants)
			r.Post("/", h.CreatePlant)
			r.Put("/{plantID}", h.UpdatePlant)
			r.Delete("/{plantID}", h.DeletePlant)
		})

		r.Route("/designs", func(r chi.Router) {
			r.Get("/", h.AdminListDesigns)
			r.Post("/", h.CreateDesign)
			r.Put("/{designID}", h.UpdateDesign)
			r.Delete("/{designID}", h.DeleteDesign)
		})

		r.Route("/care-packages", func(r chi.Router) {
			r.Get("/", h.AdminListCare)
			r.Post("/", h.CreateCare)
			r.Put("/{packageID}", h.UpdateCare)
			r.Delete("/{packageID}", h.DeleteCare)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", h.CreateCategory)
			r.Delete("/{categoryID}", h.DeleteCategory)
		})
	})
}

func (h *Handler) ListPlants(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	plants, total, err := h.service.ListStorefrontPlants(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToPlantResponseList(plants),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) AdminListPlants(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	plants, total, err := h.service.ListPlants(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToPlantResponseList(plants),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetPlant(w http.ResponseWriter, r *http.Request) {
	plant, err := h.service.GetPlant(r.Context(), chi.URLParam(r, "plantID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plant")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPlantResponse(plant))
}

func (h *Handler) CreatePlant(w http.ResponseWriter, r *http.Request) {
	var req CreatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	plant, err := h.service.CreatePlant(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.BadRequest(w, "category does not exist")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToPlantResponse(plant))
}

func (h *Handler) UpdatePlant(w http.ResponseWriter, r *http.Request) {
	var req UpdatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	plant, err := h.service.UpdatePlant(
		r.Context(),
		chi.URLParam(r, "plantID"),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plant")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPlantResponse(plant))
}

func (h *Handler) DeletePlant(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeletePlant(r.Context(), chi.URLParam(r, "plantID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plant")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListDesigns(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	designs, total, err := h.service.ListStorefrontDesigns(
		r.Context(),
		params,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToDesignResponseList(designs),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) AdminListDesigns(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	designs, total, err := h.service.ListDesigns(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToDesignResponseList(designs),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetDesign(w http.ResponseWriter, r *http.Request) {
	design, err := h.service.GetDesign(
		r.Context(),
		chi.URLParam(r, "designID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "garden design")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToDesignResponse(design))
}

func (h *Handler) CreateDesign(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	design, err := h.service.CreateDesign(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToDesignResponse(design))
}

func (h *Handler) UpdateDesign(w http.ResponseWriter, r *http.Request) {
	var req UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	design, err := h.service.UpdateDesign(
		r.Context(),
		chi.URLParam(r, "designID"),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "garden design")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToDesignResponse(design))
}

func (h *Handler) DeleteDesign(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteDesign(r.Context(), chi.URLParam(r, "designID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "garden design")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListCare(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	packages, total, err := h.service.ListStorefrontCare(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToCareResponseList(packages),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) AdminListCare(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)

	packages, total, err := h.service.ListCare(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(
		w,
		ToCareResponseList(packages),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) GetCare(w http.ResponseWriter, r *http.Request) {
	care, err := h.service.GetCare(r.Context(), chi.URLParam(r, "packageID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "care package")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCareResponse(care))
}

func (h *Handler) CreateCare(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	care, err := h.service.CreateCare(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToCareResponse(care))
}

func (h *Handler) UpdateCare(w http.ResponseWriter, r *http.Request) {
	var req UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	care, err := h.service.UpdateCare(
		r.Context(),
		chi.URLParam(r, "packageID"),
		req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "care package")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCareResponse(care))
}

func (h *Handler) DeleteCare(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteCare(r.Context(), chi.URLParam(r, "packageID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "care package")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCategoryResponseList(categories))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("slug"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteCategory(
		r.Context(),
		chi.URLParam(r, "categoryID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "category")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func listParamsFromQuery(r *http.Request) ListParams {
	return ListParams{
		Page:       parseIntQuery(r, "page", 1),
		PageSize:   parseIntQuery(r, "page_size", 20),
		Search:     r.URL.Query().Get("search"),
		Status:     r.URL.Query().Get("status"),
		CategoryID: r.URL.Query().Get("category_id"),
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
