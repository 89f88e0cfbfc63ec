// AngelaMos | 2026
// dto.go

package catalog

import (
	"time"
)

type CreatePlantRequest struct {
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Name        string  `json:"name"        validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required,min=1"`
	Price       int64   `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Image       string  `json:"image"       validate:"omitempty,url"`
	Status      string  `json:"status"      validate:"omitempty,oneof=available out_of_stock archived"`
}

type UpdatePlantRequest struct {
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *int64  `json:"price,omitempty"       validate:"omitempty,gt=0"`
	Stock       *int    `json:"stock,omitempty"       validate:"omitempty,gte=0"`
	Image       *string `json:"image,omitempty"       validate:"omitempty,url"`
	Status      *string `json:"status,omitempty"      validate:"omitempty,oneof=available out_of_stock archived"`
}

type CreateServiceRequest struct {
	Name         string `json:"name"          validate:"required,min=1,max=200"`
	Description  string `json:"description"   validate:"required,min=1"`
	Price        int64  `json:"price"         validate:"required,gt=0"`
	DurationDays int    `json:"duration_days" validate:"omitempty,gt=0"`
	Image        string `json:"image"         validate:"omitempty,url"`
	Status       string `json:"status"        validate:"omitempty,oneof=active inactive"`
}

type UpdateServiceRequest struct {
	Name         *string `json:"name,omitempty"          validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty"   validate:"omitempty,min=1"`
	Price        *int64  `json:"price,omitempty"         validate:"omitempty,gt=0"`
	DurationDays *int    `json:"duration_days,omitempty" validate:"omitempty,gt=0"`
	Image        *string `json:"image,omitempty"         validate:"omitempty,url"`
	Status       *string `json:"status,omitempty"        validate:"omitempty,oneof=active inactive"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=100"`
	Slug        string `json:"slug"        validate:"omitempty,min=1,max=100"`
	Description string `json:"description" validate:"omitempty"`
}

type PlantResponse struct {
	ID          string    `json:"id"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	DurationDays int       `json:"duration_days,omitempty"`
	Image        string    `json:"image,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListParams struct {
	Page       int
	PageSize   int
	Search     string
	Status     string
	CategoryID string
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

func ToPlantResponse(p *Plant) PlantResponse {
	return PlantResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPlantResponseList(plants []Plant) []PlantResponse {
	responses := make([]PlantResponse, 0, len(plants))
	for _, p := range plants {
		responses = append(responses, ToPlantResponse(&p))
	}
	return responses
}

func ToDesignResponseList(designs []GardenDesign) []ServiceResponse {
	responses := make([]ServiceResponse, 0, len(designs))
	for _, d := range designs {
		responses = append(responses, ToDesignResponse(&d))
	}
	return responses
}

func ToCareResponseList(packages []CarePackage) []ServiceResponse {
	responses := make([]ServiceResponse, 0, len(packages))
	for _, c := range packages {
		responses = append(responses, ToCareResponse(&c))
	}
	return responses
}

func ToCategoryResponseList(categories []Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, ToCategoryResponse(&c))
	}
	return responses
}

func ToDesignResponse(d *GardenDesign) ServiceResponse {
	return ServiceResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToCareResponse(c *CarePackage) ServiceResponse {
	return ServiceResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Price:        c.Price,
		DurationDays: c.DurationDays,
		Image:        c.Image,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToCategoryResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
