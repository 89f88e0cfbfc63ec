// AngelaMos | 2026
// service.go

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePlant(
	ctx context.Context,
	req CreatePlantRequest,
) (*Plant, error) {
	status := req.Status
	if status == "" {
		status = PlantStatusAvailable
	}

	plant := &Plant{
		ID:          uuid.New().String(),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Status:      status,
	}

	if err := s.repo.CreatePlant(ctx, plant); err != nil {
		return nil, err
	}

	return plant, nil
}

func (s *Service) GetPlant(ctx context.Context, id string) (*Plant, error) {
	return s.repo.GetPlant(ctx, id)
}

func (s *Service) UpdatePlant(
	ctx context.Context,
	id string,
	req UpdatePlantRequest,
) (*Plant, error) {
	plant, err := s.repo.GetPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		plant.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		plant.Name = *req.Name
	}
	if req.Description != nil {
		plant.Description = *req.Description
	}
	if req.Price != nil {
		plant.Price = *req.Price
	}
	if req.Stock != nil {
		plant.Stock = *req.Stock
	}
	if req.Image != nil {
		plant.Image = *req.Image
	}
	if req.Status != nil {
		plant.Status = *req.Status
	}

	if err := s.repo.UpdatePlant(ctx, plant); err != nil {
		return nil, err
	}

	return plant, nil
}

func (s *Service) DeletePlant(ctx context.Context, id string) error {
	return s.repo.DeletePlant(ctx, id)
}

func (s *Service) ListPlants(
	ctx context.Context,
	params ListParams,
) ([]Plant, int, error) {
	return s.repo.ListPlants(ctx, params)
}

// ListStorefrontPlants hides archived inventory from unauthenticated
// readers regardless of the requested filter.
func (s *Service) ListStorefrontPlants(
	ctx context.Context,
	params ListParams,
) ([]Plant, int, error) {
	if params.Status == "" || params.Status == PlantStatusArchived {
		params.Status = PlantStatusAvailable
	}
	return s.repo.ListPlants(ctx, params)
}

func (s *Service) CountPlants(ctx context.Context) (int, error) {
	return s.repo.CountPlants(ctx)
}

func (s *Service) CreateDesign(
	ctx context.Context,
	req CreateServiceRequest,
) (*GardenDesign, error) {
	design := &GardenDesign{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Status:      defaultServiceStatus(req.Status),
	}

	if err := s.repo.CreateDesign(ctx, design); err != nil {
		return nil, err
	}

	return design, nil
}

func (s *Service) GetDesign(
	ctx context.Context,
	id string,
) (*GardenDesign, error) {
	return s.repo.GetDesign(ctx, id)
}

func (s *Service) UpdateDesign(
	ctx context.Context,
	id string,
	req UpdateServiceRequest,
) (*GardenDesign, error) {
	design, err := s.repo.GetDesign(ctx, id)
	if err != nil {
		return nil, err
	}

	applyServiceUpdate(
		req,
		&design.Name,
		&design.Description,
		&design.Price,
		&design.Image,
		&design.Status,
	)

	if err := s.repo.UpdateDesign(ctx, design); err != nil {
		return nil, err
	}

	return design, nil
}

func (s *Service) DeleteDesign(ctx context.Context, id string) error {
	return s.repo.DeleteDesign(ctx, id)
}

func (s *Service) ListDesigns(
	ctx context.Context,
	params ListParams,
) ([]GardenDesign, int, error) {
	return s.repo.ListDesigns(ctx, params)
}

func (s *Service) ListStorefrontDesigns(
	ctx context.Context,
	params ListParams,
) ([]GardenDesign, int, error) {
	params.Status = ServiceStatusActive
	return s.repo.ListDesigns(ctx, params)
}

func (s *Service) CreateCare(
	ctx context.Context,
	req CreateServiceRequest,
) (*CarePackage, error) {
	care := &CarePackage{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Image:        req.Image,
		Status:       defaultServiceStatus(req.Status),
	}

	if err := s.repo.CreateCare(ctx, care); err != nil {
		return nil, err
	}

	return care, nil
}

func (s *Service) GetCare(
	ctx context.Context,
	id string,
) (*CarePackage, error) {
	return s.repo.GetCare(ctx, id)
}

func (s *Service) UpdateCare(
	ctx context.Context,
	id string,
	req UpdateServiceRequest,
) (*CarePackage, error) {
	care, err := s.repo.GetCare(ctx, id)
	if err != nil {
		return nil, err
	}

	applyServiceUpdate(
		req,
		&care.Name,
		&care.Description,
		&care.Price,
		&care.Image,
		&care.Status,
	)
	if req.DurationDays != nil {
		care.DurationDays = *req.DurationDays
	}

	if err := s.repo.UpdateCare(ctx, care); err != nil {
		return nil, err
	}

	return care, nil
}

func (s *Service) DeleteCare(ctx context.Context, id string) error {
	return s.repo.DeleteCare(ctx, id)
}

func (s *Service) ListCare(
	ctx context.Context,
	params ListParams,
) ([]CarePackage, int, error) {
	return s.repo.ListCare(ctx, params)
}

func (s *Service) ListStorefrontCare(
	ctx context.Context,
	params ListParams,
) ([]CarePackage, int, error) {
	params.Status = ServiceStatusActive
	return s.repo.ListCare(ctx, params)
}

func (s *Service) CreateCategory(
	ctx context.Context,
	req CreateCategoryRequest,
) (*Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	category := &Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) GetCategory(
	ctx context.Context,
	id string,
) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// Snapshot is what cart and order lines copy from the catalog at add
// time. Stock is the level seen at that moment; design and care
// services are not stocked, so theirs is always zero.
type Snapshot struct {
	Name  string
	Image string
	Price int64
	Stock int
}

// ProductSnapshot resolves any catalog product by kind so cart and order
// lines can freeze its name, image, price and stock at add time.
func (s *Service) ProductSnapshot(
	ctx context.Context,
	kind, id string,
) (Snapshot, error) {
	switch kind {
	case ProductKindPlant:
		plant, err := s.repo.GetPlant(ctx, id)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{
			Name:  plant.Name,
			Image: plant.Image,
			Price: plant.Price,
			Stock: plant.Stock,
		}, nil
	case ProductKindDesign:
		design, err := s.repo.GetDesign(ctx, id)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{
			Name:  design.Name,
			Image: design.Image,
			Price: design.Price,
		}, nil
	case ProductKindCare:
		care, err := s.repo.GetCare(ctx, id)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{
			Name:  care.Name,
			Image: care.Image,
			Price: care.Price,
		}, nil
	default:
		return Snapshot{}, fmt.Errorf("unknown product kind %q", kind)
	}
}

func defaultServiceStatus(status string) string {
	if status == "" {
		return ServiceStatusActive
	}
	return status
}

func applyServiceUpdate(
	req UpdateServiceRequest,
	name, description *string,
	price *int64,
	image, status *string,
) {
	if req.Name != nil {
		*name = *req.Name
	}
	if req.Description != nil {
		*description = *req.Description
	}
	if req.Price != nil {
		*price = *req.Price
	}
	if req.Image != nil {
		*image = *req.Image
	}
	if req.Status != nil {
		*status = *req.Status
	}
}

// Slugify lowercases a name and collapses runs of non-alphanumerics
// into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
