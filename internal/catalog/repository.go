// AngelaMos | 2026
// repository.go

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/greengarden-id/backend/internal/core"
)

type Repository interface {
	CreatePlant(ctx context.Context, plant *Plant) error
	GetPlant(ctx context.Context, id string) (*Plant, error)
	UpdatePlant(ctx context.Context, plant *Plant) error
	DeletePlant(ctx context.Context, id string) error
	ListPlants(ctx context.Context, params ListParams) ([]Plant, int, error)
	CountPlants(ctx context.Context) (int, error)

	CreateDesign(ctx context.Context, design *GardenDesign) error
	GetDesign(ctx context.Context, id string) (*GardenDesign, error)
	UpdateDesign(ctx context.Context, design *GardenDesign) error
	DeleteDesign(ctx context.Context, id string) error
	ListDesigns(
		ctx context.Context,
		params ListParams,
	) ([]GardenDesign, int, error)

	CreateCare(ctx context.Context, care *CarePackage) error
	GetCare(ctx context.Context, id string) (*CarePackage, error)
	UpdateCare(ctx context.Context, care *CarePackage) error
	DeleteCare(ctx context.Context, id string) error
	ListCare(ctx context.Context, params ListParams) ([]CarePackage, int, error)

	CreateCategory(ctx context.Context, category *Category) error
	GetCategory(ctx context.Context, id string) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePlant(ctx context.Context, plant *Plant) error {
	query := `
		INSERT INTO plants (
			id, category_id, name, description, price, stock, image, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, plant, query,
		plant.ID,
		plant.CategoryID,
		plant.Name,
		plant.Description,
		plant.Price,
		plant.Stock,
		plant.Image,
		plant.Status,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("create plant: category: %w", core.ErrNotFound)
		}
		return fmt.Errorf("create plant: %w", err)
	}

	return nil
}

func (r *repository) GetPlant(ctx context.Context, id string) (*Plant, error) {
	query := `
		SELECT id, category_id, name, description, price, stock, image,
		       status, created_at, updated_at
		FROM plants
		WHERE id = $1`

	var plant Plant
	err := r.db.GetContext(ctx, &plant, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plant: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}

	return &plant, nil
}

func (r *repository) UpdatePlant(ctx context.Context, plant *Plant) error {
	query := `
		UPDATE plants
		SET category_id = $2, name = $3, description = $4, price = $5,
		    stock = $6, image = $7, status = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &plant.UpdatedAt, query,
		plant.ID,
		plant.CategoryID,
		plant.Name,
		plant.Description,
		plant.Price,
		plant.Stock,
		plant.Image,
		plant.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update plant: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update plant: %w", err)
	}

	return nil
}

func (r *repository) DeletePlant(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "plants", "delete plant", id)
}

func (r *repository) ListPlants(
	ctx context.Context,
	params ListParams,
) ([]Plant, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	if params.CategoryID != "" {
		conditions = append(
			conditions,
			fmt.Sprintf("category_id = $%d", argIdx),
		)
		args = append(args, params.CategoryID)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM plants WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count plants: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, category_id, name, description, price, stock, image,
		       status, created_at, updated_at
		FROM plants
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var plants []Plant
	if err := r.db.SelectContext(ctx, &plants, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list plants: %w", err)
	}

	return plants, total, nil
}

func (r *repository) CountPlants(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM plants`)
	if err != nil {
		return 0, fmt.Errorf("count plants: %w", err)
	}
	return count, nil
}

func (r *repository) CreateDesign(
	ctx context.Context,
	design *GardenDesign,
) error {
	query := `
		INSERT INTO garden_designs (
			id, name, description, price, image, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, design, query,
		design.ID,
		design.Name,
		design.Description,
		design.Price,
		design.Image,
		design.Status,
	)
	if err != nil {
		return fmt.Errorf("create garden design: %w", err)
	}

	return nil
}

func (r *repository) GetDesign(
	ctx context.Context,
	id string,
) (*GardenDesign, error) {
	query := `
		SELECT id, name, description, price, image, status,
		       created_at, updated_at
		FROM garden_designs
		WHERE id = $1`

	var design GardenDesign
	err := r.db.GetContext(ctx, &design, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get garden design: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get garden design: %w", err)
	}

	return &design, nil
}

func (r *repository) UpdateDesign(
	ctx context.Context,
	design *GardenDesign,
) error {
	query := `
		UPDATE garden_designs
		SET name = $2, description = $3, price = $4, image = $5,
		    status = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &design.UpdatedAt, query,
		design.ID,
		design.Name,
		design.Description,
		design.Price,
		design.Image,
		design.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update garden design: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update garden design: %w", err)
	}

	return nil
}

func (r *repository) DeleteDesign(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "garden_designs", "delete garden design", id)
}

func (r *repository) ListDesigns(
	ctx context.Context,
	params ListParams,
) ([]GardenDesign, int, error) {
	params.Normalize()

	whereClause, args, argIdx := searchStatusWhere(params)

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM garden_designs WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count garden designs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, price, image, status,
		       created_at, updated_at
		FROM garden_designs
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var designs []GardenDesign
	if err := r.db.SelectContext(ctx, &designs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list garden designs: %w", err)
	}

	return designs, total, nil
}

func (r *repository) CreateCare(
	ctx context.Context,
	care *CarePackage,
) error {
	query := `
		INSERT INTO care_packages (
			id, name, description, price, duration_days, image, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, care, query,
		care.ID,
		care.Name,
		care.Description,
		care.Price,
		care.DurationDays,
		care.Image,
		care.Status,
	)
	if err != nil {
		return fmt.Errorf("create care package: %w", err)
	}

	return nil
}

func (r *repository) GetCare(
	ctx context.Context,
	id string,
) (*CarePackage, error) {
	query := `
		SELECT id, name, description, price, duration_days, image, status,
		       created_at, updated_at
		FROM care_packages
		WHERE id = $1`

	var care CarePackage
	err := r.db.GetContext(ctx, &care, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get care package: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get care package: %w", err)
	}

	return &care, nil
}

func (r *repository) UpdateCare(
	ctx context.Context,
	care *CarePackage,
) error {
	query := `
		UPDATE care_packages
		SET name = $2, description = $3, price = $4, duration_days = $5,
		    image = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &care.UpdatedAt, query,
		care.ID,
		care.Name,
		care.Description,
		care.Price,
		care.DurationDays,
		care.Image,
		care.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update care package: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update care package: %w", err)
	}

	return nil
}

func (r *repository) DeleteCare(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "care_packages", "delete care package", id)
}

func (r *repository) ListCare(
	ctx context.Context,
	params ListParams,
) ([]CarePackage, int, error) {
	params.Normalize()

	whereClause, args, argIdx := searchStatusWhere(params)

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM care_packages WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count care packages: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, price, duration_days, image, status,
		       created_at, updated_at
		FROM care_packages
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var packages []CarePackage
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list care packages: %w", err)
	}

	return packages, total, nil
}

func (r *repository) CreateCategory(
	ctx context.Context,
	category *Category,
) error {
	query := `
		INSERT INTO categories (id, name, slug, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, category, query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *repository) GetCategory(
	ctx context.Context,
	id string,
) (*Category, error) {
	query := `
		SELECT id, name, slug, description, created_at, updated_at
		FROM categories
		WHERE id = $1`

	var category Category
	err := r.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get category: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

func (r *repository) DeleteCategory(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "categories", "delete category", id)
}

func (r *repository) ListCategories(
	ctx context.Context,
) ([]Category, error) {
	query := `
		SELECT id, name, slug, description, created_at, updated_at
		FROM categories
		ORDER BY name ASC`

	var categories []Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

//nolint:gosec // G201: table names come from compile-time constants only
func (r *repository) deleteByID(
	ctx context.Context,
	table, op, id string,
) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}

func searchStatusWhere(params ListParams) (string, []any, int) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	return strings.Join(conditions, " AND "), args, argIdx
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
