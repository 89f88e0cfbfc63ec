// AngelaMos | 2026
// entity.go

package catalog

import (
	"time"
)

const (
	PlantStatusAvailable  = "available"
	PlantStatusOutOfStock = "out_of_stock"
	PlantStatusArchived   = "archived"

	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"

	ProductKindPlant  = "plant"
	ProductKindDesign = "garden_design"
	ProductKindCare   = "care_package"
)

type Plant struct {
	ID          string    `db:"id"`
	CategoryID  *string   `db:"category_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	Stock       int       `db:"stock"`
	Image       string    `db:"image"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type GardenDesign struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	Image       string    `db:"image"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type CarePackage struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Price        int64     `db:"price"`
	DurationDays int       `db:"duration_days"`
	Image        string    `db:"image"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Category struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
