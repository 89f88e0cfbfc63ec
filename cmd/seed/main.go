// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/greengarden-id/backend/internal/catalog"
	"github.com/greengarden-id/backend/internal/config"
	"github.com/greengarden-id/backend/internal/core"
	"github.com/greengarden-id/backend/internal/user"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	if err := seedAdmin(ctx, db, cfg.Seed); err != nil {
		return err
	}

	if err := seedCatalog(ctx, db); err != nil {
		return err
	}

	slog.Info("seed complete")
	return nil
}

func seedAdmin(ctx context.Context, db *core.Database, cfg config.SeedConfig) error {
	if cfg.AdminPassword == "" {
		return errors.New("seed.admin_password is required")
	}

	repo := user.NewRepository(db.DB)

	existing, err := repo.GetByEmail(ctx, cfg.AdminEmail)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return err
	}
	if existing != nil {
		slog.Info("admin account already present", "email", cfg.AdminEmail)
		return nil
	}

	hash, err := core.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &user.User{
		ID:           uuid.New().String(),
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Name:         cfg.AdminName,
		Phone:        cfg.AdminPhone,
		Role:         user.RoleAdmin,
	}

	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	slog.Info("admin account created", "email", cfg.AdminEmail)
	return nil
}

// seedCatalog installs a starter storefront only when the catalog is
// empty, so reruns never duplicate rows.
func seedCatalog(ctx context.Context, db *core.Database) error {
	repo := catalog.NewRepository(db.DB)

	count, err := repo.CountPlants(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("catalog already seeded", "plants", count)
		return nil
	}

	indoor := &catalog.Category{
		ID:          uuid.New().String(),
		Name:        "Tanaman Indoor",
		Slug:        "tanaman-indoor",
		Description: "Plants suited to indoor light and humidity.",
	}
	outdoor := &catalog.Category{
		ID:          uuid.New().String(),
		Name:        "Tanaman Outdoor",
		Slug:        "tanaman-outdoor",
		Description: "Hardy plants for gardens and terraces.",
	}

	for _, category := range []*catalog.Category{indoor, outdoor} {
		if err := repo.CreateCategory(ctx, category); err != nil {
			return err
		}
	}

	plants := []*catalog.Plant{
		{
			ID:          uuid.New().String(),
			CategoryID:  &indoor.ID,
			Name:        "Monstera Deliciosa",
			Description: "Split-leaf monstera in a 20cm nursery pot.",
			Price:       185000,
			Stock:       24,
			Status:      catalog.PlantStatusAvailable,
		},
		{
			ID:          uuid.New().String(),
			CategoryID:  &indoor.ID,
			Name:        "Lidah Mertua",
			Description: "Sansevieria trifasciata, tolerant of low light.",
			Price:       65000,
			Stock:       40,
			Status:      catalog.PlantStatusAvailable,
		},
		{
			ID:          uuid.New().String(),
			CategoryID:  &outdoor.ID,
			Name:        "Pucuk Merah",
			Description: "Syzygium oleana hedge plant, 60cm tall.",
			Price:       45000,
			Stock:       100,
			Status:      catalog.PlantStatusAvailable,
		},
	}

	for _, plant := range plants {
		if err := repo.CreatePlant(ctx, plant); err != nil {
			return err
		}
	}

	designs := []*catalog.GardenDesign{
		{
			ID:          uuid.New().String(),
			Name:        "Taman Minimalis",
			Description: "Minimalist garden design for small yards, consultation included.",
			Price:       2500000,
			Status:      catalog.ServiceStatusActive,
		},
	}

	for _, design := range designs {
		if err := repo.CreateDesign(ctx, design); err != nil {
			return err
		}
	}

	packages := []*catalog.CarePackage{
		{
			ID:           uuid.New().String(),
			Name:         "Perawatan Bulanan",
			Description:  "Monthly visit covering pruning, fertilizing, and pest checks.",
			Price:        350000,
			DurationDays: 30,
			Status:       catalog.ServiceStatusActive,
		},
	}

	for _, pkg := range packages {
		if err := repo.CreateCare(ctx, pkg); err != nil {
			return err
		}
	}

	slog.Info("catalog seeded",
		"categories", 2,
		"plants", len(plants),
		"designs", len(designs),
		"care_packages", len(packages),
	)
	return nil
}
