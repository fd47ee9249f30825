package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushub/backend/internal/app/models"
	appRepos "github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

// CreateDefaultData ensures the default platform admin account exists.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Info().Msg("No seed admin password configured, skipping default admin creation")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Email:     cfg.Seed.AdminEmail,
		Password:  hashed,
		FirstName: "Platform",
		LastName:  "Admin",
		RoleType:  appModels.RoleAdmin,
		Skills:    []string{},
		IsActive:  true,
		Available: true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// Lost a race with another instance, nothing to do
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin account created")
	return nil
}
