// Package seed guarantees the baseline accounts exist at startup.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/app/repositories"
	"github.com/devraj/lecturehall/internal/pkg/auth"
)

// Account describes one account to seed. Password is plain text here and
// hashed just before the insert.
type Account struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

// DefaultAccounts returns the default admin plus the fixed instructor
// roster. Passed explicitly into EnsureDefaultAccounts so tests can seed
// arbitrary rosters.
func DefaultAccounts() []Account {
	return []Account{
		{Email: "admin@gmail.com", Password: "Admin@123", Role: models.RoleAdmin},
		{Name: "Rahul Sharma", Email: "rahul.sharma@gmail.com", Password: "Instructor@Rahul123", Role: models.RoleInstructor},
		{Name: "Priya Gupta", Email: "priya.gupta@gmail.com", Password: "Instructor@Priya456", Role: models.RoleInstructor},
		{Name: "Aarav Patel", Email: "aarav.patel@gmail.com", Password: "Instructor@Aarav789", Role: models.RoleInstructor},
		{Name: "Ananya Reddy", Email: "ananya.reddy@gmail.com", Password: "Instructor@Ananya101", Role: models.RoleInstructor},
		{Name: "Vikram Singh", Email: "vikram.singh@gmail.com", Password: "Instructor@Vikram202", Role: models.RoleInstructor},
	}
}

// EnsureDefaultAccounts creates each account that does not exist yet, keyed
// by email. Running it any number of times converges to one user per
// account. Errors are collected and returned, the caller decides whether to
// proceed; a seeding failure must never keep the server from listening.
func EnsureDefaultAccounts(ctx context.Context, userRepo repositories.IUserRepository, accounts []Account, lgr zerolog.Logger) error {
	lgr.Info().Int("accounts", len(accounts)).Msg("Checking/creating default accounts...")

	var finalErr error
	for _, account := range accounts {
		exists, err := userRepo.EmailExists(ctx, account.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error checking account existence")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			lgr.Info().Str("email", account.Email).Msg("Account already exists, skipping")
			continue
		}

		hashed, err := auth.HashPassword(account.Password)
		if err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error hashing account password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			Email:    account.Email,
			Password: hashed,
			Role:     account.Role,
		}
		if account.Name != "" {
			name := account.Name
			user.Name = &name
		}

		if err := userRepo.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error creating account")
			finalErr = errors.Join(finalErr, fmt.Errorf("seeding %s: %w", account.Email, err))
			continue
		}

		lgr.Info().Str("email", account.Email).Str("role", string(account.Role)).Msg("Account created")
	}

	lgr.Info().Msg("Default account check finished.")
	return finalErr
}
