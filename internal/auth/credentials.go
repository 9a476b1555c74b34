package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/enroute-travel/itinerary-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// UserVerifier verifies against bcrypt hashes in the users table.
type UserVerifier struct {
	users *repository.UserRepository
}

func NewUserVerifier(users *repository.UserRepository) *UserVerifier {
	return &UserVerifier{users: users}
}

func (v *UserVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	user, err := v.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// SeedUsers creates or updates users from "username:password" entries.
func SeedUsers(ctx context.Context, users *repository.UserRepository, entries []string) error {
	for _, entry := range entries {
		username, password, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || username == "" || password == "" {
			return fmt.Errorf("invalid user entry %q, expected username:password", entry)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", username, err)
		}
		if _, err := users.Upsert(ctx, username, string(hash)); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", username, err)
		}
	}
	return nil
}
