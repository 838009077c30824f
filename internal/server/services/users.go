// Package services contains the server-side business logic. This file
// implements UserService: registration and login, including session token
// issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/foundergrid/perkmarket/internal/common"
	"github.com/foundergrid/perkmarket/internal/server/auth"
	"github.com/foundergrid/perkmarket/internal/server/config"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/foundergrid/perkmarket/internal/server/repositories/repomanager"
)

// Profile is the denormalized snapshot returned alongside a session token.
// Clients cache it to decide what to render without an extra round trip.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserService handles identity operations:
// - Register: create users
// - Login: verify credentials and mint a session token + profile snapshot
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.AuthSecret),
		tokenValidityDuration: cfg.TokenTTL,
	}
}

// Register creates a new user with the given display name, contact handle,
// and secret. The contact handle is unique; a taken handle yields
// common.ErrorContactTaken. New accounts get the founder role.
func (s *UserService) Register(ctx context.Context, name, contact, secret string) (*models.User, error) {
	digest, err := auth.HashSecret(secret)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		AliasName:      name,
		DigitalContact: contact,
		AccessKey:      digest,
		Role:           models.RoleFounder,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorContactTaken) {
			return nil, common.ErrorContactTaken
		}
		return nil, common.ErrorInternal
	}
	return u, nil
}

// Login verifies the secret against the stored digest and, on success,
// returns a signed session token plus the profile snapshot. An unknown
// contact yields common.ErrorNotFound, a wrong secret common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, contact, secret string) (string, *Profile, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorNotFound
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckSecret(secret, user.AccessKey) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.IssueAccessToken(user.ID, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	profile := &Profile{
		Name:  user.AliasName,
		Email: user.DigitalContact,
		Role:  user.Role,
	}
	return token, profile, nil
}
