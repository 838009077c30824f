package users

import (
	"context"

	"github.com/foundergrid/perkmarket/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByContact(ctx context.Context, contact string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	DeleteAll(ctx context.Context) error
}
