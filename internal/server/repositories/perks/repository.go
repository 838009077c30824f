package perks

import (
	"context"

	"github.com/foundergrid/perkmarket/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, perk *models.Perk) (*models.Perk, error)
	List(ctx context.Context) ([]models.Perk, error)
	GetByID(ctx context.Context, id string) (*models.Perk, error)
	DeleteAll(ctx context.Context) error
}
