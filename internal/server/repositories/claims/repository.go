package claims

import (
	"context"

	"github.com/foundergrid/perkmarket/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, claim *models.Claim) (*models.Claim, error)
	FindByUserAndPerk(ctx context.Context, userID, perkID string) (*models.Claim, error)
	ListByUserWithPerks(ctx context.Context, userID string) ([]models.ClaimWithPerk, error)
	DeleteAll(ctx context.Context) error
}
