package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/foundergrid/perkmarket/internal/common"
	"github.com/foundergrid/perkmarket/internal/dbx"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/foundergrid/perkmarket/internal/server/repositories/repomanager"
)

// CatalogService covers the perk catalog and the claim transaction.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCatalogService constructs a CatalogService over the given connection.
func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// ListPerks returns the whole catalog. Every authenticated user sees all
// perks, locked or not.
func (s *CatalogService) ListPerks(ctx context.Context) ([]models.Perk, error) {
	repo := s.repomanager.Perks(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// GetPerk returns one perk by id, or common.ErrorNotFound.
func (s *CatalogService) GetPerk(ctx context.Context, id string) (*models.Perk, error) {
	repo := s.repomanager.Perks(s.db)
	perk, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return perk, nil
}

// Claim records that userID has claimed perkID and returns the perk's
// redemption instructions. A missing perk yields common.ErrorNotFound; a
// repeat claim yields common.ErrorAlreadyClaimed. The existence check and
// insert run in one transaction, and the unique index on (user_id, perk_id)
// catches the race two concurrent claims would otherwise win together.
func (s *CatalogService) Claim(ctx context.Context, userID, perkID string) (string, error) {
	perkRepo := s.repomanager.Perks(s.db)
	perk, err := perkRepo.GetByID(ctx, perkID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		claimRepo := s.repomanager.Claims(tx)

		_, err := claimRepo.FindByUserAndPerk(ctx, userID, perkID)
		if err == nil {
			return common.ErrorAlreadyClaimed
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		_, err = claimRepo.Create(ctx, &models.Claim{UserID: userID, PerkID: perkID})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyClaimed) {
			return "", common.ErrorAlreadyClaimed
		}
		return "", common.ErrorInternal
	}

	return perk.RedemptionInstruction, nil
}

// ListClaims returns the user's claims in insertion order with perk fields
// inlined.
func (s *CatalogService) ListClaims(ctx context.Context, userID string) ([]models.ClaimWithPerk, error) {
	repo := s.repomanager.Claims(s.db)
	result, err := repo.ListByUserWithPerks(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}
