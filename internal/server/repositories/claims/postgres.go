package claims

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/foundergrid/perkmarket/internal/common"
	"github.com/foundergrid/perkmarket/internal/dbx"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts the claim. The claims_user_perk_unique constraint backs the
// at-most-one-claim-per-(user, perk) invariant even when two requests pass
// the existence check concurrently.
func (r *PostgresRepository) Create(ctx context.Context, claim *models.Claim) (*models.Claim, error) {

	if claim.ID == "" {
		claim.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO claims (id, user_id, perk_id)
		 VALUES ($1, $2, $3)
		 RETURNING claimed_at
		 `

	err := r.db.QueryRowContext(ctx, query, claim.ID, claim.UserID, claim.PerkID).
		Scan(&claim.ClaimedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyClaimed
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return claim, nil
}

func (r *PostgresRepository) FindByUserAndPerk(ctx context.Context, userID, perkID string) (*models.Claim, error) {
	query :=
		`SELECT id, user_id, perk_id, claimed_at FROM claims
		 WHERE user_id = $1 AND perk_id = $2
		 `

	claim := &models.Claim{}
	err := r.db.QueryRowContext(ctx, query, userID, perkID).
		Scan(&claim.ID, &claim.UserID, &claim.PerkID, &claim.ClaimedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return claim, nil
}

// ListByUserWithPerks returns the user's claims in insertion order, each with
// its referenced perk inlined.
func (r *PostgresRepository) ListByUserWithPerks(ctx context.Context, userID string) ([]models.ClaimWithPerk, error) {
	query :=
		`SELECT c.id, c.user_id, c.perk_id, c.claimed_at,
		        p.id, p.offer_headline, p.provider_identity, p.benefit_value,
		        p.redemption_instruction, p.is_locked_asset, p.visual_asset_url, p.created_at
		 FROM claims c
		 JOIN perks p ON p.id = c.perk_id
		 WHERE c.user_id = $1
		 ORDER BY c.claimed_at, c.id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.ClaimWithPerk{}
	for rows.Next() {
		var cw models.ClaimWithPerk
		if err := rows.Scan(
			&cw.ID, &cw.UserID, &cw.PerkID, &cw.ClaimedAt,
			&cw.Perk.ID, &cw.Perk.Headline, &cw.Perk.Provider, &cw.Perk.BenefitValue,
			&cw.Perk.RedemptionInstruction, &cw.Perk.IsLocked, &cw.Perk.ImageURL, &cw.Perk.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, cw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM claims`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
