package perks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/foundergrid/perkmarket/internal/common"
	"github.com/foundergrid/perkmarket/internal/dbx"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const perkColumns = `id, offer_headline, provider_identity, benefit_value, redemption_instruction, is_locked_asset, visual_asset_url, created_at`

func (r *PostgresRepository) Create(ctx context.Context, perk *models.Perk) (*models.Perk, error) {

	if perk.ID == "" {
		perk.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO perks (id, offer_headline, provider_identity, benefit_value, redemption_instruction, is_locked_asset, visual_asset_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		perk.ID, perk.Headline, perk.Provider, perk.BenefitValue,
		perk.RedemptionInstruction, perk.IsLocked, perk.ImageURL).
		Scan(&perk.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return perk, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Perk, error) {
	query := `SELECT ` + perkColumns + ` FROM perks ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Perk{}
	for rows.Next() {
		var p models.Perk
		if err := rows.Scan(&p.ID, &p.Headline, &p.Provider, &p.BenefitValue,
			&p.RedemptionInstruction, &p.IsLocked, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Perk, error) {
	query := `SELECT ` + perkColumns + ` FROM perks WHERE id = $1`

	p := &models.Perk{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Headline, &p.Provider, &p.BenefitValue,
			&p.RedemptionInstruction, &p.IsLocked, &p.ImageURL, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM perks`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
