package services

import (
	"context"
	"database/sql"

	"github.com/foundergrid/perkmarket/internal/dbx"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/foundergrid/perkmarket/internal/server/repositories/claims"
	"github.com/foundergrid/perkmarket/internal/server/repositories/perks"
	"github.com/foundergrid/perkmarket/internal/server/repositories/users"
)

// ---- fakes ----

type fakeUserRepo struct {
	createFn       func(ctx context.Context, user *models.User) (*models.User, error)
	getByContactFn func(ctx context.Context, contact string) (*models.User, error)
	getByIDFn      func(ctx context.Context, id string) (*models.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return f.createFn(ctx, user)
}
func (f *fakeUserRepo) GetByContact(ctx context.Context, contact string) (*models.User, error) {
	return f.getByContactFn(ctx, contact)
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeUserRepo) DeleteAll(ctx context.Context) error { return nil }

type fakePerkRepo struct {
	listFn    func(ctx context.Context) ([]models.Perk, error)
	getByIDFn func(ctx context.Context, id string) (*models.Perk, error)
}

func (f *fakePerkRepo) Create(ctx context.Context, perk *models.Perk) (*models.Perk, error) {
	return perk, nil
}
func (f *fakePerkRepo) List(ctx context.Context) ([]models.Perk, error) { return f.listFn(ctx) }
func (f *fakePerkRepo) GetByID(ctx context.Context, id string) (*models.Perk, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakePerkRepo) DeleteAll(ctx context.Context) error { return nil }

type fakeClaimRepo struct {
	createFn func(ctx context.Context, claim *models.Claim) (*models.Claim, error)
	findFn   func(ctx context.Context, userID, perkID string) (*models.Claim, error)
	listFn   func(ctx context.Context, userID string) ([]models.ClaimWithPerk, error)
}

func (f *fakeClaimRepo) Create(ctx context.Context, claim *models.Claim) (*models.Claim, error) {
	return f.createFn(ctx, claim)
}
func (f *fakeClaimRepo) FindByUserAndPerk(ctx context.Context, userID, perkID string) (*models.Claim, error) {
	return f.findFn(ctx, userID, perkID)
}
func (f *fakeClaimRepo) ListByUserWithPerks(ctx context.Context, userID string) ([]models.ClaimWithPerk, error) {
	return f.listFn(ctx, userID)
}
func (f *fakeClaimRepo) DeleteAll(ctx context.Context) error { return nil }

// fakeRepoManager vends the fakes regardless of the DBTX handed in.
type fakeRepoManager struct {
	userRepo  *fakeUserRepo
	perkRepo  *fakePerkRepo
	claimRepo *fakeClaimRepo
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return f.userRepo }
func (f *fakeRepoManager) Perks(db dbx.DBTX) perks.Repository                  { return f.perkRepo }
func (f *fakeRepoManager) Claims(db dbx.DBTX) claims.Repository                { return f.claimRepo }
