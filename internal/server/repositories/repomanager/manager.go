package repomanager

import (
	"context"
	"database/sql"

	"github.com/foundergrid/perkmarket/internal/dbx"
	"github.com/foundergrid/perkmarket/internal/server/repositories/claims"
	"github.com/foundergrid/perkmarket/internal/server/repositories/perks"
	"github.com/foundergrid/perkmarket/internal/server/repositories/users"
)

// RepositoryManager vends per-entity repositories bound to a DBTX (either the
// pooled connection or a transaction) and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Perks(db dbx.DBTX) perks.Repository
	Claims(db dbx.DBTX) claims.Repository
}
