package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	"github.com/tallmate/trust-circle/internal/repositories/database/lifecycle"
)

var _ DBTX = (*pgxpool.Pool)(nil)

// NewRepositoryProvider builds the pgx repositories. Every write goes through hooks.
func NewRepositoryProvider(dbPool *pgxpool.Pool, hooks *lifecycle.Pipeline) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CircleRepo: newPgxCircleRepository(dbPool, hooks),
	}
}
