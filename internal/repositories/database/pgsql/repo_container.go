package pgsql

import (
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	cuentaRepo := newPgxCuentaRepository(dbPool)
	periodoRepo := newPgxPeriodoRepository(dbPool)
	partidaRepo := newPgxPartidaRepository(dbPool)
	transaccionRepo := newPgxTransaccionRepository(dbPool)
	facturaRepo := newPgxFacturaRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CuentaRepo:      cuentaRepo,
		PeriodoRepo:     periodoRepo,
		PartidaRepo:     partidaRepo,
		TransaccionRepo: transaccionRepo,
		FacturaRepo:     facturaRepo,
		Health:          &BaseRepository{Pool: dbPool},
	}
}
