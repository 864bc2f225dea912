package repositories

import "context"

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CuentaRepo      CuentaRepositoryFacade
	PeriodoRepo     PeriodoRepositoryFacade
	PartidaRepo     PartidaRepositoryFacade
	TransaccionRepo TransaccionRepositoryFacade
	FacturaRepo     FacturaRepositoryFacade
	Health          HealthChecker
}
