package services

import (
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Periods and accounts first since the other services check against them
	container.Periodo = NewPeriodoService(repos.PeriodoRepo)
	container.Cuenta = NewCuentaService(repos.CuentaRepo)

	container.Partida = NewPartidaService(repos.PartidaRepo, container.Periodo)
	container.Transaccion = NewTransaccionService(repos.TransaccionRepo, container.Cuenta, container.Partida)
	container.Factura = NewFacturaService(repos.FacturaRepo, container.Periodo)
	container.Health = NewHealthService(repos.Health)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.HealthSvc = (*healthService)(nil)
)
