package services

import "context"

// HealthSvc reports whether the service dependencies are reachable.
type HealthSvc interface {
	Check(ctx context.Context) error
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Cuenta      CuentaSvcFacade
	Periodo     PeriodoSvcFacade
	Partida     PartidaSvcFacade
	Transaccion TransaccionSvcFacade
	Factura     FacturaSvcFacade
	Health      HealthSvc
}
