package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// FacturaReader defines read operations for electronic invoices
type FacturaReader interface {
	// FindFacturaByID returns (nil, nil) when absent.
	FindFacturaByID(ctx context.Context, id int64) (*domain.Factura, error)

	// ListFacturas retrieves every invoice joined with its period, newest emission first.
	ListFacturas(ctx context.Context) ([]domain.Factura, error)

	ListFacturasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Factura, error)
}

// FacturaWriter defines write operations for electronic invoices
type FacturaWriter interface {
	SaveFactura(ctx context.Context, factura domain.Factura) (*domain.Factura, error)

	// UpdateFactura returns (nil, nil) when the invoice does not exist.
	UpdateFactura(ctx context.Context, factura domain.Factura) (*domain.Factura, error)

	DeleteFactura(ctx context.Context, id int64) (bool, error)
}

// FacturaRepositoryFacade combines all invoice repository interfaces
type FacturaRepositoryFacade interface {
	FacturaReader
	FacturaWriter
}
