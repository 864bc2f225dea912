package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// FacturaReaderSvc defines read operations for electronic invoices
type FacturaReaderSvc interface {
	GetFacturaByID(ctx context.Context, id int64) (*domain.Factura, error)
	ListFacturas(ctx context.Context) ([]domain.Factura, error)
	ListFacturasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Factura, error)
}

// FacturaWriterSvc defines write operations for electronic invoices
type FacturaWriterSvc interface {
	CreateFactura(ctx context.Context, req dto.CreateFacturaRequest) (*domain.Factura, error)

	// UpdateFactura applies only the fields present in req.
	UpdateFactura(ctx context.Context, id int64, req dto.UpdateFacturaRequest) (*domain.Factura, error)

	DeleteFactura(ctx context.Context, id int64) error
}

// FacturaSvcFacade combines all invoice service interfaces
type FacturaSvcFacade interface {
	FacturaReaderSvc
	FacturaWriterSvc
}
