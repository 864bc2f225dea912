package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// PeriodoReaderSvc defines read operations for accounting periods
type PeriodoReaderSvc interface {
	// GetPeriodoByID fails with PeriodoContableNotFound when the period does not exist.
	// Journal entry and invoice services use it as their existence check.
	GetPeriodoByID(ctx context.Context, id int64) (*domain.Periodo, error)

	ListPeriodos(ctx context.Context) ([]domain.Periodo, error)
}

// PeriodoWriterSvc defines write operations for accounting periods
type PeriodoWriterSvc interface {
	CreatePeriodo(ctx context.Context, req dto.PeriodoRequest) (*domain.Periodo, error)
	UpdatePeriodo(ctx context.Context, id int64, req dto.PeriodoRequest) (*domain.Periodo, error)
	DeletePeriodo(ctx context.Context, id int64) error
}

// PeriodoSvcFacade combines all period-related service interfaces
type PeriodoSvcFacade interface {
	PeriodoReaderSvc
	PeriodoWriterSvc
}
