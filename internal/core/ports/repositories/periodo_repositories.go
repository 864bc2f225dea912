package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// PeriodoReader defines read operations for accounting periods
type PeriodoReader interface {
	// FindPeriodoByID retrieves a period by id. It returns (nil, nil) when absent.
	FindPeriodoByID(ctx context.Context, id int64) (*domain.Periodo, error)

	// ListPeriodos retrieves every period ordered by start date.
	ListPeriodos(ctx context.Context) ([]domain.Periodo, error)

	// FindPeriodoSolapado returns a period sharing at least one day with the
	// given range, other than excludeID, or (nil, nil) when there is none.
	FindPeriodoSolapado(ctx context.Context, periodo domain.Periodo, excludeID int64) (*domain.Periodo, error)
}

// PeriodoWriter defines write operations for accounting periods
type PeriodoWriter interface {
	SavePeriodo(ctx context.Context, periodo domain.Periodo) (*domain.Periodo, error)

	// UpdatePeriodo returns (nil, nil) when the period does not exist.
	UpdatePeriodo(ctx context.Context, periodo domain.Periodo) (*domain.Periodo, error)

	DeletePeriodo(ctx context.Context, id int64) (bool, error)
}

// PeriodoRepositoryFacade combines all period-related repository interfaces
type PeriodoRepositoryFacade interface {
	PeriodoReader
	PeriodoWriter
}
