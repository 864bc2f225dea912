package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// PartidaReaderSvc defines read operations for journal entries
type PartidaReaderSvc interface {
	GetPartidaByID(ctx context.Context, id int64) (*domain.Partida, error)
	ListPartidas(ctx context.Context) ([]domain.Partida, error)

	// ListPartidasByPeriodo returns the entries of a period with nested transactions.
	ListPartidasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Partida, error)

	// ListPartidasByFechas filters by creation date. Both bounds are DD/MM/YYYY.
	ListPartidasByFechas(ctx context.Context, fechaInicio, fechaFin string) ([]domain.Partida, error)
}

// PartidaWriterSvc defines write operations for journal entries
type PartidaWriterSvc interface {
	CreatePartida(ctx context.Context, req dto.PartidaRequest) (*domain.Partida, error)
	UpdatePartida(ctx context.Context, id int64, req dto.PartidaRequest) (*domain.Partida, error)
	DeletePartida(ctx context.Context, id int64) error
}

// PartidaSvcFacade combines all journal-entry service interfaces
type PartidaSvcFacade interface {
	PartidaReaderSvc
	PartidaWriterSvc
}
