package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// PartidaReader defines read operations for journal entries
type PartidaReader interface {
	// FindPartidaByID retrieves a journal entry joined with its period end date.
	// It returns (nil, nil) when absent.
	FindPartidaByID(ctx context.Context, id int64) (*domain.Partida, error)

	// ListPartidas retrieves every journal entry, newest first.
	ListPartidas(ctx context.Context) ([]domain.Partida, error)

	// ListPartidasByPeriodo retrieves the entries of a period with their transactions nested.
	ListPartidasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Partida, error)

	// ListPartidasByFechaCreacion retrieves the entries created within [desde, hasta]
	// (calendar dates, inclusive) with their transactions nested.
	ListPartidasByFechaCreacion(ctx context.Context, desde, hasta time.Time) ([]domain.Partida, error)
}

// PartidaWriter defines write operations for journal entries
type PartidaWriter interface {
	SavePartida(ctx context.Context, partida domain.Partida) (*domain.Partida, error)

	// UpdatePartida returns (nil, nil) when the entry does not exist.
	UpdatePartida(ctx context.Context, partida domain.Partida) (*domain.Partida, error)

	DeletePartida(ctx context.Context, id int64) (bool, error)
}

// PartidaRepositoryFacade combines all journal-entry repository interfaces
type PartidaRepositoryFacade interface {
	PartidaReader
	PartidaWriter
}
