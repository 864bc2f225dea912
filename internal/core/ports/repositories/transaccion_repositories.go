package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// TransaccionReader defines read operations for transactions.
// Every read populates Transaccion.Detalle with the joined account, entry and period columns.
type TransaccionReader interface {
	// FindTransaccionByID returns (nil, nil) when absent.
	FindTransaccionByID(ctx context.Context, id int64) (*domain.Transaccion, error)

	ListTransacciones(ctx context.Context) ([]domain.Transaccion, error)

	ListTransaccionesByPartida(ctx context.Context, partidaID int64) ([]domain.Transaccion, error)

	// ListTransaccionesByPeriodo restricts the transactions to entries of one period.
	ListTransaccionesByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Transaccion, error)
}

// TransaccionWriter defines write operations for transactions
type TransaccionWriter interface {
	SaveTransaccion(ctx context.Context, txn domain.Transaccion) (*domain.Transaccion, error)

	// UpdateTransaccion returns (nil, nil) when the transaction does not exist.
	UpdateTransaccion(ctx context.Context, txn domain.Transaccion) (*domain.Transaccion, error)

	DeleteTransaccion(ctx context.Context, id int64) (bool, error)
}

// TransaccionRepositoryFacade combines all transaction repository interfaces
type TransaccionRepositoryFacade interface {
	TransaccionReader
	TransaccionWriter
}
