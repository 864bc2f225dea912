package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// TransaccionReaderSvc defines read operations for transactions
type TransaccionReaderSvc interface {
	GetTransaccionByID(ctx context.Context, id int64) (*domain.Transaccion, error)
	ListTransacciones(ctx context.Context) ([]domain.Transaccion, error)
	ListTransaccionesByPartida(ctx context.Context, partidaID int64) ([]domain.Transaccion, error)
}

// TransaccionWriterSvc defines write operations for transactions
type TransaccionWriterSvc interface {
	CreateTransaccion(ctx context.Context, req dto.TransaccionRequest) (*domain.Transaccion, error)
	UpdateTransaccion(ctx context.Context, id int64, req dto.TransaccionRequest) (*domain.Transaccion, error)
	DeleteTransaccion(ctx context.Context, id int64) error
}

// BalanceSvc checks the ledger for double-entry consistency.
type BalanceSvc interface {
	// GetBalance covers the whole ledger, or a single period when idPeriodo is not nil.
	GetBalance(ctx context.Context, idPeriodo *int64) (*domain.BalanceGeneral, error)
}

// TransaccionSvcFacade combines all transaction service interfaces
type TransaccionSvcFacade interface {
	TransaccionReaderSvc
	TransaccionWriterSvc
	BalanceSvc
}
