package services

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
)

// CuentaReaderSvc defines read operations for accounts
type CuentaReaderSvc interface {
	// GetCuentaByID retrieves an account, failing with CuentaContableNotFound when absent.
	GetCuentaByID(ctx context.Context, id int64) (*domain.Cuenta, error)

	// ListCuentas retrieves the whole chart of accounts ordered by code.
	ListCuentas(ctx context.Context) ([]domain.Cuenta, error)
}

// CuentaWriterSvc defines write operations for accounts
type CuentaWriterSvc interface {
	// CreateCuenta validates the request and stores an account with a generated code.
	CreateCuenta(ctx context.Context, req dto.CreateCuentaRequest) (*domain.Cuenta, error)

	// UpdateCuenta changes nombre, tipo or categoria. Code and parent never change.
	UpdateCuenta(ctx context.Context, id int64, req dto.UpdateCuentaRequest) (*domain.Cuenta, error)

	DeleteCuenta(ctx context.Context, id int64) error
}

// CuentaSvcFacade combines all account-related service interfaces
type CuentaSvcFacade interface {
	CuentaReaderSvc
	CuentaWriterSvc
}
