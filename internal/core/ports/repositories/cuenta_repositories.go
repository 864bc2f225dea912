package repositories

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
)

// CuentaReader defines read operations for account data
type CuentaReader interface {
	// FindCuentaByID retrieves an account by id. It returns (nil, nil) when absent.
	FindCuentaByID(ctx context.Context, id int64) (*domain.Cuenta, error)

	// ListCuentas retrieves every account ordered by code.
	ListCuentas(ctx context.Context) ([]domain.Cuenta, error)

	// ExistsCuentaByNombre reports whether another account already uses nombre.
	// excludeID skips the account being updated; pass 0 on create.
	ExistsCuentaByNombre(ctx context.Context, nombre string, excludeID int64) (bool, error)
}

// CuentaWriter defines write operations for account data
type CuentaWriter interface {
	// CreateCuenta assigns the hierarchical code and persists the account atomically.
	CreateCuenta(ctx context.Context, cuenta domain.Cuenta) (*domain.Cuenta, error)

	// UpdateCuenta replaces nombre, tipo and categoria. It returns (nil, nil) when absent.
	UpdateCuenta(ctx context.Context, cuenta domain.Cuenta) (*domain.Cuenta, error)

	// DeleteCuenta removes an account. It reports false when no row matched.
	DeleteCuenta(ctx context.Context, id int64) (bool, error)
}

// CuentaRepositoryFacade combines all account-related repository interfaces
type CuentaRepositoryFacade interface {
	CuentaReader
	CuentaWriter
}
