package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- MockCuentaRepository ---

type MockCuentaRepository struct {
	mock.Mock
}

func (m *MockCuentaRepository) FindCuentaByID(ctx context.Context, id int64) (*domain.Cuenta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}

func (m *MockCuentaRepository) ListCuentas(ctx context.Context) ([]domain.Cuenta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cuenta), args.Error(1)
}

func (m *MockCuentaRepository) ExistsCuentaByNombre(ctx context.Context, nombre string, excludeID int64) (bool, error) {
	args := m.Called(ctx, nombre, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCuentaRepository) CreateCuenta(ctx context.Context, cuenta domain.Cuenta) (*domain.Cuenta, error) {
	args := m.Called(ctx, cuenta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}

func (m *MockCuentaRepository) UpdateCuenta(ctx context.Context, cuenta domain.Cuenta) (*domain.Cuenta, error) {
	args := m.Called(ctx, cuenta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}

func (m *MockCuentaRepository) DeleteCuenta(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockPeriodoRepository ---

type MockPeriodoRepository struct {
	mock.Mock
}

func (m *MockPeriodoRepository) FindPeriodoByID(ctx context.Context, id int64) (*domain.Periodo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Periodo), args.Error(1)
}

func (m *MockPeriodoRepository) ListPeriodos(ctx context.Context) ([]domain.Periodo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Periodo), args.Error(1)
}

func (m *MockPeriodoRepository) FindPeriodoSolapado(ctx context.Context, periodo domain.Periodo, excludeID int64) (*domain.Periodo, error) {
	args := m.Called(ctx, periodo, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Periodo), args.Error(1)
}

func (m *MockPeriodoRepository) SavePeriodo(ctx context.Context, periodo domain.Periodo) (*domain.Periodo, error) {
	args := m.Called(ctx, periodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Periodo), args.Error(1)
}

func (m *MockPeriodoRepository) UpdatePeriodo(ctx context.Context, periodo domain.Periodo) (*domain.Periodo, error) {
	args := m.Called(ctx, periodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Periodo), args.Error(1)
}

func (m *MockPeriodoRepository) DeletePeriodo(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockPartidaRepository ---

type MockPartidaRepository struct {
	mock.Mock
}

func (m *MockPartidaRepository) FindPartidaByID(ctx context.Context, id int64) (*domain.Partida, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partida), args.Error(1)
}

func (m *MockPartidaRepository) ListPartidas(ctx context.Context) ([]domain.Partida, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partida), args.Error(1)
}

func (m *MockPartidaRepository) ListPartidasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Partida, error) {
	args := m.Called(ctx, idPeriodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partida), args.Error(1)
}

func (m *MockPartidaRepository) ListPartidasByFechaCreacion(ctx context.Context, desde, hasta time.Time) ([]domain.Partida, error) {
	args := m.Called(ctx, desde, hasta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partida), args.Error(1)
}

func (m *MockPartidaRepository) SavePartida(ctx context.Context, partida domain.Partida) (*domain.Partida, error) {
	args := m.Called(ctx, partida)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partida), args.Error(1)
}

func (m *MockPartidaRepository) UpdatePartida(ctx context.Context, partida domain.Partida) (*domain.Partida, error) {
	args := m.Called(ctx, partida)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partida), args.Error(1)
}

func (m *MockPartidaRepository) DeletePartida(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockTransaccionRepository ---

type MockTransaccionRepository struct {
	mock.Mock
}

func (m *MockTransaccionRepository) FindTransaccionByID(ctx context.Context, id int64) (*domain.Transaccion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaccion), args.Error(1)
}

func (m *MockTransaccionRepository) ListTransacciones(ctx context.Context) ([]domain.Transaccion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaccion), args.Error(1)
}

func (m *MockTransaccionRepository) ListTransaccionesByPartida(ctx context.Context, partidaID int64) ([]domain.Transaccion, error) {
	args := m.Called(ctx, partidaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaccion), args.Error(1)
}

func (m *MockTransaccionRepository) ListTransaccionesByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Transaccion, error) {
	args := m.Called(ctx, idPeriodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaccion), args.Error(1)
}

func (m *MockTransaccionRepository) SaveTransaccion(ctx context.Context, txn domain.Transaccion) (*domain.Transaccion, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaccion), args.Error(1)
}

func (m *MockTransaccionRepository) UpdateTransaccion(ctx context.Context, txn domain.Transaccion) (*domain.Transaccion, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaccion), args.Error(1)
}

func (m *MockTransaccionRepository) DeleteTransaccion(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockFacturaRepository ---

type MockFacturaRepository struct {
	mock.Mock
}

func (m *MockFacturaRepository) FindFacturaByID(ctx context.Context, id int64) (*domain.Factura, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factura), args.Error(1)
}

func (m *MockFacturaRepository) ListFacturas(ctx context.Context) ([]domain.Factura, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Factura), args.Error(1)
}

func (m *MockFacturaRepository) ListFacturasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Factura, error) {
	args := m.Called(ctx, idPeriodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Factura), args.Error(1)
}

func (m *MockFacturaRepository) SaveFactura(ctx context.Context, factura domain.Factura) (*domain.Factura, error) {
	args := m.Called(ctx, factura)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factura), args.Error(1)
}

func (m *MockFacturaRepository) UpdateFactura(ctx context.Context, factura domain.Factura) (*domain.Factura, error) {
	args := m.Called(ctx, factura)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factura), args.Error(1)
}

func (m *MockFacturaRepository) DeleteFactura(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- MockHealthChecker ---

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func ptr[T any](v T) *T { return &v }
