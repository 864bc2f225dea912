package handlers_test

import (
	"context"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CuentaService ---
type MockCuentaService struct {
	mock.Mock
}

func (m *MockCuentaService) GetCuentaByID(ctx context.Context, id int64) (*domain.Cuenta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) ListCuentas(ctx context.Context) ([]domain.Cuenta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) CreateCuenta(ctx context.Context, req dto.CreateCuentaRequest) (*domain.Cuenta, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) UpdateCuenta(ctx context.Context, id int64, req dto.UpdateCuentaRequest) (*domain.Cuenta, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cuenta), args.Error(1)
}
func (m *MockCuentaService) DeleteCuenta(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.CuentaSvcFacade = (*MockCuentaService)(nil)

// --- Mock PeriodoService ---
type MockPeriodoService struct {
	mock.Mock
}

func (m *MockPeriodoService) GetPeriodoByID(ctx context.Context, id int64) (*domain.Periodo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Periodo), args.Error(1)
}
func (m *MockPeriodoService) ListPeriodos(ctx context.Context) ([]domain.Periodo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Periodo), args.Error(1)
}
func (m *MockPeriodoService) CreatePeriodo(ctx context.Context, req dto.PeriodoRequest) (*domain.Periodo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Periodo), args.Error(1)
}
func (m *MockPeriodoService) UpdatePeriodo(ctx context.Context, id int64, req dto.PeriodoRequest) (*domain.Periodo, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Periodo), args.Error(1)
}
func (m *MockPeriodoService) DeletePeriodo(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.PeriodoSvcFacade = (*MockPeriodoService)(nil)

// --- Mock PartidaService ---
type MockPartidaService struct {
	mock.Mock
}

func (m *MockPartidaService) GetPartidaByID(ctx context.Context, id int64) (*domain.Partida, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partida), args.Error(1)
}
func (m *MockPartidaService) ListPartidas(ctx context.Context) ([]domain.Partida, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partida), args.Error(1)
}
func (m *MockPartidaService) ListPartidasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Partida, error) {
	args := m.Called(ctx, idPeriodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partida), args.Error(1)
}
func (m *MockPartidaService) ListPartidasByFechas(ctx context.Context, fechaInicio, fechaFin string) ([]domain.Partida, error) {
	args := m.Called(ctx, fechaInicio, fechaFin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partida), args.Error(1)
}
func (m *MockPartidaService) CreatePartida(ctx context.Context, req dto.PartidaRequest) (*domain.Partida, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partida), args.Error(1)
}
func (m *MockPartidaService) UpdatePartida(ctx context.Context, id int64, req dto.PartidaRequest) (*domain.Partida, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partida), args.Error(1)
}
func (m *MockPartidaService) DeletePartida(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.PartidaSvcFacade = (*MockPartidaService)(nil)

// --- Mock TransaccionService ---
type MockTransaccionService struct {
	mock.Mock
}

func (m *MockTransaccionService) GetTransaccionByID(ctx context.Context, id int64) (*domain.Transaccion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaccion), args.Error(1)
}
func (m *MockTransaccionService) ListTransacciones(ctx context.Context) ([]domain.Transaccion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaccion), args.Error(1)
}
func (m *MockTransaccionService) ListTransaccionesByPartida(ctx context.Context, partidaID int64) ([]domain.Transaccion, error) {
	args := m.Called(ctx, partidaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaccion), args.Error(1)
}
func (m *MockTransaccionService) CreateTransaccion(ctx context.Context, req dto.TransaccionRequest) (*domain.Transaccion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaccion), args.Error(1)
}
func (m *MockTransaccionService) UpdateTransaccion(ctx context.Context, id int64, req dto.TransaccionRequest) (*domain.Transaccion, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaccion), args.Error(1)
}
func (m *MockTransaccionService) DeleteTransaccion(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTransaccionService) GetBalance(ctx context.Context, idPeriodo *int64) (*domain.BalanceGeneral, error) {
	args := m.Called(ctx, idPeriodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceGeneral), args.Error(1)
}

var _ portssvc.TransaccionSvcFacade = (*MockTransaccionService)(nil)

// --- Mock FacturaService ---
type MockFacturaService struct {
	mock.Mock
}

func (m *MockFacturaService) GetFacturaByID(ctx context.Context, id int64) (*domain.Factura, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factura), args.Error(1)
}
func (m *MockFacturaService) ListFacturas(ctx context.Context) ([]domain.Factura, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Factura), args.Error(1)
}
func (m *MockFacturaService) ListFacturasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Factura, error) {
	args := m.Called(ctx, idPeriodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Factura), args.Error(1)
}
func (m *MockFacturaService) CreateFactura(ctx context.Context, req dto.CreateFacturaRequest) (*domain.Factura, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factura), args.Error(1)
}
func (m *MockFacturaService) UpdateFactura(ctx context.Context, id int64, req dto.UpdateFacturaRequest) (*domain.Factura, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factura), args.Error(1)
}
func (m *MockFacturaService) DeleteFactura(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.FacturaSvcFacade = (*MockFacturaService)(nil)

// --- Mock HealthService ---
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.HealthSvc = (*MockHealthService)(nil)
