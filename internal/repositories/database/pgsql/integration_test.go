//go:build integration

package pgsql

// Repository tests against a real PostgreSQL started with testcontainers.
// Run with: go test -tags integration ./internal/repositories/database/pgsql/... -v

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/SscSPs/contabilidad_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsPath = "file://../../../../migrations"

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcPostgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	pgC, err := tcPostgres.Run(s.ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("contabilidad_test"),
		tcPostgres.WithUsername("contabilidad"),
		tcPostgres.WithPassword("contabilidad"),
		tcPostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = pgC

	url, err := pgC.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Require().NoError(database.RunMigrations(url, migrationsPath, logger))

	s.pool, err = database.NewPgxPool(s.ctx, url, true)
	s.Require().NoError(err)
	s.repos = NewRepositoryProvider(s.pool)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE facturas_electronicas, transacciones_contables, partidas_diarias,
		periodos_contables, cuentas_contables RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationSuite) crearPeriodo(inicio, fin string) *domain.Periodo {
	desde, hasta, err := fecha.ParseRango("fecha_inicio", inicio, "fecha_fin", fin)
	s.Require().NoError(err)
	periodo, err := s.repos.PeriodoRepo.SavePeriodo(s.ctx, domain.Periodo{
		FechaInicio: desde, FechaFin: hasta, Estado: domain.PeriodoActivo,
	})
	s.Require().NoError(err)
	return periodo
}

func (s *RepositoryIntegrationSuite) TestHealthPing() {
	s.NoError(s.repos.Health.Ping(s.ctx))
}

func (s *RepositoryIntegrationSuite) TestCreateCuenta_GeneratesHierarchicalCodes() {
	raiz, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{
		Nombre: "Activos", Tipo: domain.Activo, Categoria: "GENERAL",
	})
	s.Require().NoError(err)
	s.Equal("1", raiz.Codigo)

	primera, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{
		Nombre: "Caja", Categoria: "CORRIENTE", PadreID: &raiz.IDCuenta,
	})
	s.Require().NoError(err)
	s.Equal("101", primera.Codigo)
	s.Equal(domain.Activo, primera.Tipo)

	segunda, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{
		Nombre: "Bancos", Categoria: "CORRIENTE", PadreID: &raiz.IDCuenta,
	})
	s.Require().NoError(err)
	s.Equal("102", segunda.Codigo)

	nieta, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{
		Nombre: "Banco Central", Categoria: "CORRIENTE", PadreID: &segunda.IDCuenta,
	})
	s.Require().NoError(err)
	s.Equal("10201", nieta.Codigo)

	cuentas, err := s.repos.CuentaRepo.ListCuentas(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(cuentas, 4)
	s.Equal([]string{"1", "101", "102", "10201"},
		[]string{cuentas[0].Codigo, cuentas[1].Codigo, cuentas[2].Codigo, cuentas[3].Codigo})
}

func (s *RepositoryIntegrationSuite) TestCreateCuenta_Conflicts() {
	raiz, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Pasivos", Tipo: domain.Pasivo, Categoria: "GENERAL"})
	s.Require().NoError(err)

	_, err = s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Pasivos", Tipo: domain.Gasto, Categoria: "GENERAL"})
	s.Equal(apperrors.YaExisteCuenta, apperrors.KindOf(err))

	_, err = s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Otro pasivo", Tipo: domain.Pasivo, Categoria: "GENERAL"})
	s.Equal(apperrors.YaExisteCuenta, apperrors.KindOf(err))

	ausente := raiz.IDCuenta + 1000
	_, err = s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Huérfana", Categoria: "X", PadreID: &ausente})
	s.Equal(apperrors.CuentaPadreNotFound, apperrors.KindOf(err))

	existe, err := s.repos.CuentaRepo.ExistsCuentaByNombre(s.ctx, "Pasivos", raiz.IDCuenta)
	s.Require().NoError(err)
	s.False(existe)
}

func (s *RepositoryIntegrationSuite) TestCreateCuenta_ConcurrentChildrenGetDistinctCodes() {
	raiz, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Gastos", Tipo: domain.Gasto, Categoria: "GENERAL"})
	s.Require().NoError(err)

	const n = 8
	codigos := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{
				Nombre: "Gasto " + string(rune('A'+i)), Categoria: "OPERATIVO", PadreID: &raiz.IDCuenta,
			})
			if err == nil {
				codigos <- c.Codigo
			}
		}(i)
	}
	wg.Wait()
	close(codigos)

	vistos := map[string]bool{}
	for c := range codigos {
		s.False(vistos[c], "duplicated code %s", c)
		vistos[c] = true
	}
	s.Len(vistos, n)
}

func (s *RepositoryIntegrationSuite) TestCuenta_UpdateAndDelete() {
	raiz, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Ingresos", Tipo: domain.Ingreso, Categoria: "GENERAL"})
	s.Require().NoError(err)
	hija, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Ventas", Categoria: "OPERATIVO", PadreID: &raiz.IDCuenta})
	s.Require().NoError(err)

	hija.Nombre = "Ventas nacionales"
	updated, err := s.repos.CuentaRepo.UpdateCuenta(s.ctx, *hija)
	s.Require().NoError(err)
	s.Equal("Ventas nacionales", updated.Nombre)
	s.Equal("401", updated.Codigo)

	_, err = s.repos.CuentaRepo.DeleteCuenta(s.ctx, raiz.IDCuenta)
	s.Equal(apperrors.RegistroEnUso, apperrors.KindOf(err))

	deleted, err := s.repos.CuentaRepo.DeleteCuenta(s.ctx, hija.IDCuenta)
	s.Require().NoError(err)
	s.True(deleted)

	missing, err := s.repos.CuentaRepo.FindCuentaByID(s.ctx, hija.IDCuenta)
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositoryIntegrationSuite) TestPeriodo_Overlap() {
	primero := s.crearPeriodo("01/01/2024", "31/03/2024")

	solapado, err := s.repos.PeriodoRepo.FindPeriodoSolapado(s.ctx, domain.Periodo{
		FechaInicio: fecha.Date(2024, 3, 31), FechaFin: fecha.Date(2024, 6, 30),
	}, 0)
	s.Require().NoError(err)
	s.Require().NotNil(solapado)
	s.Equal(primero.IDPeriodo, solapado.IDPeriodo)

	libre, err := s.repos.PeriodoRepo.FindPeriodoSolapado(s.ctx, domain.Periodo{
		FechaInicio: fecha.Date(2024, 4, 1), FechaFin: fecha.Date(2024, 6, 30),
	}, 0)
	s.Require().NoError(err)
	s.Nil(libre)

	propio, err := s.repos.PeriodoRepo.FindPeriodoSolapado(s.ctx, *primero, primero.IDPeriodo)
	s.Require().NoError(err)
	s.Nil(propio)

	found, err := s.repos.PeriodoRepo.FindPeriodoByID(s.ctx, primero.IDPeriodo)
	s.Require().NoError(err)
	s.Equal(fecha.Date(2024, 1, 1), found.FechaInicio)
	s.Equal(fecha.Date(2024, 3, 31), found.FechaFin)
}

func (s *RepositoryIntegrationSuite) TestPartida_AggregatesTransacciones() {
	periodo := s.crearPeriodo("01/01/2024", "31/03/2024")
	caja, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Caja", Tipo: domain.Activo, Categoria: "GENERAL"})
	s.Require().NoError(err)
	capital, err := s.repos.CuentaRepo.CreateCuenta(s.ctx, domain.Cuenta{Nombre: "Capital", Tipo: domain.Patrimonio, Categoria: "GENERAL"})
	s.Require().NoError(err)

	partida, err := s.repos.PartidaRepo.SavePartida(s.ctx, domain.Partida{
		Concepto: "Aporte inicial", Estado: domain.EstadoPartidaPendiente, IDPeriodo: periodo.IDPeriodo,
	})
	s.Require().NoError(err)
	vacia, err := s.repos.PartidaRepo.SavePartida(s.ctx, domain.Partida{
		Concepto: "Sin movimientos", Estado: domain.EstadoPartidaPendiente, IDPeriodo: periodo.IDPeriodo,
	})
	s.Require().NoError(err)

	for _, line := range []struct {
		cuenta int64
		tipo   domain.TipoTransaccion
	}{{caja.IDCuenta, domain.Debe}, {capital.IDCuenta, domain.Haber}} {
		txn, err := s.repos.TransaccionRepo.SaveTransaccion(s.ctx, domain.Transaccion{
			CuentaID: line.cuenta, Monto: decimal.RequireFromString("1500.50"), TipoTransaccion: line.tipo,
			PartidaID: partida.IDPartida, FechaOperacion: fecha.Date(2024, 1, 15),
		})
		s.Require().NoError(err)
		s.Require().NotNil(txn.Detalle)
		s.Equal("Aporte inicial", txn.Detalle.PartidaConcepto)
		s.Equal(periodo.IDPeriodo, txn.Detalle.IDPeriodo)
		s.Equal(fecha.Date(2024, 3, 31), txn.Detalle.PeriodoFechaFin)
	}

	partidas, err := s.repos.PartidaRepo.ListPartidasByPeriodo(s.ctx, periodo.IDPeriodo)
	s.Require().NoError(err)
	s.Require().Len(partidas, 2)
	s.Equal(vacia.IDPartida, partidas[0].IDPartida)
	s.Empty(partidas[0].Transacciones)
	s.Require().Len(partidas[1].Transacciones, 2)
	s.Equal("Caja", partidas[1].Transacciones[0].Detalle.CuentaNombre)
	s.True(decimal.RequireFromString("1500.5").Equal(partidas[1].Transacciones[0].Monto))

	found, err := s.repos.PartidaRepo.FindPartidaByID(s.ctx, partida.IDPartida)
	s.Require().NoError(err)
	s.Require().NotNil(found.PeriodoFechaFin)
	s.Equal(fecha.Date(2024, 3, 31), *found.PeriodoFechaFin)

	_, err = s.repos.PartidaRepo.DeletePartida(s.ctx, partida.IDPartida)
	s.Equal(apperrors.RegistroEnUso, apperrors.KindOf(err))

	porPeriodo, err := s.repos.TransaccionRepo.ListTransaccionesByPeriodo(s.ctx, periodo.IDPeriodo)
	s.Require().NoError(err)
	s.Len(porPeriodo, 2)
}

func (s *RepositoryIntegrationSuite) TestFactura_ListJoinsPeriodo() {
	periodo := s.crearPeriodo("01/01/2024", "31/12/2024")

	for i, numero := range []string{"FE-001", "FE-002"} {
		_, err := s.repos.FacturaRepo.SaveFactura(s.ctx, domain.Factura{
			NumeroFactura: numero,
			FechaEmision:  fecha.Date(2024, 5, 1+i),
			ClienteNombre: "Cliente S.A.",
			Subtotal:      decimal.NewFromInt(100),
			Impuestos:     decimal.NewFromInt(19),
			Total:         decimal.NewFromInt(119),
			Estado:        domain.FacturaBorrador,
			IDPeriodo:     periodo.IDPeriodo,
		})
		s.Require().NoError(err)
	}

	_, err := s.repos.FacturaRepo.SaveFactura(s.ctx, domain.Factura{
		NumeroFactura: "FE-001", FechaEmision: fecha.Date(2024, 5, 3), ClienteNombre: "Otro",
		Subtotal: decimal.NewFromInt(1), Impuestos: decimal.Zero, Total: decimal.NewFromInt(1),
		Estado: domain.FacturaBorrador, IDPeriodo: periodo.IDPeriodo,
	})
	s.Equal(apperrors.RegistroDuplicado, apperrors.KindOf(err))

	facturas, err := s.repos.FacturaRepo.ListFacturas(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(facturas, 2)
	s.Equal("FE-002", facturas[0].NumeroFactura)
	s.Require().NotNil(facturas[0].Periodo)
	s.Equal(fecha.Date(2024, 12, 31), facturas[0].Periodo.FechaFin)

	_, err = s.repos.PeriodoRepo.DeletePeriodo(s.ctx, periodo.IDPeriodo)
	s.Equal(apperrors.RegistroEnUso, apperrors.KindOf(err))
}
