package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/core/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CuentaServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockCuentaRepository
	service  portssvc.CuentaSvcFacade
}

func (suite *CuentaServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockCuentaRepository)
	suite.service = services.NewCuentaService(suite.mockRepo)
}

func TestCuentaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CuentaServiceTestSuite))
}

func (suite *CuentaServiceTestSuite) TestCreateCuenta_RootNormalizesFields() {
	req := dto.CreateCuentaRequest{Nombre: "  Activos  ", Tipo: " activo ", Categoria: "general"}
	expected := domain.Cuenta{Nombre: "Activos", Tipo: domain.Activo, Categoria: "GENERAL"}
	stored := &domain.Cuenta{IDCuenta: 1, Codigo: "1", Nombre: "Activos", Tipo: domain.Activo, Categoria: "GENERAL"}

	suite.mockRepo.On("CreateCuenta", suite.ctx, expected).Return(stored, nil).Once()

	cuenta, err := suite.service.CreateCuenta(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("1", cuenta.Codigo)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CuentaServiceTestSuite) TestCreateCuenta_ChildWithoutTipo() {
	padre := int64(1)
	req := dto.CreateCuentaRequest{Nombre: "Caja", Categoria: "corriente", ParentID: &padre}
	stored := &domain.Cuenta{IDCuenta: 2, Codigo: "101", Nombre: "Caja", Tipo: domain.Activo, Categoria: "CORRIENTE", PadreID: &padre}

	suite.mockRepo.On("CreateCuenta", suite.ctx, mock.MatchedBy(func(c domain.Cuenta) bool {
		return c.Tipo == "" && c.PadreID != nil && *c.PadreID == padre
	})).Return(stored, nil).Once()

	cuenta, err := suite.service.CreateCuenta(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("101", cuenta.Codigo)
	suite.Equal(domain.Activo, cuenta.Tipo)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CuentaServiceTestSuite) TestCreateCuenta_ValidationErrors() {
	negativo := int64(-3)
	tests := []struct {
		name string
		req  dto.CreateCuentaRequest
		kind apperrors.Kind
	}{
		{"missing nombre", dto.CreateCuentaRequest{Tipo: "ACTIVO", Categoria: "X"}, apperrors.DatosFaltantes},
		{"blank nombre", dto.CreateCuentaRequest{Nombre: "   ", Tipo: "ACTIVO", Categoria: "X"}, apperrors.DatosFaltantes},
		{"missing categoria", dto.CreateCuentaRequest{Nombre: "Caja", Tipo: "ACTIVO"}, apperrors.DatosFaltantes},
		{"root without tipo", dto.CreateCuentaRequest{Nombre: "Caja", Categoria: "X"}, apperrors.DatosFaltantes},
		{"unknown tipo", dto.CreateCuentaRequest{Nombre: "Caja", Tipo: "COSTO", Categoria: "X"}, apperrors.TipoCuentaInvalido},
		{"negative parent", dto.CreateCuentaRequest{Nombre: "Caja", Categoria: "X", ParentID: &negativo}, apperrors.ParentIdInvalido},
		{"long nombre", dto.CreateCuentaRequest{Nombre: strings.Repeat("a", 101), Tipo: "ACTIVO", Categoria: "X"}, apperrors.LongitudExcedida},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateCuenta(suite.ctx, tt.req)
			suite.Equal(tt.kind, apperrors.KindOf(err))
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCuenta", mock.Anything, mock.Anything)
}

func (suite *CuentaServiceTestSuite) TestCreateCuenta_PropagatesRepositoryKinds() {
	req := dto.CreateCuentaRequest{Nombre: "Activos", Tipo: "ACTIVO", Categoria: "GENERAL"}
	suite.mockRepo.On("CreateCuenta", suite.ctx, mock.Anything).
		Return(nil, apperrors.New(apperrors.YaExisteCuenta, "ya existe")).Once()

	cuenta, err := suite.service.CreateCuenta(suite.ctx, req)

	suite.Nil(cuenta)
	suite.True(apperrors.IsKind(err, apperrors.YaExisteCuenta))
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CuentaServiceTestSuite) TestGetCuentaByID_NotFound() {
	suite.mockRepo.On("FindCuentaByID", suite.ctx, int64(99)).Return(nil, nil).Once()

	cuenta, err := suite.service.GetCuentaByID(suite.ctx, 99)

	suite.Nil(cuenta)
	suite.Equal(apperrors.CuentaContableNotFound, apperrors.KindOf(err))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CuentaServiceTestSuite) TestListCuentas_NilBecomesEmpty() {
	suite.mockRepo.On("ListCuentas", suite.ctx).Return(nil, nil).Once()

	cuentas, err := suite.service.ListCuentas(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(cuentas)
	suite.Empty(cuentas)
}

func (suite *CuentaServiceTestSuite) TestUpdateCuenta_KeepsCodigoAndPadre() {
	padre := int64(1)
	existing := &domain.Cuenta{IDCuenta: 2, Codigo: "101", Nombre: "Caja", Tipo: domain.Activo, Categoria: "CORRIENTE", PadreID: &padre}
	expected := domain.Cuenta{IDCuenta: 2, Codigo: "101", Nombre: "Caja chica", Tipo: domain.Activo, Categoria: "CORRIENTE", PadreID: &padre}

	suite.mockRepo.On("FindCuentaByID", suite.ctx, int64(2)).Return(existing, nil).Once()
	suite.mockRepo.On("ExistsCuentaByNombre", suite.ctx, "Caja chica", int64(2)).Return(false, nil).Once()
	suite.mockRepo.On("UpdateCuenta", suite.ctx, expected).Return(&expected, nil).Once()

	updated, err := suite.service.UpdateCuenta(suite.ctx, 2, dto.UpdateCuentaRequest{Nombre: ptr(" Caja chica ")})

	suite.Require().NoError(err)
	suite.Equal("Caja chica", updated.Nombre)
	suite.Equal("101", updated.Codigo)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CuentaServiceTestSuite) TestUpdateCuenta_DuplicateName() {
	existing := &domain.Cuenta{IDCuenta: 2, Codigo: "2", Nombre: "Pasivos", Tipo: domain.Pasivo, Categoria: "GENERAL"}
	suite.mockRepo.On("FindCuentaByID", suite.ctx, int64(2)).Return(existing, nil).Once()
	suite.mockRepo.On("ExistsCuentaByNombre", suite.ctx, "Activos", int64(2)).Return(true, nil).Once()

	_, err := suite.service.UpdateCuenta(suite.ctx, 2, dto.UpdateCuentaRequest{Nombre: ptr("Activos")})

	suite.Equal(apperrors.YaExisteCuenta, apperrors.KindOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCuenta", mock.Anything, mock.Anything)
}

func (suite *CuentaServiceTestSuite) TestUpdateCuenta_InvalidTipo() {
	existing := &domain.Cuenta{IDCuenta: 2, Codigo: "2", Nombre: "Pasivos", Tipo: domain.Pasivo, Categoria: "GENERAL"}
	suite.mockRepo.On("FindCuentaByID", suite.ctx, int64(2)).Return(existing, nil).Once()

	_, err := suite.service.UpdateCuenta(suite.ctx, 2, dto.UpdateCuentaRequest{Tipo: ptr("costo")})

	suite.Equal(apperrors.TipoCuentaInvalido, apperrors.KindOf(err))
}

func (suite *CuentaServiceTestSuite) TestUpdateCuenta_TipoIsImmutable() {
	padre := int64(1)
	tests := []struct {
		name     string
		existing *domain.Cuenta
		tipo     string
	}{
		{"root", &domain.Cuenta{IDCuenta: 1, Codigo: "1", Nombre: "Activos", Tipo: domain.Activo, Categoria: "GENERAL"}, "pasivo"},
		{"child", &domain.Cuenta{IDCuenta: 2, Codigo: "101", Nombre: "Caja", Tipo: domain.Activo, Categoria: "CORRIENTE", PadreID: &padre}, "GASTO"},
		{"child cleared", &domain.Cuenta{IDCuenta: 2, Codigo: "101", Nombre: "Caja", Tipo: domain.Activo, Categoria: "CORRIENTE", PadreID: &padre}, " "},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockRepo.On("FindCuentaByID", suite.ctx, tt.existing.IDCuenta).Return(tt.existing, nil).Once()

			_, err := suite.service.UpdateCuenta(suite.ctx, tt.existing.IDCuenta, dto.UpdateCuentaRequest{Tipo: ptr(tt.tipo)})

			suite.Equal(apperrors.TipoCuentaInvalido, apperrors.KindOf(err))
			var appErr *apperrors.AppError
			suite.Require().ErrorAs(err, &appErr)
			suite.Equal("tipo", appErr.Field)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsCuentaByNombre", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCuenta", mock.Anything, mock.Anything)
}

func (suite *CuentaServiceTestSuite) TestUpdateCuenta_SameTipoAccepted() {
	existing := &domain.Cuenta{IDCuenta: 1, Codigo: "1", Nombre: "Activos", Tipo: domain.Activo, Categoria: "GENERAL"}
	suite.mockRepo.On("FindCuentaByID", suite.ctx, int64(1)).Return(existing, nil).Once()
	suite.mockRepo.On("ExistsCuentaByNombre", suite.ctx, "Activos", int64(1)).Return(false, nil).Once()
	suite.mockRepo.On("UpdateCuenta", suite.ctx, *existing).Return(existing, nil).Once()

	_, err := suite.service.UpdateCuenta(suite.ctx, 1, dto.UpdateCuentaRequest{Tipo: ptr(" activo ")})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CuentaServiceTestSuite) TestDeleteCuenta() {
	suite.mockRepo.On("DeleteCuenta", suite.ctx, int64(3)).Return(true, nil).Once()
	suite.mockRepo.On("DeleteCuenta", suite.ctx, int64(4)).Return(false, nil).Once()
	suite.mockRepo.On("DeleteCuenta", suite.ctx, int64(5)).
		Return(false, apperrors.New(apperrors.RegistroEnUso, "en uso")).Once()

	suite.NoError(suite.service.DeleteCuenta(suite.ctx, 3))
	suite.Equal(apperrors.CuentaContableNotFound, apperrors.KindOf(suite.service.DeleteCuenta(suite.ctx, 4)))
	suite.Equal(apperrors.RegistroEnUso, apperrors.KindOf(suite.service.DeleteCuenta(suite.ctx, 5)))
}

func TestCuentaService_InternalErrorsStayInternal(t *testing.T) {
	repo := new(MockCuentaRepository)
	svc := services.NewCuentaService(repo)
	repo.On("ListCuentas", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := svc.ListCuentas(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, apperrors.Interno, apperrors.KindOf(err))
}
