package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portsrepo "github.com/SscSPs/contabilidad_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/validation"
)

// cuentaService implements the CuentaSvcFacade interface
type cuentaService struct {
	BaseService
	cuentaRepo portsrepo.CuentaRepositoryFacade
}

// NewCuentaService creates a new account service
func NewCuentaService(repo portsrepo.CuentaRepositoryFacade) portssvc.CuentaSvcFacade {
	return &cuentaService{cuentaRepo: repo}
}

var _ portssvc.CuentaSvcFacade = (*cuentaService)(nil)

func cuentaNotFound(id int64) error {
	return apperrors.Newf(apperrors.CuentaContableNotFound, "La cuenta contable con id %d no existe.", id)
}

// normalizeCuenta trims every field and upper-cases tipo and categoria.
func normalizeCuenta(req *dto.CreateCuentaRequest) {
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Tipo = strings.ToUpper(strings.TrimSpace(req.Tipo))
	req.Categoria = strings.ToUpper(strings.TrimSpace(req.Categoria))
}

func validateCuenta(req dto.CreateCuentaRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if req.Tipo == "" {
		if req.ParentID == nil {
			return apperrors.New(apperrors.DatosFaltantes, "El campo tipo es obligatorio para cuentas raíz.").WithField("tipo")
		}
		return nil
	}
	if !domain.TipoCuenta(req.Tipo).Valid() {
		return apperrors.Newf(apperrors.TipoCuentaInvalido,
			"El tipo de cuenta '%s' no es válido. Debe ser ACTIVO, PASIVO, PATRIMONIO, INGRESO o GASTO.", req.Tipo).WithField("tipo")
	}
	return nil
}

func (s *cuentaService) CreateCuenta(ctx context.Context, req dto.CreateCuentaRequest) (*domain.Cuenta, error) {
	normalizeCuenta(&req)
	if err := validateCuenta(req); err != nil {
		s.LogDebug(ctx, "Invalid account request", slog.String("reason", err.Error()))
		return nil, err
	}

	cuenta, err := s.cuentaRepo.CreateCuenta(ctx, domain.Cuenta{
		Nombre:    req.Nombre,
		Tipo:      domain.TipoCuenta(req.Tipo),
		Categoria: req.Categoria,
		PadreID:   req.ParentID,
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create account", slog.String("nombre", req.Nombre))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("id_cuenta", cuenta.IDCuenta),
		slog.String("codigo", cuenta.Codigo))
	return cuenta, nil
}

func (s *cuentaService) GetCuentaByID(ctx context.Context, id int64) (*domain.Cuenta, error) {
	cuenta, err := s.cuentaRepo.FindCuentaByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("id_cuenta", id))
		return nil, err
	}
	if cuenta == nil {
		return nil, cuentaNotFound(id)
	}
	return cuenta, nil
}

func (s *cuentaService) ListCuentas(ctx context.Context) ([]domain.Cuenta, error) {
	cuentas, err := s.cuentaRepo.ListCuentas(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	if cuentas == nil {
		return []domain.Cuenta{}, nil
	}
	return cuentas, nil
}

func (s *cuentaService) UpdateCuenta(ctx context.Context, id int64, req dto.UpdateCuentaRequest) (*domain.Cuenta, error) {
	existing, err := s.GetCuentaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := dto.CreateCuentaRequest{
		Nombre:    existing.Nombre,
		Tipo:      string(existing.Tipo),
		Categoria: existing.Categoria,
		ParentID:  existing.PadreID,
	}
	if req.Nombre != nil {
		merged.Nombre = *req.Nombre
	}
	if req.Tipo != nil {
		merged.Tipo = *req.Tipo
	}
	if req.Categoria != nil {
		merged.Categoria = *req.Categoria
	}
	normalizeCuenta(&merged)
	if err := validateCuenta(merged); err != nil {
		s.LogDebug(ctx, "Invalid account update", slog.Int64("id_cuenta", id), slog.String("reason", err.Error()))
		return nil, err
	}
	if domain.TipoCuenta(merged.Tipo) != existing.Tipo {
		s.LogDebug(ctx, "Account tipo change rejected", slog.Int64("id_cuenta", id), slog.String("tipo", merged.Tipo))
		return nil, apperrors.Newf(apperrors.TipoCuentaInvalido,
			"El tipo de la cuenta %s es %s y no puede cambiarse.", existing.Codigo, existing.Tipo).WithField("tipo")
	}

	taken, err := s.cuentaRepo.ExistsCuentaByNombre(ctx, merged.Nombre, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account name", slog.Int64("id_cuenta", id))
		return nil, err
	}
	if taken {
		return nil, apperrors.Newf(apperrors.YaExisteCuenta, "Ya existe una cuenta con el nombre '%s'.", merged.Nombre).WithField("nombre")
	}

	updated, err := s.cuentaRepo.UpdateCuenta(ctx, domain.Cuenta{
		IDCuenta:  id,
		Codigo:    existing.Codigo,
		Nombre:    merged.Nombre,
		Tipo:      domain.TipoCuenta(merged.Tipo),
		Categoria: merged.Categoria,
		PadreID:   existing.PadreID,
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update account", slog.Int64("id_cuenta", id))
		return nil, err
	}
	if updated == nil {
		return nil, cuentaNotFound(id)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("id_cuenta", id))
	return updated, nil
}

func (s *cuentaService) DeleteCuenta(ctx context.Context, id int64) error {
	deleted, err := s.cuentaRepo.DeleteCuenta(ctx, id)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete account", slog.Int64("id_cuenta", id))
		return err
	}
	if !deleted {
		return cuentaNotFound(id)
	}
	s.LogInfo(ctx, "Account deleted successfully", slog.Int64("id_cuenta", id))
	return nil
}
