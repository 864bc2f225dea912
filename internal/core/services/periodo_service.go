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
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/SscSPs/contabilidad_app/internal/validation"
)

// periodoService implements the PeriodoSvcFacade interface
type periodoService struct {
	BaseService
	periodoRepo portsrepo.PeriodoRepositoryFacade
}

// NewPeriodoService creates a new accounting period service
func NewPeriodoService(repo portsrepo.PeriodoRepositoryFacade) portssvc.PeriodoSvcFacade {
	return &periodoService{periodoRepo: repo}
}

var _ portssvc.PeriodoSvcFacade = (*periodoService)(nil)

func periodoNotFound(id int64) error {
	return apperrors.Newf(apperrors.PeriodoContableNotFound, "El periodo contable con id %d no existe.", id).WithField("id_periodo")
}

// buildPeriodo validates req and converts it to a domain period.
func buildPeriodo(req dto.PeriodoRequest) (domain.Periodo, error) {
	req.Estado = strings.ToUpper(strings.TrimSpace(req.Estado))
	if err := validation.Struct(req); err != nil {
		return domain.Periodo{}, err
	}

	inicio, fin, err := fecha.ParseRango("fecha_inicio", req.FechaInicio, "fecha_fin", req.FechaFin)
	if err != nil {
		return domain.Periodo{}, err
	}

	return domain.Periodo{FechaInicio: inicio, FechaFin: fin, Estado: domain.EstadoPeriodo(req.Estado)}, nil
}

// checkSolapamiento rejects periodo when it shares a day with any other period.
func (s *periodoService) checkSolapamiento(ctx context.Context, periodo domain.Periodo, excludeID int64) error {
	existente, err := s.periodoRepo.FindPeriodoSolapado(ctx, periodo, excludeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check overlapping periods")
		return err
	}
	if existente != nil {
		return apperrors.Newf(apperrors.PeriodoExistente,
			"El rango de fechas se solapa con el periodo %d (%s a %s).",
			existente.IDPeriodo, fecha.FormatISO(existente.FechaInicio), fecha.FormatISO(existente.FechaFin))
	}
	return nil
}

func (s *periodoService) CreatePeriodo(ctx context.Context, req dto.PeriodoRequest) (*domain.Periodo, error) {
	periodo, err := buildPeriodo(req)
	if err != nil {
		s.LogDebug(ctx, "Invalid period request", slog.String("reason", err.Error()))
		return nil, err
	}
	if err := s.checkSolapamiento(ctx, periodo, 0); err != nil {
		return nil, err
	}

	saved, err := s.periodoRepo.SavePeriodo(ctx, periodo)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save period")
		return nil, err
	}

	s.LogInfo(ctx, "Period created successfully", slog.Int64("id_periodo", saved.IDPeriodo))
	return saved, nil
}

func (s *periodoService) GetPeriodoByID(ctx context.Context, id int64) (*domain.Periodo, error) {
	periodo, err := s.periodoRepo.FindPeriodoByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find period by ID", slog.Int64("id_periodo", id))
		return nil, err
	}
	if periodo == nil {
		return nil, periodoNotFound(id)
	}
	return periodo, nil
}

func (s *periodoService) ListPeriodos(ctx context.Context) ([]domain.Periodo, error) {
	periodos, err := s.periodoRepo.ListPeriodos(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list periods")
		return nil, err
	}
	if periodos == nil {
		return []domain.Periodo{}, nil
	}
	return periodos, nil
}

func (s *periodoService) UpdatePeriodo(ctx context.Context, id int64, req dto.PeriodoRequest) (*domain.Periodo, error) {
	if _, err := s.GetPeriodoByID(ctx, id); err != nil {
		return nil, err
	}

	periodo, err := buildPeriodo(req)
	if err != nil {
		s.LogDebug(ctx, "Invalid period update", slog.Int64("id_periodo", id), slog.String("reason", err.Error()))
		return nil, err
	}
	periodo.IDPeriodo = id
	if err := s.checkSolapamiento(ctx, periodo, id); err != nil {
		return nil, err
	}

	updated, err := s.periodoRepo.UpdatePeriodo(ctx, periodo)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update period", slog.Int64("id_periodo", id))
		return nil, err
	}
	if updated == nil {
		return nil, periodoNotFound(id)
	}

	s.LogInfo(ctx, "Period updated successfully", slog.Int64("id_periodo", id))
	return updated, nil
}

func (s *periodoService) DeletePeriodo(ctx context.Context, id int64) error {
	deleted, err := s.periodoRepo.DeletePeriodo(ctx, id)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete period", slog.Int64("id_periodo", id))
		return err
	}
	if !deleted {
		return periodoNotFound(id)
	}
	s.LogInfo(ctx, "Period deleted successfully", slog.Int64("id_periodo", id))
	return nil
}
