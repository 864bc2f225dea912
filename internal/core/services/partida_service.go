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

// partidaService implements the PartidaSvcFacade interface
type partidaService struct {
	BaseService
	partidaRepo portsrepo.PartidaRepositoryFacade
	periodoSvc  portssvc.PeriodoReaderSvc
}

// NewPartidaService creates a new journal entry service
func NewPartidaService(repo portsrepo.PartidaRepositoryFacade, periodoSvc portssvc.PeriodoReaderSvc) portssvc.PartidaSvcFacade {
	return &partidaService{partidaRepo: repo, periodoSvc: periodoSvc}
}

var _ portssvc.PartidaSvcFacade = (*partidaService)(nil)

func partidaNotFound(id int64) error {
	return apperrors.Newf(apperrors.PartidaDiariaNotFound, "La partida diaria con id %d no existe.", id)
}

// buildPartida validates req and checks the referenced period exists.
func (s *partidaService) buildPartida(ctx context.Context, req dto.PartidaRequest) (domain.Partida, error) {
	concepto := strings.TrimSpace(req.Concepto)
	if req.Concepto != "" && concepto == "" {
		return domain.Partida{}, apperrors.New(apperrors.ConceptoInvalido, "El concepto no puede estar vacío.").WithField("concepto")
	}
	req.Concepto = concepto

	req.Estado = strings.ToUpper(strings.TrimSpace(req.Estado))
	if req.Estado == "" {
		req.Estado = domain.EstadoPartidaPendiente
	}

	if err := validation.Struct(req); err != nil {
		return domain.Partida{}, err
	}

	if _, err := s.periodoSvc.GetPeriodoByID(ctx, req.IDPeriodo); err != nil {
		return domain.Partida{}, err
	}

	return domain.Partida{Concepto: req.Concepto, Estado: req.Estado, IDPeriodo: req.IDPeriodo}, nil
}

func (s *partidaService) CreatePartida(ctx context.Context, req dto.PartidaRequest) (*domain.Partida, error) {
	partida, err := s.buildPartida(ctx, req)
	if err != nil {
		s.LogFailure(ctx, err, "Invalid journal entry request")
		return nil, err
	}

	saved, err := s.partidaRepo.SavePartida(ctx, partida)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save journal entry", slog.Int64("id_periodo", partida.IDPeriodo))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created successfully",
		slog.Int64("id_partida_diaria", saved.IDPartida),
		slog.Int64("id_periodo", saved.IDPeriodo))
	return saved, nil
}

func (s *partidaService) GetPartidaByID(ctx context.Context, id int64) (*domain.Partida, error) {
	partida, err := s.partidaRepo.FindPartidaByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal entry by ID", slog.Int64("id_partida_diaria", id))
		return nil, err
	}
	if partida == nil {
		return nil, partidaNotFound(id)
	}
	return partida, nil
}

func (s *partidaService) ListPartidas(ctx context.Context) ([]domain.Partida, error) {
	partidas, err := s.partidaRepo.ListPartidas(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}
	if partidas == nil {
		return []domain.Partida{}, nil
	}
	return partidas, nil
}

func (s *partidaService) ListPartidasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Partida, error) {
	if _, err := s.periodoSvc.GetPeriodoByID(ctx, idPeriodo); err != nil {
		return nil, err
	}

	partidas, err := s.partidaRepo.ListPartidasByPeriodo(ctx, idPeriodo)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries by period", slog.Int64("id_periodo", idPeriodo))
		return nil, err
	}
	if partidas == nil {
		return []domain.Partida{}, nil
	}
	return partidas, nil
}

func (s *partidaService) ListPartidasByFechas(ctx context.Context, fechaInicio, fechaFin string) ([]domain.Partida, error) {
	desde, hasta, err := fecha.ParseRango("fecha_inicio", fechaInicio, "fecha_fin", fechaFin)
	if err != nil {
		s.LogDebug(ctx, "Invalid creation date range", slog.String("reason", err.Error()))
		return nil, err
	}

	partidas, err := s.partidaRepo.ListPartidasByFechaCreacion(ctx, desde, hasta)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries by creation date",
			slog.String("fecha_inicio", fecha.FormatISO(desde)),
			slog.String("fecha_fin", fecha.FormatISO(hasta)))
		return nil, err
	}
	if partidas == nil {
		return []domain.Partida{}, nil
	}
	return partidas, nil
}

func (s *partidaService) UpdatePartida(ctx context.Context, id int64, req dto.PartidaRequest) (*domain.Partida, error) {
	if _, err := s.GetPartidaByID(ctx, id); err != nil {
		return nil, err
	}

	partida, err := s.buildPartida(ctx, req)
	if err != nil {
		s.LogFailure(ctx, err, "Invalid journal entry update", slog.Int64("id_partida_diaria", id))
		return nil, err
	}
	partida.IDPartida = id

	updated, err := s.partidaRepo.UpdatePartida(ctx, partida)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update journal entry", slog.Int64("id_partida_diaria", id))
		return nil, err
	}
	if updated == nil {
		return nil, partidaNotFound(id)
	}

	s.LogInfo(ctx, "Journal entry updated successfully", slog.Int64("id_partida_diaria", id))
	return updated, nil
}

func (s *partidaService) DeletePartida(ctx context.Context, id int64) error {
	deleted, err := s.partidaRepo.DeletePartida(ctx, id)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete journal entry", slog.Int64("id_partida_diaria", id))
		return err
	}
	if !deleted {
		return partidaNotFound(id)
	}
	s.LogInfo(ctx, "Journal entry deleted successfully", slog.Int64("id_partida_diaria", id))
	return nil
}
