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
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/SscSPs/contabilidad_app/internal/utils/fecha"
	"github.com/SscSPs/contabilidad_app/internal/validation"
)

// transaccionService implements the TransaccionSvcFacade interface
type transaccionService struct {
	BaseService
	transaccionRepo portsrepo.TransaccionRepositoryFacade
	cuentaSvc       portssvc.CuentaReaderSvc
	partidaSvc      portssvc.PartidaReaderSvc
}

// NewTransaccionService creates a new transaction service
func NewTransaccionService(
	repo portsrepo.TransaccionRepositoryFacade,
	cuentaSvc portssvc.CuentaReaderSvc,
	partidaSvc portssvc.PartidaReaderSvc,
) portssvc.TransaccionSvcFacade {
	return &transaccionService{
		transaccionRepo: repo,
		cuentaSvc:       cuentaSvc,
		partidaSvc:      partidaSvc,
	}
}

var _ portssvc.TransaccionSvcFacade = (*transaccionService)(nil)

func transaccionNotFound(id int64) error {
	return apperrors.Newf(apperrors.TransaccionContableNotFound, "La transacción contable con id %d no existe.", id)
}

// buildTransaccion validates req, rounds the amount to cents and checks the
// operation date against the end of the entry's period.
func (s *transaccionService) buildTransaccion(ctx context.Context, req dto.TransaccionRequest) (domain.Transaccion, error) {
	req.TipoTransaccion = strings.ToUpper(strings.TrimSpace(req.TipoTransaccion))
	if err := validation.Struct(req); err != nil {
		return domain.Transaccion{}, err
	}

	if !req.Monto.IsPositive() {
		return domain.Transaccion{}, apperrors.New(apperrors.MontoInvalido, "El monto debe ser mayor que cero.").WithField("monto")
	}
	monto := req.Monto.Round(2)
	if !monto.IsPositive() {
		return domain.Transaccion{}, apperrors.New(apperrors.MontoInvalido, "El monto redondeado a dos decimales debe ser mayor que cero.").WithField("monto")
	}

	fechaOperacion, err := fecha.Parse("fecha_operacion", req.FechaOperacion)
	if err != nil {
		return domain.Transaccion{}, err
	}

	if _, err := s.cuentaSvc.GetCuentaByID(ctx, req.CuentaID); err != nil {
		return domain.Transaccion{}, err
	}
	partida, err := s.partidaSvc.GetPartidaByID(ctx, req.PartidaDiariaID)
	if err != nil {
		return domain.Transaccion{}, err
	}
	if fin := partida.PeriodoFechaFin; fin != nil && fechaOperacion.After(*fin) {
		return domain.Transaccion{}, apperrors.Newf(apperrors.FechaFueraDePeriodo,
			"La fecha de operación %s es posterior al fin del periodo (%s).",
			fecha.FormatISO(fechaOperacion), fecha.FormatISO(*fin)).WithField("fecha_operacion")
	}

	return domain.Transaccion{
		CuentaID:        req.CuentaID,
		Monto:           monto,
		TipoTransaccion: domain.TipoTransaccion(req.TipoTransaccion),
		PartidaID:       req.PartidaDiariaID,
		FechaOperacion:  fechaOperacion,
	}, nil
}

func (s *transaccionService) CreateTransaccion(ctx context.Context, req dto.TransaccionRequest) (*domain.Transaccion, error) {
	txn, err := s.buildTransaccion(ctx, req)
	if err != nil {
		s.LogFailure(ctx, err, "Invalid transaction request")
		return nil, err
	}

	saved, err := s.transaccionRepo.SaveTransaccion(ctx, txn)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save transaction",
			slog.Int64("cuenta_id", txn.CuentaID),
			slog.Int64("partida_diaria_id", txn.PartidaID))
		return nil, err
	}
	if saved == nil {
		return nil, apperrors.NewAppError("transaction vanished after insert", nil)
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.Int64("id_transaccion", saved.IDTransaccion),
		slog.String("monto", saved.Monto.StringFixed(2)),
		slog.String("tipo", string(saved.TipoTransaccion)))
	return saved, nil
}

func (s *transaccionService) GetTransaccionByID(ctx context.Context, id int64) (*domain.Transaccion, error) {
	txn, err := s.transaccionRepo.FindTransaccionByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transaction by ID", slog.Int64("id_transaccion", id))
		return nil, err
	}
	if txn == nil {
		return nil, transaccionNotFound(id)
	}
	return txn, nil
}

func (s *transaccionService) ListTransacciones(ctx context.Context) ([]domain.Transaccion, error) {
	txns, err := s.transaccionRepo.ListTransacciones(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txns == nil {
		return []domain.Transaccion{}, nil
	}
	return txns, nil
}

func (s *transaccionService) ListTransaccionesByPartida(ctx context.Context, partidaID int64) ([]domain.Transaccion, error) {
	if _, err := s.partidaSvc.GetPartidaByID(ctx, partidaID); err != nil {
		return nil, err
	}

	txns, err := s.transaccionRepo.ListTransaccionesByPartida(ctx, partidaID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by journal entry", slog.Int64("partida_diaria_id", partidaID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaccion{}, nil
	}
	return txns, nil
}

func (s *transaccionService) UpdateTransaccion(ctx context.Context, id int64, req dto.TransaccionRequest) (*domain.Transaccion, error) {
	if _, err := s.GetTransaccionByID(ctx, id); err != nil {
		return nil, err
	}

	txn, err := s.buildTransaccion(ctx, req)
	if err != nil {
		s.LogFailure(ctx, err, "Invalid transaction update", slog.Int64("id_transaccion", id))
		return nil, err
	}
	txn.IDTransaccion = id

	updated, err := s.transaccionRepo.UpdateTransaccion(ctx, txn)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update transaction", slog.Int64("id_transaccion", id))
		return nil, err
	}
	if updated == nil {
		return nil, transaccionNotFound(id)
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.Int64("id_transaccion", id))
	return updated, nil
}

func (s *transaccionService) DeleteTransaccion(ctx context.Context, id int64) error {
	deleted, err := s.transaccionRepo.DeleteTransaccion(ctx, id)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete transaction", slog.Int64("id_transaccion", id))
		return err
	}
	if !deleted {
		return transaccionNotFound(id)
	}
	s.LogInfo(ctx, "Transaction deleted successfully", slog.Int64("id_transaccion", id))
	return nil
}

// GetBalance loads entries, accounts and transactions and runs the double-entry check.
func (s *transaccionService) GetBalance(ctx context.Context, idPeriodo *int64) (*domain.BalanceGeneral, error) {
	var (
		partidas []domain.Partida
		txns     []domain.Transaccion
		err      error
	)
	if idPeriodo != nil {
		partidas, err = s.partidaSvc.ListPartidasByPeriodo(ctx, *idPeriodo)
		if err != nil {
			return nil, err
		}
		txns, err = s.transaccionRepo.ListTransaccionesByPeriodo(ctx, *idPeriodo)
	} else {
		partidas, err = s.partidaSvc.ListPartidas(ctx)
		if err != nil {
			return nil, err
		}
		txns, err = s.transaccionRepo.ListTransacciones(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for balance")
		return nil, err
	}

	cuentas, err := s.cuentaSvc.ListCuentas(ctx)
	if err != nil {
		return nil, err
	}

	balance := accounting.CalcularBalance(partidas, cuentas, txns)
	s.LogDebug(ctx, "Balance computed",
		slog.Int("transacciones", balance.Integridad.TotalTransacciones),
		slog.Bool("cuadrado", balance.Cuadrado))
	return &balance, nil
}
