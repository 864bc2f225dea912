package services

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CUFEGenerator derives the unique electronic invoice code of a factura.
type CUFEGenerator func(f domain.Factura) string

// facturaService implements the FacturaSvcFacade interface
type facturaService struct {
	BaseService
	facturaRepo portsrepo.FacturaRepositoryFacade
	periodoSvc  portssvc.PeriodoReaderSvc
	generarCUFE CUFEGenerator
}

// FacturaServiceOption is a functional option for configuring the invoice service
type FacturaServiceOption func(*facturaService)

// WithCUFEGenerator replaces the default SHA-384 CUFE generator
func WithCUFEGenerator(gen CUFEGenerator) FacturaServiceOption {
	return func(s *facturaService) {
		s.generarCUFE = gen
	}
}

// NewFacturaService creates a new electronic invoice service
func NewFacturaService(repo portsrepo.FacturaRepositoryFacade, periodoSvc portssvc.PeriodoReaderSvc, options ...FacturaServiceOption) portssvc.FacturaSvcFacade {
	svc := &facturaService{
		facturaRepo: repo,
		periodoSvc:  periodoSvc,
		generarCUFE: GenerarCUFE,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FacturaSvcFacade = (*facturaService)(nil)

// GenerarCUFE returns the hex SHA-384 digest of the invoice number, emission
// date, total and client, salted with a random nonce.
func GenerarCUFE(f domain.Factura) string {
	payload := strings.Join([]string{
		f.NumeroFactura,
		fecha.FormatISO(f.FechaEmision),
		f.Total.StringFixed(2),
		f.ClienteNombre,
		uuid.NewString(),
	}, "|")
	sum := sha512.Sum384([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func facturaNotFound(id int64) error {
	return apperrors.Newf(apperrors.FacturaNotFound, "La factura electrónica con id %d no existe.", id)
}

func normalizeFactura(req *dto.CreateFacturaRequest) {
	req.NumeroFactura = strings.TrimSpace(req.NumeroFactura)
	req.ClienteNombre = strings.TrimSpace(req.ClienteNombre)
	req.CUFE = strings.TrimSpace(req.CUFE)
	req.Descripcion = strings.TrimSpace(req.Descripcion)
	req.EstadoFE = strings.ToUpper(strings.TrimSpace(req.EstadoFE))
	if req.EstadoFE == "" {
		req.EstadoFE = string(domain.FacturaBorrador)
	}
}

func validateMontos(subtotal, impuestos, total decimal.Decimal) error {
	if subtotal.IsNegative() {
		return apperrors.New(apperrors.MontoInvalido, "El subtotal no puede ser negativo.").WithField("subtotal")
	}
	if impuestos.IsNegative() {
		return apperrors.New(apperrors.MontoInvalido, "Los impuestos no pueden ser negativos.").WithField("impuestos")
	}
	if !total.IsPositive() {
		return apperrors.New(apperrors.MontoInvalido, "El total debe ser mayor que cero.").WithField("total")
	}
	return nil
}

func validateTotal(subtotal, impuestos, total decimal.Decimal) error {
	if !accounting.DentroDeTolerancia(subtotal.Add(impuestos), total) {
		return apperrors.New(apperrors.TotalNoCoincide, "El total no coincide con la suma de subtotal e impuestos").WithField("total")
	}
	return nil
}

// applyCUFE generates a CUFE for issued invoices that do not carry one.
func (s *facturaService) applyCUFE(f *domain.Factura) {
	if f.Estado != domain.FacturaBorrador && f.CUFE == "" {
		f.CUFE = s.generarCUFE(*f)
	}
}

func (s *facturaService) CreateFactura(ctx context.Context, req dto.CreateFacturaRequest) (*domain.Factura, error) {
	normalizeFactura(&req)
	if err := validation.Struct(req); err != nil {
		s.LogDebug(ctx, "Invalid invoice request", slog.String("reason", err.Error()))
		return nil, err
	}

	fechaEmision, err := fecha.Parse("fecha_emision", req.FechaEmision)
	if err != nil {
		return nil, err
	}

	if err := validateMontos(*req.Subtotal, *req.Impuestos, *req.Total); err != nil {
		return nil, err
	}
	if err := validateTotal(*req.Subtotal, *req.Impuestos, *req.Total); err != nil {
		return nil, err
	}

	if _, err := s.periodoSvc.GetPeriodoByID(ctx, req.IDPeriodo); err != nil {
		return nil, err
	}

	factura := domain.Factura{
		NumeroFactura: req.NumeroFactura,
		FechaEmision:  fechaEmision,
		ClienteNombre: req.ClienteNombre,
		Subtotal:      req.Subtotal.Round(2),
		Impuestos:     req.Impuestos.Round(2),
		Total:         req.Total.Round(2),
		Estado:        domain.EstadoFactura(req.EstadoFE),
		CUFE:          req.CUFE,
		IDPeriodo:     req.IDPeriodo,
		Descripcion:   req.Descripcion,
	}
	s.applyCUFE(&factura)

	saved, err := s.facturaRepo.SaveFactura(ctx, factura)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save invoice", slog.String("numero_factura", factura.NumeroFactura))
		return nil, err
	}
	if saved == nil {
		return nil, apperrors.NewAppError("invoice vanished after insert", nil)
	}

	s.LogInfo(ctx, "Invoice created successfully",
		slog.Int64("id_factura_electronica", saved.IDFactura),
		slog.String("numero_factura", saved.NumeroFactura),
		slog.String("estado_fe", string(saved.Estado)))
	return saved, nil
}

func (s *facturaService) GetFacturaByID(ctx context.Context, id int64) (*domain.Factura, error) {
	factura, err := s.facturaRepo.FindFacturaByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to find invoice by ID", slog.Int64("id_factura_electronica", id))
		return nil, err
	}
	if factura == nil {
		return nil, facturaNotFound(id)
	}
	return factura, nil
}

func (s *facturaService) ListFacturas(ctx context.Context) ([]domain.Factura, error) {
	facturas, err := s.facturaRepo.ListFacturas(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	if facturas == nil {
		return []domain.Factura{}, nil
	}
	return facturas, nil
}

func (s *facturaService) ListFacturasByPeriodo(ctx context.Context, idPeriodo int64) ([]domain.Factura, error) {
	if _, err := s.periodoSvc.GetPeriodoByID(ctx, idPeriodo); err != nil {
		return nil, err
	}

	facturas, err := s.facturaRepo.ListFacturasByPeriodo(ctx, idPeriodo)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices by period", slog.Int64("id_periodo", idPeriodo))
		return nil, err
	}
	if facturas == nil {
		return []domain.Factura{}, nil
	}
	return facturas, nil
}

func (s *facturaService) UpdateFactura(ctx context.Context, id int64, req dto.UpdateFacturaRequest) (*domain.Factura, error) {
	existing, err := s.GetFacturaByID(ctx, id)
	if err != nil {
		return nil, err
	}
	factura := *existing
	factura.Periodo = nil

	merged := dto.CreateFacturaRequest{
		NumeroFactura: factura.NumeroFactura,
		ClienteNombre: factura.ClienteNombre,
		Subtotal:      &factura.Subtotal,
		Impuestos:     &factura.Impuestos,
		Total:         &factura.Total,
		EstadoFE:      string(factura.Estado),
		CUFE:          factura.CUFE,
		IDPeriodo:     factura.IDPeriodo,
		Descripcion:   factura.Descripcion,
	}
	if req.NumeroFactura != nil {
		merged.NumeroFactura = *req.NumeroFactura
	}
	if req.ClienteNombre != nil {
		merged.ClienteNombre = *req.ClienteNombre
	}
	if req.Subtotal != nil {
		merged.Subtotal = req.Subtotal
	}
	if req.Impuestos != nil {
		merged.Impuestos = req.Impuestos
	}
	if req.Total != nil {
		merged.Total = req.Total
	}
	if req.EstadoFE != nil {
		merged.EstadoFE = *req.EstadoFE
	}
	if req.CUFE != nil {
		merged.CUFE = *req.CUFE
	}
	if req.IDPeriodo != nil {
		merged.IDPeriodo = *req.IDPeriodo
	}
	if req.Descripcion != nil {
		merged.Descripcion = *req.Descripcion
	}
	normalizeFactura(&merged)
	if err := validation.Struct(merged); err != nil {
		s.LogDebug(ctx, "Invalid invoice update", slog.Int64("id_factura_electronica", id), slog.String("reason", err.Error()))
		return nil, err
	}

	if req.FechaEmision != nil {
		factura.FechaEmision, err = fecha.Parse("fecha_emision", *req.FechaEmision)
		if err != nil {
			return nil, err
		}
	}

	if err := validateMontos(*merged.Subtotal, *merged.Impuestos, *merged.Total); err != nil {
		return nil, err
	}
	if req.Subtotal != nil && req.Impuestos != nil && req.Total != nil {
		if err := validateTotal(*merged.Subtotal, *merged.Impuestos, *merged.Total); err != nil {
			return nil, err
		}
	}

	if req.IDPeriodo != nil {
		if _, err := s.periodoSvc.GetPeriodoByID(ctx, merged.IDPeriodo); err != nil {
			return nil, err
		}
	}

	factura.NumeroFactura = merged.NumeroFactura
	factura.ClienteNombre = merged.ClienteNombre
	factura.Subtotal, factura.Impuestos, factura.Total = merged.Subtotal.Round(2), merged.Impuestos.Round(2), merged.Total.Round(2)
	factura.Estado = domain.EstadoFactura(merged.EstadoFE)
	factura.CUFE = merged.CUFE
	factura.IDPeriodo = merged.IDPeriodo
	factura.Descripcion = merged.Descripcion
	s.applyCUFE(&factura)

	updated, err := s.facturaRepo.UpdateFactura(ctx, factura)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update invoice", slog.Int64("id_factura_electronica", id))
		return nil, err
	}
	if updated == nil {
		return nil, facturaNotFound(id)
	}

	s.LogInfo(ctx, "Invoice updated successfully", slog.Int64("id_factura_electronica", id))
	return updated, nil
}

func (s *facturaService) DeleteFactura(ctx context.Context, id int64) error {
	deleted, err := s.facturaRepo.DeleteFactura(ctx, id)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete invoice", slog.Int64("id_factura_electronica", id))
		return err
	}
	if !deleted {
		return facturaNotFound(id)
	}
	s.LogInfo(ctx, "Invoice deleted successfully", slog.Int64("id_factura_electronica", id))
	return nil
}
