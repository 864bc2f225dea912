package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation clashes with the current state of other resources.
var ErrConflict = errors.New("resource conflict")

// ErrInternal indicates an unexpected failure that must not be exposed to clients.
var ErrInternal = errors.New("internal error")

// Kind identifies the specific failure reported to API clients.
type Kind string

const (
	// Validation kinds
	DatosFaltantes          Kind = "DatosFaltantes"
	LongitudExcedida        Kind = "LongitudExcedida"
	FormatoFechaInvalido    Kind = "FormatoFechaInvalido"
	FechaNoReal             Kind = "FechaNoReal"
	RangoDeFechasInvalido   Kind = "RangoDeFechasInvalido"
	EstadoInvalido          Kind = "EstadoInvalido"
	TipoCuentaInvalido      Kind = "TipoCuentaInvalido"
	TipoTransaccionInvalido Kind = "TipoTransaccionInvalido"
	MontoInvalido           Kind = "MontoInvalido"
	IdInvalido              Kind = "IdInvalido"
	ParentIdInvalido        Kind = "ParentIdInvalido"
	IdPeriodoInvalido       Kind = "IdPeriodoInvalido"
	CuentaIdInvalido        Kind = "CuentaIdInvalido"
	PartidaIdInvalido       Kind = "PartidaIdInvalido"
	ConceptoInvalido        Kind = "ConceptoInvalido"
	TotalNoCoincide         Kind = "TotalNoCoincide"
	FechaFueraDePeriodo     Kind = "FechaFueraDePeriodo"
	ValorFueraDeRango       Kind = "ValorFueraDeRango"

	// Not found kinds
	CuentaContableNotFound      Kind = "CuentaContableNotFound"
	CuentaPadreNotFound         Kind = "CuentaPadreNotFound"
	PeriodoContableNotFound     Kind = "PeriodoContableNotFound"
	PartidaDiariaNotFound       Kind = "PartidaDiariaNotFound"
	TransaccionContableNotFound Kind = "TransaccionContableNotFound"
	FacturaNotFound             Kind = "FacturaNotFound"

	// Conflict kinds
	YaExisteCuenta     Kind = "YaExisteCuenta"
	PeriodoExistente   Kind = "PeriodoExistente"
	SubcuentasAgotadas Kind = "SubcuentasAgotadas"
	RegistroDuplicado  Kind = "RegistroDuplicado"
	RegistroEnUso      Kind = "RegistroEnUso"

	Interno Kind = "Interno"
)

// class returns the coarse sentinel a kind belongs to.
func (k Kind) class() error {
	switch k {
	case CuentaContableNotFound, CuentaPadreNotFound, PeriodoContableNotFound,
		PartidaDiariaNotFound, TransaccionContableNotFound, FacturaNotFound:
		return ErrNotFound
	case YaExisteCuenta, PeriodoExistente, RegistroDuplicado:
		return ErrDuplicate
	case SubcuentasAgotadas, RegistroEnUso:
		return ErrConflict
	case Interno, "":
		return ErrInternal
	default:
		return ErrValidation
	}
}

// AppError is the single error type crossing the service boundary.
// Field names the offending input, when there is one.
type AppError struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the class sentinel and the wrapped cause, so
// errors.Is(err, ErrNotFound) keeps working for callers.
func (e *AppError) Unwrap() []error {
	errs := []error{e.Kind.class()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// New creates an AppError of the given kind.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an AppError that keeps err as its cause.
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewAppError is shorthand for an internal failure wrapping err.
func NewAppError(message string, err error) *AppError {
	return Wrap(Interno, message, err)
}

// WithField returns a copy of e that names the offending field.
func (e *AppError) WithField(field string) *AppError {
	c := *e
	c.Field = field
	return &c
}

// KindOf reports the kind of the first AppError in err's chain,
// or Interno when err carries none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Interno
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Message returns the client-facing message for err, or fallback if err is not an AppError.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != Interno {
		return appErr.Message
	}
	return fallback
}
