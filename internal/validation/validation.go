// Package validation runs go-playground/validator rules over request DTOs and
// reports the first failure as an *apperrors.AppError.
//
// Tags map to error kinds as follows: required → DatosFaltantes,
// max → LongitudExcedida, oneof → EstadoInvalido. Any other tag defaults to
// DatosFaltantes unless the field carries an `errkind` tag naming a kind.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Let numeric tags (gt, gte, min) work on decimal.Decimal fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// Struct validates s and returns the first failing rule as an AppError, or nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewAppError("validation could not run", err)
	}
	return translate(s, verrs[0])
}

func translate(s any, fe validator.FieldError) *apperrors.AppError {
	campo := fe.Field()
	kind, message := kindFor(fe)

	if fe.Tag() != "required" {
		if override := errKindTag(s, fe.StructField()); override != "" {
			kind = apperrors.Kind(override)
		}
	}
	return apperrors.New(kind, message).WithField(campo)
}

func kindFor(fe validator.FieldError) (apperrors.Kind, string) {
	campo := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.DatosFaltantes, fmt.Sprintf("El campo %s es obligatorio.", campo)
	case "max":
		return apperrors.LongitudExcedida, fmt.Sprintf("El campo %s no puede superar %s caracteres.", campo, fe.Param())
	case "oneof":
		return apperrors.EstadoInvalido, fmt.Sprintf("El campo %s debe ser uno de: %s.", campo, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return apperrors.DatosFaltantes, fmt.Sprintf("El campo %s debe ser mayor que %s.", campo, fe.Param())
	case "gte", "min":
		return apperrors.DatosFaltantes, fmt.Sprintf("El campo %s debe ser mayor o igual a %s.", campo, fe.Param())
	default:
		return apperrors.DatosFaltantes, fmt.Sprintf("El campo %s no es válido.", campo)
	}
}

func errKindTag(s any, structField string) string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return ""
	}
	return f.Tag.Get("errkind")
}
