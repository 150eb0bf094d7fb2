// Package validation evalúa los formularios de login y registro como cadenas de reglas por campo.
// Cada regla se evalúa por separado, así un mismo campo puede reportar varios errores a la vez.
package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError un incumplimiento de una regla sobre un campo.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// Errors errores de validación en el orden en que se declararon las reglas.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validación fallida: " + strings.Join(msgs, "; ")
}

// ByField agrupa los mensajes por campo.
func (e Errors) ByField() map[string][]string {
	out := make(map[string][]string)
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// Has indica si hay un error para field con la regla rule.
func (e Errors) Has(field, rule string) bool {
	for _, fe := range e {
		if fe.Field == field && fe.Rule == rule {
			return true
		}
	}
	return false
}

// Rule una regla de campo: Tag es una expresión de validator (p.ej. "omitempty,max=50").
type Rule struct {
	Name    string
	Tag     string
	Message string
}

// FieldRules reglas de un campo; Value extrae el valor del objeto.
type FieldRules[T any] struct {
	Field string
	Value func(T) any
	Rules []Rule
}

// ObjectRule regla que mira el objeto completo (reglas entre campos). Devuelve nil si se cumple.
type ObjectRule[T any] func(v *validator.Validate, in T) *FieldError

// Schema cadena de reglas de un formulario.
type Schema[T any] struct {
	Fields  []FieldRules[T]
	Objects []ObjectRule[T]
}

// Validate evalúa todas las reglas de todos los campos y luego las reglas de objeto.
// Devuelve nil si no hubo errores.
func (s Schema[T]) Validate(in T) Errors {
	v := engine()
	var errs Errors
	for _, f := range s.Fields {
		value := f.Value(in)
		for _, r := range f.Rules {
			if err := v.Var(value, r.Tag); err != nil {
				errs = append(errs, FieldError{Field: f.Field, Rule: r.Name, Message: r.Message})
			}
		}
	}
	for _, rule := range s.Objects {
		if fe := rule(v, in); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

var (
	validateOnce sync.Once
	validate     *validator.Validate

	// Formato de teléfono: dígitos con separadores habituales, "+" inicial y extensión opcional.
	phoneRe = regexp.MustCompile(`(?i)^\+?[0-9\s().-]*[0-9][0-9\s().-]*(\s*(x|ext\.?|extension)\s*[0-9]+)?$`)
)

// engine devuelve el validador compartido con las reglas propias registradas.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		_ = validate.RegisterValidation("mustbetrue", func(fl validator.FieldLevel) bool {
			return fl.Field().Bool()
		})
	})
	return validate
}
