// Package validate centraliza la validación de entrada con
// go-playground/validator. Todas las operaciones validan su request antes de
// tocar la base: entrada malformada se reporta sin efectos secundarios.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern es deliberadamente laxo: dígitos, espacios, +, -, paréntesis,
// entre 7 y 15 caracteres. No se pretende validar numeración real.
var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{7,15}$`)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// "telefono": patrón laxo de teléfono, solo si el campo viene con valor.
	_ = val.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return phonePattern.MatchString(s)
	})
	return val
}

// Struct valida un struct según sus tags `validate`. Devuelve el error crudo
// del validador; las capas superiores lo traducen a "Invalid data provided.".
func Struct(s interface{}) error {
	return v.Struct(s)
}
