package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-pro/pkg/validate"
)

type conTelefono struct {
	Phone string `validate:"telefono"`
}

func TestTelefono_VacioPasa(t *testing.T) {
	assert.NoError(t, validate.Struct(conTelefono{Phone: ""}),
		"el campo opcional vacío no se valida")
}

func TestTelefono_FormatosValidos(t *testing.T) {
	for _, phone := range []string{"3001234567", "+57 300 123", "(1) 234-567"} {
		assert.NoError(t, validate.Struct(conTelefono{Phone: phone}), phone)
	}
}

func TestTelefono_FormatosInvalidos(t *testing.T) {
	for _, phone := range []string{"abc1234567", "12345", "123456789012345678"} {
		assert.Error(t, validate.Struct(conTelefono{Phone: phone}), phone)
	}
}

type conRequeridos struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

func TestStruct_Requeridos(t *testing.T) {
	assert.Error(t, validate.Struct(conRequeridos{}))
	assert.NoError(t, validate.Struct(conRequeridos{Name: "Ana"}))
	assert.Error(t, validate.Struct(conRequeridos{Name: "Ana", Email: "no-es-email"}))
	assert.NoError(t, validate.Struct(conRequeridos{Name: "Ana", Email: "ana@ventas.pro"}))
}
