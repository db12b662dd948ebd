package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsError(t *testing.T) {
	var err error = Campo("correo", "Ya existe un usuario con este correo.")

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Ya existe un usuario con este correo.", ve.Fields["correo"])
	assert.Contains(t, err.Error(), "correo")
}

func TestValidationError_Merge(t *testing.T) {
	a := NewValidation(map[string]string{"nombre": "requerido"})
	b := NewValidation(map[string]string{"nombre": "otro", "nivel": "invalido"})

	merged := a.Merge(b)
	assert.Equal(t, "requerido", merged.Fields["nombre"])
	assert.Equal(t, "invalido", merged.Fields["nivel"])

	var nilErr *ValidationError
	assert.Same(t, b, nilErr.Merge(b))
	assert.Same(t, a, a.Merge(nil))
}
