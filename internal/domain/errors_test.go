package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear despacho: %w", NewValidationError("quantity", "debe ser mayor que 0"))

	assert.True(t, errors.Is(err, ErrInvalidInput))
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "debe ser mayor que 0", ve.Fields["quantity"])
}

func TestValidationError_MensajeOrdenado(t *testing.T) {
	ve := &ValidationError{Fields: map[string]string{"b": "x", "a": "y"}}
	assert.Equal(t, "entrada inválida: a: y; b: x", ve.Error())
}
