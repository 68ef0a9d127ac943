package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCents(t *testing.T) {
	assert.Equal(t, "12.34", FromCents(1234).StringFixed(2))
	assert.Equal(t, "0.05", FromCents(5).StringFixed(2))
}

func TestFormat_SeparadoresPtBR(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", Format(123456))
	assert.Equal(t, "-R$ 9,99", Format(-999))
}
