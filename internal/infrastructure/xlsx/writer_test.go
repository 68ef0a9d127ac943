package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite_RoundTrip(t *testing.T) {
	b, err := NewWriter().Write("Despachos",
		[]string{"Código", "Cantidad"},
		[][]interface{}{{"BR123", int64(10)}, {"BR124", int64(3)}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Despachos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Código", "Cantidad"}, rows[0])
	assert.Equal(t, []string{"BR123", "10"}, rows[1])
	assert.Equal(t, []string{"BR124", "3"}, rows[2])
}

func TestWrite_SinFilas(t *testing.T) {
	b, err := NewWriter().Write("", []string{"A"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
