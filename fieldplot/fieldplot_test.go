package fieldplot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gocrystal"
)

func TestZSlice(t *testing.T) {
	g, err := chem.NewGrid(4, 4, 4)
	require.NoError(t, err)
	field := make([]float64, g.Nr())
	for i := range field {
		field[i] = float64(i % 7)
	}
	p, err := ZSlice(field, g, 2, "test slice")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NoError(t, SavePNG(p, filepath.Join(t.TempDir(), "slice.png")))

	_, err = ZSlice(field[:10], g, 0, "")
	assert.Error(t, err)
	_, err = ZSlice(field, g, 4, "")
	assert.Error(t, err)
	_, err = ZSlice(field, g, -1, "")
	assert.Error(t, err)
}
