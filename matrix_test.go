package neighborjoin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuildSymMatchesBuild(t *testing.T) {
	data := []float64{
		0, 5, 9, 9, 8,
		5, 0, 10, 10, 9,
		9, 10, 0, 8, 7,
		9, 10, 8, 0, 3,
		8, 9, 7, 3, 0,
	}
	labels := []string{"a", "b", "c", "d", "e"}

	flat, err := Build(data, 5, labels, DefaultConfig())
	require.NoError(t, err)

	sym := mat.NewSymDense(5, data)
	fromGonum, err := BuildSym(sym, labels, DefaultConfig())
	require.NoError(t, err)

	assert.True(t, treesEqual(flat, fromGonum), "gonum entry point must produce the identical tree")
}

func TestBuildSymTooSmall(t *testing.T) {
	sym := mat.NewSymDense(2, []float64{0, 1, 1, 0})
	tree, err := BuildSym(sym, []string{"A", "B"}, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 3 taxa")
	assert.Nil(t, tree)
}

func TestSymDenseRoundTrip(t *testing.T) {
	dm := randomMatrix(6, 13)
	sym, err := SymDense(dm, 6, 0)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.Equal(t, dm[i*6+j], sym.At(i, j), "entry (%d,%d)", i, j)
		}
	}

	// The SymDense owns a copy; mutating the source must not leak through.
	orig := sym.At(0, 1)
	dm[1] = orig + 100
	assert.Equal(t, orig, sym.At(0, 1))
}

func TestSymDenseRejectsInvalid(t *testing.T) {
	dm := []float64{
		0, -5, 9,
		-5, 0, 10,
		9, 10, 0,
	}
	sym, err := SymDense(dm, 3, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative distance")
	assert.Nil(t, sym)
}
