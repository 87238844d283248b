package tinymat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/tinymat/types"
)

func TestWriteContainerNumericArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mat")
	f, err := Create(path)
	require.NoError(t, err)

	arr := types.NumericArray{
		Dimensions: []int32{2, 2},
		Type:       types.Double,
		Data:       []float64{1, 2, 3, 4},
	}
	require.NoError(t, WriteContainer(f, "a", arr, true))
	require.NoError(t, f.Close())
}

func TestWriteContainerCharArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mat")
	f, err := Create(path)
	require.NoError(t, err)

	arr := types.CharArray{Data: "hi", Dimensions: []int32{1, 2}}
	require.NoError(t, WriteContainer(f, "s", arr, false))
	require.NoError(t, f.Close())
}

func TestWriteContainerUnsupportedTypeIsInvariantViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mat")
	f, err := Create(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // best effort cleanup, the assertion below is what matters

	err = WriteContainer(f, "a", unsupportedArray{}, false)
	var iv *InvariantViolation
	assert.ErrorAs(t, err, &iv)
}

type unsupportedArray struct{}

func (unsupportedArray) Dims() []int32               { return nil }
func (unsupportedArray) Size() int                   { return 0 }
func (unsupportedArray) ElementType() types.DataType { return types.Unknown }
