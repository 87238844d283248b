package v5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellArrayHoldsChildrenByPosition(t *testing.T) {
	w, s := newTestWriter(t)
	require.NoError(t, StartCell(w, "c", []int32{1, 2}))
	require.NoError(t, WriteMatrixNDColMajor(w, "", []float64{1}, []int32{1, 1}))
	require.NoError(t, WriteString(w, "", "hi"))
	require.NoError(t, EndCell(w))

	body := readOuterMatrixBody(t, s)
	bc := newByteCursor(body)

	ft, fp := bc.element()
	require.EqualValues(t, miUINT32, ft)
	flags := leUint32(fp[0:4])
	assert.Equal(t, uint32(mxCELL_CLASS), flags&0xFF)

	dt, dp := bc.element()
	require.EqualValues(t, miINT32, dt)
	assert.Equal(t, int32(1), int32(leUint32(dp[0:4])))  //nolint:gosec
	assert.Equal(t, int32(2), int32(leUint32(dp[4:8])))  //nolint:gosec

	nt, np := bc.element()
	require.EqualValues(t, miINT8, nt)
	assert.Equal(t, "c", string(np))

	t1, _ := bc.element()
	assert.EqualValues(t, miMATRIX, t1)
	t2, _ := bc.element()
	assert.EqualValues(t, miMATRIX, t2)
	assert.Equal(t, 0, bc.remaining())
}

func TestEndCellWithoutOpenFrameIsInvariantViolation(t *testing.T) {
	w, _ := newTestWriter(t)
	err := EndCell(w)
	var iv *InvariantViolation
	assert.ErrorAs(t, err, &iv)
}

func TestEndCellOnStructFrameIsInvariantViolation(t *testing.T) {
	w, _ := newTestWriter(t)
	require.NoError(t, StartStruct(w, "s"))
	err := EndCell(w)
	var iv *InvariantViolation
	assert.ErrorAs(t, err, &iv)
}
