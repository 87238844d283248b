package tinymat

import "github.com/scigolib/tinymat/types"

// WriteRowVector writes data as a 1xN row vector.
func WriteRowVector[T Primitive](f *File, name string, data []T) error {
	dims := []int32{1, int32(len(data))} //nolint:gosec // vector lengths fit comfortably in int32
	return WriteMatrixNDColMajor(f, name, data, dims)
}

// WriteColumnVector writes data as an Nx1 column vector.
func WriteColumnVector[T Primitive](f *File, name string, data []T) error {
	dims := []int32{int32(len(data)), 1} //nolint:gosec // vector lengths fit comfortably in int32
	return WriteMatrixNDColMajor(f, name, data, dims)
}

// WriteMatrix2x2 writes the literal 2x2 matrix [[a,b],[c,d]], mirroring
// the original encoder's TinyMATWriter_writeMatrix2x2_double entry point.
func WriteMatrix2x2[T Primitive](f *File, name string, a, b, c, d T) error {
	return WriteMatrixNDRowMajor(f, name, []T{a, b, c, d}, []int32{2, 2})
}

// WriteMatrix3x3 writes the literal 3x3 matrix given in row-major order
// (m[0:3] is row 0, m[3:6] row 1, m[6:9] row 2), mirroring the original
// encoder's TinyMATWriter_writeMatrix3x3_double entry point.
func WriteMatrix3x3[T Primitive](f *File, name string, m [9]T) error {
	return WriteMatrixNDRowMajor(f, name, m[:], []int32{3, 3})
}

// WriteImageChannels writes len(channels) row-major HxW planes as a
// single HxWxC array, the conventional MATLAB layout for a multi-channel
// image (mirroring TinyMATWriter_writeMultiChannelImage). Each entry of
// channels must have width*height elements in row-major (row, then
// column) order.
func WriteImageChannels[T Primitive](f *File, name string, channels [][]T, width, height int32) error {
	numCh := len(channels)
	out := make([]T, int(width)*int(height)*numCh)
	for c, plane := range channels {
		for idx, v := range plane {
			h := idx / int(width)
			w := idx % int(width)
			out[(h*int(width)+w)*numCh+c] = v
		}
	}
	return WriteMatrixNDRowMajor(f, name, out, []int32{height, width, int32(numCh)}) //nolint:gosec // channel counts are tiny
}

// WriteContainer writes arr, a third-party adaptor reducing its own
// matrix/geometry type down to types.Array (spec.md §6). A rank-1 arr is
// written as a row or column vector according to asColumn; any other
// rank is written with arr's own Dims() unchanged. A CharArray is always
// written as a 1xN char row; its Dimensions are not used.
func WriteContainer(f *File, name string, arr types.Array, asColumn bool) error {
	switch a := arr.(type) {
	case types.CharArray:
		return WriteString(f, name, a.Data)
	case *types.CharArray:
		return WriteString(f, name, a.Data)
	case types.NumericArray:
		return writeNumericArray(f, name, a, asColumn)
	case *types.NumericArray:
		return writeNumericArray(f, name, *a, asColumn)
	default:
		return &InvariantViolation{Msg: "tinymat: unsupported types.Array implementation"}
	}
}

func containerDims(a types.NumericArray, asColumn bool) []int32 {
	if len(a.Dimensions) != 1 {
		return a.Dimensions
	}
	n := a.Dimensions[0]
	if asColumn {
		return []int32{n, 1}
	}
	return []int32{1, n}
}

func writeNumericArray(f *File, name string, a types.NumericArray, asColumn bool) error {
	dims := containerDims(a, asColumn)
	switch data := a.Data.(type) {
	case []float64:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []float32:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []int8:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []uint8:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []int16:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []uint16:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []int32:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []uint32:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []int64:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []uint64:
		return WriteMatrixNDColMajor(f, name, data, dims)
	case []bool:
		return WriteMatrixNDColMajor(f, name, data, dims)
	default:
		return &InvariantViolation{Msg: "tinymat: unsupported NumericArray.Data element type"}
	}
}
