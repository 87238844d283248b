package tinymat

import (
	"sort"

	"github.com/scigolib/tinymat/internal/v5"
)

// Primitive is the set of Go element types tinymat can write directly:
// every numeric width MATLAB's Level-5 format supports, plus bool for
// logical arrays.
type Primitive = v5.Primitive

// WriteMatrixNDColMajor writes data, already stored in column-major
// order, as an N-dimensional array named name. T=bool produces a logical
// array; every other Primitive produces the matching numeric class.
// len(data)==0 or len(dims)==0 writes the canonical empty matrix instead
// (spec.md §4.4).
func WriteMatrixNDColMajor[T Primitive](f *File, name string, data []T, dims []int32) error {
	return v5.WriteMatrixNDColMajor(f.w, name, data, dims)
}

// WriteMatrixNDRowMajor writes data stored in row-major order, converting
// it to the format's column-major disk layout first. For rank <= 1 this
// is equivalent to WriteMatrixNDColMajor.
func WriteMatrixNDRowMajor[T Primitive](f *File, name string, data []T, dims []int32) error {
	return v5.WriteMatrixNDRowMajor(f.w, name, data, dims)
}

// WriteEmptyMatrix writes the canonical empty matrix: a mxDOUBLE array
// with dims [0, 0].
func WriteEmptyMatrix(f *File, name string) error {
	return v5.WriteEmptyMatrix(f.w, name)
}

// WriteString writes a character-array variable holding s, widened from
// Latin-1 bytes to UTF-16 code units (spec.md §9 Open Questions: this is
// a byte-for-byte widen, not a Unicode decode).
func WriteString(f *File, name, s string) error {
	return v5.WriteString(f.w, name, s)
}

// WriteDoubleVector writes data as a vector of doubles: a column (Nx1)
// by default, or a row (1xN) when asColumn is false.
func WriteDoubleVector(f *File, name string, data []float64, asColumn bool) error {
	n := int32(len(data)) //nolint:gosec // vector lengths fit comfortably in int32
	dims := []int32{1, n}
	if asColumn {
		dims = []int32{n, 1}
	}
	return WriteMatrixNDColMajor(f, name, data, dims)
}

// WriteStringList writes items as a 1xN cell array of char-array
// elements, the conventional MATLAB representation of a string list.
func WriteStringList(f *File, name string, items []string) error {
	dims := []int32{1, int32(len(items))} //nolint:gosec // list lengths fit comfortably in int32
	if err := f.StartCellArray(name, dims); err != nil {
		return err
	}
	for _, s := range items {
		if err := WriteString(f, "", s); err != nil {
			return err
		}
	}
	return f.EndCellArray()
}

// WriteStructOfDoubles writes a 1x1 struct whose fields are fields'
// entries, each holding the corresponding scalar double. Field names are
// written in sorted order for deterministic output: the original encoder
// (TinyMATWriter_writeStruct) iterates a std::map<string,double>, which is
// already key-ordered, and a Go map is not (spec.md §9 Open Questions).
func WriteStructOfDoubles(f *File, name string, fields map[string]float64) error {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)

	if err := f.StartStructWithFields(name, names); err != nil {
		return err
	}
	for _, fieldName := range names {
		if err := WriteMatrixNDColMajor(f, fieldName, []float64{fields[fieldName]}, []int32{1, 1}); err != nil {
			return err
		}
	}
	return f.EndStruct()
}
