package tinymat

import "github.com/scigolib/tinymat/internal/v5"

// StartCellArray opens a cell array named name with the given dims. A nil
// or empty dims defaults to a 1x1 cell.
func (f *File) StartCellArray(name string, dims []int32) error {
	return v5.StartCell(f.w, name, dims)
}

// EndCellArray closes the innermost cell array opened on f.
func (f *File) EndCellArray() error {
	return v5.EndCell(f.w)
}
