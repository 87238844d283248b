package tinymat

import "github.com/scigolib/tinymat/internal/v5"

// StartStruct opens a 1x1 struct named name whose field names are not yet
// known. Every child write between this call and the matching EndStruct
// contributes its name to the struct's field-name table, spliced in when
// the struct closes (spec.md §4.5).
func (f *File) StartStruct(name string) error {
	return v5.StartStruct(f.w, name)
}

// StartStructWithFields opens a 1x1 struct named name with a field-name
// table known up front. Children must be written in the same order as
// fields.
func (f *File) StartStructWithFields(name string, fields []string) error {
	return v5.StartStructWithFields(f.w, name, fields)
}

// EndStruct closes the innermost struct opened on f.
func (f *File) EndStruct() error {
	return v5.EndStruct(f.w)
}
