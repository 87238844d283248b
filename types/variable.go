package types

// DataType labels the MATLAB class of an Array's elements. WriteContainer
// does not read it: a NumericArray is written with the class that matches
// the Go element type of its Data slice.
type DataType int

// MATLAB data types supported by the writer. Logical is distinct from
// Uint8 even though it shares the same on-disk element type, because the
// array-flags word carries an extra bit for it (spec.md §3).
const (
	Double DataType = iota
	Single
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Logical
	Char
	Struct
	CellArray
	Unknown
)

func (d DataType) String() string {
	switch d {
	case Double:
		return "double"
	case Single:
		return "single"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Logical:
		return "logical"
	case Char:
		return "char"
	case Struct:
		return "struct"
	case CellArray:
		return "cell"
	default:
		return "unknown"
	}
}
