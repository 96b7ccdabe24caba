package model

// TypeTag is the closed set of column type classes the form layer understands.
// The recordset layer classifies each column's declared SQL type into one of
// these when it builds its column list.
type TypeTag string

const (
	// TypeShortText covers bounded character columns (VARCHAR and friends).
	TypeShortText TypeTag = "short-text"
	// TypeLongText covers unbounded character columns (TEXT).
	TypeLongText TypeTag = "long-text"
	// TypeBinary covers opaque blob columns, viewed out of band.
	TypeBinary TypeTag = "binary"
	// TypeSingleChoice covers ENUM columns.
	TypeSingleChoice TypeTag = "single-choice"
	// TypeMultiChoice covers SET columns.
	TypeMultiChoice TypeTag = "multi-choice"
)

// Choice reports whether the tag names a choice type whose full declared
// type text must be resolved from schema metadata.
func (t TypeTag) Choice() bool {
	return t == TypeSingleChoice || t == TypeMultiChoice
}

// Column describes one column of a bound result set. Instances are supplied
// by the recordset layer and stay immutable for the lifetime of the binding.
type Column struct {
	Name         string
	Type         TypeTag
	DisplayWidth int
	Nullable     bool
	// Schema and Table locate the column's origin for metadata lookups.
	// Table is empty when the column is computed and has no origin.
	Schema string
	Table  string
}
