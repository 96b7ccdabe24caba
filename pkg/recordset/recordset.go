// Package recordset defines the data collaborator the form layer reads from
// and writes into. The form never owns the recordset; it reaches it through
// a Handle so the owner stays in control of the lifetime.
package recordset

import "github.com/goliatone/go-recordform/pkg/model"

// Recordset is one query result set with an edit cursor. Row and column
// indices are zero-based; Value returns the full, untruncated string
// representation of a field.
type Recordset interface {
	Count() int
	Columns() []model.Column

	// EditedRow is the cursor row, -1 when no row is selected.
	EditedRow() int
	EditedColumn() int
	SetEdited(row, col int)

	Value(row, col int) string
	IsNull(row, col int) bool
	SetValue(row, col int, value string) error

	DeleteRow(row int) error
	AppendRow() (int, error)

	// OpenFieldEditor opens the out-of-band editor for a field, used for
	// binary columns that cannot be edited inline.
	OpenFieldEditor(row, col int)

	// OnRefresh registers a callback fired whenever the recordset's content
	// is refreshed externally. The returned cancel removes the registration.
	OnRefresh(fn func()) (cancel func())
}
