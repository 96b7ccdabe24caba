// Package recordform renders a single database record as an editable form:
// one labeled control per column, a toolbar to page through the result set
// row by row, and write-through of edits into the backing recordset. The GUI
// toolkit and the recordset are external collaborators reached through the
// pkg/toolkit and pkg/recordset seams.
package recordform

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-recordform/pkg/export"
	"github.com/goliatone/go-recordform/pkg/fields"
	"github.com/goliatone/go-recordform/pkg/metadata"
	"github.com/goliatone/go-recordform/pkg/model"
	"github.com/goliatone/go-recordform/pkg/recordset"
	"github.com/goliatone/go-recordform/pkg/toolkit"
	"github.com/goliatone/go-recordform/pkg/uiconfig"
)

var (
	// ErrNilRecordset is returned when Bind is given nothing to bind.
	ErrNilRecordset = errors.New("recordform: nil recordset handle")
	// ErrRecordsetReleased is returned when the handle's recordset is
	// already gone at bind time.
	ErrRecordsetReleased = errors.New("recordform: recordset released")
	// ErrNoCurrentRow is returned by operations that need a selected row
	// when the cursor is unset.
	ErrNoCurrentRow = errors.New("recordform: no current row")
)

// FieldRow pairs one widget's label and control for the host's two-column
// layout grid.
type FieldRow struct {
	Label   toolkit.Label
	Control toolkit.Control
	Expands bool
}

// FormView owns the field widgets and the navigation state for one bound
// result set. It holds the recordset through a weak handle: once the owner
// releases it, every operation degrades to a silent no-op.
type FormView struct {
	tk       toolkit.Toolkit
	editable bool

	logger    *logrus.Logger
	resolver  metadata.Resolver
	overrides *uiconfig.Config

	handle        *recordset.Handle
	columns       []model.Column
	widgets       []fields.Widget
	toolbar       *Toolbar
	cancelRefresh func()
}

// New builds an unbound form view. editable gates the delete/add toolbar
// actions and whether field controls accept input.
func New(tk toolkit.Toolkit, editable bool, options ...Option) *FormView {
	v := &FormView{
		tk:       tk,
		editable: editable,
		logger:   logrus.StandardLogger(),
		toolbar:  newToolbar(editable),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Editable reports whether the form accepts edits.
func (v *FormView) Editable() bool { return v.editable }

// Toolbar exposes the toolbar model for the host shell to render.
func (v *FormView) Toolbar() *Toolbar { return v.toolbar }

// Rows returns one label/control pair per column, in column order, for the
// host's layout grid.
func (v *FormView) Rows() []FieldRow {
	rows := make([]FieldRow, 0, len(v.widgets))
	for _, w := range v.widgets {
		rows = append(rows, FieldRow{Label: w.Label(), Control: w.Control(), Expands: w.Expands()})
	}
	return rows
}

// Bind attaches the form to a result set: it rebuilds the field widgets
// (resolving ENUM/SET type text where possible), subscribes to external
// refreshes, auto-selects row 0 when the recordset is non-empty, and renders
// the current record. Rebinding drops the previous subscription and widgets.
func (v *FormView) Bind(ctx context.Context, handle *recordset.Handle) error {
	if handle == nil {
		return ErrNilRecordset
	}
	rs, ok := handle.Acquire()
	if !ok {
		return ErrRecordsetReleased
	}

	if v.cancelRefresh != nil {
		v.cancelRefresh()
	}
	v.handle = handle
	v.cancelRefresh = rs.OnRefresh(func() { v.displayRecord() })

	if rs.EditedRow() < 0 && rs.Count() > 0 {
		rs.SetEdited(0, 0)
	}

	v.columns = rs.Columns()
	v.widgets = v.widgets[:0]
	for i, col := range v.columns {
		col = v.applyOverride(col)

		fullType := ""
		if col.Type.Choice() && col.Table != "" && v.resolver != nil {
			resolved, err := v.resolver.FullColumnType(ctx, col.Schema, col.Table, col.Name)
			if err != nil {
				v.logger.WithError(err).Warnf("recordform: full type unavailable for column %q", col.Name)
			} else {
				fullType = resolved
			}
		}

		idx := i
		widget := fields.New(v.tk, col, fullType, v.editable,
			func(value string) { v.updateValue(idx, value) },
			func() { v.openFieldEditor(idx) })

		if override, ok := v.overrides.For(col.Name); ok && override.Label != "" {
			widget.Label().SetText(override.Label)
		}
		v.widgets = append(v.widgets, widget)
	}

	v.displayRecord()
	return nil
}

// Navigate applies one toolbar command. Commands require a bound recordset
// with a selected row; everything else is a no-op, and every index change is
// clamped to [0, count-1].
func (v *FormView) Navigate(cmd Command) {
	rs, ok := v.acquire()
	if !ok {
		return
	}
	row := rs.EditedRow()
	if row < 0 {
		return
	}

	switch cmd {
	case CommandDelete:
		if !v.editable {
			return
		}
		if err := rs.DeleteRow(row); err != nil {
			v.logger.WithError(err).Warn("recordform: delete row failed")
		}
	case CommandAdd:
		if !v.editable {
			return
		}
		idx, err := rs.AppendRow()
		if err != nil {
			v.logger.WithError(err).Warn("recordform: add row failed")
		} else {
			rs.SetEdited(idx, rs.EditedColumn())
		}
	case CommandFirst:
		rs.SetEdited(0, rs.EditedColumn())
	case CommandBack:
		if row--; row < 0 {
			row = 0
		}
		rs.SetEdited(row, rs.EditedColumn())
	case CommandNext:
		if row++; row >= rs.Count() {
			row = rs.Count() - 1
		}
		rs.SetEdited(row, rs.EditedColumn())
	case CommandLast:
		rs.SetEdited(rs.Count()-1, rs.EditedColumn())
	}

	v.displayRecord()
}

// ExportHTML renders the current record to a standalone HTML snapshot.
func (v *FormView) ExportHTML(exporter *export.Exporter) ([]byte, error) {
	rs, ok := v.acquire()
	if !ok {
		return nil, ErrRecordsetReleased
	}
	row := rs.EditedRow()
	if row < 0 || row >= rs.Count() {
		return nil, ErrNoCurrentRow
	}
	title := fmt.Sprintf("Record %d of %d", row+1, rs.Count())
	return exporter.Snapshot(title, export.RecordFields(rs, row))
}

// displayRecord pushes the current row into every widget and refreshes the
// toolbar position and enable states.
func (v *FormView) displayRecord() {
	rs, ok := v.acquire()
	if !ok {
		return
	}
	row := rs.EditedRow()
	count := rs.Count()

	if row >= 0 && row < count {
		for i, w := range v.widgets {
			w.RenderValue(rs.Value(row, i), rs.IsNull(row, i))
		}
	}

	v.toolbar.setPosition(fmt.Sprintf("%d / %d", row+1, count))
	v.toolbar.setEnabled("first", row > 0)
	v.toolbar.setEnabled("back", row > 0)
	v.toolbar.setEnabled("next", row < count-1)
	v.toolbar.setEnabled("last", row < count-1)
	v.toolbar.setEnabled("delete", v.editable && row >= 0)
	v.toolbar.setEnabled("add", v.editable)
}

// updateValue writes an edited value through to the recordset. The bounds
// re-check guards against stale widget callbacks after a row deletion.
func (v *FormView) updateValue(col int, value string) {
	rs, ok := v.acquire()
	if !ok {
		return
	}
	row := rs.EditedRow()
	if row >= 0 && row < rs.Count() {
		if err := rs.SetValue(row, col, value); err != nil {
			v.logger.WithError(err).Warn("recordform: field update failed")
		}
	}
}

// openFieldEditor opens the recordset's out-of-band editor for the current
// row's binary field.
func (v *FormView) openFieldEditor(col int) {
	rs, ok := v.acquire()
	if !ok {
		return
	}
	row := rs.EditedRow()
	if row >= 0 && row < rs.Count() {
		rs.OpenFieldEditor(row, col)
	}
}

func (v *FormView) acquire() (recordset.Recordset, bool) {
	if v.handle == nil {
		return nil, false
	}
	rs, ok := v.handle.Acquire()
	if !ok {
		v.logger.Debug("recordform: recordset handle released, ignoring operation")
		return nil, false
	}
	return rs, true
}

// applyOverride folds a uiconfig widget override into the column's type tag
// before the factory runs.
func (v *FormView) applyOverride(col model.Column) model.Column {
	override, ok := v.overrides.For(col.Name)
	if !ok {
		return col
	}
	switch override.Widget {
	case uiconfig.WidgetEntry:
		col.Type = model.TypeShortText
		if col.DisplayWidth > 40 {
			col.DisplayWidth = 40
		}
	case uiconfig.WidgetTextBox:
		col.Type = model.TypeLongText
	}
	return col
}
