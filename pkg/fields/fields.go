// Package fields builds one labeled, editable widget per result-set column.
// Widgets hold no value of their own: they mirror the recordset's
// current-row value through RenderValue and push user edits back through the
// onEdit callback they were created with.
package fields

import (
	"strings"

	"github.com/goliatone/go-recordform/pkg/toolkit"
)

// Widget is one field of the record form.
type Widget interface {
	// Label is the right-aligned caption control placed next to the value.
	Label() toolkit.Label
	// Control is the interactive control hosted in the form grid.
	Control() toolkit.Control
	// Expands reports whether the control should fill extra horizontal
	// space in the grid.
	Expands() bool
	// RenderValue pushes the recordset's value for the current row into the
	// control without firing the edit callback.
	RenderValue(value string, isNull bool)
}

type field struct {
	label toolkit.Label
}

func newField(tk toolkit.Toolkit, labelText string) field {
	return field{label: tk.NewLabel(toolkit.LabelConfig{Text: labelText, AlignRight: true})}
}

func (f field) Label() toolkit.Label { return f.label }

// shortText is a single-line entry sized to the column's display width.
type shortText struct {
	field
	entry toolkit.TextEntry
}

func newShortText(tk toolkit.Toolkit, labelText string, displayWidth int, editable bool, onEdit func(string)) *shortText {
	entry := tk.NewTextEntry(toolkit.TextEntryConfig{Enabled: editable})
	width := displayWidth * 10
	if width < 60 {
		width = 60
	}
	entry.SetSize(width, -1)
	entry.OnChanged(func() { onEdit(entry.Text()) })
	return &shortText{field: newField(tk, labelText), entry: entry}
}

func (w *shortText) Control() toolkit.Control { return w.entry }
func (w *shortText) Expands() bool            { return false }

func (w *shortText) RenderValue(value string, isNull bool) {
	if isNull {
		value = ""
	}
	w.entry.SetText(value)
}

// longText is a multi-line box for unbounded or wide text columns.
type longText struct {
	field
	box toolkit.TextBox
}

func newLongText(tk toolkit.Toolkit, labelText string, editable bool, onEdit func(string)) *longText {
	box := tk.NewTextBox(toolkit.TextBoxConfig{Enabled: editable, ScrollBars: true})
	box.SetSize(-1, 60)
	box.OnChanged(func() { onEdit(box.Text()) })
	return &longText{field: newField(tk, labelText), box: box}
}

func (w *longText) Control() toolkit.Control { return w.box }
func (w *longText) Expands() bool            { return true }

func (w *longText) RenderValue(value string, isNull bool) {
	if isNull {
		value = ""
	}
	w.box.SetText(value)
}

// singleChoice is a dropdown over the column's declared options.
type singleChoice struct {
	field
	selector toolkit.Selector
}

func newSingleChoice(tk toolkit.Toolkit, labelText string, options []string, editable bool, onEdit func(string)) *singleChoice {
	selector := tk.NewSelector(toolkit.SelectorConfig{Options: options, Enabled: editable})
	selector.OnChanged(func() { onEdit(selector.Selected()) })
	return &singleChoice{field: newField(tk, labelText), selector: selector}
}

func (w *singleChoice) Control() toolkit.Control { return w.selector }
func (w *singleChoice) Expands() bool            { return false }

func (w *singleChoice) RenderValue(value string, isNull bool) {
	if isNull {
		value = ""
	}
	w.selector.SetSelected(value)
}

// multiChoice is a checklist over the column's declared options. Its value
// is the comma-joined checked options, kept in declaration order.
type multiChoice struct {
	field
	list    toolkit.CheckList
	options []string
}

func newMultiChoice(tk toolkit.Toolkit, labelText string, options []string, editable bool, onEdit func(string)) *multiChoice {
	list := tk.NewCheckList(toolkit.CheckListConfig{Options: options, Enabled: editable})
	height := len(options) * 20
	if height > 100 {
		height = 100
	}
	list.SetSize(250, height)

	w := &multiChoice{field: newField(tk, labelText), list: list, options: options}
	list.OnChanged(func() { onEdit(w.serialize()) })
	return w
}

func (w *multiChoice) Control() toolkit.Control { return w.list }
func (w *multiChoice) Expands() bool            { return false }

func (w *multiChoice) serialize() string {
	var b strings.Builder
	for i, option := range w.options {
		if !w.list.RowChecked(i) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(option)
	}
	return b.String()
}

func (w *multiChoice) RenderValue(value string, isNull bool) {
	if isNull {
		value = ""
	}
	checked := make(map[string]struct{})
	for _, part := range strings.Split(value, ",") {
		checked[part] = struct{}{}
	}
	for i, option := range w.options {
		_, ok := checked[option]
		w.list.SetRowChecked(i, ok)
	}
}

// binary shows a BLOB/NULL marker plus a button that opens the out-of-band
// field editor. There is no inline edit path.
type binary struct {
	field
	box  toolkit.Box
	blob toolkit.Label
}

func newBinary(tk toolkit.Toolkit, labelText string, onViewBinary func()) *binary {
	box := tk.NewBox(toolkit.BoxConfig{Horizontal: true, Spacing: 8})
	blob := tk.NewLabel(toolkit.LabelConfig{Text: "BLOB"})
	button := tk.NewButton(toolkit.ButtonConfig{Text: "View..."})
	button.OnClick(onViewBinary)
	box.Add(blob)
	box.Add(button)
	return &binary{field: newField(tk, labelText), box: box, blob: blob}
}

func (w *binary) Control() toolkit.Control { return w.box }
func (w *binary) Expands() bool            { return true }

func (w *binary) RenderValue(_ string, isNull bool) {
	if isNull {
		w.blob.SetText("NULL")
	} else {
		w.blob.SetText("BLOB")
	}
}
