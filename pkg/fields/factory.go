package fields

import (
	"github.com/goliatone/go-recordform/pkg/model"
	"github.com/goliatone/go-recordform/pkg/toolkit"
)

// Single-line entries make sense up to this display width; wider short-text
// columns get a multi-line box, and very wide ones a taller box.
const (
	multilineThreshold = 40
	tallBoxThreshold   = 1000
	tallBoxHeight      = 200
)

// New builds the widget for one column. fullType is the column's full
// declared type text ("enum('a','b')"), relevant only for choice columns;
// choice columns whose type text is missing or unparseable fall back to a
// plain entry. onEdit receives the widget's serialized value after every
// user edit; onViewBinary fires when the user asks to view a binary field.
func New(tk toolkit.Toolkit, col model.Column, fullType string, editable bool, onEdit func(string), onViewBinary func()) Widget {
	labelText := model.FieldLabel(col.Name)

	switch col.Type {
	case model.TypeShortText:
		if col.DisplayWidth > multilineThreshold {
			w := newLongText(tk, labelText, editable, onEdit)
			if col.DisplayWidth > tallBoxThreshold {
				w.box.SetSize(-1, tallBoxHeight)
			}
			return w
		}
		return newShortText(tk, labelText, col.DisplayWidth, editable, onEdit)

	case model.TypeLongText:
		return newLongText(tk, labelText, editable, onEdit)

	case model.TypeBinary:
		return newBinary(tk, labelText, onViewBinary)

	case model.TypeSingleChoice:
		if options := model.ParseChoices(fullType); len(options) > 0 {
			return newSingleChoice(tk, labelText, options, editable, onEdit)
		}

	case model.TypeMultiChoice:
		if options := model.ParseChoices(fullType); len(options) > 0 {
			return newMultiChoice(tk, labelText, options, editable, onEdit)
		}
	}

	return newShortText(tk, labelText, col.DisplayWidth, editable, onEdit)
}
