// Package export renders the current record to a static HTML snapshot,
// suitable for saving or mailing. Field values pass through a sanitizer so
// stored markup cannot smuggle scripts into the output.
package export

import (
	"embed"
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-recordform/pkg/model"
	"github.com/goliatone/go-recordform/pkg/recordset"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Field is one label/value pair of the snapshot.
type Field struct {
	Label string
	Value string
	Null  bool
}

// Exporter renders record snapshots with an embedded template.
type Exporter struct {
	tpl    *pongo2.Template
	policy *bluemonday.Policy
}

// New builds an exporter with the embedded record template and a UGC
// sanitizing policy.
func New() (*Exporter, error) {
	set := pongo2.NewSet("recordform", pongo2.NewFSLoader(embeddedTemplates))
	tpl, err := set.FromFile("templates/record.html.tpl")
	if err != nil {
		return nil, fmt.Errorf("export: load record template: %w", err)
	}
	return &Exporter{
		tpl:    tpl,
		policy: bluemonday.UGCPolicy(),
	}, nil
}

// Snapshot renders the fields into a standalone HTML document.
func (e *Exporter) Snapshot(title string, fields []Field) ([]byte, error) {
	if e == nil || e.tpl == nil {
		return nil, fmt.Errorf("export: exporter is not initialized")
	}
	rows := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, map[string]any{
			"Label": field.Label,
			"Value": e.policy.Sanitize(field.Value),
			"Null":  field.Null,
		})
	}
	out, err := e.tpl.ExecuteBytes(pongo2.Context{
		"title":  title,
		"fields": rows,
	})
	if err != nil {
		return nil, fmt.Errorf("export: render snapshot: %w", err)
	}
	return out, nil
}

// RecordFields collects the label/value pairs of one recordset row, labeled
// the same way the form labels its widgets.
func RecordFields(rs recordset.Recordset, row int) []Field {
	columns := rs.Columns()
	fields := make([]Field, 0, len(columns))
	for i, col := range columns {
		fields = append(fields, Field{
			Label: model.FieldLabel(col.Name),
			Value: rs.Value(row, i),
			Null:  rs.IsNull(row, i),
		})
	}
	return fields
}
