package uiconfig_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-recordform/pkg/uiconfig"
)

func TestParse(t *testing.T) {
	doc := []byte(`
columns:
  status:
    label: "Ticket state:"
    widget: entry
  notes:
    widget: textbox
`)
	cfg, err := uiconfig.Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := map[string]uiconfig.ColumnOverride{
		"status": {Label: "Ticket state:", Widget: uiconfig.WidgetEntry},
		"notes":  {Widget: uiconfig.WidgetTextBox},
	}
	if diff := cmp.Diff(want, cfg.Columns); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}

	if _, ok := cfg.For("status"); !ok {
		t.Fatal("For(status) should find an override")
	}
	if _, ok := cfg.For("missing"); ok {
		t.Fatal("For(missing) should not find an override")
	}
}

func TestParse_RejectsUnknownWidget(t *testing.T) {
	doc := []byte(`
columns:
  status:
    widget: carousel
`)
	if _, err := uiconfig.Parse(doc); err == nil {
		t.Fatal("unknown widget should fail validation")
	}
}

func TestFor_NilConfig(t *testing.T) {
	var cfg *uiconfig.Config
	if _, ok := cfg.For("anything"); ok {
		t.Fatal("nil config should never match")
	}
}
