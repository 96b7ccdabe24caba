package recordset_test

import (
	"testing"

	"github.com/goliatone/go-recordform/pkg/model"
	"github.com/goliatone/go-recordform/pkg/recordset"
)

func twoColumns() []model.Column {
	return []model.Column{
		{Name: "id", Type: model.TypeShortText, DisplayWidth: 10},
		{Name: "name", Type: model.TypeShortText, DisplayWidth: 20},
	}
}

func TestMemory_CursorStartsUnset(t *testing.T) {
	m := recordset.NewMemory(twoColumns(), [][]recordset.Value{
		{recordset.StringValue("1"), recordset.StringValue("a")},
	})
	if m.EditedRow() != -1 {
		t.Fatalf("edited row = %d, want -1", m.EditedRow())
	}
}

func TestMemory_SetEditedIgnoresOutOfRange(t *testing.T) {
	m := recordset.NewMemory(twoColumns(), [][]recordset.Value{
		{recordset.StringValue("1"), recordset.StringValue("a")},
	})
	m.SetEdited(0, 1)
	m.SetEdited(5, 0)
	if m.EditedRow() != 0 || m.EditedColumn() != 1 {
		t.Fatalf("cursor = (%d,%d), want (0,1)", m.EditedRow(), m.EditedColumn())
	}
}

func TestMemory_DeleteRowClampsCursor(t *testing.T) {
	m := recordset.NewMemory(twoColumns(), [][]recordset.Value{
		{recordset.StringValue("1"), recordset.StringValue("a")},
		{recordset.StringValue("2"), recordset.StringValue("b")},
	})
	m.SetEdited(1, 0)
	if err := m.DeleteRow(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if m.EditedRow() != 0 {
		t.Fatalf("edited row = %d, want clamp to 0", m.EditedRow())
	}

	if err := m.DeleteRow(0); err != nil {
		t.Fatalf("delete last: %v", err)
	}
	if m.EditedRow() != -1 {
		t.Fatalf("edited row = %d, want -1 when empty", m.EditedRow())
	}
}

func TestMemory_AppendRowIsBlank(t *testing.T) {
	m := recordset.NewMemory(twoColumns(), nil)
	idx, err := m.AppendRow()
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if idx != 0 {
		t.Fatalf("index = %d, want 0", idx)
	}
	if !m.IsNull(0, 0) || !m.IsNull(0, 1) {
		t.Fatal("appended row should be all NULL")
	}
}

func TestMemory_SetValueClearsNull(t *testing.T) {
	m := recordset.NewMemory(twoColumns(), [][]recordset.Value{
		{recordset.NullValue(), recordset.NullValue()},
	})
	if err := m.SetValue(0, 1, "bob"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if m.IsNull(0, 1) || m.Value(0, 1) != "bob" {
		t.Fatalf("cell = (%q, null=%v), want (bob, false)", m.Value(0, 1), m.IsNull(0, 1))
	}
	if err := m.SetValue(3, 0, "x"); err == nil {
		t.Fatal("out-of-range set should fail")
	}
}

func TestMemory_RefreshFansOutAndCancels(t *testing.T) {
	m := recordset.NewMemory(twoColumns(), nil)
	first, second := 0, 0
	cancel := m.OnRefresh(func() { first++ })
	m.OnRefresh(func() { second++ })

	m.Refresh()
	cancel()
	m.Refresh()

	if first != 1 || second != 2 {
		t.Fatalf("callbacks = (%d,%d), want (1,2)", first, second)
	}
}

func TestHandle_AcquireAfterRelease(t *testing.T) {
	m := recordset.NewMemory(twoColumns(), nil)
	h := recordset.NewHandle(m)

	if _, ok := h.Acquire(); !ok {
		t.Fatal("fresh handle should acquire")
	}
	h.Release()
	if _, ok := h.Acquire(); ok {
		t.Fatal("released handle should not acquire")
	}
}

func TestHandle_NilSafety(t *testing.T) {
	var h *recordset.Handle
	if _, ok := h.Acquire(); ok {
		t.Fatal("nil handle should not acquire")
	}
	h.Release()
}
