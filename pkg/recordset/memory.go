package recordset

import (
	"fmt"

	"github.com/goliatone/go-recordform/pkg/model"
)

// Value is one cell of an in-memory recordset.
type Value struct {
	S    string
	Null bool
}

// NullValue is a convenience for a NULL cell.
func NullValue() Value {
	return Value{Null: true}
}

// StringValue is a convenience for a non-NULL cell.
func StringValue(s string) Value {
	return Value{S: s}
}

// Memory is an in-memory Recordset used by tests and examples. It is not
// safe for concurrent use; the form layer runs on a single UI thread.
type Memory struct {
	columns []model.Column
	rows    [][]Value

	editedRow int
	editedCol int

	listeners  map[int]func()
	nextListen int

	fieldEditor func(row, col int)
}

// NewMemory builds a recordset over the given columns and rows. Each row
// must have one Value per column. The edit cursor starts unset (-1).
func NewMemory(columns []model.Column, rows [][]Value) *Memory {
	return &Memory{
		columns:   columns,
		rows:      rows,
		editedRow: -1,
		listeners: make(map[int]func()),
	}
}

func (m *Memory) Count() int              { return len(m.rows) }
func (m *Memory) Columns() []model.Column { return m.columns }
func (m *Memory) EditedRow() int          { return m.editedRow }
func (m *Memory) EditedColumn() int       { return m.editedCol }

func (m *Memory) SetEdited(row, col int) {
	if row < -1 || row >= len(m.rows) {
		return
	}
	m.editedRow = row
	if col >= 0 && col < len(m.columns) {
		m.editedCol = col
	}
}

func (m *Memory) Value(row, col int) string {
	if !m.inBounds(row, col) {
		return ""
	}
	return m.rows[row][col].S
}

func (m *Memory) IsNull(row, col int) bool {
	if !m.inBounds(row, col) {
		return false
	}
	return m.rows[row][col].Null
}

func (m *Memory) SetValue(row, col int, value string) error {
	if !m.inBounds(row, col) {
		return fmt.Errorf("recordset: cell (%d,%d) out of range", row, col)
	}
	m.rows[row][col] = Value{S: value}
	return nil
}

// DeleteRow removes a row. The edit cursor clamps to the new last row when
// it pointed past the end, and drops to -1 when no rows remain.
func (m *Memory) DeleteRow(row int) error {
	if row < 0 || row >= len(m.rows) {
		return fmt.Errorf("recordset: row %d out of range", row)
	}
	m.rows = append(m.rows[:row], m.rows[row+1:]...)
	if m.editedRow >= len(m.rows) {
		m.editedRow = len(m.rows) - 1
	}
	return nil
}

// AppendRow adds a blank row (all NULL) and returns its index.
func (m *Memory) AppendRow() (int, error) {
	blank := make([]Value, len(m.columns))
	for i := range blank {
		blank[i].Null = true
	}
	m.rows = append(m.rows, blank)
	return len(m.rows) - 1, nil
}

// SetFieldEditor installs the out-of-band field editor hook invoked by
// OpenFieldEditor.
func (m *Memory) SetFieldEditor(fn func(row, col int)) {
	m.fieldEditor = fn
}

func (m *Memory) OpenFieldEditor(row, col int) {
	if m.fieldEditor != nil {
		m.fieldEditor(row, col)
	}
}

func (m *Memory) OnRefresh(fn func()) (cancel func()) {
	id := m.nextListen
	m.nextListen++
	m.listeners[id] = fn
	return func() {
		delete(m.listeners, id)
	}
}

// Refresh notifies every registered listener that the content changed
// externally.
func (m *Memory) Refresh() {
	for _, fn := range m.listeners {
		fn()
	}
}

func (m *Memory) inBounds(row, col int) bool {
	return row >= 0 && row < len(m.rows) && col >= 0 && col < len(m.columns)
}
