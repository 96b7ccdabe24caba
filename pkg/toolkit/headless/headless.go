// Package headless implements toolkit.Toolkit entirely in memory. It backs
// the package tests and the examples: controls record their state and expose
// Edit-style helpers that simulate user interaction, firing the registered
// change callbacks the way a real toolkit would.
package headless

import (
	"github.com/goliatone/go-recordform/pkg/toolkit"
)

// Toolkit constructs in-memory controls.
type Toolkit struct{}

// New returns a headless toolkit.
func New() *Toolkit {
	return &Toolkit{}
}

func (t *Toolkit) NewLabel(cfg toolkit.LabelConfig) toolkit.Label {
	return &Label{base: base{enabled: true}, text: cfg.Text, AlignRight: cfg.AlignRight}
}

func (t *Toolkit) NewTextEntry(cfg toolkit.TextEntryConfig) toolkit.TextEntry {
	return &TextEntry{base: base{enabled: cfg.Enabled}}
}

func (t *Toolkit) NewTextBox(cfg toolkit.TextBoxConfig) toolkit.TextBox {
	return &TextBox{base: base{enabled: cfg.Enabled}, ScrollBars: cfg.ScrollBars}
}

func (t *Toolkit) NewSelector(cfg toolkit.SelectorConfig) toolkit.Selector {
	return &Selector{base: base{enabled: cfg.Enabled}, options: append([]string(nil), cfg.Options...)}
}

func (t *Toolkit) NewCheckList(cfg toolkit.CheckListConfig) toolkit.CheckList {
	return &CheckList{
		base:    base{enabled: cfg.Enabled},
		options: append([]string(nil), cfg.Options...),
		checked: make([]bool, len(cfg.Options)),
	}
}

func (t *Toolkit) NewButton(cfg toolkit.ButtonConfig) toolkit.Button {
	return &Button{base: base{enabled: true}, text: cfg.Text}
}

func (t *Toolkit) NewBox(cfg toolkit.BoxConfig) toolkit.Box {
	return &Box{base: base{enabled: true}, Horizontal: cfg.Horizontal, Spacing: cfg.Spacing}
}

type base struct {
	enabled       bool
	width, height int
}

func (b *base) SetEnabled(enabled bool) { b.enabled = enabled }

// Enabled reports the last SetEnabled value.
func (b *base) Enabled() bool { return b.enabled }

func (b *base) SetSize(width, height int) { b.width, b.height = width, height }

// Width reports the last requested width (-1 when unset).
func (b *base) Width() int { return b.width }

// Height reports the last requested height (-1 when unset).
func (b *base) Height() int { return b.height }

// Label is the in-memory static text control.
type Label struct {
	base
	text       string
	AlignRight bool
}

func (l *Label) SetText(text string) { l.text = text }
func (l *Label) Text() string        { return l.text }

// TextEntry is the in-memory single-line text control.
type TextEntry struct {
	base
	text    string
	changed func()
}

func (e *TextEntry) SetText(text string) { e.text = text }
func (e *TextEntry) Text() string        { return e.text }
func (e *TextEntry) OnChanged(fn func()) { e.changed = fn }

// EditText simulates the user typing a new value.
func (e *TextEntry) EditText(text string) {
	e.text = text
	if e.changed != nil {
		e.changed()
	}
}

// TextBox is the in-memory multi-line text control.
type TextBox struct {
	base
	text       string
	changed    func()
	ScrollBars bool
}

func (b *TextBox) SetText(text string) { b.text = text }
func (b *TextBox) Text() string        { return b.text }
func (b *TextBox) OnChanged(fn func()) { b.changed = fn }

// EditText simulates the user typing a new value.
func (b *TextBox) EditText(text string) {
	b.text = text
	if b.changed != nil {
		b.changed()
	}
}

// Selector is the in-memory dropdown control.
type Selector struct {
	base
	options  []string
	selected string
	changed  func()
}

func (s *Selector) SetSelected(option string) { s.selected = option }
func (s *Selector) Selected() string          { return s.selected }
func (s *Selector) OnChanged(fn func())       { s.changed = fn }

// Options returns the option list the selector was built with.
func (s *Selector) Options() []string { return s.options }

// Choose simulates the user picking an option.
func (s *Selector) Choose(option string) {
	s.selected = option
	if s.changed != nil {
		s.changed()
	}
}

// CheckList is the in-memory checkbox list control.
type CheckList struct {
	base
	options []string
	checked []bool
	changed func()
}

func (c *CheckList) SetRowChecked(row int, checked bool) {
	if row >= 0 && row < len(c.checked) {
		c.checked[row] = checked
	}
}

func (c *CheckList) RowChecked(row int) bool {
	return row >= 0 && row < len(c.checked) && c.checked[row]
}

func (c *CheckList) OnChanged(fn func()) { c.changed = fn }

// Options returns the option list the checklist was built with.
func (c *CheckList) Options() []string { return c.options }

// Toggle simulates the user flipping one checkbox row.
func (c *CheckList) Toggle(row int) {
	if row < 0 || row >= len(c.checked) {
		return
	}
	c.checked[row] = !c.checked[row]
	if c.changed != nil {
		c.changed()
	}
}

// Button is the in-memory push button.
type Button struct {
	base
	text    string
	clicked func()
}

func (b *Button) SetText(text string) { b.text = text }

// Text returns the button caption.
func (b *Button) Text() string { return b.text }

func (b *Button) OnClick(fn func()) { b.clicked = fn }

// Click simulates the user pressing the button.
func (b *Button) Click() {
	if b.clicked != nil {
		b.clicked()
	}
}

// Box is the in-memory layout container.
type Box struct {
	base
	Horizontal bool
	Spacing    int
	children   []toolkit.Control
}

func (b *Box) Add(child toolkit.Control) { b.children = append(b.children, child) }

// Children returns the controls added to the box, in order.
func (b *Box) Children() []toolkit.Control { return b.children }
