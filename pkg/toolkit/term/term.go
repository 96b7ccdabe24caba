// Package term implements toolkit.Toolkit for terminal sessions using
// survey prompts. Controls hold their state in memory; Edit runs the prompt
// matching the control's kind and fires its change callback with the result,
// so a host loop can page through records and edit fields from a shell.
package term

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-recordform/pkg/toolkit"
)

// ErrAborted signals the user aborted a prompt (e.g., Ctrl+C).
var ErrAborted = errors.New("term: aborted")

// Toolkit constructs terminal-backed controls.
type Toolkit struct{}

// New returns a terminal toolkit.
func New() *Toolkit {
	return &Toolkit{}
}

func (t *Toolkit) NewLabel(cfg toolkit.LabelConfig) toolkit.Label {
	return &label{base: base{enabled: true}, text: cfg.Text}
}

func (t *Toolkit) NewTextEntry(cfg toolkit.TextEntryConfig) toolkit.TextEntry {
	return &textEntry{base: base{enabled: cfg.Enabled}}
}

func (t *Toolkit) NewTextBox(cfg toolkit.TextBoxConfig) toolkit.TextBox {
	return &textBox{base: base{enabled: cfg.Enabled}}
}

func (t *Toolkit) NewSelector(cfg toolkit.SelectorConfig) toolkit.Selector {
	return &selector{base: base{enabled: cfg.Enabled}, options: append([]string(nil), cfg.Options...)}
}

func (t *Toolkit) NewCheckList(cfg toolkit.CheckListConfig) toolkit.CheckList {
	return &checkList{
		base:    base{enabled: cfg.Enabled},
		options: append([]string(nil), cfg.Options...),
		checked: make([]bool, len(cfg.Options)),
	}
}

func (t *Toolkit) NewButton(cfg toolkit.ButtonConfig) toolkit.Button {
	return &button{base: base{enabled: true}, text: cfg.Text}
}

func (t *Toolkit) NewBox(cfg toolkit.BoxConfig) toolkit.Box {
	return &box{base: base{enabled: true}}
}

// Edit runs the interactive prompt for a control built by this toolkit:
// a text input for entries, a multiline editor for boxes, a select for
// dropdowns, a multi-select for checklists, and a click for buttons. The
// control's change callback fires once on success. Labels, disabled
// controls, and controls from other toolkits are no-ops.
func (t *Toolkit) Edit(ctx context.Context, message string, c toolkit.Control) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch control := c.(type) {
	case *textEntry:
		if !control.enabled {
			return nil
		}
		var out string
		prompt := &survey.Input{Message: message, Default: control.text}
		if err := survey.AskOne(prompt, &out); err != nil {
			return translateSurveyErr(err)
		}
		control.text = out
		control.fireChanged()
	case *textBox:
		if !control.enabled {
			return nil
		}
		var out string
		prompt := &survey.Multiline{Message: message, Default: control.text}
		if err := survey.AskOne(prompt, &out); err != nil {
			return translateSurveyErr(err)
		}
		control.text = out
		control.fireChanged()
	case *selector:
		if !control.enabled || len(control.options) == 0 {
			return nil
		}
		var out string
		prompt := &survey.Select{Message: message, Options: control.options}
		if idx := indexOf(control.options, control.selected); idx >= 0 {
			prompt.Default = control.options[idx]
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return translateSurveyErr(err)
		}
		control.selected = out
		control.fireChanged()
	case *checkList:
		if !control.enabled || len(control.options) == 0 {
			return nil
		}
		var out []string
		prompt := &survey.MultiSelect{
			Message: message,
			Options: control.options,
			Default: control.checkedOptions(),
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return translateSurveyErr(err)
		}
		control.setCheckedOptions(out)
		control.fireChanged()
	case *button:
		if !control.enabled {
			return nil
		}
		if control.clicked != nil {
			control.clicked()
		}
	}
	return nil
}

// Print writes a label/value line to stdout, used by host loops to paint the
// current record.
func (t *Toolkit) Print(labelText, value string) {
	fmt.Fprintf(os.Stdout, "%-24s %s\n", labelText, value)
}

// Render prints one label/control line for a control built by this toolkit.
func (t *Toolkit) Render(labelText string, c toolkit.Control) {
	t.Print(labelText, controlText(c))
}

func controlText(c toolkit.Control) string {
	switch control := c.(type) {
	case *textEntry:
		return control.text
	case *textBox:
		return control.text
	case *selector:
		return control.selected
	case *checkList:
		return fmt.Sprintf("[%s]", strings.Join(control.checkedOptions(), ", "))
	case *label:
		return control.text
	case *box:
		parts := make([]string, 0, len(control.children))
		for _, child := range control.children {
			parts = append(parts, controlText(child))
		}
		return strings.Join(parts, " ")
	case *button:
		return control.text
	}
	return ""
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}

type base struct {
	enabled       bool
	width, height int
}

func (b *base) SetEnabled(enabled bool)   { b.enabled = enabled }
func (b *base) SetSize(width, height int) { b.width, b.height = width, height }

type label struct {
	base
	text string
}

func (l *label) SetText(text string) { l.text = text }
func (l *label) Text() string        { return l.text }

type textEntry struct {
	base
	text    string
	changed func()
}

func (e *textEntry) SetText(text string) { e.text = text }
func (e *textEntry) Text() string        { return e.text }
func (e *textEntry) OnChanged(fn func()) { e.changed = fn }
func (e *textEntry) fireChanged() {
	if e.changed != nil {
		e.changed()
	}
}

type textBox struct {
	base
	text    string
	changed func()
}

func (b *textBox) SetText(text string) { b.text = text }
func (b *textBox) Text() string        { return b.text }
func (b *textBox) OnChanged(fn func()) { b.changed = fn }
func (b *textBox) fireChanged() {
	if b.changed != nil {
		b.changed()
	}
}

type selector struct {
	base
	options  []string
	selected string
	changed  func()
}

func (s *selector) SetSelected(option string) { s.selected = option }
func (s *selector) Selected() string          { return s.selected }
func (s *selector) OnChanged(fn func())       { s.changed = fn }
func (s *selector) fireChanged() {
	if s.changed != nil {
		s.changed()
	}
}

type checkList struct {
	base
	options []string
	checked []bool
	changed func()
}

func (c *checkList) SetRowChecked(row int, checked bool) {
	if row >= 0 && row < len(c.checked) {
		c.checked[row] = checked
	}
}

func (c *checkList) RowChecked(row int) bool {
	return row >= 0 && row < len(c.checked) && c.checked[row]
}

func (c *checkList) OnChanged(fn func()) { c.changed = fn }

func (c *checkList) fireChanged() {
	if c.changed != nil {
		c.changed()
	}
}

func (c *checkList) checkedOptions() []string {
	var out []string
	for i, option := range c.options {
		if c.checked[i] {
			out = append(out, option)
		}
	}
	return out
}

func (c *checkList) setCheckedOptions(selected []string) {
	seen := make(map[string]struct{}, len(selected))
	for _, option := range selected {
		seen[option] = struct{}{}
	}
	for i, option := range c.options {
		_, ok := seen[option]
		c.checked[i] = ok
	}
}

type button struct {
	base
	text    string
	clicked func()
}

func (b *button) SetText(text string) { b.text = text }
func (b *button) OnClick(fn func())   { b.clicked = fn }

type box struct {
	base
	children []toolkit.Control
}

func (b *box) Add(child toolkit.Control) { b.children = append(b.children, child) }
