// Package toolkit defines the seam between the form layer and the hosting
// GUI toolkit. The form never draws anything itself; it builds controls
// through a Toolkit and reads them back through the per-kind interfaces, so
// form logic can be exercised without a real display and hosts can plug in
// whatever widget set they ship with.
package toolkit

// Control is the capability set shared by every toolkit control.
type Control interface {
	SetEnabled(enabled bool)
	// SetSize requests a size in pixels; -1 leaves a dimension up to the
	// host layout.
	SetSize(width, height int)
}

// Label is a static text control.
type Label interface {
	Control
	SetText(text string)
	Text() string
}

// TextEntry is a single-line editable text control.
type TextEntry interface {
	Control
	SetText(text string)
	Text() string
	// OnChanged registers the callback fired after a user edit. Programmatic
	// SetText calls do not fire it.
	OnChanged(fn func())
}

// TextBox is a multi-line editable text control.
type TextBox interface {
	Control
	SetText(text string)
	Text() string
	OnChanged(fn func())
}

// Selector is a dropdown over a fixed option list.
type Selector interface {
	Control
	SetSelected(option string)
	Selected() string
	OnChanged(fn func())
}

// CheckList renders one checkbox row per option, addressed by row index in
// option order.
type CheckList interface {
	Control
	SetRowChecked(row int, checked bool)
	RowChecked(row int) bool
	OnChanged(fn func())
}

// Button is a push button.
type Button interface {
	Control
	SetText(text string)
	OnClick(fn func())
}

// Box groups child controls into a single layout cell.
type Box interface {
	Control
	Add(child Control)
}

// LabelConfig configures a Label.
type LabelConfig struct {
	Text       string
	AlignRight bool
}

// TextEntryConfig configures a TextEntry.
type TextEntryConfig struct {
	Enabled bool
}

// TextBoxConfig configures a TextBox.
type TextBoxConfig struct {
	Enabled    bool
	ScrollBars bool
}

// SelectorConfig configures a Selector with its fixed option list.
type SelectorConfig struct {
	Options []string
	Enabled bool
}

// CheckListConfig configures a CheckList with one row per option.
type CheckListConfig struct {
	Options []string
	Enabled bool
}

// ButtonConfig configures a Button.
type ButtonConfig struct {
	Text string
}

// BoxConfig configures a Box.
type BoxConfig struct {
	Horizontal bool
	Spacing    int
}

// Toolkit constructs controls. Implementations wrap a concrete widget set;
// the headless implementation backs tests and examples.
type Toolkit interface {
	NewLabel(cfg LabelConfig) Label
	NewTextEntry(cfg TextEntryConfig) TextEntry
	NewTextBox(cfg TextBoxConfig) TextBox
	NewSelector(cfg SelectorConfig) Selector
	NewCheckList(cfg CheckListConfig) CheckList
	NewButton(cfg ButtonConfig) Button
	NewBox(cfg BoxConfig) Box
}
