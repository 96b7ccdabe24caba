package recordform

// ItemKind distinguishes the toolbar item flavors the host shell renders.
type ItemKind int

const (
	// ItemTitle is the leading caption of the toolbar.
	ItemTitle ItemKind = iota
	// ItemLabel is a static caption between actions.
	ItemLabel
	// ItemSeparator is a visual divider.
	ItemSeparator
	// ItemAction is a clickable item bound to a Command.
	ItemAction
	// ItemPosition is the "row / total" indicator.
	ItemPosition
)

// ToolbarItem is one entry of the form toolbar. Action items carry the
// Command the host dispatches via FormView.Navigate when clicked.
type ToolbarItem struct {
	Kind    ItemKind
	Name    string
	Text    string
	Tooltip string
	Command Command

	enabled bool
}

// Enabled reports whether the item is currently actionable.
func (i *ToolbarItem) Enabled() bool { return i.enabled }

// Toolbar is the navigation/edit strip above the field grid. The form owns
// the item states; the host only renders them and routes clicks.
type Toolbar struct {
	items []*ToolbarItem
}

// Items returns the toolbar entries in display order.
func (t *Toolbar) Items() []*ToolbarItem { return t.items }

func (t *Toolbar) add(item *ToolbarItem) *ToolbarItem {
	t.items = append(t.items, item)
	return item
}

func (t *Toolbar) find(name string) *ToolbarItem {
	for _, item := range t.items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

func (t *Toolbar) setEnabled(name string, enabled bool) {
	if item := t.find(name); item != nil {
		item.enabled = enabled
	}
}

func (t *Toolbar) setPosition(text string) {
	if item := t.find("location"); item != nil {
		item.Text = text
	}
}

func newToolbar(editable bool) *Toolbar {
	t := &Toolbar{}
	t.add(&ToolbarItem{Kind: ItemTitle, Text: "Form Editor"})
	t.add(&ToolbarItem{Kind: ItemSeparator})
	t.add(&ToolbarItem{Kind: ItemLabel, Text: "Navigate:"})
	t.add(&ToolbarItem{Kind: ItemAction, Name: "first", Command: CommandFirst,
		Tooltip: "Go to the first row in the recordset."})
	t.add(&ToolbarItem{Kind: ItemAction, Name: "back", Command: CommandBack,
		Tooltip: "Go back one row in the recordset."})
	t.add(&ToolbarItem{Kind: ItemPosition, Name: "location"})
	t.add(&ToolbarItem{Kind: ItemAction, Name: "next", Command: CommandNext,
		Tooltip: "Go next one row in the recordset."})
	t.add(&ToolbarItem{Kind: ItemAction, Name: "last", Command: CommandLast,
		Tooltip: "Go to the last row in the recordset."})

	if editable {
		t.add(&ToolbarItem{Kind: ItemSeparator})
		t.add(&ToolbarItem{Kind: ItemLabel, Text: "Edit:"})
		t.add(&ToolbarItem{Kind: ItemAction, Name: "delete", Command: CommandDelete,
			Tooltip: "Delete current row from the recordset."})
		t.add(&ToolbarItem{Kind: ItemAction, Name: "add", Command: CommandAdd,
			Tooltip: "Add a new row to the recordset."})
	}
	return t
}
