package recordform

// Command enumerates the toolbar actions the form dispatches on.
type Command int

const (
	// CommandFirst moves the cursor to row 0.
	CommandFirst Command = iota
	// CommandBack moves the cursor one row back, clamped at row 0.
	CommandBack
	// CommandNext moves the cursor one row forward, clamped at the last row.
	CommandNext
	// CommandLast moves the cursor to the last row.
	CommandLast
	// CommandDelete removes the current row (editable forms only).
	CommandDelete
	// CommandAdd appends a blank row and moves the cursor to it (editable
	// forms only).
	CommandAdd
)

func (c Command) String() string {
	switch c {
	case CommandFirst:
		return "first"
	case CommandBack:
		return "back"
	case CommandNext:
		return "next"
	case CommandLast:
		return "last"
	case CommandDelete:
		return "delete"
	case CommandAdd:
		return "add"
	default:
		return "unknown"
	}
}
