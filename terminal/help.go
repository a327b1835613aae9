package terminal

import (
	"fmt"
	"strings"
)

// Help categories
type HelpCategory struct {
	Name     string
	Commands []HelpCommand
}

type HelpCommand struct {
	Key         string
	Description string
}

var helpCategories = []HelpCategory{
	{
		Name: "Tools",
		Commands: []HelpCommand{
			{"s", "Select, move and resize"},
			{"r / d", "Rectangle / diamond"},
			{"l", "Line"},
			{"t", "Text box"},
			{"p", "Pencil"},
			{"e", "Set text box content"},
			{"c", "Set drawing color"},
		},
	},
	{
		Name: "Selection",
		Commands: []HelpCommand{
			{"Shift+click", "Add to / remove from selection"},
			{"Ctrl+A", "Select all"},
			{"Del", "Delete selection"},
			{"Ctrl+D", "Duplicate selection"},
			{"g", "Group selection"},
			{"L", "Lock / unlock selection"},
			{"[ ]", "Send backward / bring forward"},
			{"{ }", "Send to back / bring to front"},
		},
	},
	{
		Name: "Clipboard",
		Commands: []HelpCommand{
			{"Ctrl+C", "Copy selection as text"},
			{"Ctrl+V", "Paste text at the mouse"},
		},
	},
	{
		Name: "Editing",
		Commands: []HelpCommand{
			{"u / Ctrl+Z", "Undo"},
			{"U / Ctrl+Y", "Redo"},
			{"ESC", "Cancel, then clear selection"},
		},
	},
	{
		Name: "System",
		Commands: []HelpCommand{
			{"arrows", "Pan"},
			{"?", "Toggle this help"},
			{"q / Ctrl+Q", "Quit"},
		},
	},
}

// HelpCategories returns the key bindings by category.
func HelpCategories() []HelpCategory {
	return helpCategories
}

// GetHelpText returns the key bindings as a plain listing.
func GetHelpText() string {
	var b strings.Builder
	for i, cat := range helpCategories {
		fmt.Fprintf(&b, "%s:\n", cat.Name)
		for _, cmd := range cat.Commands {
			fmt.Fprintf(&b, "  %-12s %s\n", cmd.Key, cmd.Description)
		}
		if i < len(helpCategories)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// GetCompactHelp returns a single-line help hint
func GetCompactHelp() string {
	return "s:select r:rect d:diamond l:line t:text p:pencil u:undo ?:help q:quit"
}
