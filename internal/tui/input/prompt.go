// Package input holds the prompt parsing and completion used by the TUI.
package input

import (
	"strings"

	"github.com/javiermolinar/timesynx/internal/catalog"
)

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Description string
}

// Commands are the slash commands the prompt understands.
var Commands = []PromptCommand{
	{Name: "/add", Description: "Add a city card"},
	{Name: "/replace", Description: "Swap the selected card for another city"},
	{Name: "/at", Description: "Freeze time, e.g. /at tomorrow 9am"},
	{Name: "/live", Description: "Return to the live clock"},
	{Name: "/save", Description: "Save the comparison as a board"},
	{Name: "/load", Description: "Load a saved board"},
	{Name: "/invite", Description: "Write the best window as an .ics file"},
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// Parse splits "/cmd rest of line" into its command and argument.
// Input without a leading slash is treated as a city search for /add.
func Parse(input string) (cmd, arg string) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "/add", input
	}
	cmd, arg, _ = strings.Cut(input, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

// CitySuggestions lists catalog cities for the argument of /add or /replace.
func CitySuggestions(input string, limit int) []catalog.City {
	cmd, arg := Parse(input)
	if cmd != "/add" && cmd != "/replace" {
		return nil
	}
	if arg == "" {
		return nil
	}
	return catalog.Search(arg, catalog.AllRegions, limit)
}

// ResolveCity picks the city a completed /add or /replace argument names:
// an exact name or zone match first, then the first search hit.
func ResolveCity(arg string) (catalog.City, bool) {
	if c, ok := catalog.FindByName(arg); ok {
		return c, true
	}
	if c, ok := catalog.Lookup(arg); ok {
		return c, true
	}
	if hits := catalog.Search(arg, catalog.AllRegions, 1); len(hits) > 0 {
		return hits[0], true
	}
	return catalog.City{}, false
}
