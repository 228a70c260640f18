// Package completion implements context-aware completion for EditorConfig
// documents. Given the line under the cursor it decides whether the user is
// typing a property name or a property value and produces the matching
// candidate list from the property registry.
package completion

import (
	"strings"

	"github.com/noritaka1166/editorconfig-ls/registry"
)

// separator is the assignment character that splits a property line into
// name and value.
const separator = "="

// TriggerSuggestCommand is the host command referenced by property-name
// items that auto-append " = ": it asks the editor to reopen the suggestion
// list so the user can pick a value right away. The engine never executes
// it, only names it.
const TriggerSuggestCommand = "editor.action.triggerSuggest"

// Kind distinguishes what an item completes.
type Kind string

const (
	KindProperty Kind = "property"
	KindValue    Kind = "value"
)

// Item is a single suggestion offered to the host.
type Item struct {
	Label         string `json:"label"`
	Kind          Kind   `json:"kind"`
	Documentation string `json:"documentation,omitempty"`
	// InsertText overrides Label as the inserted text when non-empty.
	InsertText string `json:"insert_text,omitempty"`
	// SortText is a lexicographic ranking hint; empty means natural order.
	SortText string `json:"sort_text,omitempty"`
	// Command names a follow-up host command, or is empty.
	Command string `json:"command,omitempty"`
}

// Engine produces completion items against a fixed property registry.
// It holds no per-request state: every call is a pure function of its
// inputs, so concurrent requests need no locking.
type Engine struct {
	registry *registry.Registry
}

// NewEngine creates an engine backed by the given registry.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{registry: reg}
}

// Provide returns the candidate list for a cursor position, described by the
// full text of the line and the portion of it before the cursor. It never
// fails; absence of matches is an empty list.
//
// A separator anywhere before the cursor puts the request in value position.
// This is a textual scan, not a parse: a cursor placed before an "=" that
// appears later on the line, or a value that itself contains "=", is
// misclassified. That matches the established behavior of the format's
// editors and is kept for parity.
func (e *Engine) Provide(fullLine, beforeCursor string) []Item {
	if strings.Contains(beforeCursor, separator) {
		return e.valueItems(beforeCursor)
	}
	return e.propertyItems(fullLine)
}

// Resolve returns the item unchanged. All detail is embedded at creation
// time; the method exists because the host protocol has a resolution step.
func (e *Engine) Resolve(item Item) Item {
	return item
}

// propertyItems suggests every known property, in catalog order. When the
// line has no separator yet, selecting a name also inserts " = " and asks
// the host to reopen suggestions for the value.
func (e *Engine) propertyItems(fullLine string) []Item {
	needsSeparator := !strings.Contains(fullLine, separator)

	props := e.registry.All()
	items := make([]Item, 0, len(props))
	for _, p := range props {
		item := Item{
			Label:         p.Name,
			Kind:          KindProperty,
			Documentation: p.Description,
		}
		if needsSeparator {
			item.InsertText = p.Name + " = "
			item.Command = TriggerSuggestCommand
		}
		items = append(items, item)
	}
	return items
}

// valueItems suggests the allowed values of the property named before the
// first separator. Unknown properties and free-form properties yield no
// suggestions.
func (e *Engine) valueItems(beforeCursor string) []Item {
	name, _, _ := strings.Cut(beforeCursor, separator)
	name = strings.ToLower(strings.TrimSpace(name))

	prop, ok := e.registry.Lookup(name)
	if !ok || len(prop.Values) == 0 {
		return []Item{}
	}

	items := make([]Item, 0, len(prop.Values))
	for _, value := range prop.Values {
		items = append(items, Item{
			Label:    value,
			Kind:     KindValue,
			SortText: valueSortText(value),
		})
	}
	return items
}

// valueSortText ranks value suggestions: true and false anchor the top,
// unset sinks to the bottom, and everything else sorts alphabetically in
// between under a shared "3" prefix.
func valueSortText(value string) string {
	switch value {
	case "true":
		return "1"
	case "false":
		return "2"
	case "unset":
		return "9"
	default:
		return "3" + value
	}
}
