package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/noritaka1166/editorconfig-ls/registry"
)

// PropertiesCmd dumps the built-in property catalog.
var PropertiesCmd = &cobra.Command{
	Use:     "properties",
	Aliases: []string{"props"},
	Short:   "List the EditorConfig properties the server knows about",
	Long:    `Print the property catalog: each property's name, its allowed values, and its documentation. This is the same catalog that drives completions.`,
	RunE:    runProperties,
}

func runProperties(cmd *cobra.Command, args []string) error {
	data := pterm.TableData{
		{"Property", "Values", "Description"},
	}
	for _, p := range registry.Default().All() {
		values := strings.Join(p.Values, ", ")
		if values == "" {
			values = "(free-form)"
		}
		data = append(data, []string{p.Name, values, p.Description})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
