package registry

// catalog is the authoritative EditorConfig property table. Order matters:
// name suggestions are offered in exactly this order.
var catalog = []Property{
	{
		Name:        "root",
		Values:      []string{"true", "false", "unset"},
		Description: "Special property that should be specified at the top of the file outside of any sections. Set to true to stop .editorconfig files search on current file.",
	},
	{
		Name:        "charset",
		Values:      []string{"utf-8", "utf-8-bom", "utf-16be", "utf-16le", "latin1", "unset"},
		Description: "Set to latin1, utf-8, utf-8-bom, utf-16be or utf-16le to control the character set. Use of utf-8-bom is discouraged.",
	},
	{
		Name:        "end_of_line",
		Values:      []string{"lf", "cr", "crlf", "unset"},
		Description: "Set to lf, cr, or crlf to control how line breaks are represented.",
	},
	{
		Name:        "indent_style",
		Values:      []string{"tab", "space", "unset"},
		Description: "Set to tab or space to use hard tabs or soft tabs respectively.",
	},
	{
		Name:        "indent_size",
		Values:      []string{"1", "2", "3", "4", "5", "6", "7", "8", "tab", "unset"},
		Description: "A whole number defining the number of columns used for each indentation level and the width of soft tabs (when supported). When set to tab, the value of tab_width (if specified) will be used.",
	},
	{
		Name:        "insert_final_newline",
		Values:      []string{"true", "false", "unset"},
		Description: "Set to true to ensure file ends with a newline when saving and false to ensure it doesn't.",
	},
	{
		Name:        "tab_width",
		Values:      []string{"1", "2", "3", "4", "5", "6", "7", "8", "unset"},
		Description: "A whole number defining the number of columns used to represent a tab character. This defaults to the value of indent_size and doesn't usually need to be specified.",
	},
	{
		Name:        "trim_trailing_whitespace",
		Values:      []string{"true", "false", "unset"},
		Description: "Set to true to remove any whitespace characters preceding newline characters and false to ensure it doesn't.",
	},
}

var defaultRegistry = New(catalog)

// Default returns the process-wide registry holding the built-in
// EditorConfig catalog.
func Default() *Registry {
	return defaultRegistry
}
