package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Catalog(t *testing.T) {
	tests := []struct {
		name       string
		wantValues []string
	}{
		{"root", []string{"true", "false", "unset"}},
		{"charset", []string{"utf-8", "utf-8-bom", "utf-16be", "utf-16le", "latin1", "unset"}},
		{"end_of_line", []string{"lf", "cr", "crlf", "unset"}},
		{"indent_style", []string{"tab", "space", "unset"}},
		{"indent_size", []string{"1", "2", "3", "4", "5", "6", "7", "8", "tab", "unset"}},
		{"insert_final_newline", []string{"true", "false", "unset"}},
		{"tab_width", []string{"1", "2", "3", "4", "5", "6", "7", "8", "unset"}},
		{"trim_trailing_whitespace", []string{"true", "false", "unset"}},
	}

	reg := Default()
	require.Equal(t, len(tests), reg.Len(), "catalog size")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop, ok := reg.Lookup(tt.name)
			require.True(t, ok, "property %q should be in the catalog", tt.name)
			assert.Equal(t, tt.name, prop.Name)
			assert.Equal(t, tt.wantValues, prop.Values)
			assert.NotEmpty(t, prop.Description)
		})
	}
}

func TestLookup_CaseNormalized(t *testing.T) {
	reg := Default()

	prop, ok := reg.Lookup("Indent_Style")
	require.True(t, ok)
	assert.Equal(t, "indent_style", prop.Name)

	prop, ok = reg.Lookup("TAB_WIDTH")
	require.True(t, ok)
	assert.Equal(t, "tab_width", prop.Name)
}

func TestLookup_Miss(t *testing.T) {
	reg := Default()

	_, ok := reg.Lookup("bogus_property")
	assert.False(t, ok)

	_, ok = reg.Lookup("")
	assert.False(t, ok)
}

func TestAll_OrderStable(t *testing.T) {
	reg := Default()

	first := reg.All()
	second := reg.All()
	require.Equal(t, first, second, "All must return the same sequence across calls")

	// Declaration order drives suggestion ranking; pin it.
	var names []string
	for _, p := range first {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"root",
		"charset",
		"end_of_line",
		"indent_style",
		"indent_size",
		"insert_final_newline",
		"tab_width",
		"trim_trailing_whitespace",
	}, names)
}

func TestAll_ReturnsCopy(t *testing.T) {
	reg := Default()

	mutated := reg.All()
	mutated[0] = Property{Name: "clobbered"}

	fresh := reg.All()
	assert.Equal(t, "root", fresh[0].Name, "callers must not be able to disturb the catalog")
}

func TestCatalog_NamesLowercaseAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Default().All() {
		assert.Equal(t, strings.ToLower(p.Name), p.Name, "canonical names are lowercase")
		assert.False(t, seen[p.Name], "duplicate property %q", p.Name)
		seen[p.Name] = true
	}
}
