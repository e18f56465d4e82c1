package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/typedcoll/pkg/collection"
	"github.com/aretw0/typedcoll/pkg/dictionary"
)

// CollectionMarkdown renders a collection as a markdown section with an index/value table.
func CollectionMarkdown(name string, c collection.Collection) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", name)
	fmt.Fprintf(&sb, "collection of `%s`, %d elements\n\n", c.Type().Name(), c.Len())
	if c.IsEmpty() {
		sb.WriteString("_empty_\n")
		return sb.String()
	}
	sb.WriteString("| # | value |\n|---|---|\n")
	for i, item := range c.All() {
		fmt.Fprintf(&sb, "| %d | %s |\n", i, cell(item))
	}
	return sb.String()
}

// DictionaryMarkdown renders a dictionary as a markdown section with a key/value table.
func DictionaryMarkdown(name string, d dictionary.Dictionary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", name)
	fmt.Fprintf(&sb, "dictionary of `%s` => `%s`, %d entries\n\n", d.KeyType().Name(), d.ValueType().Name(), d.Len())
	if d.IsEmpty() {
		sb.WriteString("_empty_\n")
		return sb.String()
	}
	sb.WriteString("| key | value |\n|---|---|\n")
	for k, v := range d.All() {
		fmt.Fprintf(&sb, "| %s | %s |\n", cell(k), cell(v))
	}
	return sb.String()
}

func cell(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
