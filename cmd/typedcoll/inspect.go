package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/typedcoll/internal/manifest"
	"github.com/aretw0/typedcoll/internal/presentation/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest>",
	Short: "Render the declared containers as tables",
	Long: `Builds the containers declared in the manifest and prints them as markdown tables.
On a terminal the markdown is rendered; otherwise it is printed raw.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	set, buildErr := m.Build()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", filepath.Base(path))
	for _, c := range set.Collections {
		sb.WriteString(tui.CollectionMarkdown(c.Name, c.Container))
		sb.WriteString("\n")
	}
	for _, d := range set.Dictionaries {
		sb.WriteString(tui.DictionaryMarkdown(d.Name, d.Container))
		sb.WriteString("\n")
	}

	out := cmd.OutOrStdout()
	doc := sb.String()
	if isTerminal(out) {
		render, err := tui.NewRenderer("", terminalWidth(out, 80))
		if err != nil {
			return fmt.Errorf("failed to init renderer: %w", err)
		}
		if doc, err = render(doc); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
	}
	fmt.Fprint(out, doc)

	if buildErr != nil {
		logger.Warn("some containers were skipped", "error", buildErr)
		return buildErr
	}
	return nil
}
