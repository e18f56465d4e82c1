package main

import (
	"errors"
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/typedcoll/internal/manifest"
	"github.com/aretw0/typedcoll/internal/metrics"
	"github.com/aretw0/typedcoll/internal/presentation/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check <manifest>",
	Short: "Build every declared container and report type violations",
	Long: `Builds each collection and dictionary declared in the manifest, validating every
element, key and value against its declared type. Exits non-zero if any container fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withMetrics, _ := cmd.Flags().GetBool("metrics")
		return runCheck(cmd, args[0], withMetrics)
	},
}

func init() {
	checkCmd.Flags().Bool("metrics", false, "Print check counters in Prometheus text format")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, path string, withMetrics bool) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("manifest loaded", "path", path,
		"collections", len(m.Collections), "dictionaries", len(m.Dictionaries))

	out := cmd.OutOrStdout()
	status := tui.NewStatusWithProfile(termenv.Ascii)
	if isTerminal(out) {
		status = tui.NewStatus()
	}
	rec := metrics.NewRecorder()

	failed := 0
	report := func(kind, name, detail string, err error) {
		rec.ObserveCheck(kind, err)
		if err != nil {
			failed++
			logger.Info("check failed", "kind", kind, "name", name, "reason", metrics.Reason(err), "error", err)
			var be *manifest.BuildError
			if errors.As(err, &be) {
				err = be.Err
			}
			fmt.Fprintln(out, status.Fail(kind, name, err))
			return
		}
		fmt.Fprintln(out, status.Pass(kind, name, detail))
	}

	for _, decl := range m.Collections {
		c, err := decl.Build()
		var detail string
		if err == nil {
			detail = fmt.Sprintf("%s, %d elements", c.Type().Name(), c.Len())
		}
		report(manifest.KindCollection, decl.Name, detail, err)
	}
	for _, decl := range m.Dictionaries {
		d, err := decl.Build()
		var detail string
		if err == nil {
			detail = fmt.Sprintf("%s => %s, %d entries", d.KeyType().Name(), d.ValueType().Name(), d.Len())
		}
		report(manifest.KindDictionary, decl.Name, detail, err)
	}

	if withMetrics {
		if err := rec.WriteText(out); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	total := len(m.Collections) + len(m.Dictionaries)
	if failed > 0 {
		return fmt.Errorf("%d of %d containers failed validation", failed, total)
	}
	fmt.Fprintf(out, "All %d containers are valid! ✅\n", total)
	return nil
}
