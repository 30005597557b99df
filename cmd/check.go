package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/KaramelBytes/sampledeck/internal/integrity"
	"github.com/KaramelBytes/sampledeck/internal/utils"
	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check [language...]",
	Short: "Verify fixture integrity",
	Long: `Verify that fixtures are stable across reads, tagged consistently with their
extension, valid UTF-8 with a trailing newline, brace/paren balanced and free of
syntax errors where a grammar is available. With no arguments every fixture is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus()
		if err != nil {
			return err
		}
		v := integrity.NewVerifier(c, cfg.CheckWorkers, log)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var reports []*integrity.Report
		if len(args) == 0 {
			reports, err = v.VerifyAll(ctx)
			if err != nil {
				return err
			}
		} else {
			for _, key := range args {
				rep, err := v.Verify(ctx, key)
				if err != nil {
					return err
				}
				reports = append(reports, rep)
			}
			sort.Slice(reports, func(i, j int) bool { return reports[i].Language < reports[j].Language })
		}

		out := cmd.OutOrStdout()
		if checkJSON {
			b, err := utils.PrettyJSON(reports)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
		} else {
			for _, r := range reports {
				printReport(cmd, r)
			}
		}

		failed := 0
		for _, r := range reports {
			if !r.OK() {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d fixtures failed integrity checks", failed, len(reports))
		}
		return nil
	},
}

func printReport(cmd *cobra.Command, r *integrity.Report) {
	out := cmd.OutOrStdout()
	mark := "✓"
	if !r.OK() {
		mark = "✗"
	}
	fmt.Fprintf(out, "%s %s (%s, %d bytes)\n", mark, r.Language, r.Path, r.Size)
	for _, c := range r.Checks {
		status := "ok"
		switch {
		case c.Skipped:
			status = "skipped"
		case !c.Passed:
			status = "FAIL"
		}
		if c.Detail != "" {
			fmt.Fprintf(out, "    %-22s %s: %s\n", c.Name, status, c.Detail)
		} else {
			fmt.Fprintf(out, "    %-22s %s\n", c.Name, status)
		}
	}
	if r.Syntax != nil && len(r.Syntax.TopLevelTypes) > 0 {
		fmt.Fprintf(out, "    top-level types: %v\n", r.Syntax.TopLevelTypes)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print reports as JSON")
}
