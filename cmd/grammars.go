package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/sampledeck/internal/grammar"
	"github.com/spf13/cobra"
)

var grammarsCategory string

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List known grammars grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus()
		if err != nil {
			return err
		}
		reg := grammar.Default()
		cats := reg.Categories()
		if grammarsCategory != "" {
			cats = []string{grammarsCategory}
		}
		out := cmd.OutOrStdout()
		found := false
		for _, cat := range cats {
			defs := reg.ByCategory(cat)
			if len(defs) == 0 {
				continue
			}
			found = true
			fmt.Fprintf(out, "%s\n", grammar.DisplayCategory(cat))
			for _, d := range defs {
				sample := "no sample"
				if _, err := c.Get(d.ID); err == nil {
					sample = grammar.SampleFileName(d.ID)
				}
				fmt.Fprintf(out, "  - %s (%s) [%s] %s\n", d.ID, d.Name, strings.Join(d.Extensions, " "), sample)
			}
		}
		if !found {
			fmt.Fprintln(out, "(no grammars)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grammarsCmd)
	grammarsCmd.Flags().StringVar(&grammarsCategory, "category", "", "only show this category (e.g. programming_language)")
}
