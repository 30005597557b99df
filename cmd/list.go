package cmd

import (
	"fmt"

	"github.com/KaramelBytes/sampledeck/internal/utils"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available fixtures",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus()
		if err != nil {
			return err
		}
		entries := c.List()
		out := cmd.OutOrStdout()
		if listJSON {
			b, err := utils.PrettyJSON(entries)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "(no fixtures)")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "- %s: %s (%d bytes)\n", e.Language, e.Path, e.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print as JSON")
}
