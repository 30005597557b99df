package cmd

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [language]",
	Short: "Print a fixture verbatim",
	Long:  "Print the sample for a language id, alias or extension exactly as stored. Defaults to default_language.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCorpus()
		if err != nil {
			return err
		}
		f, err := c.Get(keyOrDefault(args))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(f.Bytes())
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
