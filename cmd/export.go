package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/sampledeck/internal/utils"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [language]",
	Short: "Write a fixture to disk",
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
		dest := exportOut
		if dest == "" {
			dir, err := utils.ExpandHome(cfg.ExportDir)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = "."
			}
			if err := utils.EnsureDir(dir); err != nil {
				return fmt.Errorf("ensure export dir: %w", err)
			}
			dest = filepath.Join(dir, filepath.Base(f.Path))
		}
		if err := utils.SafeWriteFile(dest, f.Bytes()); err != nil {
			return err
		}
		log.Debugw("fixture exported", "language", f.Language, "dest", dest)
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %s to %s\n", f.Language, dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <export_dir>/sample.<id>)")
}
