package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/sampledeck/internal/config"
	"github.com/KaramelBytes/sampledeck/internal/grammar"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set sampledeck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			loadConfig()
		}
		out := cmd.OutOrStdout()
		fixtures := cfg.FixturesDir
		if fixtures == "" {
			fixtures = "(embedded)"
		}
		fmt.Fprintf(out, "fixtures_dir: %s\n", fixtures)
		fmt.Fprintf(out, "default_language: %s\n", cfg.DefaultLanguage)
		fmt.Fprintf(out, "check_workers: %d\n", cfg.CheckWorkers)
		fmt.Fprintf(out, "export_dir: %s\n", cfg.ExportDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "fixtures_dir":
			cfg.FixturesDir = val
		case "default_language":
			d, ok := grammar.Lookup(val)
			if !ok {
				return fmt.Errorf("invalid default_language: %s (unknown grammar)", val)
			}
			cfg.DefaultLanguage = d.ID
		case "check_workers":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for check_workers: %v", val)
			}
			cfg.CheckWorkers = i
		case "export_dir":
			cfg.ExportDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
