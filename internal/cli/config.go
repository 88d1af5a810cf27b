package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gpuadvisor/internal/config"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default configuration (default ~/.gpu-advisor/config.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(config.DefaultDir(), "config.yaml")
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			written, err := config.Save(config.Default(), path)
			if err != nil {
				return err
			}
			a.println(ui.Success("Configuration written to " + written))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cfg.Advisor.APIKey != "" {
				cfg.Advisor.APIKey = "********"
			}
			if cfg.Server.SecretKey != "" {
				cfg.Server.SecretKey = "********"
			}
			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
