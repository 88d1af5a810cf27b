package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"gpuadvisor/internal/models"
	"gpuadvisor/internal/services"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		output string
		game   string
		format string
	)
	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the GPU profile, optionally with game compatibility",
		Example: `  gpuadvisor export -o my-gpu.yaml -g "Alan Wake 2"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := exportPath(output, format)
			if err != nil {
				return err
			}

			gpu, err := a.detectGPU(cmd.Context())
			if err != nil {
				return err
			}

			var compat *models.Compatibility
			if game != "" {
				compat = a.catalog().CheckCompatibility(gpu, game)
			}
			if err := services.ExportGPUProfile(gpu, compat, path); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			a.println(ui.Success("GPU profile exported to " + path))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "gpu_profile.json", "output file")
	f.StringVarP(&game, "game", "g", "", "include compatibility for this game")
	f.StringVar(&format, "format", "", "json or yaml (default from the file extension)")
	return cmd
}

// exportPath reconciles the output file name with an explicit format
func exportPath(output, format string) (string, error) {
	switch strings.ToLower(format) {
	case "":
		return output, nil
	case "json":
		return strings.TrimSuffix(output, filepath.Ext(output)) + ".json", nil
	case "yaml", "yml":
		ext := strings.ToLower(filepath.Ext(output))
		if ext == ".yaml" || ext == ".yml" {
			return output, nil
		}
		return strings.TrimSuffix(output, filepath.Ext(output)) + ".yaml", nil
	}
	return "", fmt.Errorf("unknown format %q: want json or yaml", format)
}

func (a *app) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect saved settings profiles",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show FILE",
		Short: "Print a profile saved with optimize --save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !strings.ContainsRune(path, filepath.Separator) && filepath.Ext(path) == "" {
				path = filepath.Join(services.DefaultProfileDir(), services.SafeProfileName(path)+".json")
			}
			profile, err := services.ImportProfile(path)
			if err != nil {
				return err
			}
			a.println(ui.RenderProfile(profile))
			return nil
		},
	})
	return cmd
}
