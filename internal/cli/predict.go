package cli

import (
	"encoding/json"
	"fmt"

	"gpuadvisor/internal/services"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) predictCmd() *cobra.Command {
	var (
		resolution     string
		quality        string
		allPresets     bool
		allResolutions bool
		asJSON         bool
		output         string
	)
	cmd := &cobra.Command{
		Use:   "predict GAME",
		Short: "Estimate FPS for a game",
		Example: `  gpuadvisor predict "Cyberpunk 2077" -r 2560x1440 -q ultra
  gpuadvisor predict Fortnite --all-presets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game := args[0]
			if resolution == "" {
				resolution = a.cfg.Preferences.Resolution
			}
			if quality == "" {
				quality = a.cfg.Preferences.Quality
			}

			gpu, err := a.detectGPU(cmd.Context())
			if err != nil {
				return err
			}
			p := a.predictor(a.catalog())

			var result any
			var rendered string
			switch {
			case allPresets:
				entries := p.PredictAcrossQualities(gpu, game, resolution)
				result = entries
				rendered = ui.RenderSweep(game+" at "+resolution, "Quality", entries)
			case allResolutions:
				entries := p.PredictAcrossResolutions(gpu, game, quality)
				result = entries
				rendered = ui.RenderSweep(game+" at "+quality, "Resolution", entries)
			default:
				pred := p.Predict(gpu, game, resolution, quality)
				result = pred
				rendered = ui.RenderPrediction(pred)
				if output != "" {
					if err := services.ExportPrediction(pred, output); err != nil {
						return fmt.Errorf("export failed: %w", err)
					}
					rendered += "\n" + ui.Success("Prediction exported to "+output)
				}
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			a.println(rendered)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&resolution, "resolution", "r", "", "resolution WIDTHxHEIGHT (default from preferences)")
	f.StringVarP(&quality, "quality", "q", "", "quality preset: low, medium, high, ultra, extreme")
	f.BoolVar(&allPresets, "all-presets", false, "predict every quality preset")
	f.BoolVar(&allResolutions, "all-resolutions", false, "predict 1080p, 1440p and 4K")
	f.BoolVar(&asJSON, "json", false, "print JSON instead of tables")
	f.StringVarP(&output, "output", "o", "", "also write a single prediction to this file (.json or .yaml)")
	cmd.MarkFlagsMutuallyExclusive("all-presets", "all-resolutions")
	return cmd
}
