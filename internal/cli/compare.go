package cli

import (
	"gpuadvisor/internal/models"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		game       string
		resolution string
		quality    string
	)
	cmd := &cobra.Command{
		Use:     "compare OTHER_GPU",
		Short:   "Compare your GPU with another GPU",
		Example: `  gpuadvisor compare "RTX 4070" -g "Cyberpunk 2077"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gpu, err := a.detectGPU(cmd.Context())
			if err != nil {
				return err
			}
			p := a.predictor(a.catalog())

			var results []*models.ComparisonResult
			if game != "" {
				results = []*models.ComparisonResult{p.CompareGPUs(gpu, args[0], game, resolution, quality)}
			} else {
				results = p.CompareAcrossGames(gpu, args[0], nil)
			}
			a.println(ui.RenderComparisons(results))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&game, "game", "g", "", "compare for one game (default: a set of popular games)")
	f.StringVarP(&resolution, "resolution", "r", "1920x1080", "resolution for --game")
	f.StringVarP(&quality, "quality", "q", "high", "quality preset for --game")
	return cmd
}
