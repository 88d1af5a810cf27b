package cli

import (
	"gpuadvisor/internal/services"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) analyzeCmd() *cobra.Command {
	var showSystem bool
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show GPU specifications, host status and suggested settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			gpu, err := a.detectGPU(ctx)
			if err != nil {
				return err
			}
			a.println(ui.RenderGPU(gpu))

			catalog := a.catalog()
			if showSystem {
				cache := services.NewGPUCache(a.gpuProvider(), 0)
				a.println(ui.RenderSystem(services.GetSystemStatus(ctx, cache, catalog)))
			}

			p := a.predictor(catalog)
			target := a.cfg.Preferences.TargetFPS
			preferQuality := services.PreferQuality(a.cfg.Preferences.Priority)
			entries := p.OptimalAcrossGames(gpu, nil, target, preferQuality)
			a.println(ui.RenderGameSettings(entries, target))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSystem, "system", true, "include CPU, memory and running games")
	return cmd
}
