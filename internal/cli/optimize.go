package cli

import (
	"errors"
	"fmt"

	"gpuadvisor/internal/services"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) optimizeCmd() *cobra.Command {
	var (
		targetFPS int
		priority  string
		useAI     bool
		saveAs    string
	)
	cmd := &cobra.Command{
		Use:   "optimize GAME",
		Short: "Find the best settings that reach a target frame rate",
		Example: `  gpuadvisor optimize "Elden Ring" --fps 60
  gpuadvisor optimize Valorant --fps 144 --priority performance --save valorant-144`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game := args[0]
			if targetFPS == 0 {
				targetFPS = a.cfg.Preferences.TargetFPS
			}
			if targetFPS < 0 {
				return fmt.Errorf("invalid --fps %d: must be positive", targetFPS)
			}
			if priority == "" {
				priority = a.cfg.Preferences.Priority
			}
			switch priority {
			case "quality", "balanced", "performance":
			default:
				return fmt.Errorf("invalid --priority %q: want quality, balanced or performance", priority)
			}

			gpu, err := a.detectGPU(cmd.Context())
			if err != nil {
				return err
			}
			p := a.predictor(a.catalog())

			result := p.FindOptimalSettings(gpu, game, targetFPS, services.PreferQuality(priority))
			a.println(ui.RenderSettings(result, targetFPS))

			if useAI {
				advisor, err := a.advisor(p)
				if errors.Is(err, services.ErrAdvisorDisabled) {
					a.println(ui.Warning(err.Error() + "; set advisor.api_key or ANTHROPIC_API_KEY"))
				} else if err != nil {
					return err
				} else {
					advice, err := advisor.Recommend(cmd.Context(), gpu, game, result.Resolution, targetFPS, priority)
					if err != nil {
						return err
					}
					a.println(ui.RenderAdvice(advice))
				}
			}

			if saveAs != "" {
				path, err := services.ExportProfile(services.ProfileFromSettings(saveAs, gpu.Name, game, result), "")
				if err != nil {
					return err
				}
				a.println(ui.Success("Profile saved to " + path))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&targetFPS, "fps", 0, "target frame rate (default from preferences)")
	f.StringVarP(&priority, "priority", "p", "", "quality, balanced or performance")
	f.BoolVar(&useAI, "ai", false, "also ask the AI advisor")
	f.StringVar(&saveAs, "save", "", "save the result as a named profile")
	return cmd
}
