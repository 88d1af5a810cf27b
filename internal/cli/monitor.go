package cli

import (
	"fmt"
	"time"

	"gpuadvisor/internal/models"
	"gpuadvisor/internal/services"
	"gpuadvisor/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) monitorCmd() *cobra.Command {
	var (
		duration time.Duration
		refresh  time.Duration
		export   string
	)
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Watch GPU temperature, usage and power in real time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if refresh <= 0 {
				refresh = a.cfg.Monitoring.RefreshRate
			}

			ctx := cmd.Context()
			if _, err := a.detectGPU(ctx); err != nil {
				return err
			}

			// TTL below refresh so every tick reads fresh telemetry
			cache := services.NewGPUCache(a.gpuProvider(), refresh/2)
			collector := services.NewHistoryCollector(cache, a.cfg.Monitoring.HistoryPoints)
			if a.cfg.Monitoring.LogMetrics {
				collector.OnSample = func(gpu *models.GPUInfo, sample models.GPUHistory) {
					a.logger.Info("GPU sample",
						"gpu", gpu.Name,
						"temperature", sample.Temperature,
						"usage", sample.GPUUsage,
						"power_w", sample.PowerDraw,
					)
				}
			}

			summary, err := ui.RunMonitor(ctx, collector, refresh, duration)
			if err != nil {
				return err
			}
			a.println(ui.RenderSummary(summary))

			if export != "" {
				if err := services.ExportSession(collector, export); err != nil {
					return fmt.Errorf("failed to export session: %w", err)
				}
				a.println(ui.Success("Session exported to " + export))
			}
			return nil
		},
	}
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "stop after this long (default: until q)")
	cmd.Flags().DurationVarP(&refresh, "refresh", "r", 0, "refresh interval (default from monitoring.refresh_rate)")
	cmd.Flags().StringVarP(&export, "export", "o", "", "write the session summary and samples to this JSON or YAML file")
	return cmd
}
