// Package cli wires the advisor's services into cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gpuadvisor/internal/config"
	"gpuadvisor/internal/models"
	"gpuadvisor/internal/services"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X gpuadvisor/internal/cli.Version=..."
var Version = "dev"

// app carries flags and lazily built services shared by every command
type app struct {
	cfgFile string
	gpuName string
	vramMB  int
	arch    string

	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer

	// provider overrides GPU detection; used by tests
	provider services.GPUProvider
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gpuadvisor",
		Short: "Estimate game FPS on your GPU and find the best settings",
		Long: `gpuadvisor detects your graphics card, estimates frame rates for popular
games at any resolution and quality preset, searches for the best settings
that reach a target frame rate and compares GPUs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./config.yaml or ~/.gpu-advisor/config.yaml)")
	pf.StringVar(&a.gpuName, "gpu", "", "describe the GPU by name instead of detecting it")
	pf.IntVar(&a.vramMB, "vram", 0, "VRAM in MB for --gpu")
	pf.StringVar(&a.arch, "arch", "", "architecture for --gpu")

	root.AddCommand(
		a.analyzeCmd(),
		a.predictCmd(),
		a.optimizeCmd(),
		a.compareCmd(),
		a.listGamesCmd(),
		a.monitorCmd(),
		a.exportCmd(),
		a.profileCmd(),
		a.askCmd(),
		a.serveCmd(),
		a.tokenCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	if a.cfg != nil {
		return nil
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(a.errOut)
	slog.SetDefault(a.logger)
	return nil
}

// Execute runs the CLI and exits non-zero on error
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

func (a *app) gpuProvider() services.GPUProvider {
	if a.provider != nil {
		return a.provider
	}
	if a.gpuName != "" {
		vram := a.vramMB
		if vram == 0 {
			vram = a.cfg.GPU.VRAMMB
		}
		return services.NewStaticProvider(a.gpuName, vram, a.arch)
	}
	if a.cfg.GPU.Name != "" {
		return services.NewStaticProvider(a.cfg.GPU.Name, a.cfg.GPU.VRAMMB, a.cfg.GPU.Architecture)
	}
	return services.NewNvidiaSMIProvider()
}

func (a *app) detectGPU(ctx context.Context) (*models.GPUInfo, error) {
	gpu, err := services.PrimaryGPU(ctx, a.gpuProvider())
	if errors.Is(err, services.ErrNoGPU) {
		return nil, fmt.Errorf("%w: install NVIDIA drivers or pass --gpu \"RTX 3070\" --vram 8192", err)
	}
	return gpu, err
}

func (a *app) catalog() *services.Catalog {
	return services.NewCatalog(a.cfg.Catalog.CustomDatabase)
}

func (a *app) predictor(catalog *services.Catalog) *services.Predictor {
	return services.NewPredictorFromCatalog(catalog, a.logger)
}

func (a *app) advisor(p *services.Predictor) (*services.Advisor, error) {
	return services.NewAdvisor(services.AdvisorConfig{
		APIKey:    a.cfg.Advisor.APIKey,
		Model:     a.cfg.Advisor.Model,
		BaseURL:   a.cfg.Advisor.BaseURL,
		MaxTokens: a.cfg.Advisor.MaxTokens,
	}, p, a.logger)
}

func (a *app) println(s string) {
	fmt.Fprintln(a.out, s)
}
