package services

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"gpuadvisor/internal/models"
)

// ErrNoGPU is returned when no GPU could be detected
var ErrNoGPU = errors.New("no GPU detected")

const defaultNvidiaSMIPath = "nvidia-smi"

var nvidiaSMIFields = []string{
	"index", "name", "uuid", "driver_version",
	"memory.total", "memory.used", "memory.free",
	"temperature.gpu", "utilization.gpu", "utilization.memory",
	"power.draw", "power.limit",
	"pcie.link.gen.current", "pcie.link.width.current",
}

// GPUProvider produces GPU descriptors from some telemetry source
type GPUProvider interface {
	Detect(ctx context.Context) ([]models.GPUInfo, error)
}

// CommandRunner runs an external program and returns its stdout
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// NvidiaSMIProvider reads GPU telemetry from the nvidia-smi CLI
type NvidiaSMIProvider struct {
	Path string
	Run  CommandRunner
}

// NewNvidiaSMIProvider returns a provider using nvidia-smi from PATH
func NewNvidiaSMIProvider() *NvidiaSMIProvider {
	return &NvidiaSMIProvider{Path: defaultNvidiaSMIPath, Run: execRunner}
}

// Detect queries all GPUs
func (p *NvidiaSMIProvider) Detect(ctx context.Context) ([]models.GPUInfo, error) {
	run := p.Run
	if run == nil {
		run = execRunner
	}
	path := p.Path
	if path == "" {
		path = defaultNvidiaSMIPath
	}

	out, err := run(ctx, path,
		"--query-gpu="+strings.Join(nvidiaSMIFields, ","),
		"--format=csv,noheader,nounits")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: nvidia-smi not found", ErrNoGPU)
		}
		return nil, fmt.Errorf("nvidia-smi query failed: %w", err)
	}

	gpus, err := ParseNvidiaSMI(string(out))
	if err != nil {
		return nil, err
	}
	if len(gpus) == 0 {
		return nil, ErrNoGPU
	}
	return gpus, nil
}

// ParseNvidiaSMI parses CSV output of the query issued by Detect. Values that
// nvidia-smi reports as unavailable parse as zero.
func ParseNvidiaSMI(output string) ([]models.GPUInfo, error) {
	var gpus []models.GPUInfo
	for lineNo, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < len(nvidiaSMIFields) {
			return nil, fmt.Errorf("nvidia-smi line %d: expected %d fields, got %d", lineNo+1, len(nvidiaSMIFields), len(parts))
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		gpu := models.GPUInfo{
			Index:         parseInt(parts[0]),
			Name:          parts[1],
			Vendor:        "NVIDIA",
			UUID:          parts[2],
			DriverVersion: parts[3],
			VRAMTotalMB:   parseInt(parts[4]),
			VRAMUsedMB:    parseInt(parts[5]),
			VRAMFreeMB:    parseInt(parts[6]),
			Temperature:   parseFloat(parts[7]),
			GPUUsage:      parseFloat(parts[8]),
			MemoryUsage:   parseFloat(parts[9]),
			PowerDraw:     parseFloat(parts[10]),
			PowerLimit:    parseFloat(parts[11]),
			PCIeGen:       parseInt(parts[12]),
			PCIeWidth:     parseInt(parts[13]),
		}
		EnrichGPU(&gpu)
		gpus = append(gpus, gpu)
	}
	return gpus, nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	return int(parseFloat(s))
}

// EnrichGPU fills spec fields (cores, clocks, architecture, tier) from the
// static specifications table when they are not already set.
func EnrichGPU(gpu *models.GPUInfo) {
	spec, ok := LookupGPUSpec(gpu.Name)
	if !ok {
		if gpu.Architecture == "" {
			gpu.Architecture = "Unknown"
		}
		if gpu.Tier == "" {
			gpu.Tier = "Unknown"
		}
		return
	}
	if gpu.CUDACores == 0 {
		gpu.CUDACores = spec.CUDACores
	}
	if gpu.BaseClockMHz == 0 {
		gpu.BaseClockMHz = spec.BaseClockMHz
	}
	if gpu.BoostClockMHz == 0 {
		gpu.BoostClockMHz = spec.BoostClockMHz
	}
	if gpu.Architecture == "" || gpu.Architecture == "Unknown" {
		gpu.Architecture = spec.Architecture
	}
	if gpu.Tier == "" || gpu.Tier == "Unknown" {
		gpu.Tier = spec.Tier
	}
}

// StaticProvider returns a fixed descriptor, for machines without a
// supported GPU tool or when the user names a GPU explicitly.
type StaticProvider struct {
	GPU models.GPUInfo
}

// NewStaticProvider builds a descriptor from a name, VRAM size and
// architecture, enriching the rest from the specifications table.
func NewStaticProvider(name string, vramMB int, architecture string) *StaticProvider {
	gpu := models.GPUInfo{
		Name:         name,
		Vendor:       vendorFromName(name),
		VRAMTotalMB:  vramMB,
		VRAMFreeMB:   vramMB,
		Architecture: architecture,
	}
	EnrichGPU(&gpu)
	return &StaticProvider{GPU: gpu}
}

// Detect returns the configured descriptor
func (p *StaticProvider) Detect(ctx context.Context) ([]models.GPUInfo, error) {
	if strings.TrimSpace(p.GPU.Name) == "" {
		return nil, ErrNoGPU
	}
	return []models.GPUInfo{p.GPU}, nil
}

func vendorFromName(name string) string {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "RTX"), strings.Contains(upper, "GTX"), strings.Contains(upper, "NVIDIA"):
		return "NVIDIA"
	case strings.Contains(upper, "RADEON"), strings.Contains(upper, "AMD"):
		return "AMD"
	case strings.Contains(upper, "ARC"), strings.Contains(upper, "INTEL"):
		return "Intel"
	}
	return "Unknown"
}

// PrimaryGPU returns the first GPU reported by provider
func PrimaryGPU(ctx context.Context, provider GPUProvider) (*models.GPUInfo, error) {
	gpus, err := provider.Detect(ctx)
	if err != nil {
		return nil, err
	}
	if len(gpus) == 0 {
		return nil, ErrNoGPU
	}
	gpu := gpus[0]
	return &gpu, nil
}
