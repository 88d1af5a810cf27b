package services

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"gpuadvisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smiOutput = `0, NVIDIA GeForce RTX 3070, GPU-8d1c, 535.104.05, 8192, 1024, 7168, 55, 30, 12, 120.50, 220.00, 4, 16
1, NVIDIA GeForce GTX 1060 6GB, GPU-2f3a, 535.104.05, 6144, [N/A], [N/A], 41, 0, 0, [N/A], [N/A], 3, 8
`

func TestParseNvidiaSMI(t *testing.T) {
	gpus, err := ParseNvidiaSMI(smiOutput)
	require.NoError(t, err)
	require.Len(t, gpus, 2)

	first := gpus[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "NVIDIA GeForce RTX 3070", first.Name)
	assert.Equal(t, "NVIDIA", first.Vendor)
	assert.Equal(t, "GPU-8d1c", first.UUID)
	assert.Equal(t, 8192, first.VRAMTotalMB)
	assert.Equal(t, 1024, first.VRAMUsedMB)
	assert.InDelta(t, 55.0, first.Temperature, 1e-9)
	assert.InDelta(t, 120.5, first.PowerDraw, 1e-9)
	assert.Equal(t, 4, first.PCIeGen)
	assert.Equal(t, 16, first.PCIeWidth)
	// Enriched from the specifications table
	assert.Equal(t, 5888, first.CUDACores)
	assert.Equal(t, "Ampere", first.Architecture)
	assert.Equal(t, "High-End", first.Tier)

	second := gpus[1]
	assert.Zero(t, second.VRAMUsedMB)
	assert.Zero(t, second.PowerDraw)
	assert.Equal(t, "Pascal", second.Architecture)
}

func TestParseNvidiaSMIErrors(t *testing.T) {
	_, err := ParseNvidiaSMI("0, RTX 3070, GPU-1\n")
	assert.Error(t, err)

	gpus, err := ParseNvidiaSMI("\n\n")
	assert.NoError(t, err)
	assert.Empty(t, gpus)
}

func TestNvidiaSMIProviderDetect(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		err     error
		wantErr error
		wantLen int
	}{
		{name: "two gpus", out: smiOutput, wantLen: 2},
		{name: "tool missing", err: exec.ErrNotFound, wantErr: ErrNoGPU},
		{name: "no devices", out: "", wantErr: ErrNoGPU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []string
			p := &NvidiaSMIProvider{Run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
				gotArgs = args
				return []byte(tt.out), tt.err
			}}

			gpus, err := p.Detect(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, gpus, tt.wantLen)
			assert.Contains(t, gotArgs, "--format=csv,noheader,nounits")
		})
	}

	failing := &NvidiaSMIProvider{Run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 9")
	}}
	_, err := failing.Detect(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoGPU)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider("NVIDIA GeForce RTX 4070", 12288, "")
	gpu, err := PrimaryGPU(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA", gpu.Vendor)
	assert.Equal(t, 12288, gpu.VRAMTotalMB)
	assert.Equal(t, "Ada Lovelace", gpu.Architecture)

	custom := NewStaticProvider("Radeon RX 7800 XT", 16384, "RDNA 3")
	assert.Equal(t, "AMD", custom.GPU.Vendor)
	assert.Equal(t, "RDNA 3", custom.GPU.Architecture)
	assert.Equal(t, "Unknown", custom.GPU.Tier)

	_, err = PrimaryGPU(context.Background(), NewStaticProvider(" ", 0, ""))
	assert.ErrorIs(t, err, ErrNoGPU)
}

func TestVendorFromName(t *testing.T) {
	assert.Equal(t, "NVIDIA", vendorFromName("GeForce GTX 1080"))
	assert.Equal(t, "AMD", vendorFromName("AMD Radeon RX 6800"))
	assert.Equal(t, "Intel", vendorFromName("Intel Arc A770"))
	assert.Equal(t, "Unknown", vendorFromName("Voodoo 5"))
}

func TestEnrichGPUKeepsMeasuredValues(t *testing.T) {
	gpu := models.GPUInfo{Name: "RTX 3080", CUDACores: 1, Architecture: "Custom"}
	EnrichGPU(&gpu)
	assert.Equal(t, 1, gpu.CUDACores)
	assert.Equal(t, "Custom", gpu.Architecture)
	assert.Equal(t, 1440, gpu.BaseClockMHz)
}
