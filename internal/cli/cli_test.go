package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gpuadvisor/internal/config"
	"gpuadvisor/internal/models"
	"gpuadvisor/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type noGPU struct{}

func (noGPU) Detect(context.Context) ([]models.GPUInfo, error) { return nil, services.ErrNoGPU }

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, provider services.GPUProvider, mutate func(*config.Config), args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	a := &app{
		cfg:      cfg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		provider: provider,
	}
	root := a.rootCmd()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func rtx3070() services.GPUProvider {
	return services.NewStaticProvider("NVIDIA GeForce RTX 3070", 8192, "")
}

func TestPredictCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		res := execute(t, rtx3070(), nil, "predict", "Cyberpunk 2077", "-r", "1920x1080", "-q", "high", "--json")
		require.NoError(t, res.err)

		var pred models.Prediction
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &pred))
		assert.Equal(t, 66, pred.FPSAverage)
		assert.Equal(t, models.ConfidenceHigh, pred.Confidence)
	})

	t.Run("preferences fill defaults", func(t *testing.T) {
		res := execute(t, rtx3070(), func(c *config.Config) {
			c.Preferences.Resolution = "2560x1440"
			c.Preferences.Quality = "ultra"
		}, "predict", "Fortnite", "--json")
		require.NoError(t, res.err)

		var pred models.Prediction
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &pred))
		assert.Equal(t, "2560x1440", pred.Resolution)
		assert.Equal(t, "ultra", pred.Quality)
	})

	t.Run("quality sweep", func(t *testing.T) {
		res := execute(t, rtx3070(), nil, "predict", "Fortnite", "--all-presets", "--json")
		require.NoError(t, res.err)

		var entries []models.SweepEntry
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
		require.Len(t, entries, len(services.KnownQualities()))
		assert.Equal(t, "low", entries[0].Key)
	})

	t.Run("sweeps are exclusive", func(t *testing.T) {
		res := execute(t, rtx3070(), nil, "predict", "Fortnite", "--all-presets", "--all-resolutions")
		assert.Error(t, res.err)
	})

	t.Run("export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pred.yaml")
		res := execute(t, rtx3070(), nil, "predict", "Cyberpunk 2077", "-r", "1920x1080", "-q", "high", "-o", path)
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Prediction exported to "+path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var pred models.Prediction
		require.NoError(t, yaml.Unmarshal(data, &pred))
		assert.Equal(t, 66, pred.FPSAverage)
	})

	t.Run("no gpu", func(t *testing.T) {
		res := execute(t, noGPU{}, nil, "predict", "Fortnite")
		require.ErrorIs(t, res.err, services.ErrNoGPU)
		assert.Contains(t, res.err.Error(), "--gpu")
	})
}

func TestOptimizeCommand(t *testing.T) {
	t.Run("unreachable target", func(t *testing.T) {
		res := execute(t, services.NewStaticProvider("GTX 1060", 6144, ""), nil,
			"optimize", "Cyberpunk 2077", "--fps", "240")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Cannot achieve 240 FPS even at lowest settings")
		assert.Contains(t, res.stdout, "1280x720")
	})

	t.Run("invalid priority", func(t *testing.T) {
		res := execute(t, rtx3070(), nil, "optimize", "Fortnite", "-p", "speed")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "invalid --priority")
	})

	t.Run("ai without key warns", func(t *testing.T) {
		res := execute(t, rtx3070(), func(c *config.Config) { c.Advisor.APIKey = "" },
			"optimize", "Fortnite", "--ai")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "AI advisor disabled")
	})

	t.Run("save and show profile", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg := config.Default()
		a := &app{cfg: cfg, logger: slog.New(slog.NewTextHandler(io.Discard, nil)), provider: rtx3070()}

		run := func(args ...string) string {
			root := a.rootCmd()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(io.Discard)
			root.SetArgs(args)
			require.NoError(t, root.ExecuteContext(context.Background()))
			return out.String()
		}

		out := run("optimize", "Cyberpunk 2077", "--fps", "60", "--save", "cp 60")
		assert.Contains(t, out, filepath.Join(services.DefaultProfileDir(), "cp_60.json"))

		out = run("profile", "show", "cp 60")
		assert.Contains(t, out, "cp 60")
		assert.Contains(t, out, "quality_preset")
		assert.Contains(t, out, "Cyberpunk 2077")
	})
}

func TestCompareCommand(t *testing.T) {
	res := execute(t, rtx3070(), nil, "compare", "RTX 4090", "-g", "Cyberpunk 2077")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "+88 FPS (+133.3%)")

	res = execute(t, rtx3070(), nil, "compare", "RTX 4090")
	require.NoError(t, res.err)
	for _, game := range services.DefaultComparisonGames {
		assert.Contains(t, res.stdout, game)
	}
}

func TestListGamesCommand(t *testing.T) {
	res := execute(t, rtx3070(), nil, "list-games", "-s", "of")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "God of War Ragnarok")
	assert.Contains(t, res.stdout, "Games (2)")

	res = execute(t, rtx3070(), nil, "list-games")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Games (15)")

	res = execute(t, rtx3070(), nil, "list-games", "-f", "hairworks")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "unknown feature")
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "gpu.yml")
	res := execute(t, rtx3070(), nil, "export", "-o", path, "-g", "Alan Wake 2")
	require.NoError(t, res.err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alan Wake 2")
	assert.Contains(t, string(data), "RTX 3070")

	res = execute(t, rtx3070(), nil, "export", "--format", "xml")
	assert.Error(t, res.err)
}

func TestExportPath(t *testing.T) {
	tests := []struct {
		output, format string
		want           string
		wantErr        bool
	}{
		{"gpu_profile.json", "", "gpu_profile.json", false},
		{"gpu_profile.json", "yaml", "gpu_profile.yaml", false},
		{"gpu_profile.yml", "YAML", "gpu_profile.yml", false},
		{"gpu_profile.yaml", "json", "gpu_profile.json", false},
		{"gpu_profile", "json", "gpu_profile.json", false},
		{"gpu_profile.json", "toml", "", true},
	}
	for _, tt := range tests {
		got, err := exportPath(tt.output, tt.format)
		if tt.wantErr {
			assert.Error(t, err, tt.format)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTokenCommand(t *testing.T) {
	secret := func(c *config.Config) { c.Server.SecretKey = "cli-test-secret-key-0123456789abcdefgh" }

	res := execute(t, rtx3070(), secret, "token", "-n", "living-room")
	require.NoError(t, res.err)
	token := strings.TrimSpace(res.stdout)
	assert.Equal(t, 2, strings.Count(token, "."))
	assert.Contains(t, res.stderr, "/ws?token="+token)

	auth := services.NewAuthService("cli-test-secret-key-0123456789abcdefgh", "", 0)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "living-room", claims.ClientName)

	res = execute(t, rtx3070(), secret, "token", "-n", "living room")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid client name")
}

func TestConfigCommand(t *testing.T) {
	t.Run("show masks secrets", func(t *testing.T) {
		res := execute(t, rtx3070(), func(c *config.Config) {
			c.Advisor.APIKey = "sk-ant-very-secret"
			c.Server.SecretKey = "server-secret"
		}, "config", "show")
		require.NoError(t, res.err)
		assert.NotContains(t, res.stdout, "sk-ant-very-secret")
		assert.NotContains(t, res.stdout, "server-secret")
		assert.Contains(t, res.stdout, "********")

		var shown config.Config
		require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &shown))
		assert.Equal(t, config.Default().Preferences, shown.Preferences)
	})

	t.Run("init refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		res := execute(t, rtx3070(), nil, "config", "init", path)
		require.NoError(t, res.err)
		assert.FileExists(t, path)

		res = execute(t, rtx3070(), nil, "config", "init", path)
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "already exists")

		res = execute(t, rtx3070(), nil, "config", "init", path, "--force")
		require.NoError(t, res.err)
	})
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, rtx3070(), nil, "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "gpuadvisor "+Version))
}

func TestServeHandlers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	cfg.Advisor.APIKey = ""
	cfg.Server.SecretKey = "serve-test-secret-key-0123456789abcdef"
	a := &app{cfg: cfg, logger: slog.New(slog.NewTextHandler(io.Discard, nil)), provider: rtx3070()}

	h := a.handlers()
	assert.Nil(t, h.Advisor)
	require.NotNil(t, h.Metrics)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Hub.Run(ctx)
	client := &services.ClientConnection{ID: "c1", Name: "dashboard", Send: make(chan services.WebSocketMessage, 8)}
	h.Hub.Register(client)
	require.Eventually(t, func() bool { return h.Hub.ClientCount() == 1 }, time.Second, time.Millisecond)

	h.History.Collect(ctx)
	assert.Equal(t, 1, h.History.Summary().Samples)
	assert.Equal(t, "NVIDIA GeForce RTX 3070", h.History.Summary().GPUName)

	// Every history sample is pushed to connected clients
	deadline := time.After(2 * time.Second)
	for sampled := false; !sampled; {
		select {
		case msg := <-client.Send:
			sampled = msg.Type == "sample"
		case <-deadline:
			t.Fatal("no sample broadcast")
		}
	}

	token, err := h.Auth.GenerateToken("dashboard")
	require.NoError(t, err)
	_, err = h.Auth.ValidateToken(token)
	assert.NoError(t, err)
}
