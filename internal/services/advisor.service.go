package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gpuadvisor/internal/models"

	"github.com/sashabaranov/go-openai"
)

// ErrAdvisorDisabled is returned when no API key is configured
var ErrAdvisorDisabled = errors.New("AI advisor disabled: no API key configured")

const (
	defaultAdvisorModel     = "claude-sonnet-4-20250514"
	defaultAdvisorMaxTokens = 2000
)

const advisorSystemPrompt = `You are an expert PC gaming optimization advisor with deep knowledge of:
- GPU architectures and capabilities (NVIDIA, AMD, Intel)
- Game engine requirements and optimization techniques
- Graphics settings and their performance impact
- Resolution scaling technologies (DLSS, FSR, XeSS)
- Ray tracing performance characteristics

Provide accurate, practical recommendations for game settings based on the user's hardware.
Be honest about limitations. If you are not confident about a specific game's performance, say so with lower confidence.

When giving recommendations, respond with JSON of this structure:
{
    "preset": "recommended overall preset",
    "settings": {"setting_name": "value"},
    "expected_fps": {"min": number, "max": number, "average": number},
    "tips": ["tip1", "tip2"],
    "confidence": "high|medium|low",
    "reasoning": "brief explanation"
}`

// AdvisorConfig configures the hosted model endpoint
type AdvisorConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// ChatClient is the subset of the OpenAI client the advisor needs
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Advisor asks a hosted model for settings advice. Every request carries the
// estimator's own numbers so the model starts from the same baseline.
type Advisor struct {
	client    ChatClient
	model     string
	maxTokens int
	predictor *Predictor
	logger    *slog.Logger
}

// NewAdvisor creates an advisor talking to an OpenAI-compatible endpoint
func NewAdvisor(cfg AdvisorConfig, predictor *Predictor, logger *slog.Logger) (*Advisor, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAdvisorDisabled
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return NewAdvisorWithClient(openai.NewClientWithConfig(clientCfg), cfg, predictor, logger), nil
}

// NewAdvisorWithClient wires an advisor to an existing chat client
func NewAdvisorWithClient(client ChatClient, cfg AdvisorConfig, predictor *Predictor, logger *slog.Logger) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}
	model := cfg.Model
	if model == "" {
		model = defaultAdvisorModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAdvisorMaxTokens
	}
	logger.Info("Initializing AI advisor", "model", model)
	return &Advisor{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		predictor: predictor,
		logger:    logger,
	}
}

type advisorReply struct {
	Preset      string         `json:"preset"`
	Settings    map[string]any `json:"settings"`
	ExpectedFPS struct {
		Min     float64 `json:"min"`
		Max     float64 `json:"max"`
		Average float64 `json:"average"`
	} `json:"expected_fps"`
	Tips       []string `json:"tips"`
	Confidence string   `json:"confidence"`
	Reasoning  string   `json:"reasoning"`
}

// Recommend asks for settings for game at resolution and targetFPS
func (a *Advisor) Recommend(ctx context.Context, gpu *models.GPUInfo, game, resolution string, targetFPS int, priority string) (*models.Advice, error) {
	estimate := a.predictor.FindOptimalSettings(gpu, game, targetFPS, PreferQuality(priority))
	atResolution := a.predictor.Predict(gpu, game, resolution, "high")

	var b strings.Builder
	fmt.Fprintf(&b, "Please provide optimized game settings for the following configuration:\n\n")
	writeGPUContext(&b, gpu)
	fmt.Fprintf(&b, "\nGame: %s\nTarget Resolution: %s\nTarget FPS: %d\nPriority: %s (quality vs performance)\n\n", game, resolution, targetFPS, priority)
	fmt.Fprintf(&b, "A heuristic estimator predicts %d FPS average (%d-%d) at %s High, confidence %s.\n",
		atResolution.FPSAverage, atResolution.FPSMin, atResolution.FPSMax, resolution, atResolution.Confidence)
	fmt.Fprintf(&b, "Its best configuration for the target is %s %s at %d FPS average.\n",
		estimate.Resolution, estimate.Quality, estimate.Prediction.FPSAverage)
	if estimate.Warning != "" {
		fmt.Fprintf(&b, "Estimator warning: %s\n", estimate.Warning)
	}
	b.WriteString("\nRespond with JSON only, no additional text.")

	text, err := a.complete(ctx, advisorSystemPrompt, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: b.String()},
	})
	if err != nil {
		return nil, err
	}

	advice := &models.Advice{
		Game:       game,
		GPUName:    gpu.Name,
		Resolution: resolution,
		TargetFPS:  targetFPS,
		Priority:   priority,
		Estimate:   estimate,
		Text:       text,
	}

	var reply advisorReply
	if err := extractJSON(text, &reply); err != nil {
		a.logger.Warn("Advisor reply was not JSON, keeping raw text", "error", err)
		advice.Confidence = models.ConfidenceLow
		advice.Summary = firstLine(text)
		return advice, nil
	}

	advice.Preset = reply.Preset
	advice.Tips = reply.Tips
	advice.Summary = reply.Reasoning
	if advice.Summary == "" {
		advice.Summary = firstLine(text)
	}
	advice.Confidence = parseConfidence(reply.Confidence)
	if len(reply.Settings) > 0 {
		advice.Settings = make(map[string]string, len(reply.Settings))
		for k, v := range reply.Settings {
			advice.Settings[k] = fmt.Sprint(v)
		}
	}
	return advice, nil
}

// Chat answers a free-form question with the GPU as context
func (a *Advisor) Chat(ctx context.Context, gpu *models.GPUInfo, message string, history []models.ChatMessage) (string, error) {
	var b strings.Builder
	b.WriteString(advisorSystemPrompt)
	b.WriteString("\n\nThe user has the following GPU:\n")
	writeGPUContext(&b, gpu)
	fmt.Fprintf(&b, "- Current Temperature: %.0f°C\n- Current Usage: %.0f%%\n", gpu.Temperature, gpu.GPUUsage)
	b.WriteString("\nPlease help them with their gaming-related questions.")

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})

	return a.complete(ctx, b.String(), messages)
}

func (a *Advisor) complete(ctx context.Context, system string, messages []openai.ChatCompletionMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages: append([]openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
		}, messages...),
	}

	a.logger.Debug("Requesting advisor completion", "model", a.model, "messages", len(req.Messages))
	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		a.logger.Error("Advisor API call failed", "error", err)
		return "", fmt.Errorf("advisor API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("advisor returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func writeGPUContext(b *strings.Builder, gpu *models.GPUInfo) {
	fmt.Fprintf(b, "GPU: %s\n", gpu.Name)
	fmt.Fprintf(b, "- VRAM: %d MB (%.1f GB)\n", gpu.VRAMTotalMB, float64(gpu.VRAMTotalMB)/1024)
	fmt.Fprintf(b, "- Architecture: %s\n", gpu.Architecture)
	if gpu.CUDACores > 0 {
		fmt.Fprintf(b, "- CUDA Cores: %d\n", gpu.CUDACores)
	}
	fmt.Fprintf(b, "- Performance Tier: %s\n", gpu.Tier)
}

// extractJSON decodes the outermost {...} span of text into v
func extractJSON(text string, v any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return errors.New("no JSON object found")
	}
	return json.Unmarshal([]byte(text[start:end+1]), v)
}

func parseConfidence(s string) models.Confidence {
	switch models.Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case models.ConfidenceHigh:
		return models.ConfidenceHigh
	case models.ConfidenceLow:
		return models.ConfidenceLow
	}
	return models.ConfidenceMedium
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
