package services

import (
	"context"
	"errors"
	"testing"

	"gpuadvisor/internal/models"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatClient struct {
	reply string
	err   error
	reqs  []openai.ChatCompletionRequest
}

func (f *fakeChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply}}},
	}, nil
}

func newTestAdvisor(client ChatClient) *Advisor {
	return NewAdvisorWithClient(client, AdvisorConfig{}, testPredictor(), quietLogger())
}

func TestNewAdvisorRequiresKey(t *testing.T) {
	_, err := NewAdvisor(AdvisorConfig{APIKey: "  "}, testPredictor(), quietLogger())
	assert.ErrorIs(t, err, ErrAdvisorDisabled)

	a, err := NewAdvisor(AdvisorConfig{APIKey: "sk-test", BaseURL: "https://example.invalid/v1/"}, testPredictor(), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, defaultAdvisorModel, a.model)
	assert.Equal(t, defaultAdvisorMaxTokens, a.maxTokens)
}

func TestAdvisorRecommend(t *testing.T) {
	client := &fakeChatClient{reply: "Here you go:\n" + `{
		"preset": "High",
		"settings": {"dlss": "Quality", "ray_tracing": false},
		"expected_fps": {"min": 55, "max": 80, "average": 68},
		"tips": ["Enable DLSS Quality"],
		"confidence": "HIGH",
		"reasoning": "The RTX 3070 handles 1440p High with DLSS."
	}`}
	a := newTestAdvisor(client)
	gpu := testGPU("NVIDIA GeForce RTX 3070", 8192)

	advice, err := a.Recommend(context.Background(), gpu, "Cyberpunk 2077", "2560x1440", 60, "balanced")
	require.NoError(t, err)

	assert.Equal(t, "High", advice.Preset)
	assert.Equal(t, map[string]string{"dlss": "Quality", "ray_tracing": "false"}, advice.Settings)
	assert.Equal(t, []string{"Enable DLSS Quality"}, advice.Tips)
	assert.Equal(t, models.ConfidenceHigh, advice.Confidence)
	assert.Equal(t, "The RTX 3070 handles 1440p High with DLSS.", advice.Summary)
	require.NotNil(t, advice.Estimate)
	assert.Equal(t, testPredictor().FindOptimalSettings(gpu, "Cyberpunk 2077", 60, true), advice.Estimate)

	require.Len(t, client.reqs, 1)
	req := client.reqs[0]
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "Game: Cyberpunk 2077")
	assert.Contains(t, req.Messages[1].Content, "Target FPS: 60")
	assert.Contains(t, req.Messages[1].Content, "A heuristic estimator predicts")
}

func TestAdvisorRecommendFreeText(t *testing.T) {
	a := newTestAdvisor(&fakeChatClient{reply: "Play on medium.\nIt will be fine."})

	advice, err := a.Recommend(context.Background(), testGPU("GTX 1060", 6144), "Elden Ring", "1920x1080", 60, "performance")
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceLow, advice.Confidence)
	assert.Equal(t, "Play on medium.", advice.Summary)
	assert.Equal(t, "Play on medium.\nIt will be fine.", advice.Text)
}

func TestAdvisorErrors(t *testing.T) {
	a := newTestAdvisor(&fakeChatClient{err: errors.New("rate limited")})
	_, err := a.Recommend(context.Background(), testGPU("RTX 3070", 8192), "Fortnite", "1920x1080", 144, "quality")
	assert.ErrorContains(t, err, "rate limited")

	_, err = a.Chat(context.Background(), testGPU("RTX 3070", 8192), "hi", nil)
	assert.Error(t, err)
}

func TestAdvisorChatCarriesHistory(t *testing.T) {
	client := &fakeChatClient{reply: "Yes, 8GB is enough at 1440p for most games."}
	a := newTestAdvisor(client)

	history := []models.ChatMessage{
		{Role: openai.ChatMessageRoleUser, Content: "What GPU do I have?"},
		{Role: openai.ChatMessageRoleAssistant, Content: "An RTX 3070."},
	}
	answer, err := a.Chat(context.Background(), testGPU("NVIDIA GeForce RTX 3070", 8192), "Is 8GB enough?", history)
	require.NoError(t, err)
	assert.Equal(t, client.reply, answer)

	req := client.reqs[0]
	require.Len(t, req.Messages, 4)
	assert.Contains(t, req.Messages[0].Content, "NVIDIA GeForce RTX 3070")
	assert.Equal(t, "An RTX 3070.", req.Messages[2].Content)
	assert.Equal(t, "Is 8GB enough?", req.Messages[3].Content)
}

func TestExtractJSONAndConfidence(t *testing.T) {
	var v struct{ A int }
	require.NoError(t, extractJSON("noise {\"A\": 3} trailing", &v))
	assert.Equal(t, 3, v.A)
	assert.Error(t, extractJSON("no braces", &v))

	assert.Equal(t, models.ConfidenceLow, parseConfidence(" low "))
	assert.Equal(t, models.ConfidenceMedium, parseConfidence("somewhat"))
}
