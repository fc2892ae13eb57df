package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/config"
	"github.com/leandroquiroga/interview-platform-ai/internal/entity"
	"github.com/leandroquiroga/interview-platform-ai/internal/integration/llm"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/prompt"
	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/questionparser"
)

func gatewayConfig(url string) config.LLMConnectorConfig {
	return config.LLMConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           time.Second,
			KeepAlive:             time.Second,
			IdleConnTimeout:       time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			Token:                 "gw-token",
			Url:                   url,
		},
		Provider:         config.ProviderHTTP,
		GenerateEndpoint: "/generate",
	}
}

func TestConnector_Generate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "Bearer gw-token", r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["prompt"])

		_, _ = w.Write([]byte(`{"text":"[\"Q1\"]"}`))
	}))
	defer srv.Close()

	c := llm.NewConnector(gatewayConfig(srv.URL), zap.NewNop())
	text, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `["Q1"]`, text)
}

func TestConnector_GenerateErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") != "" {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"text":""}`))
	}))
	defer srv.Close()

	c := llm.NewConnector(gatewayConfig(srv.URL), zap.NewNop())
	_, err := c.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)

	cfg := gatewayConfig(srv.URL)
	cfg.GenerateEndpoint = "/generate?fail=1"
	_, err = llm.NewConnector(cfg, zap.NewNop()).Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGeminiClient_Generate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-2.0-flash-001:generateContent"), r.URL.Path)

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if assert.Len(t, body.Contents, 1) && assert.Len(t, body.Contents[0].Parts, 1) {
			assert.Equal(t, "the prompt", body.Contents[0].Parts[0].Text)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"[\"Q1\","},{"text":"\"Q2\"]"}]}}]}`))
	}))
	defer srv.Close()

	c, err := llm.NewGeminiClient(context.Background(), config.GeminiConfig{
		APIKey:          "test-key",
		Model:           "gemini-2.0-flash-001",
		MaxOutputTokens: 256,
		Temperature:     0.5,
		Timeout:         5 * time.Second,
	}, llm.WithBaseURL(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "gemini:gemini-2.0-flash-001", c.Name())

	text, err := c.Generate(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, `["Q1","Q2"]`, text)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, err := llm.NewGeminiClient(context.Background(), config.GeminiConfig{
		APIKey: "test-key",
		Model:  "gemini-2.0-flash-001",
	}, llm.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "the prompt")
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}

func TestMockConnector_FollowsPrompt(t *testing.T) {
	t.Parallel()

	m := llm.NewMockConnector(zap.NewNop())

	req := &entity.InterviewRequest{
		Role:      "Backend",
		Level:     "senior",
		Techstack: "Go",
		Type:      entity.InterviewTypeTechnical,
		Amount:    4,
		Mode:      entity.ModeQuestionsOnly,
	}
	raw, err := m.Generate(context.Background(), prompt.Build(req))
	require.NoError(t, err)

	qs, err := questionparser.Parse(raw, entity.ModeQuestionsOnly)
	require.NoError(t, err)
	assert.Len(t, qs, 4)
	assert.Contains(t, qs[0].Question, "Backend")

	req.Mode = entity.ModeQuestionsWithAnswers
	req.Amount = 2
	raw, err = m.Generate(context.Background(), prompt.Build(req))
	require.NoError(t, err)

	qs, err = questionparser.Parse(raw, entity.ModeQuestionsWithAnswers)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.NotNil(t, qs[1].Answer)
}
