package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEnhancer implements Enhancer over an OpenAI-compatible API
type OpenAIEnhancer struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int
	systemMsg   string
}

// EnhancerConfig holds settings for the OpenAI-backed enhancer
type EnhancerConfig struct {
	Endpoint     string
	APIKey       string
	Model        string
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
}

const defaultEnhancerPrompt = `You assist a research monitor that classifies posts into themes.
Given post content, the list of candidate theme names and the research goals they serve,
respond with a single JSON object:
{"themes": ["..."], "confidence": 0.0, "suggested_theme": "", "suggested_reason": ""}
- themes: candidate theme names that apply to the content, best first, at most 5, only from the provided list
- confidence: your certainty in the assignment, 0.0 to 1.0
- suggested_theme/suggested_reason: optional, only when the content clearly fits none of the candidates
Respond with the JSON object only, no prose.`

// NewOpenAIEnhancer creates an enhancer client
func NewOpenAIEnhancer(cfg EnhancerConfig) *OpenAIEnhancer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultEnhancerPrompt
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 300
	}
	return &OpenAIEnhancer{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		systemMsg:   systemMsg,
	}
}

// Enhance asks the LLM which candidate themes apply to the content. The
// caller bounds the context with a deadline; any error here degrades to the
// rule-based result.
func (o *OpenAIEnhancer) Enhance(ctx context.Context, content string, candidates, goals []string) (*EnhanceResult, error) {
	prompt := o.buildPrompt(content, candidates, goals)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: float32(o.temperature),
		MaxTokens:   o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("enhancer request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from enhancer")
	}

	return parseEnhancerResponse(resp.Choices[0].Message.Content)
}

func (o *OpenAIEnhancer) buildPrompt(content string, candidates, goals []string) string {
	var b strings.Builder
	b.WriteString("Candidate themes: ")
	b.WriteString(strings.Join(candidates, ", "))
	b.WriteString("\nResearch goals: ")
	b.WriteString(strings.Join(goals, ", "))
	b.WriteString("\n\nPost content:\n")
	// keep the prompt bounded, long posts carry their signal early
	if len(content) > 4000 {
		content = content[:4000]
	}
	b.WriteString(content)
	return b.String()
}

// parseEnhancerResponse extracts the JSON object from the LLM reply,
// tolerating surrounding prose and code fences
func parseEnhancerResponse(reply string) (*EnhanceResult, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no json object found in response")
	}

	var parsed struct {
		Themes          []string `json:"themes"`
		Confidence      float64  `json:"confidence"`
		SuggestedTheme  string   `json:"suggested_theme"`
		SuggestedReason string   `json:"suggested_reason"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("parse enhancer json: %w", err)
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		return nil, fmt.Errorf("enhancer confidence %.2f out of range", parsed.Confidence)
	}
	return &EnhanceResult{
		Themes:          parsed.Themes,
		Confidence:      parsed.Confidence,
		SuggestedTheme:  parsed.SuggestedTheme,
		SuggestedReason: parsed.SuggestedReason,
	}, nil
}
