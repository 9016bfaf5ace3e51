package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep debt assistant.

You receive one user's sleep debt report, trend analysis and a projected
recovery plan. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's current sleep debt situation in clear, neutral language.
- Highlight patterns in nightly duration, weekday differences and the trend direction.
- Explain what the recovery plan asks of them in practical terms.
- Give practical, behavioral suggestions to pay down debt and keep it down.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, weekend catch-up).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the debt level, the trend, and what the plan requires.",
  "observations": [
    "3-6 bullet points about patterns in debt accumulation, weekday/weekend differences, and short nights.",
    "At least one item about the trend direction over the window.",
    "If relevant, one item about missing or unlogged days."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion tied to the plan's early nights.",
    "Include at least one suggestion about schedule regularity if weekday means vary widely."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's sleep data.

- "profile" holds their personal targets and wake time.
- "debt" is the per-night cumulative debt series over the last 30 days,
  including missing and unlogged dates.
- "trends" aggregates the same window: means, weekday breakdown, best and
  worst nights, and a trend classification.
- "plan" is a two-week recovery schedule that drains the current debt.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating sleep insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string

	// Optional replacement for the built-in system prompt, e.g. one
	// managed in Langfuse.
	systemPromptOverride string
}

// UseSystemPrompt replaces the built-in system prompt. Empty input keeps
// the default.
func (c *OpenAIClient) UseSystemPrompt(prompt string) {
	if c == nil || prompt == "" {
		return
	}
	c.systemPromptOverride = prompt
}

func (c *OpenAIClient) effectiveSystemPrompt() string {
	if c.systemPromptOverride != "" {
		return c.systemPromptOverride
	}
	return systemPrompt
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate sleep insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.effectiveSystemPrompt()),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
