package provider

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	"github.com/quizhero/core/internal/models"
)

// LLMClient is the interface both provider implementations satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Client wraps an LLMClient and adds quiz-specific generation methods.
type Client struct {
	llm   LLMClient
	model string
}

func NewClient(model string, mock bool) *Client {
	var llm LLMClient

	if mock || os.Getenv("MOCK_PROVIDER") == "true" {
		llm = NewMockClient()
		model = "mock"
		log.Println("[provider] using mock data")
	} else {
		if model == "" {
			model = os.Getenv("ANTHROPIC_MODEL")
		}
		if model == "" {
			model = "claude-sonnet-4-20250514"
		}
		llm = NewAPIClient(model)
		log.Println("[provider] using Anthropic API:", model)
	}

	return &Client{llm: llm, model: model}
}

func (c *Client) ModelName() string {
	return c.model
}

// GenerateQuiz requests a batch of questions for a topic. A single
// attempt is made; any failure is reported to the caller, which owns
// the fallback decision.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, count int, difficulty models.Difficulty) ([]models.Question, error) {
	systemPrompt := QuizSystemPrompt()
	userPrompt := BuildQuizUserPrompt(topic, count, difficulty)

	resp, err := c.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	questions, err := ParseQuestions(resp.Content, topic, difficulty)
	if err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.8),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic API call failed: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      buildMockJSON(),
		PromptTokens: 400,
		OutputTokens: 1200,
	}, nil
}

func buildMockJSON() string {
	topics := []string{
		"rivers of India", "space exploration", "classical music",
		"world capitals", "famous inventions",
	}

	questions := "["
	for i := 0; i < 10; i++ {
		topic := topics[i%len(topics)]
		if i > 0 {
			questions += ","
		}
		questions += fmt.Sprintf(`{"question":"[Mock] Question %d about %s?","options":["[Mock] Right answer %d","[Mock] Wrong answer A%d","[Mock] Wrong answer B%d","[Mock] Wrong answer C%d"],"correctAnswer":"[Mock] Right answer %d","category":"GK","difficulty":"Medium"}`,
			i+1, topic, i+1, i+1, i+1, i+1, i+1)
	}
	questions += "]"

	return questions
}
