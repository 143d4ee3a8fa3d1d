package headline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicGenerator struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicGenerator(apiKey string) *AnthropicGenerator {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicGenerator{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (g *AnthropicGenerator) SuggestTitles(ctx context.Context, content string, n int) ([]Candidate, error) {
	prepared := PrepareContent(content)
	userPrompt := fmt.Sprintf("Write %d blog post titles for this article:\n\n%s", n, prepared)

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: titleSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic API error: %v", ErrUnavailable, err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("%w: no response from anthropic", ErrUnavailable)
	}

	titles, err := parseTitles(resp.Content[0].Text)
	if err != nil {
		return nil, err
	}

	candidates := candidatesFromTitles(titles, n)
	slog.Info("titles generated", "model", g.modelName, "returned", len(titles), "kept", len(candidates))

	return topUp(candidates, prepared, n), nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
