package headline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const titleSystemPrompt = `You are a blog editor. Given article content, write short, catchy blog post titles.

Rules:
1. Each title is 3 to 12 words
2. Titles must be distinct from each other
3. No quotes, no numbering, no trailing punctuation
4. Stay faithful to the article content, no clickbait that the article cannot back up

Output as JSON only, no other text:
{
  "titles": ["first title", "second title"]
}`

type OpenAIGenerator struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIGenerator{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (g *OpenAIGenerator) SuggestTitles(ctx context.Context, content string, n int) ([]Candidate, error) {
	prepared := PrepareContent(content)
	userPrompt := fmt.Sprintf("Write %d blog post titles for this article:\n\n%s", n, prepared)

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(titleSystemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai API error: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response from openai", ErrUnavailable)
	}

	titles, err := parseTitles(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	candidates := candidatesFromTitles(titles, n)
	slog.Info("titles generated", "model", g.modelName, "returned", len(titles), "kept", len(candidates))

	return topUp(candidates, prepared, n), nil
}

func parseTitles(content string) ([]string, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Titles []string `json:"titles"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return parsed.Titles, nil
}
