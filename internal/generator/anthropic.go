package generator

import (
	"context"
	"net/http"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

type anthropicClient struct {
	client *anthropic.Client
	model  string
}

func newAnthropic(apiKey, model, baseURL string, hc *http.Client) *anthropicClient {
	opts := []anthropic.ClientOption{anthropic.WithHTTPClient(hc)}
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &anthropicClient{client: anthropic.NewClient(apiKey, opts...), model: model}
}

func (c *anthropicClient) Name() string { return Anthropic }

func (c *anthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{{
			Role:    anthropic.RoleUser,
			Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(prompt)},
		}},
		MaxTokens: 2048,
	})
	if err != nil {
		return "", &EngineError{Provider: Anthropic, StatusCode: statusFromText(err.Error()), Message: err.Error(), Err: err}
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			text += *block.Text
		}
	}
	return text, nil
}
