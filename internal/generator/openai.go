package generator

import (
	"context"
	"net/http"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAI(apiKey, model, baseURL string, hc *http.Client) *openAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = hc
	return &openAIClient{client: openai.NewClientWithConfig(config), model: model}
}

func (c *openAIClient) Name() string { return OpenAI }

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", &EngineError{Provider: OpenAI, StatusCode: statusFromText(err.Error()), Message: err.Error(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &EngineError{Provider: OpenAI, Message: "empty response from OpenAI"}
	}
	return resp.Choices[0].Message.Content, nil
}
