package generator

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genai"
)

// geminiClient completes prompts through the Gemini API.
type geminiClient struct {
	model string
	api   *genai.Client
}

// newGemini builds the SDK client. baseURL overrides the public endpoint; the
// SDK appends the API version and model path.
func newGemini(apiKey, model, baseURL string, hc *http.Client) (*geminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	api, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, &EngineError{Provider: Gemini, Message: err.Error(), Err: err}
	}
	return &geminiClient{model: model, api: api}, nil
}

func (c *geminiClient) Name() string { return Gemini }

func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", geminiError(err)
	}
	if len(resp.Candidates) == 0 {
		return "", &EngineError{Provider: Gemini, Message: "no candidates in response"}
	}
	return resp.Text(), nil
}

// geminiError keeps the API status code so Classify sees rate limits and key
// problems.
func geminiError(err error) error {
	code, msg := 0, ""
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code, msg = apiErr.Code, apiErr.Message
	case errors.As(err, &apiErrPtr):
		code, msg = apiErrPtr.Code, apiErrPtr.Message
	default:
		return &EngineError{Provider: Gemini, Message: err.Error(), Err: err}
	}
	if msg == "" {
		msg = "Failed to fetch response"
	}
	return &EngineError{Provider: Gemini, StatusCode: code, Message: msg, Err: err}
}
