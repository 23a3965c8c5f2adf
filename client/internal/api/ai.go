package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// Translate asks the backend to translate a blog into the target language.
func Translate(ctx context.Context, httpClient HTTPClient, baseURL string, req types.TranslateRequest) (*types.TranslateResponse, error) {
	if err := types.ValidateIDPresent(req.BlogID, "blogId"); err != nil {
		return nil, err
	}
	var out types.TranslateResponse
	err := send(ctx, httpClient, call{
		op:     "translate",
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/ai/translate", baseURL),
		in:     req,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
