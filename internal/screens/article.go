package screens

import (
	"context"
	"errors"

	"github.com/khushisingh18/Ai-blog-website/internal/generator"
)

// ArticleGenerator drafts an article for a topic.
type ArticleGenerator struct {
	Engine generator.Generator
	TTY    bool
}

// Generate returns the rendered article. Provider failures become a
// FailureError carrying the provider hint.
func (a *ArticleGenerator) Generate(ctx context.Context, topic string) (string, error) {
	text, err := generator.Article(ctx, a.Engine, topic)
	if err != nil {
		var engErr *generator.EngineError
		if errors.As(err, &engErr) {
			return "", &FailureError{Message: engErr.Hint(), Err: err}
		}
		return "", err
	}
	return generator.RenderEmphasis(text, a.TTY), nil
}
