package screens

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/client"
	"github.com/khushisingh18/Ai-blog-website/internal/generator"
	"github.com/khushisingh18/Ai-blog-website/internal/speech"
)

// BlogView is an opened blog with its reader-side state.
type BlogView struct {
	Blog     client.Blog
	Comments []client.Comment
	IsLiked  bool
	Likes    int
	Language string // current translation code, "en" for the original

	originalTitle   string
	originalContent string
	translated      bool
}

// Speaker is the part of the speech controller the reader uses.
type Speaker interface {
	Speak(text, lang string) error
	Stop()
	IsSpeaking() bool
}

// BlogDetail reads, likes, comments on, translates and plays a blog.
type BlogDetail struct {
	API     Backend
	Session Session
	Speech  Speaker
}

// Open fetches a blog and its comments.
func (d *BlogDetail) Open(ctx context.Context, blogID string) (*BlogView, error) {
	resp, err := d.API.GetBlog(ctx, blogID)
	if err != nil {
		if client.IsStatus(err, 404) {
			return nil, &FailureError{Message: "Blog not found", Err: err}
		}
		return nil, fail(err, "Failed to load blog")
	}
	return &BlogView{
		Blog:     resp.Blog,
		Comments: resp.Comments,
		IsLiked:  resp.Blog.LikedBy(userID(d.Session)),
		Likes:    len(resp.Blog.Likes),
		Language: "en",
	}, nil
}

// Like toggles the user's like and adopts the server's answer.
func (d *BlogDetail) Like(ctx context.Context, v *BlogView) error {
	if !d.Session.IsAuthenticated() {
		return ErrLoginRequired
	}
	resp, err := d.API.ToggleLike(ctx, v.Blog.ID)
	if err != nil {
		return fail(err, "Failed to like blog")
	}
	v.IsLiked = resp.IsLiked
	v.Likes = resp.Likes
	return nil
}

// Comment posts text, prepends the stored comment and awards points. A
// failed post leaves the list untouched.
func (d *BlogDetail) Comment(ctx context.Context, v *BlogView, text string) (*client.Comment, error) {
	if !d.Session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &FailureError{Message: "Comment cannot be empty"}
	}
	c, err := d.API.AddComment(ctx, v.Blog.ID, text)
	if err != nil {
		return nil, fail(err, "Failed to post comment")
	}
	v.Comments = append([]client.Comment{*c}, v.Comments...)
	v.Blog.CommentsCount++
	if _, err := d.Session.AwardPoints(ctx, PointsComment); err != nil {
		log.Warn().Err(err).Msg("award comment points")
	}
	return c, nil
}

// TranslateError is a failed translation with the guidance to show.
type TranslateError struct {
	Hint string
	Err  error
}

func (e *TranslateError) Error() string { return e.Hint }

func (e *TranslateError) Unwrap() error { return e.Err }

// Translate switches the view to lang. "en" restores the original text
// without a backend call. On failure the view keeps its current text.
func (d *BlogDetail) Translate(ctx context.Context, v *BlogView, lang string) error {
	if lang == v.Language {
		return nil
	}
	if _, ok := speech.LookupLanguage(lang); !ok {
		return &FailureError{Message: fmt.Sprintf("Unsupported language %q", lang)}
	}
	if !v.translated {
		v.originalTitle, v.originalContent = v.Blog.Title, v.Blog.Content
		v.translated = true
	}
	if lang == "en" {
		v.Blog.Title, v.Blog.Content = v.originalTitle, v.originalContent
		v.Language = "en"
		return nil
	}

	resp, err := d.API.Translate(ctx, v.Blog.ID, lang)
	if err != nil {
		return &TranslateError{Hint: translateHint(err, d.Session.IsAuthenticated()), Err: err}
	}
	v.Blog.Title, v.Blog.Content = resp.Title, resp.Content
	v.Language = lang
	return nil
}

func translateHint(err error, authenticated bool) string {
	msg := client.MessageOf(err, "")
	if msg == "" {
		msg = err.Error()
	}
	status := 0
	if apiErr, ok := client.AsAPIError(err); ok {
		status = apiErr.StatusCode
	}
	switch {
	case generator.Classify(status, msg) == generator.KindRateLimit:
		return "Translation temporarily unavailable due to API rate limit. Please wait 1-2 minutes and try again."
	case strings.Contains(msg, "API key"):
		return "AI translation is not available. The API key may be invalid or missing."
	case !authenticated:
		return "Please login to use the translation feature."
	}
	if retryable(err) {
		return fmt.Sprintf("Translation failed: %s\n\n%s", msg, RetryHint)
	}
	return fmt.Sprintf("Translation failed: %s", msg)
}

// Listen starts reading the blog aloud in the view's language, or stops if
// already speaking. It reports whether speech is now running.
func (d *BlogDetail) Listen(v *BlogView) (bool, error) {
	if d.Speech.IsSpeaking() {
		d.Speech.Stop()
		return false, nil
	}
	if err := d.Speech.Speak(speech.ReadAloudText(v.Blog.Title, v.Blog.Content), speech.VoiceFor(v.Language)); err != nil {
		return false, err
	}
	return true, nil
}

// RenderBlog prints a full blog with its comments.
func RenderBlog(w io.Writer, v *BlogView, emphasise func(string) string) {
	b := v.Blog
	fmt.Fprintln(w, b.Title)
	rule(w)
	author := b.Author.Name
	if author == "" {
		author = b.Author.ID
	}
	fmt.Fprintf(w, "by %s · %d min read · %d views", author, b.ReadTime, b.Views)
	if b.IsAIGenerated {
		fmt.Fprint(w, " · AI generated")
	}
	fmt.Fprintln(w)
	if b.CoverImage != "" {
		fmt.Fprintf(w, "cover: %s\n", b.CoverImage)
	}
	if v.Language != "en" {
		if l, ok := speech.LookupLanguage(v.Language); ok {
			fmt.Fprintf(w, "(translated to %s)\n", l.Name)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, emphasise(b.Content))
	fmt.Fprintln(w)
	liked := ""
	if v.IsLiked {
		liked = " (you like this)"
	}
	fmt.Fprintf(w, "%d likes%s · %d comments\n", v.Likes, liked, b.CommentsCount)
	if len(b.Tags) > 0 {
		fmt.Fprintf(w, "#%s\n", strings.Join(b.Tags, " #"))
	}
	if len(v.Comments) > 0 {
		rule(w)
		for _, c := range v.Comments {
			name := c.Author.Name
			if name == "" {
				name = c.Author.ID
			}
			fmt.Fprintf(w, "%s: %s\n", name, c.Content)
		}
	}
}
