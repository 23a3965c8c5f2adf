// Package upload validates an image locally and hands it to the backend's
// upload endpoint.
package upload

import (
	"context"
	"io"
	"sync"

	"github.com/docker/go-units"
	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// MaxSize is the largest accepted file.
const MaxSize int64 = 10 * units.MiB

// allowedTypes is the MIME allow-list.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Inline messages.
const (
	MsgInvalidType      = "Please select a valid image file (JPG, PNG, WEBP, or GIF)"
	MsgTooLarge         = "File size must be less than 10MB"
	MsgNotAuthenticated = "Please login to upload images"
	MsgFailed           = "Upload failed"
)

// Uploader sends an image to the backend.
type Uploader interface {
	UploadImage(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}

// State is the widget's phase.
type State int

const (
	Idle State = iota
	Uploading
)

func (s State) String() string {
	if s == Uploading {
		return "uploading"
	}
	return "idle"
}

// Widget is a reusable image picker. It holds only the preview URL and the
// last error; the embedding screen keeps the URL it receives via onChange.
type Widget struct {
	up       Uploader
	tokens   client.TokenSource
	onChange func(url string)

	mu      sync.Mutex
	state   State
	preview string
	errMsg  string
}

// New builds a widget showing current as its initial preview. onChange may
// be nil.
func New(up Uploader, tokens client.TokenSource, current string, onChange func(url string)) *Widget {
	if onChange == nil {
		onChange = func(string) {}
	}
	return &Widget{up: up, tokens: tokens, onChange: onChange, preview: current}
}

// Validate checks type, size and authentication without any network call.
func (w *Widget) Validate(f File) error {
	if !allowedTypes[f.ContentType] {
		return &ValidationError{Reason: ReasonInvalidType, Message: MsgInvalidType}
	}
	if f.Size > MaxSize {
		return &ValidationError{Reason: ReasonTooLarge, Message: MsgTooLarge}
	}
	if w.tokens == nil || w.tokens.Token() == "" {
		return &ValidationError{Reason: ReasonNotAuthenticated, Message: MsgNotAuthenticated}
	}
	return nil
}

// Select validates f and uploads it. On success the preview becomes the
// returned URL and onChange is called with it. On failure the previous
// preview stays and Err reports the inline message.
func (w *Widget) Select(ctx context.Context, f File) (string, error) {
	if err := w.Validate(f); err != nil {
		w.mu.Lock()
		w.errMsg = err.(*ValidationError).Message
		w.mu.Unlock()
		return "", err
	}

	w.mu.Lock()
	w.state = Uploading
	w.errMsg = ""
	w.mu.Unlock()

	log.Debug().Str("file", f.Name).Str("type", f.ContentType).Str("size", units.HumanSize(float64(f.Size))).Msg("uploading image")
	url, err := w.up.UploadImage(ctx, f.Name, f.ContentType, f.Content)

	w.mu.Lock()
	w.state = Idle
	if err != nil {
		msg := client.MessageOf(err, MsgFailed)
		w.errMsg = msg
		w.mu.Unlock()
		log.Error().Err(err).Str("file", f.Name).Msg("upload failed")
		return "", &Error{Message: msg, Err: err}
	}
	w.preview = url
	w.mu.Unlock()

	w.onChange(url)
	return url, nil
}

// Remove clears the preview and tells the embedding screen via onChange("").
func (w *Widget) Remove() {
	w.mu.Lock()
	w.preview = ""
	w.errMsg = ""
	w.mu.Unlock()
	w.onChange("")
}

// State returns the current phase.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Preview returns the URL currently shown.
func (w *Widget) Preview() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.preview
}

// Err returns the last inline error message, or "".
func (w *Widget) Err() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}
