package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// UploadField is the multipart form field the backend reads the image from.
const UploadField = "image"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadImage sends one image as multipart form data and returns its hosted URL.
func UploadImage(ctx context.Context, httpClient HTTPClient, baseURL, filename, contentType string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, UploadField, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("upload: read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	c := call{op: "upload", method: http.MethodPost, url: fmt.Sprintf("%s/upload", baseURL), schema: types.SchemaUpload}
	httpReq, err := http.NewRequestWithContext(WithOp(ctx, c.op), c.method, c.url, &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var out types.UploadResponse
	c.out = &out
	if err := do(httpClient, httpReq, c); err != nil {
		return "", err
	}
	return out.URL, nil
}
