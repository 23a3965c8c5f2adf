package upload

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// File is one user-selected file.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// OpenFile opens path for upload. The content type comes from the file
// extension, or from sniffing the first bytes when the extension is unknown.
// The caller must close the returned file.
func OpenFile(path string) (File, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return File{}, nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return File{}, nil, fmt.Errorf("%s is a directory", path)
	}

	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		head := make([]byte, 512)
		n, _ := io.ReadFull(f, head)
		ct = http.DetectContentType(head[:n])
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			_ = f.Close()
			return File{}, nil, err
		}
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	return File{Name: filepath.Base(path), ContentType: ct, Size: info.Size(), Content: f}, f, nil
}
