package types

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Schema names for the responses whose shape the client refuses to trust.
const (
	SchemaAuth     = "auth"
	SchemaIdentity = "identity"
	SchemaProfile  = "profile"
	SchemaUpload   = "upload"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*gojsonschema.Schema{}
)

// ShapeError reports a backend response that does not match the record the
// client expects.
type ShapeError struct {
	Schema   string
	Problems []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s response shape: %s", e.Schema, strings.Join(e.Problems, "; "))
}

func loadSchema(name string) (*gojsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if s, ok := schemaCache[name]; ok {
		return s, nil
	}
	raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}
	schemaCache[name] = s
	return s, nil
}

// ValidateShape checks body against the named embedded schema.
func ValidateShape(name string, body []byte) error {
	s, err := loadSchema(name)
	if err != nil {
		return err
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ShapeError{Schema: name, Problems: []string{err.Error()}}
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, re := range res.Errors() {
		problems = append(problems, re.String())
	}
	return &ShapeError{Schema: name, Problems: problems}
}
