package prompts

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

// Version is incremented whenever default prompts change incompatibly.
const Version = "v1"

// topicPlaceholder is replaced by the user's topic.
const topicPlaceholder = "{{TOPIC}}"

// defaultFS holds the embedded prompt assets.
//
//go:embed default/*.md
var defaultFS embed.FS

// Load returns the raw template named name (without the .md suffix).
func Load(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("prompt name cannot be empty")
	}
	b, err := fs.ReadFile(defaultFS, "default/"+name+".md")
	if err != nil {
		return "", fmt.Errorf("unknown prompt %q: %w", name, err)
	}
	return string(b), nil
}

// ArticlePrompt returns the article-generation prompt for topic. The topic
// is trimmed; an empty topic is an error.
func ArticlePrompt(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("topic cannot be empty")
	}
	tmpl, err := Load("article")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(tmpl, topicPlaceholder, topic), nil
}

// List returns the names of all embedded prompts.
func List() ([]string, error) {
	entries, err := fs.ReadDir(defaultFS, "default")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			out = append(out, strings.TrimSuffix(e.Name(), ".md"))
		}
	}
	return out, nil
}
