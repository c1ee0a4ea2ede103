// Package docs serves the embedded reference topics rendered for the
// terminal.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"moldyn/internal/logger"
)

//go:embed topics/*.md
var topicFS embed.FS

// Topics returns the available topic names in sorted order.
func Topics() []string {
	entries, err := topicFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Source returns a topic's raw markdown.
func Source(topic string) (string, error) {
	data, err := topicFS.ReadFile("topics/" + topic + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown doc topic %s (available: %s)",
			topic, strings.Join(Topics(), ", "))
	}
	return string(data), nil
}

// Render returns a topic rendered for the terminal.
func Render(topic string) (string, error) {
	source, err := Source(topic)
	if err != nil {
		return "", err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return "", fmt.Errorf("failed to render topic %s: %w", topic, err)
	}
	logger.Debug("doc topic rendered", "topic", topic)
	return rendered, nil
}
