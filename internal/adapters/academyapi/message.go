package academyapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// maxPlainMessage is the longest plain-text body shown to users verbatim.
const maxPlainMessage = 300

// defaultMessagePaths are tried in order against a JSON error body.
var defaultMessagePaths = []string{ //nolint:gochecknoglobals // read-only defaults
	"message",
	"mensagem",
	"error",
	"erro",
	"errors[0].defaultMessage",
	"errors[0].message",
	"detail",
	"title",
	"error_description",
	"erros[0].mensagem",
}

// MessageExtractor pulls a human-readable message out of an API error body.
type MessageExtractor struct {
	paths []string
}

// NewMessageExtractor validates the JMESPath expressions and builds an extractor.
func NewMessageExtractor(paths []string) (*MessageExtractor, error) {
	clean := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := jmespath.Compile(p); err != nil {
			return nil, fmt.Errorf("invalid message path %q: %w", p, err)
		}
		clean = append(clean, p)
	}
	return &MessageExtractor{paths: clean}, nil
}

// DefaultMessageExtractor returns an extractor using the built-in paths.
func DefaultMessageExtractor() *MessageExtractor {
	return &MessageExtractor{paths: defaultMessagePaths}
}

// Extract returns the first non-empty string the paths find in body.
// Short plain-text bodies are returned as-is; anything else yields "".
func (m *MessageExtractor) Extract(body []byte, contentType string) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var doc any
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		if looksLikeHTML(contentType, trimmed) {
			return ""
		}
		return plainMessage(trimmed)
	}

	if s, ok := doc.(string); ok {
		return plainMessage(s)
	}

	for _, path := range m.paths {
		found, err := jmespath.Search(path, doc)
		if err != nil || found == nil {
			continue
		}
		if s := stringValue(found); s != "" {
			return s
		}
	}
	return ""
}

func stringValue(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

func looksLikeHTML(contentType, body string) bool {
	return strings.Contains(strings.ToLower(contentType), "html") || strings.HasPrefix(body, "<")
}

func plainMessage(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxPlainMessage {
		return ""
	}
	return s
}
