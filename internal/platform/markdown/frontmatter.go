package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	fence        = "---"
	openingFence = fence + "\n"
	closingFence = "\n" + fence + "\n"
)

// Split separates a YAML frontmatter header from the note body and decodes the
// header into meta. Content without a header is returned as body untouched.
func Split(content string, meta any) (string, bool, error) {
	if !strings.HasPrefix(content, openingFence) {
		return content, false, nil
	}
	rest := content[len(openingFence):]
	idx := strings.Index(rest, closingFence)
	if idx < 0 {
		return "", false, fmt.Errorf("invalid frontmatter: missing closing fence")
	}
	if err := yaml.Unmarshal([]byte(rest[:idx]), meta); err != nil {
		return "", false, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return rest[idx+len(closingFence):], true, nil
}

// Render writes meta as a YAML header followed by body. Struct field order is
// kept, so callers control the header layout with yaml tags.
func Render(meta any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(openingFence)
	buf.Write(raw)
	buf.WriteString(openingFence)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(body)
	return buf.String(), nil
}
