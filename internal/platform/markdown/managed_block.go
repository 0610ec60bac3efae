package markdown

import "strings"

// ReplaceBlock swaps the text between start and end markers for generated,
// leaving everything outside the markers alone. A missing block is appended.
func ReplaceBlock(body, start, end, generated string) string {
	block := start + "\n" + generated + "\n" + end
	from := strings.Index(body, start)
	to := strings.Index(body, end)
	if from >= 0 && to > from {
		return body[:from] + block + body[to+len(end):]
	}
	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	default:
		return body + "\n\n" + block + "\n"
	}
}
