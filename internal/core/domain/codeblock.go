package domain

import (
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("```(?:\\w+)?\\n([\\s\\S]*?)\\n```")

// ExtractCode shapes generator output into artifact content.
// When text holds exactly one fenced code block, the block's trimmed inner text is
// returned. Any other text, including output with several blocks, is returned verbatim.
func ExtractCode(text string) string {
	matches := fencedBlock.FindAllStringSubmatch(text, 2)
	if len(matches) != 1 {
		return text
	}
	return strings.TrimSpace(matches[0][1])
}
