package llm

import "strings"

// CleanJSONBlock strips markdown code fences and any conversational preamble
// before the first JSON object or array
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Drop a language tag such as json on the opening fence
		if idx := strings.Index(text, "\n"); idx >= 0 {
			first := text[:idx]
			if len(first) < 20 && !strings.ContainsAny(first, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return text
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	text = text[start:]
	closer := "}"
	if text[0] == '[' {
		closer = "]"
	}
	if end := strings.LastIndex(text, closer); end >= 0 {
		text = text[:end+1]
	}
	return strings.TrimSpace(text)
}
