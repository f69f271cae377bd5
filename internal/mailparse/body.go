package mailparse

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// NormalizeBody turns whatever the mail transport delivered as the message
// body (raw bytes, a string, or a pre-parsed object) into one string.
// Objects are rendered back into header lines followed by the text so the
// result parses like a raw message.
func NormalizeBody(v any) string {
	switch b := v.(type) {
	case nil:
		return ""
	case string:
		return b
	case []byte:
		return string(b)
	case json.RawMessage:
		return normalizeJSON(b)
	case map[string]any:
		return renderObject(b)
	default:
		return fmt.Sprint(b)
	}
}

func normalizeJSON(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		return renderObject(obj)
	}

	return trimmed
}

var textKeys = []string{"text", "body", "plain", "content"}

func renderObject(obj map[string]any) string {
	var b strings.Builder

	subject, _ := obj["subject"].(string)
	if headers, ok := obj["headers"].(map[string]any); ok {
		keys := make([]string, 0, len(headers))
		for k := range headers {
			if strings.EqualFold(k, "subject") {
				if subject == "" {
					subject = fmt.Sprint(headers[k])
				}
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %v\r\n", k, headers[k])
		}
	}
	if subject != "" {
		fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	}

	text := ""
	for _, k := range textKeys {
		if s, ok := obj[k].(string); ok && s != "" {
			text = s
			break
		}
	}

	if b.Len() == 0 {
		return text
	}

	b.WriteString("\r\n")
	b.WriteString(text)
	return b.String()
}
