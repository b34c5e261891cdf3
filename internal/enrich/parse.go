package enrich

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// ParseInsight decodes untrusted narrative-service output. Strategies
// run in order, first success wins: fence-stripped decode, raw decode,
// then a balanced-brace scan over the full text.
func ParseInsight(raw string) (Insight, error) {
	var insight Insight

	if stripped := stripCodeFences(raw); stripped != raw {
		if err := sonic.UnmarshalString(stripped, &insight); err == nil {
			return normalize(insight), nil
		}
	}

	if err := sonic.UnmarshalString(strings.TrimSpace(raw), &insight); err == nil {
		return normalize(insight), nil
	}

	candidate := extractBraced(raw)
	if candidate == "" {
		return Insight{}, fmt.Errorf("no JSON object found in response")
	}
	if err := sonic.UnmarshalString(candidate, &insight); err != nil {
		return Insight{}, fmt.Errorf("embedded JSON did not decode: %w", err)
	}
	return normalize(insight), nil
}

// stripCodeFences removes a markdown code fence wrapping, with or
// without a language specifier, tolerating leading and trailing noise
// around the fence itself.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}

	firstNewline := strings.Index(trimmed, "\n")
	if firstNewline == -1 {
		return s
	}
	lastFence := strings.LastIndex(trimmed, "```")
	if lastFence <= firstNewline {
		return s
	}

	return strings.TrimSpace(trimmed[firstNewline+1 : lastFence])
}

// extractBraced returns the first balanced brace-delimited region.
// Depth counting skips braces inside quoted strings, including escaped
// quotes, and stops at depth zero.
func extractBraced(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
