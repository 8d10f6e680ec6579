package compose

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	subjectPattern = regexp.MustCompile(`(?is)"subject"\s*:\s*"(.*?)"`)
	bodyPattern    = regexp.MustCompile(`(?is)"body"\s*:\s*"(.*?)"`)
)

// ExtractDraft pulls a subject/body pair out of raw model text on a
// best-effort basis. Strict JSON wins; otherwise each field is located
// independently by pattern search across lines, with literal \n sequences
// unescaped. A field that cannot be found resolves to the empty string.
// This degradation is the contract: callers never see an error from here.
func ExtractDraft(raw string) DraftContent {
	var parsed struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return DraftContent{
			Subject: strings.TrimSpace(parsed.Subject),
			Body:    strings.TrimSpace(parsed.Body),
		}
	}

	return DraftContent{
		Subject: extractField(subjectPattern, raw),
		Body:    extractField(bodyPattern, raw),
	}
}

func extractField(pattern *regexp.Regexp, raw string) string {
	match := pattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return strings.ReplaceAll(match[1], `\n`, "\n")
}
