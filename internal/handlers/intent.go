package handlers

import (
	"strings"

	"flyergen/internal/flyer"
)

// looksLikeConfiguration reports whether a chat message is a pasted JSON
// flyer description rather than free-form feedback.
func looksLikeConfiguration(text string) bool {
	t := stripCodeFence(text)
	return strings.HasPrefix(t, "{")
}

// stripCodeFence removes a surrounding Markdown code block, which Telegram
// users often paste JSON in.
func stripCodeFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		if lang := strings.TrimSpace(t[:nl]); lang == "" || strings.EqualFold(lang, "json") {
			t = t[nl+1:]
		}
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

func parseConfiguration(text string) (flyer.Configuration, error) {
	cfg, err := flyer.DecodeConfiguration([]byte(stripCodeFence(text)))
	if err != nil {
		return flyer.Configuration{}, err
	}
	if err := cfg.Validate(); err != nil {
		return flyer.Configuration{}, err
	}
	return cfg, nil
}

// looksLikeNoTextRequest catches feedback asking for the text to be removed,
// which has its own refinement.
func looksLikeNoTextRequest(feedback string) bool {
	f := strings.ToLower(feedback)
	for _, kw := range []string{"no text", "remove text", "remove the text", "without text", "remove all text"} {
		if strings.Contains(f, kw) {
			return true
		}
	}
	return false
}
