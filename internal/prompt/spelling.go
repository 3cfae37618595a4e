package prompt

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var addressSuffixes = []string{", United States", ", USA", ", US"}

// SpellOut separates every user-perceived character with a single space,
// so "GO" becomes "G O" and "A B" becomes "A   B".
func SpellOut(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	g := uniseg.NewGraphemes(text)
	first := true
	for g.Next() {
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(g.Str())
		first = false
	}
	return b.String()
}

func upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

// words splits on the space character only; runs of spaces yield no empty words.
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
}

// ChunkText groups words left to right into chunks of at most maxWords.
// The last chunk holds the remainder.
func ChunkText(text string, maxWords int) []string {
	if maxWords < 1 {
		maxWords = 1
	}
	ws := words(text)
	chunks := make([]string, 0, (len(ws)+maxWords-1)/maxWords)
	for start := 0; start < len(ws); start += maxWords {
		end := min(start+maxWords, len(ws))
		chunks = append(chunks, strings.Join(ws[start:end], " "))
	}
	return chunks
}

// NormalizeAddress drops a trailing country name. Only the first matching
// suffix is removed.
func NormalizeAddress(address string) string {
	for _, suffix := range addressSuffixes {
		if strings.HasSuffix(address, suffix) {
			return strings.TrimSuffix(address, suffix)
		}
	}
	return address
}

func exactLine(label, value string) string {
	return fmt.Sprintf("%s must read EXACTLY: \"%s\" (SPELLING: %s).", label, value, SpellOut(value))
}

// chunkRule describes how a long field is split across display lines.
type chunkRule struct {
	hint      string
	lineLabel string
	threshold int
	maxWords  int
}

var (
	subheadlineChunks = chunkRule{
		hint:      "Secondary headline (display across multiple lines if needed):",
		lineLabel: "Line",
		threshold: 8,
		maxWords:  5,
	}
	bodyChunks = chunkRule{
		hint:      "Body content (display across multiple lines/sections):",
		lineLabel: "Section",
		threshold: 10,
		maxWords:  8,
	}
	finePrintChunks = chunkRule{
		hint:      "Fine print (can span multiple lines):",
		lineLabel: "Line",
		threshold: 8,
		maxWords:  5,
	}
)

// chunkedLines emits one exact line for short values, or the display hint
// followed by a numbered exact line per chunk.
func chunkedLines(label, value string, rule chunkRule) []string {
	if value == "" {
		return nil
	}
	if len(words(value)) <= rule.threshold {
		return []string{exactLine(label, value)}
	}
	chunks := ChunkText(value, rule.maxWords)
	out := make([]string, 0, len(chunks)+1)
	out = append(out, rule.hint)
	for i, chunk := range chunks {
		out = append(out, exactLine(fmt.Sprintf("%s %d", rule.lineLabel, i+1), chunk))
	}
	return out
}
