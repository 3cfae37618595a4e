package prompt

import "strings"

type feedbackPattern struct {
	trigger string
	phrase  string
}

// feedbackPatterns is scanned in order; every trigger found in the feedback
// contributes its phrase.
var feedbackPatterns = []feedbackPattern{
	{"bigger text", "larger, more prominent text that commands attention"},
	{"larger text", "larger, more prominent text that commands attention"},
	{"can't read", "larger, more prominent text with better contrast for readability"},
	{"more readable", "clearer, more legible text with improved contrast"},
	{"too busy", "simplified composition with more white space and less clutter"},
	{"cluttered", "cleaner, more organized layout with breathing room"},
	{"too much", "simplified design with fewer elements"},
	{"cleaner", "more minimalist design with cleaner composition"},
	{"boring", "more dynamic and visually exciting composition"},
	{"plain", "more visually interesting design with engaging elements"},
	{"more exciting", "more dynamic, energetic, and attention-grabbing design"},
	{"brighter", "more vibrant and colorful palette with higher saturation"},
	{"more color", "richer, more colorful design with varied hues"},
	{"vibrant", "bold, saturated colors with high visual impact"},
	{"darker", "deeper, moodier color treatment"},
	{"muted", "more subtle and restrained color palette"},
	{"subtle", "more understated and refined visual treatment"},
	{"professional", "more polished, business-appropriate aesthetic"},
	{"corporate", "more formal, corporate-style design"},
	{"serious", "more professional and serious tone"},
	{"fun", "more playful and casual feel"},
	{"playful", "more whimsical and fun design elements"},
	{"casual", "more relaxed and approachable aesthetic"},
	{"modern", "more contemporary and current design style"},
	{"dynamic", "more energetic layout with visual movement"},
	{"more contrast", "higher contrast between elements for better visibility"},
	{"softer", "gentler, more subtle tones and transitions"},
	{"bolder", "stronger, more impactful visual presence"},
	{"warmer", "warmer color tones with reds, oranges, and yellows"},
	{"cooler", "cooler color tones with blues, greens, and purples"},
}

const noTextRefinement = "CRITICAL CHANGE: Remove ALL text from this design. " +
	"Do NOT render any text, letters, words, numbers, or written content of any kind. " +
	"Keep the same visual design, colors, layout, and imagery but with NO TEXT whatsoever. " +
	"Leave clean space where text was so it can be added later using design tools."

// MatchFeedback returns the modification phrases triggered by the feedback,
// each once, in table order.
func MatchFeedback(feedback string) []string {
	lower := strings.ToLower(feedback)
	var phrases []string
	seen := make(map[string]struct{})
	for _, p := range feedbackPatterns {
		if !strings.Contains(lower, p.trigger) {
			continue
		}
		if _, ok := seen[p.phrase]; ok {
			continue
		}
		seen[p.phrase] = struct{}{}
		phrases = append(phrases, p.phrase)
	}
	return phrases
}

// ApplyFeedback layers free-form feedback onto a previously compiled prompt.
// Recognised requests become modification phrases; anything else is passed
// through verbatim.
func ApplyFeedback(original, feedback string) string {
	phrases := MatchFeedback(feedback)
	if len(phrases) == 0 {
		return original + "\n\nIMPORTANT CHANGES REQUESTED: " + feedback
	}
	return original + "\n\nIMPORTANT MODIFICATIONS: Apply these changes: " + strings.Join(phrases, ", ") + "."
}

// BuildNoTextRefinement asks the model to redo the design without any text.
func BuildNoTextRefinement(original string) string {
	return original + "\n\n" + noTextRefinement
}
