package prompt

import (
	"fmt"
	"strings"

	"flyergen/internal/flyer"
)

const (
	flatDesignConstraint = "CRITICAL: Render as a FLAT, full-bleed design that fills the entire canvas edge-to-edge. " +
		"Do NOT render as a 3D mockup, physical card, paper on a surface, or product photograph. " +
		"No shadows, no perspective, no depth effects - completely flat 2D design only."

	noTextNotice = "IMPORTANT: Do NOT render any text in this image. " +
		"Leave clean space for text to be added using external design tools like Canva or Photoshop."

	textHeader = "TEXT CONTENT - CRITICAL: Spell ALL text EXACTLY as shown, letter by letter:"

	textClosing = "CRITICAL TEXT REQUIREMENTS: " +
		"All text must be spelled EXACTLY as specified above - double-check every letter. " +
		"Do not paraphrase, abbreviate, or modify any text. " +
		"Ensure all text is crisp, clear, and perfectly legible. " +
		"Professional print-ready quality. " +
		"Visually striking and memorable design. " +
		"Balanced composition with clear visual hierarchy."

	noTextClosing = "CRITICAL: This design must have NO TEXT whatsoever. " +
		"No letters, words, numbers, or written content of any kind. " +
		"Create empty space in key areas where text can be overlaid later. " +
		"Professional print-ready quality. " +
		"Visually striking and memorable design. " +
		"Balanced composition suitable for text overlay."
)

// section renders one part of the main prompt. An empty result is skipped.
type section func(cfg flyer.Configuration) string

var sections = []section{
	coreInstruction,
	languageRequirement,
	formatInstruction,
	func(flyer.Configuration) string { return flatDesignConstraint },
	styleSection,
	moodSection,
	colorSection,
	textSection,
	prominenceSection,
	imagerySection,
	includeSection,
	categoryHints,
	audienceSection,
	specialInstructionsSection,
	referenceSection,
	closingReminder,
}

// Build compiles a flyer configuration into the prompt pair for the image
// model. Unset settings take their defaults first. Build never fails and is
// safe for concurrent use.
func Build(cfg flyer.Configuration) flyer.PromptPackage {
	cfg = cfg.WithDefaults()
	return flyer.PromptPackage{
		MainPrompt:     BuildMainPrompt(cfg),
		NegativePrompt: BuildNegativePrompt(cfg.Category, cfg.Visuals.AvoidElements),
		AspectRatio:    string(cfg.Output.AspectRatio),
		Model:          cfg.Output.Model,
		Quality:        cfg.Output.Quality,
	}
}

// BuildMainPrompt assembles the positive instruction. The configuration is
// used as given; call WithDefaults first for unset settings.
func BuildMainPrompt(cfg flyer.Configuration) string {
	parts := make([]string, 0, len(sections))
	for _, render := range sections {
		if s := render(cfg); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func noText(cfg flyer.Configuration) bool {
	return cfg.Visuals.ImageryType == flyer.ImageryNoText
}

func coreInstruction(cfg flyer.Configuration) string {
	return fmt.Sprintf("Create a professional high-quality %s.", categoryContext.lookup(cfg.Category))
}

func languageRequirement(cfg flyer.Configuration) string {
	if cfg.Language.IsDefault() {
		return ""
	}
	return "CRITICAL LANGUAGE REQUIREMENT: " + cfg.Language.PromptInstruction() +
		" You MUST ensure ALL text content appears in the target language." +
		" Translate any English or non-target-language text. Do NOT render English text as-is."
}

func formatInstruction(cfg flyer.Configuration) string {
	return fmt.Sprintf("Format: %s.", aspectInstructions.lookup(cfg.Output.AspectRatio))
}

func styleSection(cfg flyer.Configuration) string {
	return fmt.Sprintf("Visual style: %s.", styleDescriptors.lookup(cfg.Visuals.Style))
}

func moodSection(cfg flyer.Configuration) string {
	return fmt.Sprintf("Mood and tone: %s.", moodDescriptors.lookup(cfg.Visuals.Mood))
}

func colorSection(cfg flyer.Configuration) string {
	c := cfg.Colors
	var parts []string

	if palette := paletteDescriptors.lookup(c.Preset); palette != "" {
		parts = append(parts, fmt.Sprintf("Color scheme: %s.", palette))
	}

	var specs []string
	if c.PrimaryColor != "" {
		specs = append(specs, "primary: "+c.PrimaryColor)
	}
	if c.SecondaryColor != "" {
		specs = append(specs, "secondary: "+c.SecondaryColor)
	}
	if c.AccentColor != "" {
		specs = append(specs, "accent: "+c.AccentColor)
	}
	if len(specs) > 0 {
		parts = append(parts, fmt.Sprintf("Specific colors: %s.", strings.Join(specs, ", ")))
	}

	background := backgroundDescriptors.lookup(c.BackgroundType)
	switch {
	case len(c.GradientColors) > 0:
		parts = append(parts, fmt.Sprintf("Background: gradient from %s.", strings.Join(c.GradientColors, " to ")))
	case c.BackgroundColor != "":
		parts = append(parts, fmt.Sprintf("Background: %s %s.", c.BackgroundColor, background))
	default:
		parts = append(parts, fmt.Sprintf("Background: %s.", background))
	}

	return strings.Join(parts, " ")
}

func textSection(cfg flyer.Configuration) string {
	if noText(cfg) {
		return noTextNotice
	}
	t := cfg.Text
	var parts []string

	if !cfg.Language.IsDefault() {
		parts = append(parts, fmt.Sprintf("IMPORTANT: All text below MUST appear in %s. "+
			"If any text is in English or another language, translate it. "+
			"If text is already in the target language, use it as-is.", cfg.Language.DisplayName()))
	}
	parts = append(parts, textHeader)

	if t.Headline != "" {
		parts = append(parts, fmt.Sprintf("MAIN HEADLINE must read EXACTLY: \"%s\" (SPELLING: %s) - "+
			"this should be the most visually dominant text element. "+
			"Double-check every letter is correct.", t.Headline, SpellOut(upper(t.Headline))))
	}

	parts = append(parts, chunkedLines("Secondary headline", t.Subheadline, subheadlineChunks)...)
	parts = append(parts, chunkedLines("Body text", t.BodyText, bodyChunks)...)
	parts = append(parts, dateTimeLines(t)...)
	parts = append(parts, locationLines(t, cfg.Language)...)

	switch {
	case t.DiscountText != "":
		parts = append(parts, fmt.Sprintf("Discount/offer must read EXACTLY: \"%s\" (SPELLING: %s) - "+
			"make this eye-catching and prominent.", t.DiscountText, SpellOut(t.DiscountText)))
	case t.Price != "":
		parts = append(parts, exactLine("Price", t.Price))
	}

	for _, f := range []struct{ label, value string }{
		{"Call-to-action", t.CTAText},
		{"Phone", t.Phone},
		{"Email", t.Email},
		{"Website", t.Website},
		{"Social handle", t.SocialHandle},
	} {
		if f.value != "" {
			parts = append(parts, exactLine(f.label, f.value))
		}
	}

	for _, info := range t.AdditionalInfo {
		if info != "" {
			parts = append(parts, exactLine("Additional detail", info))
		}
	}

	parts = append(parts, chunkedLines("Fine print", t.FinePrint, finePrintChunks)...)

	return strings.Join(parts, " ")
}

func dateTimeLines(t flyer.TextContent) []string {
	switch {
	case t.Date != "" && t.Time != "":
		return []string{exactLine("Date/time", t.Date+" | "+t.Time)}
	case t.Date != "":
		return []string{exactLine("Date", t.Date)}
	case t.Time != "":
		return []string{exactLine("Time", t.Time)}
	}
	return nil
}

// locationLines keeps venue and address on separate lines for right-to-left
// scripts so the model never mixes directions within one line.
func locationLines(t flyer.TextContent, lang flyer.Language) []string {
	address := NormalizeAddress(t.Address)
	switch {
	case t.VenueName != "" && address != "":
		if lang.IsRTL() {
			return []string{
				exactLine("Venue name", t.VenueName),
				exactLine("Address on separate line", address),
			}
		}
		return []string{exactLine("Location", t.VenueName+" - "+address)}
	case t.VenueName != "":
		return []string{exactLine("Venue", t.VenueName)}
	case address != "":
		return []string{exactLine("Address", address)}
	}
	return nil
}

func prominenceSection(cfg flyer.Configuration) string {
	if noText(cfg) {
		return ""
	}
	return fmt.Sprintf("IMPORTANT: %s.", prominenceInstructions.lookup(cfg.Visuals.TextProminence))
}

func imagerySection(cfg flyer.Configuration) string {
	phrase := imageryInstructions.lookup(cfg.Visuals.ImageryType)
	if strings.HasSuffix(phrase, ".") {
		return "Visual elements " + phrase
	}
	return fmt.Sprintf("Visual elements %s.", phrase)
}

func includeSection(cfg flyer.Configuration) string {
	if len(cfg.Visuals.IncludeElements) == 0 {
		return ""
	}
	return fmt.Sprintf("Include visual elements such as: %s.", strings.Join(cfg.Visuals.IncludeElements, ", "))
}

func categoryHints(cfg flyer.Configuration) string {
	var hints []string
	switch cfg.Category {
	case flyer.CategorySalePromo:
		if cfg.Text.DiscountText != "" {
			hints = append(hints, "Ensure discount/offer is immediately visible and attention-grabbing.")
		}
	case flyer.CategoryEvent:
		if cfg.Text.Date != "" {
			hints = append(hints, "Date and time should be clearly visible and easy to find.")
		}
	case flyer.CategoryGrandOpening:
		hints = append(hints, "Convey excitement and celebration of a new beginning.")
	}
	return strings.Join(hints, " ")
}

func audienceSection(cfg flyer.Configuration) string {
	if cfg.TargetAudience == "" {
		return ""
	}
	return fmt.Sprintf("Design should appeal to: %s.", cfg.TargetAudience)
}

func specialInstructionsSection(cfg flyer.Configuration) string {
	if cfg.SpecialInstructions == "" {
		return ""
	}
	return fmt.Sprintf("Additional requirements: %s.", cfg.SpecialInstructions)
}

func referenceSection(cfg flyer.Configuration) string {
	style := cfg.Visuals.Style.DisplayName()
	mood := cfg.Visuals.Mood.DisplayName()

	switch ref := cfg.Reference.(type) {
	case flyer.PhotoReference:
		if len(ref.Data) == 0 {
			return ""
		}
		return "CRITICAL USER PHOTO INSTRUCTIONS: A user photo has been provided and MUST be incorporated into the flyer design. " +
			"Decide the optimal placement and size for the photo based on the overall composition - it could be a hero image, " +
			"a smaller inset, or integrated into the background. " +
			"IMPORTANT: Preserve the photo's original structure, subjects, and composition exactly as provided. " +
			fmt.Sprintf("You may apply color grading, filters, or artistic effects to match the flyer's style (%s) ", style) +
			fmt.Sprintf("and mood (%s), but do NOT alter, morph, or change the actual content of the photo. ", mood) +
			"The subjects must remain clearly recognizable and unchanged. " +
			"Do NOT crop out important subjects from the photo."
	case flyer.DescriptionReference:
		if strings.TrimSpace(ref.Text) == "" {
			return ""
		}
		if cfg.Category == flyer.CategoryRestaurantFood {
			return "FOOD IMAGERY - CRITICAL REQUIREMENTS: " +
				fmt.Sprintf("You MUST show ALL of these dishes in the flyer: %s. ", ref.Text) +
				"IMPORTANT: Every single dish listed must be clearly visible and separately identifiable in the image. " +
				"All food images MUST be photorealistic - real photographs taken with a professional camera. " +
				"NOT illustrations, NOT cartoons, NOT digital art, NOT vector graphics, NOT painted style. " +
				"Use consistent photographic style across ALL dishes: professional food photography, " +
				"natural lighting, realistic textures, shallow depth of field, appetizing presentation. " +
				"Arrange all dishes attractively within the composition - use a grid, collage, or artistic arrangement " +
				"so each dish is clearly showcased. The food should look delicious, fresh, and ready to eat."
		}
		return fmt.Sprintf("IMAGERY GENERATION: Generate custom visual imagery based on this description: \"%s\". ", ref.Text) +
			fmt.Sprintf("The generated imagery should match the flyer's style (%s), ", style) +
			fmt.Sprintf("colors, and mood (%s). ", mood) +
			"Integrate this imagery as a key visual element within the composition."
	}
	return ""
}

func closingReminder(cfg flyer.Configuration) string {
	if noText(cfg) {
		return noTextClosing
	}
	return textClosing
}
