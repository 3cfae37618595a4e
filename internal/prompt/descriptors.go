package prompt

import "flyergen/internal/flyer"

// table is a total lookup: any key without an entry resolves to fallback.
type table[K comparable] struct {
	entries  map[K]string
	fallback string
}

func newTable[K comparable](fallback string, entries map[K]string) table[K] {
	return table[K]{entries: entries, fallback: fallback}
}

func (t table[K]) lookup(key K) string {
	if v, ok := t.entries[key]; ok {
		return v
	}
	return t.fallback
}

func (t table[K]) has(key K) bool {
	_, ok := t.entries[key]
	return ok
}

var categoryContext = newTable("promotional flyer design", map[flyer.Category]string{
	flyer.CategoryEvent:            "event promotional flyer design",
	flyer.CategorySalePromo:        "sale and promotion flyer with urgency-driving design elements",
	flyer.CategoryAnnouncement:     "announcement flyer with clear information hierarchy",
	flyer.CategoryRestaurantFood:   "restaurant or food service promotional flyer with appetizing appeal",
	flyer.CategoryRealEstate:       "real estate listing flyer with professional property showcase",
	flyer.CategoryJobPosting:       "job recruitment flyer with professional yet approachable design",
	flyer.CategoryClassWorkshop:    "educational class or workshop promotional flyer",
	flyer.CategoryGrandOpening:     "grand opening celebration flyer with festive excitement",
	flyer.CategoryPartyCelebration: "party or celebration event flyer with fun energetic design",
	flyer.CategoryFitnessWellness:  "fitness or wellness promotional flyer with energizing appeal",
	flyer.CategoryNonprofitCharity: "nonprofit or charity flyer with heartfelt community appeal",
	flyer.CategoryMusicConcert:     "music event or concert flyer with dynamic artistic style",
})

var styleDescriptors = newTable("clean professional design", map[flyer.VisualStyle]string{
	flyer.StyleModernMinimal: "modern minimalist design with clean lines, generous white space, " +
		"contemporary sans-serif typography aesthetic, uncluttered composition, sophisticated simplicity",
	flyer.StyleBoldVibrant: "bold vibrant design with strong saturated colors, high contrast, " +
		"impactful heavy typography, energetic dynamic composition, eye-catching visual punch",
	flyer.StyleElegantLuxury: "elegant luxury design with sophisticated muted color palette, " +
		"refined serif typography, premium high-end feel, subtle gold or metallic accents, tasteful restraint",
	flyer.StyleRetroVintage: "retro vintage design with nostalgic color palette, classic typography, " +
		"aged paper textures, throwback aesthetic from mid-century era, warm nostalgic feeling",
	flyer.StylePlayfulFun: "playful fun design with bright cheerful colors, rounded friendly shapes, " +
		"whimsical illustrated elements, bouncy typography, joyful energetic composition",
	flyer.StyleCorporateProfessional: "corporate professional design with business-appropriate colors, " +
		"structured grid layout, clean sans-serif typography, trustworthy and credible appearance",
	flyer.StyleHandDrawnOrganic: "hand-drawn organic design with sketched illustrated elements, " +
		"natural textures, artisanal craft feel, warm imperfect hand-made lines, authentic character",
	flyer.StyleNeonGlow: "neon glow design with vibrant glowing colors on dark background, " +
		"electric lighting effects, cyberpunk-inspired aesthetic, nightlife energy and excitement",
	flyer.StyleGradientModern: "modern gradient design with smooth color transitions, " +
		"contemporary tech aesthetic, fluid shapes, fresh and forward-looking appearance",
	flyer.StyleWatercolorArtistic: "watercolor artistic design with soft painted textures, " +
		"flowing organic shapes, artistic hand-crafted feel, gentle and creative aesthetic",
})

var moodDescriptors = newTable("appropriate and engaging mood", map[flyer.Mood]string{
	flyer.MoodUrgent:        "creates strong sense of urgency and immediate action needed, time-sensitive feel",
	flyer.MoodExciting:      "builds excitement and anticipation, energetic and thrilling atmosphere",
	flyer.MoodCalm:          "peaceful and calming visual atmosphere, serene and relaxing",
	flyer.MoodElegant:       "sophisticated and refined aesthetic, upscale and tasteful",
	flyer.MoodFriendly:      "warm, approachable, and welcoming feel, inviting and accessible",
	flyer.MoodProfessional:  "business-appropriate and trustworthy, competent and reliable",
	flyer.MoodFestive:       "celebratory and joyful atmosphere, party-ready excitement",
	flyer.MoodSerious:       "serious and important tone, gravitas and significance",
	flyer.MoodInspirational: "uplifting and motivating feel, aspirational and empowering",
	flyer.MoodRomantic:      "romantic and intimate atmosphere, love and warmth",
	flyer.MoodSomber:        "somber and reflective atmosphere, melancholic and contemplative, respectful memorial tone",
})

// Custom palettes are described by the explicit colors instead.
var paletteDescriptors = newTable("", map[flyer.ColorPreset]string{
	flyer.PresetWarm:       "warm color palette with reds, oranges, yellows, and warm browns",
	flyer.PresetCool:       "cool color palette with blues, teals, purples, and cool grays",
	flyer.PresetEarthTones: "earthy natural palette with browns, tans, olive greens, and terracotta",
	flyer.PresetNeon:       "vibrant neon palette with electric pinks, bright greens, and glowing colors",
	flyer.PresetPastel:     "soft pastel palette with gentle muted tones, light and airy colors",
	flyer.PresetMonochrome: "monochromatic palette with variations of a single color, sophisticated restraint",
	flyer.PresetBlackGold:  "luxurious black and gold palette, premium and elegant",
	flyer.PresetCustom:     "",
})

var backgroundDescriptors = newTable("background that complements the color palette", map[flyer.BackgroundType]string{
	flyer.BackgroundSolid:    "solid color background, clean and simple",
	flyer.BackgroundGradient: "gradient background with smooth color transition",
	flyer.BackgroundTextured: "textured background with subtle visual interest",
	flyer.BackgroundLight:    "light colored background, bright and airy",
	flyer.BackgroundDark:     "dark colored background, dramatic and bold",
})

var aspectInstructions = newTable("standard flyer proportions", map[flyer.AspectRatio]string{
	flyer.AspectSquare:    "square 1:1 aspect ratio composition",
	flyer.AspectPortrait:  "portrait 4:5 aspect ratio, taller than wide",
	flyer.AspectStory:     "vertical 9:16 story format, very tall and narrow",
	flyer.AspectLandscape: "landscape 16:9 aspect ratio, wide banner format",
	flyer.AspectLetter:    "US letter size 8.5x11 proportions for print",
	flyer.AspectA4:        "A4 paper proportions for international print",
})

var prominenceInstructions = newTable(
	"Text and imagery should have balanced visual weight, complementing each other in a harmonious composition",
	map[flyer.TextProminence]string{
		flyer.ProminenceDominant: "Text should be the dominant visual element, large and commanding, " +
			"with imagery playing a supporting role in the background or as subtle accents",
		flyer.ProminenceBalanced: "Text and imagery should have balanced visual weight, " +
			"complementing each other in a harmonious composition",
		flyer.ProminenceSubtle: "Imagery should be the dominant visual element, " +
			"with text elegantly integrated but not overpowering the visuals",
	},
)

var imageryInstructions = newTable("with graphic elements that suit the overall design", map[flyer.ImageryType]string{
	flyer.ImageryIllustrated:       "with custom illustrated graphic elements, artistic drawings",
	flyer.ImageryPhotoRealistic:    "with photo-realistic imagery, lifelike visual elements",
	flyer.ImageryAbstractGeometric: "with abstract geometric shapes and patterns, modern graphic elements",
	flyer.ImageryPattern:           "with decorative pattern elements, repeating motifs",
	flyer.ImageryMinimalTextOnly:   "typography-focused with minimal to no imagery, text as the visual element",
	flyer.ImageryNoText: "with NO text or words rendered in the image. " +
		"Create a clean design with appropriate empty space where text can be added later. " +
		"Do NOT include any text, letters, numbers, or written content.",
})
