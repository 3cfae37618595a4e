package flyer

import "strings"

// Category is the purpose of the flyer. Values are wire identifiers.
type Category string

const (
	CategoryEvent            Category = "event"
	CategorySalePromo        Category = "sale_promo"
	CategoryAnnouncement     Category = "announcement"
	CategoryRestaurantFood   Category = "restaurant_food"
	CategoryRealEstate       Category = "real_estate"
	CategoryJobPosting       Category = "job_posting"
	CategoryClassWorkshop    Category = "class_workshop"
	CategoryGrandOpening     Category = "grand_opening"
	CategoryPartyCelebration Category = "party_celebration"
	CategoryFitnessWellness  Category = "fitness_wellness"
	CategoryNonprofitCharity Category = "nonprofit_charity"
	CategoryMusicConcert     Category = "music_concert"
)

var categories = []Category{
	CategoryEvent,
	CategorySalePromo,
	CategoryAnnouncement,
	CategoryRestaurantFood,
	CategoryRealEstate,
	CategoryJobPosting,
	CategoryClassWorkshop,
	CategoryGrandOpening,
	CategoryPartyCelebration,
	CategoryFitnessWellness,
	CategoryNonprofitCharity,
	CategoryMusicConcert,
}

func (c Category) DisplayName() string {
	switch c {
	case CategoryEvent:
		return "Event"
	case CategorySalePromo:
		return "Sale / Promotion"
	case CategoryAnnouncement:
		return "Announcement"
	case CategoryRestaurantFood:
		return "Restaurant / Food"
	case CategoryRealEstate:
		return "Real Estate"
	case CategoryJobPosting:
		return "Job Posting"
	case CategoryClassWorkshop:
		return "Class / Workshop"
	case CategoryGrandOpening:
		return "Grand Opening"
	case CategoryPartyCelebration:
		return "Party / Celebration"
	case CategoryFitnessWellness:
		return "Fitness / Wellness"
	case CategoryNonprofitCharity:
		return "Nonprofit / Charity"
	case CategoryMusicConcert:
		return "Music / Concert"
	default:
		return humanize(string(c))
	}
}

type VisualStyle string

const (
	StyleModernMinimal         VisualStyle = "modern_minimal"
	StyleBoldVibrant           VisualStyle = "bold_vibrant"
	StyleElegantLuxury         VisualStyle = "elegant_luxury"
	StyleRetroVintage          VisualStyle = "retro_vintage"
	StylePlayfulFun            VisualStyle = "playful_fun"
	StyleCorporateProfessional VisualStyle = "corporate_professional"
	StyleHandDrawnOrganic      VisualStyle = "hand_drawn_organic"
	StyleNeonGlow              VisualStyle = "neon_glow"
	StyleGradientModern        VisualStyle = "gradient_modern"
	StyleWatercolorArtistic    VisualStyle = "watercolor_artistic"
)

var visualStyles = []VisualStyle{
	StyleModernMinimal,
	StyleBoldVibrant,
	StyleElegantLuxury,
	StyleRetroVintage,
	StylePlayfulFun,
	StyleCorporateProfessional,
	StyleHandDrawnOrganic,
	StyleNeonGlow,
	StyleGradientModern,
	StyleWatercolorArtistic,
}

func (s VisualStyle) DisplayName() string {
	switch s {
	case StyleModernMinimal:
		return "Modern & Minimal"
	case StyleBoldVibrant:
		return "Bold & Vibrant"
	case StyleElegantLuxury:
		return "Elegant & Luxury"
	case StyleRetroVintage:
		return "Retro / Vintage"
	case StylePlayfulFun:
		return "Playful & Fun"
	case StyleCorporateProfessional:
		return "Corporate / Professional"
	case StyleHandDrawnOrganic:
		return "Hand-drawn & Organic"
	case StyleNeonGlow:
		return "Neon Glow"
	case StyleGradientModern:
		return "Gradient Modern"
	case StyleWatercolorArtistic:
		return "Watercolor Artistic"
	default:
		return humanize(string(s))
	}
}

type Mood string

const (
	MoodUrgent        Mood = "urgent"
	MoodExciting      Mood = "exciting"
	MoodCalm          Mood = "calm"
	MoodElegant       Mood = "elegant"
	MoodFriendly      Mood = "friendly"
	MoodProfessional  Mood = "professional"
	MoodFestive       Mood = "festive"
	MoodSerious       Mood = "serious"
	MoodInspirational Mood = "inspirational"
	MoodRomantic      Mood = "romantic"
	MoodSomber        Mood = "somber"
)

var moods = []Mood{
	MoodUrgent,
	MoodExciting,
	MoodCalm,
	MoodElegant,
	MoodFriendly,
	MoodProfessional,
	MoodFestive,
	MoodSerious,
	MoodInspirational,
	MoodRomantic,
	MoodSomber,
}

func (m Mood) DisplayName() string {
	switch m {
	case MoodUrgent:
		return "Urgent (Act Now!)"
	case MoodExciting:
		return "Exciting & Energetic"
	case MoodCalm:
		return "Calm & Peaceful"
	case MoodElegant:
		return "Elegant & Sophisticated"
	case MoodFriendly:
		return "Friendly & Welcoming"
	case MoodProfessional:
		return "Professional"
	case MoodFestive:
		return "Festive & Celebratory"
	case MoodSerious:
		return "Serious & Important"
	case MoodInspirational:
		return "Inspirational"
	case MoodRomantic:
		return "Romantic"
	case MoodSomber:
		return "Somber & Reflective"
	default:
		return humanize(string(m))
	}
}

type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectPortrait  AspectRatio = "4:5"
	AspectStory     AspectRatio = "9:16"
	AspectLandscape AspectRatio = "16:9"
	AspectLetter    AspectRatio = "letter"
	AspectA4        AspectRatio = "a4"
)

var aspectRatios = []AspectRatio{
	AspectSquare,
	AspectPortrait,
	AspectStory,
	AspectLandscape,
	AspectLetter,
	AspectA4,
}

func (a AspectRatio) DisplayName() string {
	switch a {
	case AspectSquare:
		return "Square (1:1)"
	case AspectPortrait:
		return "Portrait (4:5)"
	case AspectStory:
		return "Story (9:16)"
	case AspectLandscape:
		return "Landscape (16:9)"
	case AspectLetter:
		return "Letter (8.5x11)"
	case AspectA4:
		return "A4"
	default:
		return string(a)
	}
}

// ModelRatio maps the flyer format to a ratio the Nano Banana image model
// accepts. Print formats and 4:5 have no native ratio and render as 3:4.
func (a AspectRatio) ModelRatio() string {
	switch a {
	case AspectSquare:
		return "1:1"
	case AspectPortrait, AspectLetter, AspectA4:
		return "3:4"
	case AspectStory:
		return "9:16"
	case AspectLandscape:
		return "16:9"
	default:
		return "1:1"
	}
}

type ColorPreset string

const (
	PresetWarm       ColorPreset = "warm"
	PresetCool       ColorPreset = "cool"
	PresetEarthTones ColorPreset = "earth_tones"
	PresetNeon       ColorPreset = "neon"
	PresetPastel     ColorPreset = "pastel"
	PresetMonochrome ColorPreset = "monochrome"
	PresetBlackGold  ColorPreset = "black_gold"
	PresetCustom     ColorPreset = "custom"
)

var colorPresets = []ColorPreset{
	PresetWarm,
	PresetCool,
	PresetEarthTones,
	PresetNeon,
	PresetPastel,
	PresetMonochrome,
	PresetBlackGold,
	PresetCustom,
}

func (p ColorPreset) DisplayName() string {
	switch p {
	case PresetWarm:
		return "Warm"
	case PresetCool:
		return "Cool"
	case PresetEarthTones:
		return "Earth Tones"
	case PresetNeon:
		return "Neon"
	case PresetPastel:
		return "Pastel"
	case PresetMonochrome:
		return "Monochrome"
	case PresetBlackGold:
		return "Black & Gold"
	case PresetCustom:
		return "Custom"
	default:
		return humanize(string(p))
	}
}

type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundTextured BackgroundType = "textured"
	BackgroundLight    BackgroundType = "light"
	BackgroundDark     BackgroundType = "dark"
)

var backgroundTypes = []BackgroundType{
	BackgroundSolid,
	BackgroundGradient,
	BackgroundTextured,
	BackgroundLight,
	BackgroundDark,
}

func (b BackgroundType) DisplayName() string {
	switch b {
	case BackgroundSolid:
		return "Solid Color"
	case BackgroundGradient:
		return "Gradient"
	case BackgroundTextured:
		return "Textured"
	case BackgroundLight:
		return "Light"
	case BackgroundDark:
		return "Dark"
	default:
		return humanize(string(b))
	}
}

type TextProminence string

const (
	ProminenceDominant TextProminence = "dominant"
	ProminenceBalanced TextProminence = "balanced"
	ProminenceSubtle   TextProminence = "subtle"
)

var textProminences = []TextProminence{
	ProminenceDominant,
	ProminenceBalanced,
	ProminenceSubtle,
}

func (t TextProminence) DisplayName() string {
	switch t {
	case ProminenceDominant:
		return "Text Dominant"
	case ProminenceBalanced:
		return "Balanced"
	case ProminenceSubtle:
		return "Image Dominant"
	default:
		return humanize(string(t))
	}
}

// ImageryType selects the visual treatment. ImageryNoText renders a design
// without any lettering so copy can be overlaid later.
type ImageryType string

const (
	ImageryIllustrated       ImageryType = "illustrated"
	ImageryPhotoRealistic    ImageryType = "photo_realistic"
	ImageryAbstractGeometric ImageryType = "abstract_geometric"
	ImageryPattern           ImageryType = "pattern"
	ImageryMinimalTextOnly   ImageryType = "minimal_text_only"
	ImageryNoText            ImageryType = "no_text"
)

var imageryTypes = []ImageryType{
	ImageryIllustrated,
	ImageryPhotoRealistic,
	ImageryAbstractGeometric,
	ImageryPattern,
	ImageryMinimalTextOnly,
	ImageryNoText,
}

func (i ImageryType) DisplayName() string {
	switch i {
	case ImageryIllustrated:
		return "Illustrated"
	case ImageryPhotoRealistic:
		return "Photo Realistic"
	case ImageryAbstractGeometric:
		return "Abstract / Geometric"
	case ImageryPattern:
		return "Pattern"
	case ImageryMinimalTextOnly:
		return "Minimal (Text Focus)"
	case ImageryNoText:
		return "No Text (Image Only)"
	default:
		return humanize(string(i))
	}
}

func Categories() []Category { return append([]Category(nil), categories...) }
func VisualStyles() []VisualStyle { return append([]VisualStyle(nil), visualStyles...) }
func Moods() []Mood { return append([]Mood(nil), moods...) }
func AspectRatios() []AspectRatio { return append([]AspectRatio(nil), aspectRatios...) }
func ColorPresets() []ColorPreset { return append([]ColorPreset(nil), colorPresets...) }
func BackgroundTypes() []BackgroundType { return append([]BackgroundType(nil), backgroundTypes...) }
func TextProminences() []TextProminence { return append([]TextProminence(nil), textProminences...) }
func ImageryTypes() []ImageryType { return append([]ImageryType(nil), imageryTypes...) }

// humanize turns an unknown wire identifier like "street_food" into "Street Food".
func humanize(value string) string {
	words := strings.FieldsFunc(value, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
