package flyer

type NamedOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Catalog lists every selectable option in display order. Clients render
// pickers from it.
type Catalog struct {
	Categories      []NamedOption         `json:"categories"`
	Styles          []NamedOption         `json:"styles"`
	Moods           []NamedOption         `json:"moods"`
	AspectRatios    []NamedOption         `json:"aspectRatios"`
	ColorPresets    []NamedOption         `json:"colorPresets"`
	BackgroundTypes []NamedOption         `json:"backgroundTypes"`
	TextProminences []NamedOption         `json:"textProminences"`
	ImageryTypes    []NamedOption         `json:"imageryTypes"`
	Languages       []NamedOption         `json:"languages"`
	Intents         []IntentOption        `json:"intents"`
	TextFields      map[Category][]string `json:"textFields"`
	Suggestions     map[Category][]string `json:"suggestedElements"`
}

type IntentOption struct {
	NamedOption
	Categories []Category `json:"categories"`
}

type displayNamer interface {
	~string
	DisplayName() string
}

func options[T displayNamer](values []T) []NamedOption {
	out := make([]NamedOption, 0, len(values))
	for _, v := range values {
		out = append(out, NamedOption{Key: string(v), Name: v.DisplayName()})
	}
	return out
}

func NewCatalog() Catalog {
	c := Catalog{
		Categories:      options(categories),
		Styles:          options(visualStyles),
		Moods:           options(moods),
		AspectRatios:    options(aspectRatios),
		ColorPresets:    options(colorPresets),
		BackgroundTypes: options(backgroundTypes),
		TextProminences: options(textProminences),
		ImageryTypes:    options(imageryTypes),
		Languages:       options(languages),
		TextFields:      make(map[Category][]string, len(categories)),
		Suggestions:     make(map[Category][]string, len(categories)),
	}
	for _, intent := range intents {
		c.Intents = append(c.Intents, IntentOption{
			NamedOption: NamedOption{Key: string(intent), Name: intent.DisplayName()},
			Categories:  intent.Categories(),
		})
	}
	for _, cat := range categories {
		c.TextFields[cat] = cat.TextFields()
		if s := cat.SuggestedElements(); len(s) > 0 {
			c.Suggestions[cat] = s
		}
	}
	return c
}

var categoryTextFields = map[Category][]string{
	CategoryEvent:            {"headline", "subheadline", "date", "venueName", "address", "ctaText", "website"},
	CategorySalePromo:        {"headline", "subheadline", "discountText", "date", "address", "ctaText", "finePrint", "website"},
	CategoryAnnouncement:     {"headline", "subheadline", "bodyText", "date", "ctaText"},
	CategoryRestaurantFood:   {"headline", "subheadline", "venueName", "address", "phone", "website", "price", "ctaText"},
	CategoryRealEstate:       {"headline", "price", "address", "bodyText", "phone", "email", "website"},
	CategoryJobPosting:       {"headline", "subheadline", "bodyText", "ctaText", "email", "website"},
	CategoryClassWorkshop:    {"headline", "subheadline", "date", "venueName", "price", "ctaText"},
	CategoryGrandOpening:     {"headline", "subheadline", "bodyText", "date", "time", "venueName", "address", "discountText", "ctaText", "phone", "website"},
	CategoryPartyCelebration: {"headline", "subheadline", "date", "time", "venueName", "address", "ctaText", "phone"},
	CategoryFitnessWellness:  {"headline", "subheadline", "date", "time", "venueName", "address", "price", "discountText", "ctaText", "phone"},
	CategoryNonprofitCharity: {"headline", "subheadline", "bodyText", "date", "time", "venueName", "address", "ctaText", "phone", "email", "website"},
	CategoryMusicConcert:     {"headline", "subheadline", "date", "time", "venueName", "address", "price", "ctaText", "website"},
}

var categorySuggestedElements = map[Category][]string{
	CategoryEvent:            {"decorative borders", "event-themed graphics"},
	CategorySalePromo:        {"sale tags", "burst shapes", "percentage badges", "shopping bags"},
	CategoryRestaurantFood:   {"food imagery", "utensils", "plate arrangements"},
	CategoryRealEstate:       {"property silhouette", "key motifs", "house icons"},
	CategoryJobPosting:       {"professional icons", "growth arrows", "team silhouettes"},
	CategoryClassWorkshop:    {"learning icons", "notebook motifs", "lightbulb"},
	CategoryGrandOpening:     {"ribbon cutting", "celebration confetti", "grand banner"},
	CategoryPartyCelebration: {"balloons", "confetti", "party decorations"},
	CategoryFitnessWellness:  {"fitness silhouettes", "wellness symbols", "nature elements"},
	CategoryNonprofitCharity: {"helping hands", "heart motifs", "community symbols"},
	CategoryMusicConcert:     {"musical notes", "instruments", "sound waves", "stage lights"},
}

// TextFields returns the JSON names of the text fields that matter for the
// category, headline first. Unknown categories get the headline only.
func (c Category) TextFields() []string {
	fields, ok := categoryTextFields[c]
	if !ok {
		return []string{"headline"}
	}
	return append([]string(nil), fields...)
}

func (c Category) SuggestedElements() []string {
	return append([]string(nil), categorySuggestedElements[c]...)
}

// Intent is what the user wants to achieve. It groups categories for
// clients that ask "why" before "what".
type Intent string

const (
	IntentCelebrate Intent = "celebrate"
	IntentInvite    Intent = "invite"
	IntentPromote   Intent = "promote"
	IntentInform    Intent = "inform"
	IntentCommunity Intent = "community"
)

var intents = []Intent{IntentCelebrate, IntentInvite, IntentPromote, IntentInform, IntentCommunity}

func Intents() []Intent { return append([]Intent(nil), intents...) }

func (i Intent) DisplayName() string {
	switch i {
	case IntentCelebrate:
		return "Celebrate"
	case IntentInvite:
		return "Invite"
	case IntentPromote:
		return "Promote"
	case IntentInform:
		return "Inform"
	case IntentCommunity:
		return "Connect"
	default:
		return humanize(string(i))
	}
}

func (i Intent) Categories() []Category {
	switch i {
	case IntentCelebrate:
		return []Category{CategoryPartyCelebration, CategoryGrandOpening}
	case IntentInvite:
		return []Category{CategoryEvent, CategoryMusicConcert}
	case IntentPromote:
		return []Category{CategorySalePromo, CategoryFitnessWellness, CategoryRestaurantFood, CategoryRealEstate, CategoryJobPosting}
	case IntentInform:
		return []Category{CategoryAnnouncement}
	case IntentCommunity:
		return []Category{CategoryClassWorkshop, CategoryNonprofitCharity}
	default:
		return nil
	}
}
