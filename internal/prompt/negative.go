package prompt

import (
	"strings"

	"flyergen/internal/flyer"
)

var universalNegatives = []string{
	"blurry or fuzzy text",
	"misspelled words",
	"illegible unreadable text",
	"cut-off cropped text",
	"overlapping colliding elements",
	"cluttered busy composition",
	"low resolution pixelated",
	"watermarks",
	"amateur unprofessional design",
	"cheap clipart",
	"cheesy dated effects",
	"excessive drop shadows",
	"word art",
	"stretched distorted images",
	"poor contrast",
	"random floating elements",
	"inconsistent style mixing",
	"too many fonts",
	"unbalanced layout",
}

var categoryNegatives = map[flyer.Category][]string{
	flyer.CategoryEvent:            {"boring static composition", "unclear date and time"},
	flyer.CategorySalePromo:        {"subtle hidden pricing", "calm muted urgency", "buried discount"},
	flyer.CategoryAnnouncement:     {"confusing layout", "buried message"},
	flyer.CategoryRestaurantFood:   {"unappetizing imagery", "cold sterile colors"},
	flyer.CategoryRealEstate:       {"cluttered property view", "unprofessional layout"},
	flyer.CategoryJobPosting:       {"too casual", "unclear position"},
	flyer.CategoryClassWorkshop:    {"intimidating imagery", "overly complex confusing"},
	flyer.CategoryGrandOpening:     {"subdued underwhelming", "no celebration feeling"},
	flyer.CategoryPartyCelebration: {"boring serious tone", "corporate stiffness"},
	flyer.CategoryFitnessWellness:  {"intimidating extreme imagery", "unhealthy appearance"},
	flyer.CategoryNonprofitCharity: {"exploitative imagery", "guilt-inducing"},
	flyer.CategoryMusicConcert:     {"static boring composition", "silent feeling"},
}

// BuildNegativePrompt lists what the image model should avoid: the universal
// defects, then the category's own, then the caller's avoid list as given.
// Duplicates are kept.
func BuildNegativePrompt(category flyer.Category, avoid []string) string {
	specific := categoryNegatives[category]
	negatives := make([]string, 0, len(universalNegatives)+len(specific)+len(avoid))
	negatives = append(negatives, universalNegatives...)
	negatives = append(negatives, specific...)
	negatives = append(negatives, avoid...)
	return strings.Join(negatives, ", ")
}

// UniversalNegatives returns a copy of the defect phrases every flyer avoids.
func UniversalNegatives() []string {
	return append([]string(nil), universalNegatives...)
}
