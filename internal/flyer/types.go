package flyer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfiguration = errors.New("invalid flyer configuration")
	ErrMissingHeadline      = errors.New("headline is required")
)

const (
	DefaultQuality = "hd"
	DefaultModel   = "nano-banana"
)

type TextContent struct {
	Headline       string   `json:"headline"`
	Subheadline    string   `json:"subheadline,omitempty"`
	BodyText       string   `json:"bodyText,omitempty"`
	Date           string   `json:"date,omitempty"`
	Time           string   `json:"time,omitempty"`
	VenueName      string   `json:"venueName,omitempty"`
	Address        string   `json:"address,omitempty"`
	Price          string   `json:"price,omitempty"`
	DiscountText   string   `json:"discountText,omitempty"`
	CTAText        string   `json:"ctaText,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Website        string   `json:"website,omitempty"`
	SocialHandle   string   `json:"socialHandle,omitempty"`
	AdditionalInfo []string `json:"additionalInfo,omitempty"`
	FinePrint      string   `json:"finePrint,omitempty"`
}

type ColorSettings struct {
	Preset          ColorPreset    `json:"preset,omitempty"`
	PrimaryColor    string         `json:"primaryColor,omitempty"`
	SecondaryColor  string         `json:"secondaryColor,omitempty"`
	AccentColor     string         `json:"accentColor,omitempty"`
	BackgroundType  BackgroundType `json:"backgroundType,omitempty"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
	GradientColors  []string       `json:"gradientColors,omitempty"`
}

type VisualSettings struct {
	Style           VisualStyle    `json:"style,omitempty"`
	Mood            Mood           `json:"mood,omitempty"`
	TextProminence  TextProminence `json:"textProminence,omitempty"`
	ImageryType     ImageryType    `json:"imageryType,omitempty"`
	IncludeElements []string       `json:"includeElements,omitempty"`
	AvoidElements   []string       `json:"avoidElements,omitempty"`
}

type OutputSettings struct {
	AspectRatio AspectRatio `json:"aspectRatio,omitempty"`
	Quality     string      `json:"quality,omitempty"`
	Model       string      `json:"model,omitempty"`
}

// ReferenceImagery is the optional imagery input: a user photo to place in
// the design, or a description of imagery to generate. A nil value means none.
type ReferenceImagery interface {
	isReference()
}

type PhotoReference struct {
	Data []byte
}

type DescriptionReference struct {
	Text string
}

func (PhotoReference) isReference()       {}
func (DescriptionReference) isReference() {}

// NewReference builds the reference from the two optional inputs. A photo
// always wins over a description.
func NewReference(photo []byte, description string) ReferenceImagery {
	if len(photo) > 0 {
		return PhotoReference{Data: photo}
	}
	if strings.TrimSpace(description) != "" {
		return DescriptionReference{Text: description}
	}
	return nil
}

// Configuration describes a flyer. Logo bytes are carried for downstream
// compositing and never reach the prompt.
type Configuration struct {
	Category            Category         `json:"category"`
	Language            Language         `json:"language,omitempty"`
	Text                TextContent      `json:"textContent"`
	Colors              ColorSettings    `json:"colorSettings"`
	Visuals             VisualSettings   `json:"visualSettings"`
	Output              OutputSettings   `json:"outputSettings"`
	TargetAudience      string           `json:"targetAudience,omitempty"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	Logo                []byte           `json:"logo,omitempty"`
	Reference           ReferenceImagery `json:"-"`
}

type configurationJSON struct {
	Category            Category       `json:"category"`
	Language            Language       `json:"language,omitempty"`
	Text                TextContent    `json:"textContent"`
	Colors              ColorSettings  `json:"colorSettings"`
	Visuals             VisualSettings `json:"visualSettings"`
	Output              OutputSettings `json:"outputSettings"`
	TargetAudience      string         `json:"targetAudience,omitempty"`
	SpecialInstructions string         `json:"specialInstructions,omitempty"`
	Logo                []byte         `json:"logo,omitempty"`
	UserPhoto           []byte         `json:"userPhoto,omitempty"`
	ImageryDescription  string         `json:"imageryDescription,omitempty"`
}

func (c *Configuration) UnmarshalJSON(data []byte) error {
	var raw configurationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Configuration{
		Category:            raw.Category,
		Language:            raw.Language,
		Text:                raw.Text,
		Colors:              raw.Colors,
		Visuals:             raw.Visuals,
		Output:              raw.Output,
		TargetAudience:      raw.TargetAudience,
		SpecialInstructions: raw.SpecialInstructions,
		Logo:                raw.Logo,
		Reference:           NewReference(raw.UserPhoto, raw.ImageryDescription),
	}
	return nil
}

func (c Configuration) MarshalJSON() ([]byte, error) {
	raw := configurationJSON{
		Category:            c.Category,
		Language:            c.Language,
		Text:                c.Text,
		Colors:              c.Colors,
		Visuals:             c.Visuals,
		Output:              c.Output,
		TargetAudience:      c.TargetAudience,
		SpecialInstructions: c.SpecialInstructions,
		Logo:                c.Logo,
	}
	switch ref := c.Reference.(type) {
	case PhotoReference:
		raw.UserPhoto = ref.Data
	case DescriptionReference:
		raw.ImageryDescription = ref.Text
	}
	return json.Marshal(raw)
}

// DecodeConfiguration parses a JSON flyer description. Decoding errors wrap
// ErrInvalidConfiguration.
func DecodeConfiguration(data []byte) (Configuration, error) {
	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return cfg, nil
}

// Validate checks the business rules the compiler assumes were enforced by
// the caller.
func (c Configuration) Validate() error {
	if strings.TrimSpace(c.Text.Headline) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrMissingHeadline)
	}
	return nil
}

// WithDefaults returns a copy with unset settings filled in. An unsupported
// language becomes English. Category has no default; an empty category
// compiles with the generic flyer context.
func (c Configuration) WithDefaults() Configuration {
	if !c.Language.Supported() {
		c.Language = LanguageEnglish
	}
	if c.Colors.Preset == "" {
		c.Colors.Preset = PresetWarm
	}
	if c.Colors.BackgroundType == "" {
		c.Colors.BackgroundType = BackgroundLight
	}
	if c.Visuals.Style == "" {
		c.Visuals.Style = StyleModernMinimal
	}
	if c.Visuals.Mood == "" {
		c.Visuals.Mood = MoodFriendly
	}
	if c.Visuals.TextProminence == "" {
		c.Visuals.TextProminence = ProminenceBalanced
	}
	if c.Visuals.ImageryType == "" {
		c.Visuals.ImageryType = ImageryIllustrated
	}
	if c.Output.AspectRatio == "" {
		c.Output.AspectRatio = AspectPortrait
	}
	if c.Output.Quality == "" {
		c.Output.Quality = DefaultQuality
	}
	if c.Output.Model == "" {
		c.Output.Model = DefaultModel
	}
	return c
}

// PromptPackage is the compiled instruction pair plus passthrough tags for
// the image client.
type PromptPackage struct {
	MainPrompt     string `json:"mainPrompt"`
	NegativePrompt string `json:"negativePrompt"`
	AspectRatio    string `json:"aspectRatio"`
	Model          string `json:"model"`
	Quality        string `json:"quality"`
}
