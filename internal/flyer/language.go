package flyer

import (
	"golang.org/x/text/language"
)

// Language is the target language for all text rendered in the flyer.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageUrdu    Language = "ur"
	LanguageArabic  Language = "ar"
	LanguageChinese Language = "zh"
)

var languages = []Language{
	LanguageEnglish,
	LanguageSpanish,
	LanguageUrdu,
	LanguageArabic,
	LanguageChinese,
}

var languageTags = []language.Tag{
	language.English,
	language.Spanish,
	language.Urdu,
	language.Arabic,
	language.Chinese,
}

var languageMatcher = language.NewMatcher(languageTags)

func Languages() []Language { return append([]Language(nil), languages...) }

func (l Language) DisplayName() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageSpanish:
		return "Español (Spanish)"
	case LanguageUrdu:
		return "اردو (Urdu)"
	case LanguageArabic:
		return "العربية (Arabic)"
	case LanguageChinese:
		return "中文 (Chinese)"
	default:
		return string(l)
	}
}

// IsDefault reports whether the language needs no translation instructions.
func (l Language) IsDefault() bool {
	return l == LanguageEnglish || l == ""
}

// Supported reports whether l is one of the languages flyers can be
// rendered in.
func (l Language) Supported() bool {
	for _, v := range languages {
		if l == v {
			return true
		}
	}
	return false
}

// IsRTL reports whether the script is written right to left.
func (l Language) IsRTL() bool {
	return l == LanguageUrdu || l == LanguageArabic
}

func (l Language) PromptInstruction() string {
	switch l {
	case LanguageSpanish:
		return "Generate all text content in Spanish (Español). " +
			"Translate headlines, descriptions, and calls-to-action to Spanish. " +
			"DO NOT translate addresses, phone numbers, emails, or URLs - keep them exactly as provided. " +
			"If the user provides text in another language, translate it to Spanish while preserving the intended meaning and tone."
	case LanguageUrdu:
		return "Generate all text content in Urdu (اردو). Use Nastaliq script. " +
			"Render Urdu text right-to-left. " +
			"Translate headlines, descriptions, and calls-to-action to Urdu. " +
			"DO NOT translate addresses, phone numbers, emails, or URLs - keep them exactly as provided in left-to-right order. " +
			"If the user provides text in another language, translate it to Urdu while preserving the intended meaning and tone."
	case LanguageArabic:
		return "Generate all text content in Arabic (العربية). " +
			"Render Arabic text right-to-left. " +
			"Translate headlines, descriptions, and calls-to-action to Arabic. " +
			"DO NOT translate addresses, phone numbers, emails, or URLs - keep them exactly as provided in left-to-right order. " +
			"If the user provides text in another language, translate it to Arabic while preserving the intended meaning and tone."
	case LanguageChinese:
		return "Generate all text content in Simplified Chinese (简体中文). " +
			"Translate headlines, descriptions, and calls-to-action to Chinese. " +
			"DO NOT translate addresses, phone numbers, emails, or URLs - keep them exactly as provided. " +
			"If the user provides text in another language, translate it to Chinese while preserving the intended meaning and tone."
	default:
		return "Generate all text content in English."
	}
}

// ParseLanguage resolves a BCP 47 tag such as "es-MX" or "zh-Hans" to the
// closest supported language. Unknown or malformed tags yield English.
func ParseLanguage(tag string) Language {
	t, err := language.Parse(tag)
	if err != nil {
		return LanguageEnglish
	}
	return match(t)
}

// MatchAcceptLanguage picks the best supported language for an HTTP
// Accept-Language header value.
func MatchAcceptLanguage(header string) Language {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return LanguageEnglish
	}
	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return LanguageEnglish
	}
	return languages[idx]
}

func match(t language.Tag) Language {
	_, idx, conf := languageMatcher.Match(t)
	if conf == language.No {
		return LanguageEnglish
	}
	return languages[idx]
}
