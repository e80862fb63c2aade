package entity

import (
	"golang.org/x/text/language"
)

type LanguageCode string

const (
	LanguageFrench     LanguageCode = "fr"
	LanguageEnglish    LanguageCode = "en"
	LanguageArabic     LanguageCode = "ar"
	LanguageSpanish    LanguageCode = "es"
	LanguageGerman     LanguageCode = "de"
	LanguageItalian    LanguageCode = "it"
	LanguagePortuguese LanguageCode = "pt"
	LanguageChinese    LanguageCode = "zh"
	LanguageRussian    LanguageCode = "ru"
	LanguageTurkish    LanguageCode = "tr"
)

const DefaultLanguage = LanguageFrench

type LanguageInfo struct {
	Code LanguageCode `json:"code"`
	Name string       `json:"name"`
	Flag string       `json:"flag"`
}

// Languages is the selector list, in display order.
var Languages = []LanguageInfo{
	{Code: LanguageFrench, Name: "Français", Flag: "🇫🇷"},
	{Code: LanguageEnglish, Name: "English", Flag: "🇺🇸"},
	{Code: LanguageArabic, Name: "العربية", Flag: "🇲🇦"},
	{Code: LanguageSpanish, Name: "Español", Flag: "🇪🇸"},
	{Code: LanguageGerman, Name: "Deutsch", Flag: "🇩🇪"},
	{Code: LanguageItalian, Name: "Italiano", Flag: "🇮🇹"},
	{Code: LanguagePortuguese, Name: "Português", Flag: "🇵🇹"},
	{Code: LanguageChinese, Name: "中文", Flag: "🇨🇳"},
	{Code: LanguageRussian, Name: "Русский", Flag: "🇷🇺"},
	{Code: LanguageTurkish, Name: "Türkçe", Flag: "🇹🇷"},
}

func ParseLanguageCode(s string) (LanguageCode, bool) {
	for _, l := range Languages {
		if string(l.Code) == s {
			return l.Code, true
		}
	}
	return "", false
}

func (c LanguageCode) String() string {
	return string(c)
}

func (c LanguageCode) Valid() bool {
	_, ok := ParseLanguageCode(string(c))
	return ok
}

// Locale returns the BCP-47 tag handed to the speech capabilities.
// English speaks en-US and French fr-FR; other codes use the likeliest region.
func (c LanguageCode) Locale() string {
	switch c {
	case LanguageFrench:
		return "fr-FR"
	case LanguageEnglish:
		return "en-US"
	}

	base, err := language.ParseBase(string(c))
	if err != nil {
		return "fr-FR"
	}
	tag, err := language.Compose(base)
	if err != nil {
		return "fr-FR"
	}
	region, _ := tag.Region()
	return base.String() + "-" + region.String()
}
