package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type NLPProcessor struct {
	mappings []commandMapping
}

// NewProcessor returns the fixed voice vocabulary. Mappings are checked in
// order, so "read" wins over "stop" when a transcript holds both.
func NewProcessor() INLPProcessor {
	p := &NLPProcessor{}
	for _, m := range []commandMapping{
		{Command: CommandRead, Keywords: []string{"read", "lire"}},
		{Command: CommandStop, Keywords: []string{"stop", "arrêter"}},
	} {
		cleaned := make([]string, 0, len(m.Keywords))
		for _, k := range m.Keywords {
			cleaned = append(cleaned, p.cleanText(k))
		}
		p.mappings = append(p.mappings, commandMapping{Command: m.Command, Keywords: cleaned})
	}
	return p
}

func (p *NLPProcessor) ProcessCommand(transcript string) IntentResult {
	cleanText := p.cleanText(transcript)

	for _, m := range p.mappings {
		for _, keyword := range m.Keywords {
			if strings.Contains(cleanText, keyword) {
				return IntentResult{
					Command:     m.Command,
					Keyword:     keyword,
					CleanedText: cleanText,
				}
			}
		}
	}

	return IntentResult{Command: CommandNone, CleanedText: cleanText}
}

// cleanText lower-cases, strips diacritics and punctuation, and collapses
// whitespace. Recognizers are inconsistent about accents ("arrêter" vs "arreter").
func (p *NLPProcessor) cleanText(text string) string {
	text = cases.Lower(language.Und).String(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
