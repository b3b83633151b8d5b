// Package pagemeta enriches scan rows with page context the structured
// data itself does not carry.
package pagemeta

import (
	"net/url"
	"strings"
	"sync"

	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// Meta holds display-only context extracted from page markup.
type Meta struct {
	Title    string
	SiteName string
	Byline   string
	Excerpt  string
	Language string // ISO-639-1, lowercase, empty when undetected
}

// Short snippets make lingua guess wildly, so skip them.
const minDetectionLength = 20

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// languageDetector builds the lingua model lazily. Model load costs real
// memory, so pages without text to classify never pay for it.
func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Italian,
				lingua.Portuguese,
			).
			Build()
	})
	return detector
}

// Enrich distills the page with go-readability and guesses the language
// of the readable text. Everything here is best-effort: a page readability
// cannot make sense of yields an empty Meta, never an error.
func Enrich(pageURL, html string) Meta {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return Meta{}
	}

	article, err := readability.NewParser().Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return Meta{}
	}

	meta := Meta{
		Title:    strings.TrimSpace(article.Title),
		SiteName: strings.TrimSpace(article.SiteName),
		Byline:   strings.TrimSpace(article.Byline),
		Excerpt:  strings.TrimSpace(article.Excerpt),
	}
	meta.Language = DetectLanguage(meta.Title + " " + meta.Excerpt)
	return meta
}

// DetectLanguage classifies text into an ISO-639-1 code, or "" when the
// text is too short or lingua has no confident answer.
func DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if len(text) < minDetectionLength {
		return ""
	}
	language, ok := languageDetector().DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
