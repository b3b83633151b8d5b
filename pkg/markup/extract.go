// Package markup pulls JSON-LD fragments out of page HTML.
package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/seoscope/schemascan/pkg/jsonld"
)

// ldContentType marks structured-data script elements. Real pages declare
// it with every imaginable casing, so matching is case-insensitive.
const ldContentType = "application/ld+json"

// Fragments returns the raw bodies of every JSON-LD script element in
// document order. Elements with empty bodies are dropped before indexing,
// so fragment positions reported by ParseBlocks line up with what callers
// receive here.
func Fragments(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var fragments []string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		scriptType, ok := s.Attr("type")
		if !ok || !strings.Contains(strings.ToLower(scriptType), ldContentType) {
			return
		}
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		fragments = append(fragments, raw)
	})
	return fragments, nil
}

// ExtractBlocks parses every JSON-LD fragment on the page. Fragments that
// fail to parse come back as indexed warning messages; surviving blocks
// keep document order.
func ExtractBlocks(html string) ([]*jsonld.Value, []string, error) {
	fragments, err := Fragments(html)
	if err != nil {
		return nil, nil, err
	}
	blocks, warnings := jsonld.ParseBlocks(fragments)
	return blocks, warnings, nil
}
