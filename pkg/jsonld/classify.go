package jsonld

import "github.com/samber/lo"

// Classification is the per-page type census. Roots and Nested are
// deduplicated in discovery order and never share an entry with themselves,
// but the same token can legitimately appear in both when a type shows up
// at root level and nested on one page.
type Classification struct {
	Roots       []string
	Nested      []string
	PublishedAt string
	ModifiedAt  string
}

// Classify walks every block and buckets each node's type tokens by
// structural position. The first node anywhere that exposes a publication
// or modification date supplies it; later dates never overwrite.
func Classify(blocks []*Value) Classification {
	var roots, nested []string
	var rawPublished, rawModified string

	for _, block := range blocks {
		Walk(block, true, func(obj *Value, root bool) {
			tokens := TypeTokens(obj)
			if root {
				roots = append(roots, tokens...)
			} else {
				nested = append(nested, tokens...)
			}
			if rawPublished == "" {
				if d := obj.Get("datePublished"); d.IsString() {
					rawPublished = d.Str()
				}
			}
			if rawModified == "" {
				if d := obj.Get("dateModified"); d.IsString() {
					rawModified = d.Str()
				}
			}
		})
	}

	cl := Classification{
		Roots:  lo.Uniq(roots),
		Nested: lo.Uniq(nested),
	}
	if rawPublished != "" {
		cl.PublishedAt = ResolveDate(rawPublished).Display
	}
	if rawModified != "" {
		cl.ModifiedAt = ResolveDate(rawModified).Display
	}
	return cl
}

// TypeTokens normalizes the @type declaration of obj into a flat token
// sequence: a bare string becomes a one-element sequence, an array keeps
// its string members in order. Nodes without @type yield nothing; so do
// non-string members.
func TypeTokens(obj *Value) []string {
	t := obj.Get("@type")
	switch t.Kind() {
	case KindString:
		return []string{t.Str()}
	case KindArray:
		var tokens []string
		for _, item := range t.Items() {
			if item.IsString() {
				tokens = append(tokens, item.Str())
			}
		}
		return tokens
	}
	return nil
}
