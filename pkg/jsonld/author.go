package jsonld

import "github.com/samber/lo"

// AuthorUnknown is reported when a page declares authorship but no name can
// be resolved from the author value.
const AuthorUnknown = "unidentified"

// articleLikeTypes are the node types whose author property counts as an
// authorship signal. An author key on any other node, say an Organization
// inside the publisher block, is ignored.
var articleLikeTypes = []string{"Article", "NewsArticle", "BlogPosting", "LiveBlogPosting"}

// DetectAuthor reports whether any article-like node in blocks declares an
// author, along with the first name that resolves. When authorship exists
// but no declaration ever yields a name, the name is AuthorUnknown.
func DetectAuthor(blocks []*Value) (bool, string) {
	hasAuthor := false
	name := ""

	for _, block := range blocks {
		Walk(block, true, func(obj *Value, _ bool) {
			if !lo.Some(articleLikeTypes, TypeTokens(obj)) {
				return
			}
			author := obj.Get("author")
			if author == nil {
				return
			}
			hasAuthor = true
			if name == "" {
				name = resolveName(author)
			}
		})
	}

	if !hasAuthor {
		return false, ""
	}
	if name == "" {
		name = AuthorUnknown
	}
	return true, name
}

// resolveName digs a display name out of an author value: objects prefer
// name over alternateName, arrays defer to their first entry, bare strings
// stand alone.
func resolveName(author *Value) string {
	switch author.Kind() {
	case KindString:
		return author.Str()
	case KindObject:
		if n := author.Get("name"); n.IsString() && n.Str() != "" {
			return n.Str()
		}
		if n := author.Get("alternateName"); n.IsString() && n.Str() != "" {
			return n.Str()
		}
	case KindArray:
		if items := author.Items(); len(items) > 0 {
			return resolveName(items[0])
		}
	}
	return ""
}
