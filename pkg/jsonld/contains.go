package jsonld

import "github.com/samber/lo"

// ContainsNested reports whether any node typed parentType has, within the
// subtree rooted at it, a node that declares childSelector among its types
// or carries a property literally named childSelector. The parent node
// itself belongs to the subtree it anchors, and once an ancestor matches
// parentType the whole subtree below it qualifies.
func ContainsNested(blocks []*Value, parentType, childSelector string) bool {
	for _, block := range blocks {
		if subtreeContains(block, parentType, childSelector, false) {
			return true
		}
	}
	return false
}

func subtreeContains(v *Value, parentType, childSelector string, underParent bool) bool {
	switch v.Kind() {
	case KindObject:
		if lo.Contains(TypeTokens(v), parentType) {
			underParent = true
		}
		if underParent {
			if lo.Contains(TypeTokens(v), childSelector) {
				return true
			}
			if v.Get(childSelector) != nil {
				return true
			}
		}
		for _, m := range v.Members() {
			if subtreeContains(m.Value, parentType, childSelector, underParent) {
				return true
			}
		}
	case KindArray:
		for _, item := range v.Items() {
			if subtreeContains(item, parentType, childSelector, underParent) {
				return true
			}
		}
	}
	return false
}
