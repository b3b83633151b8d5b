package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/seoscope/schemascan/models"
)

func TestParseContainsChecks(t *testing.T) {
	checks, err := ParseContainsChecks([]string{"NewsArticle:ImageObject", " LiveBlogPosting : VideoObject "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.ContainsCheck{
		{ParentType: "NewsArticle", ChildSelector: "ImageObject"},
		{ParentType: "LiveBlogPosting", ChildSelector: "VideoObject"},
	}
	if diff := cmp.Diff(want, checks); diff != "" {
		t.Errorf("checks mismatch (-want +got):\n%s", diff)
	}
}

func TestParseContainsChecksRejectsMalformed(t *testing.T) {
	for _, spec := range []string{"NewsArticle", ":ImageObject", "NewsArticle:", " : "} {
		if _, err := ParseContainsChecks([]string{spec}); err == nil {
			t.Errorf("expected error for %q", spec)
		}
	}
}

func TestParseContainsChecksEmpty(t *testing.T) {
	checks, err := ParseContainsChecks(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checks) != 0 {
		t.Errorf("expected no checks, got %v", checks)
	}
}

func TestJoinCheckKeys(t *testing.T) {
	checks := []models.ContainsCheck{
		{ParentType: "NewsArticle", ChildSelector: "ImageObject"},
		{ParentType: "LiveBlogPosting", ChildSelector: "VideoObject"},
	}
	if got := joinCheckKeys(checks); got != "NewsArticle:ImageObject, LiveBlogPosting:VideoObject" {
		t.Errorf("unexpected joined keys: %q", got)
	}
}
