package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/coverletter-agent/internal/fetch"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// extractSelectors applies the known CSS selector patterns used by
// major job boards. Each field is resolved independently from its own
// selector list; misses leave the field empty for later strategies.
func extractSelectors(doc *goquery.Document, _ string, platform fetch.Platform) *types.JobPosting {
	// Work on a pruned copy so noise removal does not affect later strategies.
	pruned := goquery.CloneDocument(doc)
	pruned.Find("script, style, noscript, nav, header, footer").Remove()
	if noise := fetch.NoiseSelectors(platform); len(noise) > 0 {
		pruned.Find(strings.Join(noise, ", ")).Remove()
	}

	job := &types.JobPosting{
		Title:   firstMatch(pruned, fetch.TitleSelectors(platform)),
		Company: firstMatch(pruned, fetch.CompanySelectors(platform)),
	}

	if desc := firstMatch(pruned, fetch.DescriptionSelectors(platform)); desc != "" {
		job.Description = cleanText(desc)
	}

	if job.IsEmpty() {
		return nil
	}
	return job
}

// firstMatch returns the trimmed text of the first selector that
// matches a non-empty element.
func firstMatch(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			if text := strings.TrimSpace(selection.First().Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// \p{L}\p{N} rather than \w: \w is ASCII-only and would strip
	// accented and CJK letters from non-English postings
	specialsRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:()\-'/"]`)
)

// cleanText collapses whitespace and strips characters that tend to be
// rendering artifacts (icons, zero-width spaces) in scraped pages.
func cleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
