package scrape

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/coverletter-agent/internal/fetch"
	"github.com/jonathan/coverletter-agent/internal/schemas"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// jobPostingMarkup mirrors the schema.org/JobPosting fields we consume.
// hiringOrganization appears both as a bare string and as an object in
// the wild, so it gets a custom unmarshaler.
type jobPostingMarkup struct {
	Type         ldType         `json:"@type"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Organization ldOrganization `json:"hiringOrganization"`
}

type ldType []string

func (t *ldType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = ldType{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = ldType(many)
	return nil
}

func (t ldType) isJobPosting() bool {
	for _, v := range t {
		if strings.EqualFold(v, "JobPosting") {
			return true
		}
	}
	return false
}

type ldOrganization struct {
	Name string `json:"name"`
}

func (o *ldOrganization) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		o.Name = name
		return nil
	}
	type alias ldOrganization
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	o.Name = obj.Name
	return nil
}

// extractJSONLD pulls JobPosting fields from schema.org JSON-LD blocks.
// Blocks that fail schema validation are skipped rather than trusted.
func extractJSONLD(doc *goquery.Document, _ string, _ fetch.Platform) *types.JobPosting {
	var job *types.JobPosting

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, candidate := range ldCandidates(s.Text()) {
			raw, err := json.Marshal(candidate)
			if err != nil {
				continue
			}
			if schemas.ValidateJobPostingMarkup(string(raw)) != nil {
				continue
			}

			var markup jobPostingMarkup
			if err := json.Unmarshal(raw, &markup); err != nil {
				continue
			}
			if !markup.Type.isJobPosting() {
				continue
			}

			job = &types.JobPosting{
				Title:       strings.TrimSpace(markup.Title),
				Company:     strings.TrimSpace(markup.Organization.Name),
				Description: cleanText(stripHTML(markup.Description)),
			}
			return false
		}
		return true
	})

	return job
}

// ldCandidates flattens a JSON-LD script body into the objects it may
// contain: a single object, a top-level array, or an @graph array.
func ldCandidates(body string) []map[string]any {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}

	var single map[string]any
	if err := json.Unmarshal([]byte(body), &single); err == nil {
		if graph, ok := single["@graph"].([]any); ok {
			return objectsOf(graph)
		}
		return []map[string]any{single}
	}

	var many []any
	if err := json.Unmarshal([]byte(body), &many); err == nil {
		return objectsOf(many)
	}

	return nil
}

func objectsOf(items []any) []map[string]any {
	objs := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}

// stripHTML renders embedded HTML (common in JSON-LD descriptions) to text.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
