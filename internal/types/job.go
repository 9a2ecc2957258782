// Package types provides type definitions for structured data used throughout the coverletter-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a job posting assembled from scraping or user-supplied text.
// Fields are best-effort; any of them may be empty when extraction misses.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// IsEmpty reports whether no field of the posting was populated.
func (j *JobPosting) IsEmpty() bool {
	return j.Title == "" && j.Company == "" && j.Description == ""
}

// Merge fills empty fields of j from other. Populated fields are never
// overwritten, which lets extraction strategies layer in priority order.
func (j *JobPosting) Merge(other *JobPosting) {
	if other == nil {
		return
	}
	if j.Title == "" {
		j.Title = other.Title
	}
	if j.Company == "" {
		j.Company = other.Company
	}
	if j.Description == "" {
		j.Description = other.Description
	}
	if j.URL == "" {
		j.URL = other.URL
	}
}

// GenerationRequest holds everything needed for one cover letter generation.
type GenerationRequest struct {
	ID         string     `json:"id"`
	Job        JobPosting `json:"job"`
	Resume     string     `json:"resume" validate:"required"`
	Company    string     `json:"company,omitempty"`  // override for Job.Company
	Position   string     `json:"position,omitempty"` // override for Job.Title
	OutputName string     `json:"output_name,omitempty"`
}

// EffectiveCompany returns the company override if set, else the scraped value.
func (r *GenerationRequest) EffectiveCompany() string {
	if r.Company != "" {
		return r.Company
	}
	return r.Job.Company
}

// EffectivePosition returns the position override if set, else the scraped title.
func (r *GenerationRequest) EffectivePosition() string {
	if r.Position != "" {
		return r.Position
	}
	return r.Job.Title
}

// GenerationResult is the outcome of a successful generation run.
type GenerationResult struct {
	Text       string `json:"text"`
	OutputPath string `json:"output_path"`
}
