// Package agent wires the pipeline together: scrape or accept a job
// posting, compose the prompt, call the model, persist the letter.
// One Agent handles one CLI invocation; nothing is shared across runs.
package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/coverletter-agent/internal/compose"
	"github.com/jonathan/coverletter-agent/internal/config"
	"github.com/jonathan/coverletter-agent/internal/fetch"
	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/output"
	"github.com/jonathan/coverletter-agent/internal/prompts"
	"github.com/jonathan/coverletter-agent/internal/scrape"
	"github.com/jonathan/coverletter-agent/internal/types"
)

// Agent drives a single cover letter generation run.
type Agent struct {
	cfg      *config.Config
	scraper  *scrape.Scraper
	writer   *output.Writer
	validate *validator.Validate

	// newClient is swapped in tests to avoid real provider calls.
	newClient func(ctx context.Context, opts llm.Options) (llm.Client, error)
}

// New creates an Agent from the effective configuration.
func New(cfg *config.Config) *Agent {
	return &Agent{
		cfg: cfg,
		scraper: scrape.New(
			scrape.WithFetchOptions(&fetch.Options{
				Timeout:   cfg.Timeout(),
				UserAgent: fetch.DefaultUserAgent,
			}),
			scrape.WithBrowserFallback(cfg.UseBrowser),
			scrape.WithVerbose(cfg.Verbose),
		),
		writer:    output.NewWriter(cfg.OutputDir),
		validate:  validator.New(),
		newClient: llm.NewClient,
	}
}

// Preview scrapes a job posting without generating anything.
// Fetch failures are returned; extraction misses are not errors.
func (a *Agent) Preview(ctx context.Context, jobURL string) (*types.JobPosting, error) {
	return a.scraper.Scrape(ctx, jobURL)
}

// GenerateFromURL scrapes a posting and generates a letter for it.
// A failed scrape degrades to an empty posting with a warning so
// generation can still proceed on the resume alone.
func (a *Agent) GenerateFromURL(ctx context.Context, jobURL, resumeText, outputName string) (*types.GenerationResult, *types.JobPosting, error) {
	job, err := a.scraper.Scrape(ctx, jobURL)
	if err != nil {
		log.Printf("warning: scraping %s failed: %v; generating without job details", jobURL, err)
		job = &types.JobPosting{URL: jobURL}
	}

	req := &types.GenerationRequest{
		ID:         uuid.NewString(),
		Job:        *job,
		Resume:     resumeText,
		OutputName: outputName,
	}

	result, err := a.generate(ctx, req)
	return result, job, err
}

// GenerateFromText generates a letter from an already-known job description.
func (a *Agent) GenerateFromText(ctx context.Context, jobDescription, resumeText, company, position, outputName string) (*types.GenerationResult, error) {
	req := &types.GenerationRequest{
		ID:         uuid.NewString(),
		Job:        types.JobPosting{Description: jobDescription},
		Resume:     resumeText,
		Company:    company,
		Position:   position,
		OutputName: outputName,
	}
	return a.generate(ctx, req)
}

func (a *Agent) generate(ctx context.Context, req *types.GenerationRequest) (*types.GenerationResult, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid generation request: %w", err)
	}
	if err := a.cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	template, err := prompts.ReadLetterTemplate(a.cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	prompt := compose.Prompt(req, template)
	if a.cfg.Verbose {
		log.Printf("[VERBOSE] Request %s: prompt is %d chars", req.ID, len(prompt))
	}

	client, err := a.newClient(ctx, llm.Options{
		APIKey:     a.cfg.APIKey,
		Model:      a.cfg.Model,
		MaxRetries: a.cfg.Retries(),
		Verbose:    a.cfg.Verbose,
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	text, err := client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	name := req.OutputName
	if name == "" {
		name = output.BaseNameFor(req.EffectiveCompany(), req.EffectivePosition())
	}
	path, err := a.writer.Write(name, text)
	if err != nil {
		return nil, err
	}

	return &types.GenerationResult{Text: text, OutputPath: path}, nil
}
