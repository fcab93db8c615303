// Package pipeline wires the wiki client, the prefilter and the aspect cascade
// into the scrape and filter steps that produce the annotation input.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/raadsel/internal/cascade"
	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/wiki"
	"go.uber.org/zap"
)

// progressEvery controls how often long loops report progress
const progressEvery = 100

// Source is the wiki data a scrape reads from
type Source interface {
	DisambiguationPages(ctx context.Context) ([]model.PageRef, error)
	PageHTML(ctx context.Context, title string) (string, error)
	Description(ctx context.Context, title string) (string, bool, error)
	Categories(ctx context.Context, title string) ([]string, error)
	PageViews(ctx context.Context, title string, days int) (int, error)
}

// Pipeline runs the scrape and filter steps sequentially
type Pipeline struct {
	source       Source
	prefilter    *cascade.Prefilter
	cascade      *cascade.Cascade
	pageviewDays int
	logger       *zap.Logger
}

// New creates a pipeline; pageviewDays is the popularity window used for aspect counts
func New(source Source, prefilter *cascade.Prefilter, c *cascade.Cascade, pageviewDays int, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		source:       source,
		prefilter:    prefilter,
		cascade:      c,
		pageviewDays: pageviewDays,
		logger:       logger,
	}
}

// ScrapeResult holds every intermediate batch of a scrape
type ScrapeResult struct {
	Refs       []model.PageRef // Members of the disambiguation category
	Linked     []model.Page    // Pages with their raw links
	Candidates []model.Page    // Pages kept by the prefilter
	Aspects    []model.Page    // Candidates with looked-up aspects
}

// Scrape lists the disambiguation pages, extracts their links, prefilters
// them and looks up the aspect data of every surviving link
func (p *Pipeline) Scrape(ctx context.Context) (*ScrapeResult, error) {
	refs, err := p.source.DisambiguationPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	p.logger.Info("listed disambiguation pages", zap.Int("pages", len(refs)))

	linked, err := p.Links(ctx, refs)
	if err != nil {
		return nil, err
	}

	candidates := p.prefilter.Run(linked)
	p.logger.Info("prefilter done", zap.Int("pages_in", len(linked)), zap.Int("pages_out", len(candidates)))

	aspects, err := p.Aspects(ctx, candidates)
	if err != nil {
		return nil, err
	}

	return &ScrapeResult{Refs: refs, Linked: linked, Candidates: candidates, Aspects: aspects}, nil
}

// Links fetches every page and extracts its article links. Pages without
// links are left out.
func (p *Pipeline) Links(ctx context.Context, refs []model.PageRef) ([]model.Page, error) {
	pages := make([]model.Page, 0, len(refs))
	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := p.source.PageHTML(ctx, ref.Title)
		if err != nil {
			return nil, fmt.Errorf("links of %s: %w", ref.Title, err)
		}
		links, err := wiki.ExtractLinks(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("parse links of %s: %w", ref.Title, err)
		}
		if len(links) == 0 {
			p.logger.Debug("page without links", zap.String("title", ref.Title))
			continue
		}
		pages = append(pages, model.Page{Title: ref.Title, Links: links})

		if (i+1)%progressEvery == 0 {
			p.logger.Info("extracting links", zap.Int("done", i+1), zap.Int("total", len(refs)))
		}
	}
	return pages, nil
}

// Aspects looks up the description, categories and page views of every link.
// Links without a Dutch description or without content categories are dropped.
func (p *Pipeline) Aspects(ctx context.Context, pages []model.Page) ([]model.Page, error) {
	out := make([]model.Page, 0, len(pages))
	for i, page := range pages {
		aspects := make([]model.Aspect, 0, len(page.Links))
		for _, link := range page.Links {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			aspect, ok, err := p.aspect(ctx, link)
			if err != nil {
				return nil, fmt.Errorf("aspects of %s: %w", page.Title, err)
			}
			if ok {
				aspects = append(aspects, aspect)
			}
		}
		out = append(out, page.WithLinks(aspects))

		if (i+1)%progressEvery == 0 {
			p.logger.Info("looking up aspects", zap.Int("done", i+1), zap.Int("total", len(pages)))
		}
	}
	return out, nil
}

func (p *Pipeline) aspect(ctx context.Context, link model.Aspect) (model.Aspect, bool, error) {
	desc, ok, err := p.source.Description(ctx, link.Title)
	if err != nil || !ok {
		return model.Aspect{}, false, err
	}

	cats, err := p.source.Categories(ctx, link.Title)
	if err != nil || len(cats) == 0 {
		return model.Aspect{}, false, err
	}

	views, err := p.source.PageViews(ctx, link.Title, p.pageviewDays)
	if err != nil {
		return model.Aspect{}, false, err
	}

	return model.Aspect{
		Title:       link.Title,
		Link:        link.Link,
		Description: desc,
		Categories:  cats,
		Count:       views,
	}, true, nil
}

// Filter runs the aspect cascade over looked-up pages
func (p *Pipeline) Filter(pages []model.Page) cascade.Result {
	result := p.cascade.Run(pages)
	p.logger.Info("cascade done", zap.Int("pages_in", len(pages)), zap.Int("pages_out", len(result.Pages)))
	return result
}
