// Package cascade turns scraped candidate aspects into ranked clue lists.
//
// The cascade is an ordered list of stages. Every stage takes the whole batch
// and returns a new batch; only the link-count stages may drop pages, all other
// stages only drop aspects. The order is load-bearing: later stages assume the
// earlier ones already ran.
package cascade

import (
	"cmp"
	"slices"

	"github.com/ppiankov/raadsel/internal/lexicon"
	"github.com/ppiankov/raadsel/internal/model"
	"go.uber.org/zap"
)

// Stage is a single named transformation over the batch
type Stage struct {
	Name  string
	Apply func(pages []model.Page) []model.Page
}

// Options configures the cascade thresholds
type Options struct {
	MinLinks                  int
	DemonymThreshold          int
	CountryThreshold          int
	CountryQualifiedThreshold int
	CategoryLeak              bool
}

// OptionsFromConfig maps the filter section of the configuration
func OptionsFromConfig(cfg model.FilterConfig) Options {
	return Options{
		MinLinks:                  cfg.MinLinks,
		DemonymThreshold:          cfg.DemonymThreshold,
		CountryThreshold:          cfg.CountryThreshold,
		CountryQualifiedThreshold: cfg.CountryQualifiedThreshold,
		CategoryLeak:              cfg.CategoryLeak,
	}
}

// Result is the ranked output together with per-stage accounting
type Result struct {
	Pages  []model.RankedPage
	Stages []model.StageReport
}

// Cascade runs the aspect-selection stages in order
type Cascade struct {
	stages []Stage
	logger *zap.Logger
}

// New builds the standard cascade from a lexicon and thresholds
func New(lex *lexicon.Lexicon, opts Options, logger *zap.Logger) *Cascade {
	if logger == nil {
		logger = zap.NewNop()
	}

	stages := []Stage{
		MinLinks(opts.MinLinks),
		ExactDescription(lex.ExactSet()),
		NumericDescription(),
		CategoryExclusion(lex.ExcludedCategories, opts.CategoryLeak),
		AnswerLeakage(),
		DuplicateDescription(),
		DemonymRelevance(lex.Demonyms, opts.DemonymThreshold),
		CountryRelevance(lex.CountrySet(), opts.CountryQualifiedThreshold, opts.CountryThreshold),
		PartialDescription(lex.PartialDescriptions),
		MinLinks(opts.MinLinks),
	}

	return &Cascade{stages: stages, logger: logger}
}

// Stages returns the stage names in execution order, ranking excluded
func (c *Cascade) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name
	}
	return names
}

// Run applies every stage and ranks the surviving pages
func (c *Cascade) Run(pages []model.Page) Result {
	reports := make([]model.StageReport, 0, len(c.stages))

	current := pages
	for _, stage := range c.stages {
		next := stage.Apply(current)

		report := model.StageReport{
			Stage:      stage.Name,
			PagesIn:    len(current),
			PagesOut:   len(next),
			AspectsIn:  countAspects(current),
			AspectsOut: countAspects(next),
		}
		reports = append(reports, report)

		c.logger.Debug("cascade stage done",
			zap.String("stage", stage.Name),
			zap.Int("pages_in", report.PagesIn),
			zap.Int("pages_out", report.PagesOut),
			zap.Int("aspects_dropped", report.DroppedAspects()))

		current = next
	}

	return Result{Pages: Rank(current), Stages: reports}
}

// Rank stable-sorts each page's links by count descending and numbers the pages from 1
func Rank(pages []model.Page) []model.RankedPage {
	ranked := make([]model.RankedPage, len(pages))
	for i, p := range pages {
		links := slices.Clone(p.Links)
		slices.SortStableFunc(links, func(a, b model.Aspect) int {
			return cmp.Compare(b.Count, a.Count)
		})
		ranked[i] = model.RankedPage{Number: i + 1, Title: p.Title, Links: links}
	}
	return ranked
}

func countAspects(pages []model.Page) int {
	n := 0
	for _, p := range pages {
		n += len(p.Links)
	}
	return n
}
