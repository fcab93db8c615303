package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/raadsel/internal/cache"
	"github.com/ppiankov/raadsel/internal/cascade"
	"github.com/ppiankov/raadsel/internal/lexicon"
	"github.com/ppiankov/raadsel/internal/model"
	"github.com/ppiankov/raadsel/internal/pipeline"
	"github.com/ppiankov/raadsel/internal/wiki"
	"github.com/ppiankov/raadsel/internal/worker"
	"go.uber.org/zap"
)

// Default file names inside the data directory
const (
	pagesFile          = "all_pages.jsonl"
	linksFile          = "all_links.jsonl"
	filtered1File      = "all_filtered1.jsonl"
	aspectsFile        = "all_aspects.jsonl"
	filtered2File      = "all_filtered2.jsonl"
	annotationsOutFile = "all_annotations_out.tsv"
	annotationsInFile  = "all_annotations_in.jsonl"
)

var rule = strings.Repeat("═", 59)

// banner prints a section header to stderr
func banner(title string) {
	fmt.Fprintf(os.Stderr, "\n%s\n  %s\n%s\n\n", rule, title, rule)
}

// loadLexicon starts from the built-in lists and applies the configured overrides
func loadLexicon(cfg model.LexiconConfig) (*lexicon.Lexicon, error) {
	lex := lexicon.Default()
	if cfg.LexiconFile != "" {
		if err := lex.LoadFile(cfg.LexiconFile); err != nil {
			return nil, err
		}
	}
	if cfg.CountriesFile != "" {
		if err := lex.LoadCountries(cfg.CountriesFile); err != nil {
			return nil, err
		}
	}
	if cfg.WordNetFile != "" {
		if err := lex.LoadWordNet(cfg.WordNetFile); err != nil {
			return nil, err
		}
	}
	return lex, nil
}

func newCascade(cfg *model.Config, lex *lexicon.Lexicon, logger *zap.Logger) *cascade.Cascade {
	return cascade.New(lex, cascade.OptionsFromConfig(cfg.Filter), logger)
}

// newPipeline wires the wiki client, its cache and rate limiter into a pipeline
func newPipeline(cfg *model.Config, lex *lexicon.Lexicon, logger *zap.Logger) *pipeline.Pipeline {
	fetcher := wiki.NewFetcher(cfg.Wiki, worker.NewLimiterFromConfig(cfg.RateLimiting), cache.New(cfg.Cache), logger)
	client := wiki.NewClient(cfg.Wiki, fetcher, logger)
	prefilter := cascade.NewPrefilter(cfg.Filter.MinLinks, cfg.Filter.MinTitleLength, lex.Lemmas, logger)
	return pipeline.New(client, prefilter, newCascade(cfg, lex, logger), cfg.Wiki.PageviewDays, logger)
}

// printStages prints the per-stage accounting of a cascade run
func printStages(stages []model.StageReport) {
	fmt.Fprintf(os.Stderr, "  %-24s %8s %8s %10s\n", "Stage", "Pages", "Aspects", "Dropped")
	for _, s := range stages {
		fmt.Fprintf(os.Stderr, "  %-24s %8d %8d %10d\n", s.Stage, s.PagesOut, s.AspectsOut, s.DroppedAspects())
	}
	fmt.Fprintf(os.Stderr, "\n")
}
