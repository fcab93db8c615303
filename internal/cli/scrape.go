package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/ppiankov/raadsel/internal/record"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dataDir       string
	scrapeTimeout time.Duration
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Collect disambiguation pages, links and aspects from Wikipedia",
	Long: `Scrape runs the data collection steps in order:
- List every page in the disambiguation category
- Extract the article links of each page
- Prefilter pages (link count, WordNet lemma, title length)
- Look up description, categories and page views of every link
- Run the aspect cascade and rank the surviving aspects

Every intermediate batch is written to the data directory. API responses
are cached, so an interrupted scrape can be resumed cheaply.

Example:
  raadsel scrape
  raadsel scrape --data-dir ./data --timeout 12h
  RAADSEL_RATE_LIMITING_REQUESTS_PER_SECOND=2 raadsel scrape`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory for intermediate and output files")
	scrapeCmd.Flags().DurationVar(&scrapeTimeout, "timeout", 24*time.Hour, "overall scrape timeout")
	scrapeCmd.Flags().String("ua", "", "HTTP User-Agent (overrides wiki.user_agent)")
	scrapeCmd.Flags().Bool("respect-robots", false, "honour robots.txt of the API hosts")

	_ = viper.BindPFlag("wiki.user_agent", scrapeCmd.Flags().Lookup("ua"))
	_ = viper.BindPFlag("wiki.respect_robots", scrapeCmd.Flags().Lookup("respect-robots"))
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	banner("raadsel scrape")
	fmt.Fprintf(os.Stderr, "  API:          %s\n", cfg.Wiki.APIURL)
	fmt.Fprintf(os.Stderr, "  Category:     %s\n", cfg.Wiki.Category)
	fmt.Fprintf(os.Stderr, "  Rate limit:   %.1f req/s\n", cfg.RateLimiting.RequestsPerSecond)
	fmt.Fprintf(os.Stderr, "  Cache:        %v (%s)\n", cfg.Cache.Enabled, cfg.Cache.Dir)
	fmt.Fprintf(os.Stderr, "  Data dir:     %s\n", dataDir)
	if lex.Lemmas == nil {
		fmt.Fprintf(os.Stderr, "  WordNet:      not configured, lemma check skipped\n")
	}
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	p := newPipeline(cfg, lex, logger)

	fmt.Fprintf(os.Stderr, "⚙️  Scraping...\n")
	result, err := p.Scrape(ctx)
	if err != nil {
		return fmt.Errorf("scrape: %w", err)
	}

	filtered := p.Filter(result.Aspects)

	outputs := []struct {
		name  string
		write func(path string) error
	}{
		{pagesFile, func(path string) error { return record.WriteFile(path, result.Refs) }},
		{linksFile, func(path string) error { return record.WriteFile(path, record.EncodeLinkPages(result.Linked)) }},
		{filtered1File, func(path string) error { return record.WriteFile(path, record.EncodeLinkPages(result.Candidates)) }},
		{aspectsFile, func(path string) error { return record.WriteFile(path, result.Aspects) }},
		{filtered2File, func(path string) error { return record.WriteFile(path, filtered.Pages) }},
	}
	for _, out := range outputs {
		path := filepath.Join(dataDir, out.name)
		if err := out.write(path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
	}

	banner("Scrape Complete")
	fmt.Fprintf(os.Stderr, "  Pages listed:    %d\n", len(result.Refs))
	fmt.Fprintf(os.Stderr, "  With links:      %d\n", len(result.Linked))
	fmt.Fprintf(os.Stderr, "  Prefiltered:     %d\n", len(result.Candidates))
	fmt.Fprintf(os.Stderr, "  Ranked pages:    %d\n", len(filtered.Pages))
	fmt.Fprintf(os.Stderr, "\n")
	printStages(filtered.Stages)

	return nil
}
