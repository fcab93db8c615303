package cascade

import (
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/raadsel/internal/lexicon"
	"github.com/ppiankov/raadsel/internal/model"
	"go.uber.org/zap"
)

// Prefilter selects which scraped pages are worth looking up aspects for.
// It runs on link records, before descriptions and page views are fetched.
type Prefilter struct {
	minLinks       int
	minTitleLength int
	lemmas         lexicon.Set
	logger         *zap.Logger
}

// NewPrefilter creates a prefilter; a nil lemma set disables the WordNet check
func NewPrefilter(minLinks, minTitleLength int, lemmas lexicon.Set, logger *zap.Logger) *Prefilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prefilter{
		minLinks:       minLinks,
		minTitleLength: minTitleLength,
		lemmas:         lemmas,
		logger:         logger,
	}
}

// Run keeps pages with enough links, a WordNet lemma as title and a long enough title
func (f *Prefilter) Run(pages []model.Page) []model.Page {
	out := make([]model.Page, 0, len(pages))
	var droppedLinks, droppedLemma, droppedLength int

	for _, p := range pages {
		switch {
		case len(p.Links) < f.minLinks:
			droppedLinks++
		case f.lemmas != nil && !f.lemmas.Has(strings.ToLower(p.Title)):
			droppedLemma++
		case utf8.RuneCountInString(p.Title) < f.minTitleLength:
			droppedLength++
		default:
			out = append(out, p)
		}
	}

	f.logger.Debug("prefilter done",
		zap.Int("pages_in", len(pages)),
		zap.Int("pages_out", len(out)),
		zap.Int("too_few_links", droppedLinks),
		zap.Int("not_in_wordnet", droppedLemma),
		zap.Int("title_too_short", droppedLength))

	return out
}
