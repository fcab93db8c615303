package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/raadsel/internal/cascade"
	"github.com/ppiankov/raadsel/internal/lexicon"
	"github.com/ppiankov/raadsel/internal/model"
)

type fakeSource struct {
	refs         []model.PageRef
	html         map[string]string
	descriptions map[string]string
	categories   map[string][]string
	views        map[string]int
	htmlErr      error
	days         []int
}

func (f *fakeSource) DisambiguationPages(ctx context.Context) ([]model.PageRef, error) {
	return f.refs, nil
}

func (f *fakeSource) PageHTML(ctx context.Context, title string) (string, error) {
	if f.htmlErr != nil {
		return "", f.htmlErr
	}
	return f.html[title], nil
}

func (f *fakeSource) Description(ctx context.Context, title string) (string, bool, error) {
	d, ok := f.descriptions[title]
	return d, ok, nil
}

func (f *fakeSource) Categories(ctx context.Context, title string) ([]string, error) {
	return f.categories[title], nil
}

func (f *fakeSource) PageViews(ctx context.Context, title string, days int) (int, error) {
	f.days = append(f.days, days)
	return f.views[title], nil
}

func anchors(titles ...string) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, t := range titles {
		fmt.Fprintf(&b, `<li><a href="/wiki/%s" title="%s">%s</a></li>`, strings.ReplaceAll(t, " ", "_"), t, t)
	}
	b.WriteString("</ul>")
	return b.String()
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		refs: []model.PageRef{
			{PageID: 1, Title: "Mars"},
			{PageID: 2, Title: "Kat"},
			{PageID: 3, Title: "Leeg"},
		},
		html: map[string]string{
			"Mars": anchors("Mars (planeet)", "Mars (mythologie)", "Mars (reep)", "Mars (stad)", "Mars (band)"),
			"Kat":  anchors("Kat (dier)", "Kat (boot)", "Kat (hijswerktuig)"),
			"Leeg": "<p>Geen verwijzingen.</p>",
		},
		descriptions: map[string]string{
			"Mars (planeet)":    "vierde planeet vanaf de zon",
			"Mars (mythologie)": "god van de oorlog",
			"Mars (reep)":       "chocoladereep",
			"Mars (band)":       "muziekgroep",
		},
		categories: map[string][]string{
			"Mars (planeet)":    {"Planeet"},
			"Mars (mythologie)": {"Godheid"},
			"Mars (reep)":       {"Snoep"},
		},
		views: map[string]int{
			"Mars (planeet)":    500,
			"Mars (mythologie)": 300,
			"Mars (reep)":       900,
		},
	}
}

func newTestPipeline(src Source) *Pipeline {
	c := cascade.New(lexicon.Default(), cascade.Options{
		MinLinks:                  3,
		DemonymThreshold:          3000,
		CountryThreshold:          350,
		CountryQualifiedThreshold: 3000,
		CategoryLeak:              true,
	}, nil)
	return New(src, cascade.NewPrefilter(3, 4, nil, nil), c, 30, nil)
}

func TestPipeline_Scrape(t *testing.T) {
	src := newFakeSource()
	result, err := newTestPipeline(src).Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}

	if len(result.Refs) != 3 {
		t.Errorf("Expected 3 refs, got %d", len(result.Refs))
	}
	// Leeg has no links
	if len(result.Linked) != 2 {
		t.Errorf("Expected 2 linked pages, got %d", len(result.Linked))
	}
	// Kat is shorter than the minimum title length
	if len(result.Candidates) != 1 || result.Candidates[0].Title != "Mars" {
		t.Fatalf("Expected only Mars as candidate, got %+v", result.Candidates)
	}

	// Stad has no description, band has no categories
	want := []model.Page{{Title: "Mars", Links: []model.Aspect{
		{Title: "Mars (planeet)", Link: "/wiki/Mars_(planeet)", Description: "vierde planeet vanaf de zon", Categories: []string{"Planeet"}, Count: 500},
		{Title: "Mars (mythologie)", Link: "/wiki/Mars_(mythologie)", Description: "god van de oorlog", Categories: []string{"Godheid"}, Count: 300},
		{Title: "Mars (reep)", Link: "/wiki/Mars_(reep)", Description: "chocoladereep", Categories: []string{"Snoep"}, Count: 900},
	}}}
	if diff := cmp.Diff(want, result.Aspects); diff != "" {
		t.Errorf("Aspects mismatch (-want +got):\n%s", diff)
	}

	for _, d := range src.days {
		if d != 30 {
			t.Errorf("Expected a 30 day pageview window, got %d", d)
		}
	}
}

func TestPipeline_Filter(t *testing.T) {
	p := newTestPipeline(newFakeSource())
	scraped, err := p.Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}

	result := p.Filter(scraped.Aspects)
	if len(result.Pages) != 1 {
		t.Fatalf("Expected 1 ranked page, got %d", len(result.Pages))
	}

	var order []string
	for _, a := range result.Pages[0].Links {
		order = append(order, a.Title)
	}
	if diff := cmp.Diff([]string{"Mars (reep)", "Mars (planeet)", "Mars (mythologie)"}, order); diff != "" {
		t.Errorf("Ranking mismatch (-want +got):\n%s", diff)
	}
	if result.Pages[0].Number != 1 {
		t.Errorf("Expected page number 1, got %d", result.Pages[0].Number)
	}
	if len(result.Stages) != len(p.cascade.Stages()) {
		t.Errorf("Expected a report per stage, got %d", len(result.Stages))
	}
}

func TestPipeline_ScrapeError(t *testing.T) {
	src := newFakeSource()
	src.htmlErr = errors.New("connection reset")

	_, err := newTestPipeline(src).Scrape(context.Background())
	if !errors.Is(err, src.htmlErr) {
		t.Errorf("Expected wrapped source error, got %v", err)
	}
}

func TestPipeline_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestPipeline(newFakeSource()).Scrape(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
