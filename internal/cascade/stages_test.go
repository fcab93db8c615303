package cascade

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/raadsel/internal/lexicon"
	"github.com/ppiankov/raadsel/internal/model"
)

func aspect(title, description string, count int, categories ...string) model.Aspect {
	if len(categories) == 0 {
		categories = []string{"Algemeen"}
	}
	return model.Aspect{
		Title:       title,
		Link:        "/wiki/" + title,
		Description: description,
		Categories:  categories,
		Count:       count,
	}
}

func titles(links []model.Aspect) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Title
	}
	return out
}

// applyOne runs a stage over a single page and returns the surviving link titles
func applyOne(t *testing.T, stage Stage, page model.Page) []string {
	t.Helper()
	out := stage.Apply([]model.Page{page})
	if len(out) != 1 {
		t.Fatalf("Expected stage %s to keep the page, got %d pages", stage.Name, len(out))
	}
	return titles(out[0].Links)
}

func TestMinLinks(t *testing.T) {
	pages := []model.Page{
		{Title: "Twee", Links: []model.Aspect{aspect("A", "a", 1), aspect("B", "b", 1)}},
		{Title: "Drie", Links: []model.Aspect{aspect("A", "a", 1), aspect("B", "b", 1), aspect("C", "c", 1)}},
		{Title: "Leeg"},
	}

	out := MinLinks(3).Apply(pages)
	if len(out) != 1 || out[0].Title != "Drie" {
		t.Errorf("Expected only page Drie to survive, got %v", out)
	}
}

func TestExactDescription(t *testing.T) {
	page := model.Page{Title: "Bank", Links: []model.Aspect{
		aspect("A", "Wikimedia-doorverwijspagina", 10),
		aspect("B", "stad", 10),
		aspect("C", "Stad", 10), // case-sensitive: kept
		aspect("D", "", 10),
		aspect("E", "zitmeubel", 10),
	}}

	got := applyOne(t, ExactDescription(lexicon.Default().ExactSet()), page)
	want := []string{"C", "E"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExactDescription mismatch (-want +got):\n%s", diff)
	}
}

func TestNumericDescription(t *testing.T) {
	page := model.Page{Title: "Jaar", Links: []model.Aspect{
		aspect("A", "1984", 1),
		aspect("B", "1940-1945", 1),
		aspect("C", "roman uit 1949", 1),
		aspect("D", "-", 1),
	}}

	got := applyOne(t, NumericDescription(), page)
	want := []string{"C", "D"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NumericDescription mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryExclusion_PerAspect(t *testing.T) {
	page := model.Page{Title: "Mercurius", Links: []model.Aspect{
		aspect("A", "planeet", 1, "Planeet"),
		aspect("B", "album", 1, "Muziekalbum uit 1999"),
		aspect("C", "god", 1, "Romeinse god"),
		aspect("D", "dorp", 1, "Plaats in Utrecht"),
		aspect("E", "element", 1, "Scheikundig element"),
	}}

	got := applyOne(t, CategoryExclusion(lexicon.Default().ExcludedCategories, false), page)
	want := []string{"A", "C", "E"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoryExclusion mismatch (-want +got):\n%s", diff)
	}
}

// Fixture for the page-level flag: with leak enabled the first excluded aspect
// also removes every later aspect on the same page, even clean ones.
func TestCategoryExclusion_Leak(t *testing.T) {
	page := model.Page{Title: "Mercurius", Links: []model.Aspect{
		aspect("A", "planeet", 1, "Planeet"),
		aspect("B", "album", 1, "muziekalbum van Queen"),
		aspect("C", "god", 1, "Romeinse god"),
		aspect("E", "element", 1, "Scheikundig element"),
	}}

	got := applyOne(t, CategoryExclusion(lexicon.Default().ExcludedCategories, true), page)
	want := []string{"A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoryExclusion leak mismatch (-want +got):\n%s", diff)
	}

	// The flag does not cross page boundaries
	other := model.Page{Title: "Venus", Links: []model.Aspect{aspect("F", "planeet", 1, "Planeet")}}
	out := CategoryExclusion(lexicon.Default().ExcludedCategories, true).Apply([]model.Page{page, other})
	if len(out[1].Links) != 1 {
		t.Errorf("Expected second page to keep its aspect, got %d", len(out[1].Links))
	}
}

func TestAnswerLeakage(t *testing.T) {
	page := model.Page{Title: "Kraan", Links: []model.Aspect{
		aspect("A", "hijswerktuig", 1),
		aspect("B", "Kraanvogel uit Azië", 1),
		aspect("C", "waterkraan in huis", 1),
	}}

	got := applyOne(t, AnswerLeakage(), page)
	want := []string{"A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnswerLeakage mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateDescription(t *testing.T) {
	page := model.Page{Title: "Mars", Links: []model.Aspect{
		aspect("A", "Chocoladereep", 1),
		aspect("B", "planeet", 1),
		aspect("C", "chocoladereep", 1),
		aspect("D", "Romeinse god", 1),
		aspect("E", "CHOCOLADEREEP", 1),
	}}

	got := applyOne(t, DuplicateDescription(), page)
	want := []string{"B", "D"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DuplicateDescription mismatch (-want +got):\n%s", diff)
	}
}

func TestDemonymRelevance(t *testing.T) {
	page := model.Page{Title: "Bosch", Links: []model.Aspect{
		aspect("A", "Nederlands kunstschilder", 5000),
		aspect("B", "Nederlands voetballer", 2999),
		aspect("C", "Duits bedrijf", 3000),
		aspect("D", "stad in Brabant", 10),
	}}

	got := applyOne(t, DemonymRelevance(lexicon.Default().Demonyms, 3000), page)
	want := []string{"A", "C", "D"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DemonymRelevance mismatch (-want +got):\n%s", diff)
	}
}

func TestCountryRelevance(t *testing.T) {
	tests := []struct {
		name        string
		description string
		count       int
		keep        bool
	}{
		{"short description", "voetballer Frankrijk", 0, true},
		{"not from pattern", "schilder in Frankrijk", 0, true},
		{"unknown country", "schilder uit Atlantis", 0, true},
		{"country below threshold", "schilder uit Frankrijk", 349, false},
		{"country at threshold", "schilder uit Frankrijk", 350, true},
		{"qualified below threshold", "zanger uit België (1950-2001)", 2999, false},
		{"qualified at threshold", "zanger uit België (1950-2001)", 3000, true},
		{"only opening parenthesis", "zanger uit België (1950", 350, true},
	}

	stage := CountryRelevance(lexicon.Default().CountrySet(), 3000, 350)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := model.Page{Title: "X", Links: []model.Aspect{aspect("A", tt.description, tt.count)}}
			got := len(applyOne(t, stage, page)) == 1
			if got != tt.keep {
				t.Errorf("CountryRelevance(%q, %d) keep = %v, want %v", tt.description, tt.count, got, tt.keep)
			}
		})
	}
}

func TestPartialDescription(t *testing.T) {
	page := model.Page{Title: "Ster", Links: []model.Aspect{
		aspect("A", "Soort uit de familie van de sterren", 1),
		aspect("B", "hemellichaam", 1),
		aspect("C", "Indo-Europese taal", 1), // "taal." only matches at the end
		aspect("D", "taalkundige", 1),
		aspect("E", "boek van Multatuli", 1),
	}}

	got := applyOne(t, PartialDescription(lexicon.Default().PartialDescriptions), page)
	want := []string{"B", "D"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PartialDescription mismatch (-want +got):\n%s", diff)
	}
}

func TestStages_DoNotMutateInput(t *testing.T) {
	page := model.Page{Title: "Mars", Links: []model.Aspect{
		aspect("A", "planeet", 1),
		aspect("B", "planeet", 1),
		aspect("C", "1999", 1),
	}}
	before := titles(page.Links)

	for _, stage := range []Stage{NumericDescription(), DuplicateDescription()} {
		stage.Apply([]model.Page{page})
	}

	if diff := cmp.Diff(before, titles(page.Links)); diff != "" {
		t.Errorf("Input page was mutated (-before +after):\n%s", diff)
	}
}
