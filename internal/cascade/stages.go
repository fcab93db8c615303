package cascade

import (
	"strings"
	"unicode"

	"github.com/ppiankov/raadsel/internal/lexicon"
	"github.com/ppiankov/raadsel/internal/model"
)

// keepFunc decides whether an aspect of a page survives a stage
type keepFunc func(page model.Page, aspect model.Aspect) bool

// aspectStage builds a stage that filters aspects independently of each other
func aspectStage(name string, keep keepFunc) Stage {
	return pageStage(name, func(page model.Page) []model.Aspect {
		links := make([]model.Aspect, 0, len(page.Links))
		for _, a := range page.Links {
			if keep(page, a) {
				links = append(links, a)
			}
		}
		return links
	})
}

// pageStage builds a stage that rewrites the links of every page; pages are never dropped
func pageStage(name string, filter func(page model.Page) []model.Aspect) Stage {
	return Stage{
		Name: name,
		Apply: func(pages []model.Page) []model.Page {
			out := make([]model.Page, len(pages))
			for i, p := range pages {
				out[i] = p.WithLinks(filter(p))
			}
			return out
		},
	}
}

// MinLinks drops pages with fewer than minLinks links
func MinLinks(minLinks int) Stage {
	return Stage{
		Name: "min-links",
		Apply: func(pages []model.Page) []model.Page {
			out := make([]model.Page, 0, len(pages))
			for _, p := range pages {
				if len(p.Links) >= minLinks {
					out = append(out, p)
				}
			}
			return out
		},
	}
}

// ExactDescription drops aspects whose description is a known non-informative value.
// Matching is case-sensitive; an empty description is never informative.
func ExactDescription(blocked lexicon.Set) Stage {
	return aspectStage("exact-description", func(_ model.Page, a model.Aspect) bool {
		return a.Description != "" && !blocked.Has(a.Description)
	})
}

// NumericDescription drops aspects whose description is only digits once hyphens are removed
func NumericDescription() Stage {
	return aspectStage("numeric-description", func(_ model.Page, a model.Aspect) bool {
		return !isDigits(strings.ReplaceAll(a.Description, "-", ""))
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CategoryExclusion drops aspects carrying an undesired category.
//
// With leak set, the exclusion flag is kept per page rather than per aspect:
// once one aspect is excluded, every later aspect of that page is dropped as
// well. Earlier pipeline runs produced their output this way.
func CategoryExclusion(excluded []string, leak bool) Stage {
	lowered := make([]string, len(excluded))
	for i, e := range excluded {
		lowered[i] = strings.ToLower(e)
	}

	hasExcluded := func(a model.Aspect) bool {
		for _, category := range a.Categories {
			c := strings.ToLower(category)
			for _, e := range lowered {
				if strings.Contains(c, e) {
					return true
				}
			}
		}
		return false
	}

	return pageStage("category-exclusion", func(page model.Page) []model.Aspect {
		links := make([]model.Aspect, 0, len(page.Links))
		present := false
		for _, a := range page.Links {
			if leak {
				present = present || hasExcluded(a)
			} else {
				present = hasExcluded(a)
			}
			if !present {
				links = append(links, a)
			}
		}
		return links
	})
}

// AnswerLeakage drops aspects whose description contains the page title
func AnswerLeakage() Stage {
	return aspectStage("answer-leakage", func(p model.Page, a model.Aspect) bool {
		return !strings.Contains(strings.ToLower(a.Description), strings.ToLower(p.Title))
	})
}

// DuplicateDescription drops every aspect whose description occurs more than
// once within its page (case-insensitive). Ambiguous clues are removed entirely.
func DuplicateDescription() Stage {
	return pageStage("duplicate-description", func(page model.Page) []model.Aspect {
		seen := make(map[string]int, len(page.Links))
		for _, a := range page.Links {
			seen[strings.ToLower(a.Description)]++
		}

		links := make([]model.Aspect, 0, len(page.Links))
		for _, a := range page.Links {
			if seen[strings.ToLower(a.Description)] == 1 {
				links = append(links, a)
			}
		}
		return links
	})
}

// DemonymRelevance keeps aspects mentioning a nationality only when they are popular enough
func DemonymRelevance(demonyms []string, threshold int) Stage {
	return aspectStage("demonym-relevance", func(_ model.Page, a model.Aspect) bool {
		desc := strings.ToLower(a.Description)
		for _, d := range demonyms {
			if strings.Contains(desc, d) {
				return a.Count >= threshold
			}
		}
		return true
	})
}

// CountryRelevance keeps "<noun> uit <Country> ..." aspects only when they are popular enough.
// A parenthetical qualifier in the description raises the bar to qualifiedThreshold.
func CountryRelevance(countries lexicon.Set, qualifiedThreshold, threshold int) Stage {
	return aspectStage("country-relevance", func(_ model.Page, a model.Aspect) bool {
		tokens := strings.Fields(a.Description)
		if len(tokens) < 3 || tokens[1] != "uit" || !countries.Has(tokens[2]) {
			return true
		}
		if strings.Contains(a.Description, "(") && strings.Contains(a.Description, ")") {
			return a.Count >= qualifiedThreshold
		}
		return a.Count >= threshold
	})
}

// PartialDescription drops aspects whose lower-cased description, with a
// trailing period appended, contains a blocked phrase. Phrases are matched as given.
func PartialDescription(phrases []string) Stage {
	return aspectStage("partial-description", func(_ model.Page, a model.Aspect) bool {
		desc := strings.ToLower(a.Description + ".")
		for _, phrase := range phrases {
			if strings.Contains(desc, phrase) {
				return false
			}
		}
		return true
	})
}
