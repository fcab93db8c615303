// Package lexicon holds the Dutch word lists that drive the aspect cascade.
//
// Lists are plain configuration data: the built-in defaults can be replaced per
// list from a YAML file, and the country gazetteer and WordNet lemma set can be
// loaded from their own files.
package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a string membership set
type Set map[string]struct{}

// NewSet builds a set from the given values
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Lexicon is the set of named word lists consumed by the cascade
type Lexicon struct {
	ExactDescriptions   []string `yaml:"exact_descriptions"`
	PartialDescriptions []string `yaml:"partial_descriptions"`
	ExcludedCategories  []string `yaml:"excluded_categories"`
	Demonyms            []string `yaml:"demonyms"`
	Countries           []string `yaml:"countries"`

	// Lemmas is the Open Dutch WordNet lemma set used by the prefilter (lower-cased).
	// Nil disables the lemma check.
	Lemmas Set `yaml:"-"`
}

// Lists returns the lexicon as a mapping of list name to contents
func (l *Lexicon) Lists() map[string][]string {
	return map[string][]string{
		"exact_descriptions":   l.ExactDescriptions,
		"partial_descriptions": l.PartialDescriptions,
		"excluded_categories":  l.ExcludedCategories,
		"demonyms":             l.Demonyms,
		"countries":            l.Countries,
	}
}

// ExactSet returns the exact-description blocklist as a set
func (l *Lexicon) ExactSet() Set {
	return NewSet(l.ExactDescriptions...)
}

// CountrySet returns the country gazetteer as a set
func (l *Lexicon) CountrySet() Set {
	return NewSet(l.Countries...)
}

// LoadFile overlays the lists present in a YAML file onto the lexicon.
// Lists absent from the file keep their current contents.
func (l *Lexicon) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read lexicon file: %w", err)
	}

	var overlay Lexicon
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse lexicon file %s: %w", path, err)
	}

	if overlay.ExactDescriptions != nil {
		l.ExactDescriptions = overlay.ExactDescriptions
	}
	if overlay.PartialDescriptions != nil {
		l.PartialDescriptions = overlay.PartialDescriptions
	}
	if overlay.ExcludedCategories != nil {
		l.ExcludedCategories = overlay.ExcludedCategories
	}
	if overlay.Demonyms != nil {
		l.Demonyms = overlay.Demonyms
	}
	if overlay.Countries != nil {
		l.Countries = overlay.Countries
	}

	return nil
}

// LoadCountries replaces the country gazetteer with a file holding one name per line
func (l *Lexicon) LoadCountries(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read countries file: %w", err)
	}

	var countries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		countries = append(countries, line)
	}

	l.Countries = countries
	return nil
}

// Marshal renders the lexicon lists as YAML
func (l *Lexicon) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}
