package lexicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadWordNet reads Open Dutch WordNet lemmas from an XML file into l.Lemmas
func (l *Lexicon) LoadWordNet(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open wordnet file: %w", err)
	}
	defer func() { _ = f.Close() }()

	lemmas, err := ReadLemmas(f)
	if err != nil {
		return fmt.Errorf("read wordnet %s: %w", path, err)
	}

	l.Lemmas = lemmas
	return nil
}

// ReadLemmas collects the lower-cased writtenForm of every Lemma element
func ReadLemmas(r io.Reader) (Set, error) {
	lemmas := make(Set)
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Lemma" {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == "writtenForm" {
				lemmas[strings.ToLower(attr.Value)] = struct{}{}
			}
		}
	}

	return lemmas, nil
}
