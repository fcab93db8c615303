package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/raadsel/internal/model"
)

// ExportAnnotations writes ranked pages as a TSV sheet for annotators.
// Each row holds the page title followed by the titles of its links; the
// header names the link columns description1..descriptionN and short rows are padded.
func ExportAnnotations(w io.Writer, pages []model.RankedPage) error {
	maxLinks := 0
	for _, p := range pages {
		if len(p.Links) > maxLinks {
			maxLinks = len(p.Links)
		}
	}

	header := make([]string, 0, maxLinks+1)
	header = append(header, "title")
	for i := 1; i <= maxLinks; i++ {
		header = append(header, fmt.Sprintf("description%d", i))
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range pages {
		row := make([]string, len(header))
		row[0] = p.Title
		for i, link := range p.Links {
			row[i+1] = link.Title
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %q: %w", p.Title, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ImportAnnotations reads an annotated TSV sheet back into clue entries.
// The first column is the answer; every remaining non-empty cell becomes the
// next clue. Blank rows are skipped.
func ImportAnnotations(r io.Reader) ([]model.ClueEntry, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var entries []model.ClueEntry
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlankRow(row) {
			continue
		}

		entry := model.ClueEntry{Answer: strings.TrimSpace(row[0])}
		for _, cell := range row[1:] {
			if clue := strings.TrimSpace(cell); clue != "" {
				entry.Clues = append(entry.Clues, clue)
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
