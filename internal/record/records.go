package record

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ppiankov/raadsel/internal/model"
)

// DecodePageRef decodes a disambiguation page listing entry
func DecodePageRef(line []byte) (model.PageRef, error) {
	m, err := fields(line)
	if err != nil {
		return model.PageRef{}, err
	}

	title, err := requireString(m, "title")
	if err != nil {
		return model.PageRef{}, err
	}

	ref := model.PageRef{Title: title}
	if raw, ok := m["pageid"]; ok {
		if err := json.Unmarshal(raw, &ref.PageID); err != nil {
			return model.PageRef{}, malformed("pageid", "expected integer")
		}
	}
	return ref, nil
}

// LinkRef is a raw link as written by the scraping stage
type LinkRef struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// LinkPage is a page whose links have not been looked up yet
type LinkPage struct {
	Title string    `json:"title"`
	Links []LinkRef `json:"links"`
}

// EncodeLinkPages renders pages as link records, leaving out aspect fields
func EncodeLinkPages(pages []model.Page) []LinkPage {
	out := make([]LinkPage, len(pages))
	for i, p := range pages {
		links := make([]LinkRef, len(p.Links))
		for j, a := range p.Links {
			links[j] = LinkRef{Title: a.Title, Link: a.Link}
		}
		out[i] = LinkPage{Title: p.Title, Links: links}
	}
	return out
}

// DecodePage decodes a page with candidate aspects.
// Link records from the scraping stage carry only title and link; aspect records
// must carry every field, so a link holding description but missing count is rejected.
func DecodePage(line []byte) (model.Page, error) {
	m, err := fields(line)
	if err != nil {
		return model.Page{}, err
	}

	title, err := requireString(m, "title")
	if err != nil {
		return model.Page{}, err
	}

	rawLinks, ok := m["links"]
	if !ok {
		return model.Page{}, malformed("links", "missing")
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(rawLinks, &items); err != nil || items == nil {
		return model.Page{}, malformed("links", "expected array of objects")
	}

	links := make([]model.Aspect, 0, len(items))
	for i, item := range items {
		aspect, err := decodeAspect(item)
		if err != nil {
			mre := err.(*MalformedRecordError)
			if mre.Field == "" {
				mre.Field = fmt.Sprintf("links[%d]", i)
			} else {
				mre.Field = fmt.Sprintf("links[%d].%s", i, mre.Field)
			}
			return model.Page{}, mre
		}
		links = append(links, aspect)
	}

	return model.Page{Title: title, Links: links}, nil
}

// DecodeAspectPage is DecodePage with every aspect field required
func DecodeAspectPage(line []byte) (model.Page, error) {
	m, err := fields(line)
	if err != nil {
		return model.Page{}, err
	}
	if raw, ok := m["links"]; ok {
		var items []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			for i, item := range items {
				for _, field := range []string{"description", "categories", "count"} {
					if _, ok := item[field]; !ok {
						return model.Page{}, malformed(fmt.Sprintf("links[%d].%s", i, field), "missing")
					}
				}
			}
		}
	}
	return DecodePage(line)
}

func decodeAspect(m map[string]json.RawMessage) (model.Aspect, error) {
	if m == nil {
		return model.Aspect{}, malformed("", "null link")
	}

	var a model.Aspect
	var err error
	if a.Title, err = requireString(m, "title"); err != nil {
		return a, err
	}
	if a.Link, err = requireString(m, "link"); err != nil {
		return a, err
	}
	if a.Description, err = optionalString(m, "description"); err != nil {
		return a, err
	}

	if raw, ok := m["categories"]; ok {
		if err := json.Unmarshal(raw, &a.Categories); err != nil {
			return a, malformed("categories", "expected array of strings")
		}
	}

	if raw, ok := m["count"]; ok {
		var count *int
		if err := json.Unmarshal(raw, &count); err != nil || count == nil {
			return a, malformed("count", "expected integer")
		}
		if *count < 0 {
			return a, malformed("count", "negative")
		}
		a.Count = *count
	}

	return a, nil
}

// DecodeRankedPage decodes cascade output
func DecodeRankedPage(line []byte) (model.RankedPage, error) {
	m, err := fields(line)
	if err != nil {
		return model.RankedPage{}, err
	}

	var number int
	raw, ok := m["number"]
	if !ok {
		return model.RankedPage{}, malformed("number", "missing")
	}
	if err := json.Unmarshal(raw, &number); err != nil {
		return model.RankedPage{}, malformed("number", "expected integer")
	}

	page, err := DecodeAspectPage(line)
	if err != nil {
		return model.RankedPage{}, err
	}
	return model.RankedPage{Number: number, Title: page.Title, Links: page.Links}, nil
}

// DecodeClueEntry decodes a curated clue record: {"answer": ..., "clue1": ..., "clueN": ...}.
// Clues are ordered by their numeric suffix.
func DecodeClueEntry(line []byte) (model.ClueEntry, error) {
	m, err := fields(line)
	if err != nil {
		return model.ClueEntry{}, err
	}

	answer, err := requireString(m, "answer")
	if err != nil {
		return model.ClueEntry{}, err
	}

	type numbered struct {
		n    int
		text string
	}
	var clues []numbered
	for key := range m {
		suffix, ok := strings.CutPrefix(key, "clue")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 1 {
			return model.ClueEntry{}, malformed(key, "clue keys must be clue1..clueN")
		}
		text, err := requireString(m, key)
		if err != nil {
			return model.ClueEntry{}, err
		}
		clues = append(clues, numbered{n: n, text: text})
	}

	sort.Slice(clues, func(i, j int) bool { return clues[i].n < clues[j].n })
	for i, c := range clues {
		if c.n != i+1 {
			return model.ClueEntry{}, malformed(fmt.Sprintf("clue%d", i+1), "missing")
		}
	}

	entry := model.ClueEntry{Answer: answer, Clues: make([]string, len(clues))}
	for i, c := range clues {
		entry.Clues[i] = c.text
	}
	return entry, nil
}

// EncodeClueEntry renders an entry in the curated clue layout
func EncodeClueEntry(e model.ClueEntry) map[string]string {
	out := map[string]string{"answer": e.Answer}
	for i, clue := range e.Clues {
		out["clue"+strconv.Itoa(i+1)] = clue
	}
	return out
}

// DecodePuzzle decodes a puzzle record
func DecodePuzzle(line []byte) (model.Puzzle, error) {
	m, err := fields(line)
	if err != nil {
		return model.Puzzle{}, err
	}

	var p model.Puzzle
	if p.Puzzle, err = requireString(m, "puzzle"); err != nil {
		return p, err
	}
	if p.Answer, err = requireString(m, "answer"); err != nil {
		return p, err
	}
	return p, nil
}

// DecodeEvaluationRecord decodes a model answer record.
// A missing answer is kept as empty; it can never be judged correct.
func DecodeEvaluationRecord(line []byte) (model.EvaluationRecord, error) {
	m, err := fields(line)
	if err != nil {
		return model.EvaluationRecord{}, err
	}

	var r model.EvaluationRecord
	if r.Prompt, err = requireString(m, "prompt"); err != nil {
		return r, err
	}
	if r.Answer, err = optionalString(m, "answer"); err != nil {
		return r, err
	}
	if r.Result, err = requireString(m, "result"); err != nil {
		return r, err
	}
	return r, nil
}

// DecodeHumanRecord decodes a human judgment record
func DecodeHumanRecord(line []byte) (model.HumanRecord, error) {
	m, err := fields(line)
	if err != nil {
		return model.HumanRecord{}, err
	}

	var r model.HumanRecord
	if r.Prompt, err = requireString(m, "prompt"); err != nil {
		return r, err
	}
	if r.Correct, err = requireString(m, "correct"); err != nil {
		return r, err
	}
	return r, nil
}
