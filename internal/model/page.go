package model

// Aspect is a linked entity used as a clue source for a page
type Aspect struct {
	Title       string   `json:"title"`       // Title of the linked page
	Link        string   `json:"link"`        // Wiki path (e.g., "/wiki/Kat_(dier)")
	Description string   `json:"description"` // Wikidata description (nl)
	Categories  []string `json:"categories"`  // Category names without the "Categorie:" prefix
	Count       int      `json:"count"`       // Page views over the lookup window, ranking only
}

// Page is a disambiguation target together with its candidate aspects
type Page struct {
	Title string   `json:"title"` // Correct answer of the eventual puzzle
	Links []Aspect `json:"links"`
}

// RankedPage is a page after the aspect cascade, links sorted by popularity
type RankedPage struct {
	Number int      `json:"number"` // 1-based position in the output sequence
	Title  string   `json:"title"`
	Links  []Aspect `json:"links"`
}

// PageRef identifies a disambiguation page as listed by the category API
type PageRef struct {
	PageID int    `json:"pageid"`
	Title  string `json:"title"`
}

// WithLinks returns a copy of the page carrying the given links
func (p Page) WithLinks(links []Aspect) Page {
	return Page{Title: p.Title, Links: links}
}
