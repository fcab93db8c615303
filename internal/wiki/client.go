package wiki

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ppiankov/raadsel/internal/model"
	"go.uber.org/zap"
)

const (
	categoryPrefix = "Categorie:"
	// Cache namespaces
	nsMediaWiki = "mediawiki"
	nsWikidata  = "wikidata"
)

// maintenancePrefixes mark categories that say something about the wiki rather than the subject
var maintenancePrefixes = []string{"Categorie:Wikipedia", "Categorie:Wikimedia"}

// Client queries the Dutch Wikipedia and Wikidata
type Client struct {
	fetcher     *Fetcher
	apiURL      string
	wikidataURL string
	category    string
	logger      *zap.Logger
}

// NewClient creates a client for the endpoints in cfg
func NewClient(cfg model.WikiConfig, fetcher *Fetcher, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		fetcher:     fetcher,
		apiURL:      cfg.APIURL,
		wikidataURL: cfg.WikidataURL,
		category:    cfg.Category,
		logger:      logger,
	}
}

type categoryMembersResponse struct {
	Continue struct {
		CMContinue string `json:"cmcontinue"`
	} `json:"continue"`
	Query struct {
		CategoryMembers []model.PageRef `json:"categorymembers"`
	} `json:"query"`
}

// DisambiguationPages lists every member of the disambiguation category, following continuation
func (c *Client) DisambiguationPages(ctx context.Context) ([]model.PageRef, error) {
	params := url.Values{
		"action":  {"query"},
		"format":  {"json"},
		"list":    {"categorymembers"},
		"cmtitle": {c.category},
		"cmlimit": {"500"},
	}

	var pages []model.PageRef
	for {
		var resp categoryMembersResponse
		if err := c.fetcher.GetJSON(ctx, nsMediaWiki, c.apiURL, params, &resp); err != nil {
			return nil, fmt.Errorf("list category members: %w", err)
		}
		pages = append(pages, resp.Query.CategoryMembers...)
		c.logger.Debug("category batch", zap.Int("batch", len(resp.Query.CategoryMembers)), zap.Int("total", len(pages)))

		if resp.Continue.CMContinue == "" {
			return pages, nil
		}
		params.Set("cmcontinue", resp.Continue.CMContinue)
	}
}

type parseResponse struct {
	Parse struct {
		Title  string `json:"title"`
		PageID int    `json:"pageid"`
		Text   struct {
			HTML string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// PageHTML returns the rendered HTML of a page
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action": {"parse"},
		"page":   {title},
		"format": {"json"},
	}

	var resp parseResponse
	if err := c.fetcher.GetJSON(ctx, nsMediaWiki, c.apiURL, params, &resp); err != nil {
		return "", fmt.Errorf("parse %s: %w", title, err)
	}
	return resp.Parse.Text.HTML, nil
}

type categoryRef struct {
	Title string `json:"title"`
}

// queryPage is one entry of query.pages
type queryPage struct {
	PageID     int               `json:"pageid"`
	Title      string            `json:"title"`
	PageProps  map[string]string `json:"pageprops"`
	Categories []categoryRef     `json:"categories"`
	PageViews  map[string]*int   `json:"pageviews"`
}

type queryResponse struct {
	Query struct {
		Pages map[string]queryPage `json:"pages"`
	} `json:"query"`
}

// queryTitle runs a prop query for one title and returns its single page entry
func (c *Client) queryTitle(ctx context.Context, title string, extra url.Values) (queryPage, bool, error) {
	params := url.Values{
		"action": {"query"},
		"titles": {title},
		"format": {"json"},
	}
	for k, v := range extra {
		params[k] = v
	}

	var resp queryResponse
	if err := c.fetcher.GetJSON(ctx, nsMediaWiki, c.apiURL, params, &resp); err != nil {
		return queryPage{}, false, err
	}
	for _, p := range resp.Query.Pages {
		return p, true, nil
	}
	return queryPage{}, false, nil
}

type entitiesResponse struct {
	Entities map[string]struct {
		Descriptions map[string]struct {
			Value string `json:"value"`
		} `json:"descriptions"`
	} `json:"entities"`
}

// Description returns the Dutch Wikidata description of a page, if it has one
func (c *Client) Description(ctx context.Context, title string) (string, bool, error) {
	page, ok, err := c.queryTitle(ctx, title, url.Values{"prop": {"pageprops"}})
	if err != nil {
		return "", false, fmt.Errorf("pageprops %s: %w", title, err)
	}
	item := page.PageProps["wikibase_item"]
	if !ok || item == "" {
		return "", false, nil
	}

	params := url.Values{
		"action":    {"wbgetentities"},
		"format":    {"json"},
		"ids":       {item},
		"props":     {"descriptions"},
		"languages": {"nl"},
	}
	var resp entitiesResponse
	if err := c.fetcher.GetJSON(ctx, nsWikidata, c.wikidataURL, params, &resp); err != nil {
		return "", false, fmt.Errorf("wbgetentities %s: %w", item, err)
	}

	desc, ok := resp.Entities[item].Descriptions["nl"]
	if !ok || desc.Value == "" {
		return "", false, nil
	}
	return desc.Value, true, nil
}

// Categories returns the content categories of a page without the "Categorie:" prefix
func (c *Client) Categories(ctx context.Context, title string) ([]string, error) {
	page, ok, err := c.queryTitle(ctx, title, url.Values{"prop": {"categories"}})
	if err != nil {
		return nil, fmt.Errorf("categories %s: %w", title, err)
	}
	if !ok {
		return nil, nil
	}

	var cats []string
	for _, cat := range page.Categories {
		if isMaintenance(cat.Title) {
			continue
		}
		cats = append(cats, strings.TrimPrefix(cat.Title, categoryPrefix))
	}
	return cats, nil
}

func isMaintenance(category string) bool {
	for _, p := range maintenancePrefixes {
		if strings.HasPrefix(category, p) {
			return true
		}
	}
	return false
}

// PageViews sums the daily views of a page over the last days days; days without data count as zero
func (c *Client) PageViews(ctx context.Context, title string, days int) (int, error) {
	page, ok, err := c.queryTitle(ctx, title, url.Values{
		"prop":     {"pageviews"},
		"pvipdays": {strconv.Itoa(days)},
	})
	if err != nil {
		return 0, fmt.Errorf("pageviews %s: %w", title, err)
	}
	if !ok {
		return 0, nil
	}

	total := 0
	for _, n := range page.PageViews {
		if n != nil {
			total += *n
		}
	}
	return total, nil
}
