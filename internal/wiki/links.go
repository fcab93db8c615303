package wiki

import (
	"io"
	"strings"

	"github.com/ppiankov/raadsel/internal/model"
	"golang.org/x/net/html"
)

// skippedNamespaces are link targets that never describe an entity
var skippedNamespaces = []string{"/wiki/Bestand", "/wiki/Speciaal", "/wiki/Wikipedia", "/wiki/Wikimedia"}

// ExtractLinks collects internal article links from rendered page HTML in
// document order. Anchors without a title attribute are skipped; repeated
// links are kept.
func ExtractLinks(r io.Reader) ([]model.Aspect, error) {
	var links []model.Aspect

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "a" {
				continue
			}
			if link, ok := articleLink(tok); ok {
				links = append(links, link)
			}
		}
	}
}

func articleLink(tok html.Token) (model.Aspect, bool) {
	var href, title string
	var hasTitle bool
	for _, attr := range tok.Attr {
		switch attr.Key {
		case "href":
			href = attr.Val
		case "title":
			title, hasTitle = attr.Val, true
		}
	}

	if !strings.HasPrefix(href, "/wiki") || !hasTitle {
		return model.Aspect{}, false
	}
	for _, ns := range skippedNamespaces {
		if strings.HasPrefix(href, ns) {
			return model.Aspect{}, false
		}
	}
	return model.Aspect{Title: title, Link: href}, true
}
