package articles

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	base    = "https://nutritionsource.hsph.harvard.edu"
	listing = base + "/nutrition-news/"
)

func Articles(client *http.Client) ([]Article, error) {
	res, err := client.Get(listing)
	if err != nil {
		return nil, fmt.Errorf("could not get articles: %w", err)
	}
	defer res.Body.Close()

	return parse(res.Body)
}

func parse(r io.Reader) ([]Article, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	var articles []Article

	document.Find("article").Each(func(_ int, s *goquery.Selection) {
		a := s.Find("h2 a")
		uri := a.AttrOr("href", "")
		if uri == "" {
			return
		}
		if strings.HasPrefix(uri, "/") {
			uri = base + uri
		}

		article := Article{
			Title:   strings.TrimSpace(a.Text()),
			URL:     uri,
			Date:    strings.TrimSpace(s.Find("time").First().Text()),
			Authors: strings.TrimSpace(s.Find(".author").Text()),
			Summary: strings.TrimSpace(s.Find("p").First().Text()),
			Slug:    path.Base(strings.TrimSuffix(uri, "/")),
		}
		if article.Authors == "" {
			article.Authors = "The Nutrition Source"
		}

		article.titleLower = strings.ToLower(article.Title)
		article.summaryLower = strings.ToLower(article.Summary)
		articles = append(articles, article)
	})

	return articles, nil
}
