package pubsite

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Selectors for the markup the post template produces.
const (
	titleSelector   = "h1.article-title"
	dateSelector    = "span.post-date"
	tagsSelector    = "span.post-tags"
	contentSelector = "div.article-content"
)

// ExtractPost recovers a post's metadata from its rendered HTML. Missing
// markup falls back to defaults; only an unreadable document is an error.
func ExtractPost(r io.Reader, filename string, wpm int) (Post, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Post{}, fmt.Errorf("parse %s: %w", filename, err)
	}

	post := Post{
		Title:       "Untitled",
		ISODate:     EpochDate,
		ReadingTime: 1,
		Filename:    filename,
	}
	if sel := doc.Find(titleSelector).First(); sel.Length() > 0 {
		post.Title = cleanText(sel)
	}
	if sel := doc.Find(dateSelector).First(); sel.Length() > 0 {
		post.Date = cleanText(sel)
	}
	post.ISODate = ISODate(post.Date)
	if sel := doc.Find(tagsSelector).First(); sel.Length() > 0 {
		post.Tags = cleanText(sel)
	}

	content := doc.Find(contentSelector).First()
	if content.Length() > 0 {
		post.Summary = cleanText(content.Find("p").First())
		post.ReadingTime = ReadingTime(content.Text(), wpm)
	}
	return post, nil
}

// ISODate converts a display date ("January 25, 2026") to "2026-01-25".
// Unparseable dates yield EpochDate so they sort last.
func ISODate(display string) string {
	t, err := time.Parse("January 2, 2006", strings.TrimSpace(display))
	if err != nil {
		return EpochDate
	}
	return t.Format(isoLayout)
}

// cleanText returns the text of sel with all markup stripped.
func cleanText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
