package pubsite

import (
	"encoding/xml"
	"io"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// FeedDate converts an iso_date to an RFC 822 style date at midnight UTC.
func FeedDate(isoDate string) string {
	t, err := time.Parse(isoLayout, isoDate)
	if err != nil {
		t = time.Unix(0, 0)
	}
	return t.UTC().Format(time.RFC1123Z)
}

// WriteFeed writes an RSS 2.0 feed with one item per post.
func WriteFeed(w io.Writer, posts []Post, cfg SiteConfig) error {
	base := cfg.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := PostURL(base, cfg.BlogPath, p.Filename)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Summary,
			PubDate:     FeedDate(p.ISODate),
			GUID:        rssGUID{IsPermaLink: true, Value: postURL},
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        PageURL(base),
			Description: cfg.Description,
			Language:    cfg.Language,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
