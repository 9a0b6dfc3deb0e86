package pubsite

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// ErrMissingTemplate is returned when the post template file does not exist.
var ErrMissingTemplate = errors.New("template not found")

// dateLayouts are tried in order before falling back to dateparse.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"January 2, 2006",
}

// LoadTemplate reads the post template at path.
func LoadTemplate(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissingTemplate, path)
	}
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(b), nil
}

// Inject replaces the template placeholders with f in a single pass.
// Values are inserted verbatim and never rescanned.
func Inject(template string, f Fields) string {
	return strings.NewReplacer(
		"{{title}}", f.Title,
		"{{date}}", f.Date,
		"{{tags}}", f.Tags,
		"{{meta}}", f.Meta,
		"{{reading_time}}", strconv.Itoa(f.ReadingTime),
		"{{content}}", f.Content,
		"{{url}}", f.URL,
	).Replace(template)
}

// FormatDate normalizes raw to the display format "January 02, 2006".
// ok is false, and raw is returned unchanged, when no format matches.
func FormatDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayLayout), true
		}
	}
	if t, err := dateparse.ParseIn(raw, time.UTC); err == nil {
		return t.Format(displayLayout), true
	}
	return raw, false
}

// ReadingTime returns the minutes needed to read text at wpm words per
// minute, rounded to the nearest minute and never less than one.
func ReadingTime(text string, wpm int) int {
	if wpm <= 0 {
		wpm = 200
	}
	words := len(strings.Fields(text))
	minutes := int(math.Round(float64(words) / float64(wpm)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// fragmentText returns the text content of an HTML fragment.
func fragmentText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}

// fields builds the template values for a draft rendered as filename.
func (s *Site) fields(fm Frontmatter, content, filename string) Fields {
	rawDate := fm.Get("date", s.now().Format(isoLayout))
	date, ok := FormatDate(rawDate)
	if !ok {
		s.log.Printf("warning: could not parse date %q in %s, keeping it as written", rawDate, filename)
	}
	return Fields{
		Title:       fm.Get("title", "Untitled"),
		Date:        date,
		Tags:        fm.Get("tags", ""),
		Meta:        fm.Get("meta", ""),
		ReadingTime: ReadingTime(fragmentText(content), s.Config.WordsPerMinute),
		Content:     content,
		URL:         PostURL(s.Config.URL, s.Config.BlogPath, filename),
	}
}
