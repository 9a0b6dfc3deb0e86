package pubsite

// Post is the metadata record kept for every published post in the manifest.
// It is recovered from the rendered HTML, not carried over from the draft.
type Post struct {
	Title       string `json:"title"`
	Date        string `json:"date"`     // display date, e.g. "January 25, 2026"
	ISODate     string `json:"iso_date"` // sortable; EpochDate when Date is unparseable
	Tags        string `json:"tags"`
	Summary     string `json:"summary"`
	ReadingTime int    `json:"reading_time"` // minutes, at least 1
	Filename    string `json:"filename"`
}

// Fields are the values substituted into the post template.
type Fields struct {
	Title       string
	Date        string
	Tags        string
	Meta        string
	ReadingTime int
	Content     string
	URL         string
}

// EpochDate is the iso_date given to posts whose display date cannot be parsed.
const EpochDate = "1970-01-01"

const (
	isoLayout     = "2006-01-02"
	displayLayout = "January 02, 2006"
)
