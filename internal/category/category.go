package category

import "strings"

// Category is the closed set of event categories published to the frontend.
type Category string

const (
	Concerts Category = "concerts"
	Comedy   Category = "comedy"
	Broadway Category = "broadway"
	Sports   Category = "sports"
	Misc     Category = "misc"
)

// Default is assigned when no signal identifies a more specific category.
const Default = Concerts

// All lists every valid category.
var All = []Category{Concerts, Comedy, Broadway, Sports, Misc}

// Valid reports whether c is one of the enum values.
func Valid(c Category) bool {
	switch c {
	case Concerts, Comedy, Broadway, Sports, Misc:
		return true
	}
	return false
}

// sportsKeywords take priority over comedy and concert keywords: sports
// event titles ("X vs Y", "NBA ...") frequently contain tour-like words.
var sportsKeywords = []string{
	"sports",
	"basketball", "hoops", "hoopsgiving", "nba",
	"football", "nfl", "gridiron",
	"soccer", "mls", "fifa",
	"hockey", "nhl",
	"baseball", "mlb",
	"wrestling", "wwe", "aew", "raw", "smackdown",
	"boxing", "ufc", "mma", "fight night",
	"championship", "tournament", "playoffs",
	"vs",
}

var comedyKeywords = []string{
	"comedy",
	"comedian",
	"stand-up",
	"standup",
	"improv",
	"laugh",
}

var concertKeywords = []string{
	"concert",
	"concerts",
	"tour",
	"jam",
	"fest",
	"festival",
	"live music",
	"in concert",
}

// knownComedians covers acts whose names carry no genre keywords at all.
// Checked last, only for events that would otherwise land in misc.
var knownComedians = []string{
	"nate bargatze",
	"sebastian maniscalco",
	"bert kreischer",
	"katt williams",
	"theo von",
	"shane gillis",
}

// DetectFromText scans a title or URL path segment for category vocabulary.
// Returns empty string when no keyword matches; priority is
// sports > comedy > concerts.
func DetectFromText(text string) Category {
	lower := strings.ToLower(text)

	for _, kw := range sportsKeywords {
		if strings.Contains(lower, kw) {
			return Sports
		}
	}
	for _, kw := range comedyKeywords {
		if strings.Contains(lower, kw) {
			return Comedy
		}
	}
	for _, kw := range concertKeywords {
		if strings.Contains(lower, kw) {
			return Concerts
		}
	}
	return ""
}

// DetectFromTicketURL extracts a category hint from a Ticketmaster URL path.
// Ticketmaster event URLs embed a descriptive slug before the /event/
// segment, e.g. .../atlanta-hawks-vs-boston-celtics-atlanta/event/....
func DetectFromTicketURL(ticketURL string) Category {
	if ticketURL == "" || !strings.Contains(ticketURL, "ticketmaster.com") {
		return ""
	}
	if !strings.Contains(ticketURL, "/event/") {
		return ""
	}

	after := ticketURL[strings.Index(ticketURL, "ticketmaster.com/")+len("ticketmaster.com/"):]
	path := after[:strings.Index(after, "/event/")]
	if path == "" || path == "event" {
		return ""
	}
	return DetectFromText(strings.ReplaceAll(path, "-", " "))
}

// DetectKnownEntity matches a small allow-list of performers whose names
// contain no genre vocabulary. Returns empty string when unmatched.
func DetectKnownEntity(name string) Category {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, comedian := range knownComedians {
		if strings.Contains(lower, comedian) {
			return Comedy
		}
	}
	return ""
}

// tmCategoryMap translates Ticketmaster segment/genre names. Genre entries
// are more specific than segment entries and win when both match.
var tmCategoryMap = map[string]Category{
	"Music":                 Concerts,
	"Sports":                Sports,
	"Arts & Theatre":        Broadway,
	"Film":                  Misc,
	"Miscellaneous":         Misc,
	"Comedy":                Comedy,
	"Stand-Up":              Comedy,
	"Theatre":               Broadway,
	"Musical":               Broadway,
	"Miscellaneous Theatre": Misc,
	"Basketball":            Sports,
	"Wrestling":             Sports,
	"Hockey":                Sports,
	"Football":              Sports,
}

// MapTMClassification maps a Ticketmaster segment/genre pair to a category.
// An explicit genre match beats a segment-only match; unknown pairs fall
// back to concerts, never to an empty category.
func MapTMClassification(segment, genre string) Category {
	if c, ok := tmCategoryMap[genre]; ok {
		return c
	}
	if c, ok := tmCategoryMap[segment]; ok {
		return c
	}
	return Concerts
}
