package adapter

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// parseMDate extracts start and end dates from a Carbonhouse-style
// .m-date block (used by both Fox Theatre and State Farm Arena). Single
// dates return start == end; unparseable blocks return empty strings.
func parseMDate(dateDiv *goquery.Selection) (start, end string) {
	if dateDiv == nil || dateDiv.Length() == 0 {
		return "", ""
	}

	text := func(sel *goquery.Selection) string {
		return strings.TrimSpace(sel.First().Text())
	}

	parse := func(month, day, year string) string {
		month = strings.TrimSuffix(month, ".")
		day = strings.TrimSuffix(day, ",")
		t, err := time.Parse("Jan 2 2006", month+" "+day+" "+year)
		if err != nil {
			return ""
		}
		return t.Format("2006-01-02")
	}

	if single := dateDiv.Find(".m-date__singleDate").First(); single.Length() > 0 {
		d := parse(
			text(single.Find(".m-date__month")),
			text(single.Find(".m-date__day")),
			text(single.Find(".m-date__year")),
		)
		return d, d
	}

	rangeFirst := dateDiv.Find(".m-date__rangeFirst").First()
	if rangeFirst.Length() == 0 {
		return "", ""
	}

	year := text(rangeFirst.Find(".m-date__year"))
	if year == "" {
		year = text(dateDiv.Find(".m-date__year"))
	}
	month := text(rangeFirst.Find(".m-date__month"))
	start = parse(month, text(rangeFirst.Find(".m-date__day")), year)
	if start == "" {
		return "", ""
	}
	end = start

	if rangeLast := dateDiv.Find(".m-date__rangeLast").First(); rangeLast.Length() > 0 {
		endMonth := text(rangeLast.Find(".m-date__month"))
		if endMonth == "" {
			endMonth = month
		}
		endYear := text(rangeLast.Find(".m-date__year"))
		if endYear == "" {
			endYear = year
		}
		if d := parse(endMonth, text(rangeLast.Find(".m-date__day")), endYear); d != "" {
			end = d
		}
	}

	return start, end
}

// absoluteURL prefixes site-relative links with the venue's base URL.
func absoluteURL(base, href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return base + href
}
