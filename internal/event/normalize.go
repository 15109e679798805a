package event

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NormalizeTime converts heterogeneous time strings to HH:MM 24-hour form.
// Accepts "8:00", "8:30pm", "20:00:00", "19:00", "8:00 PM". Returns "" for
// anything unparseable, including sentinels like "TBD" and "TBA".
func NormalizeTime(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ToLower(strings.TrimSpace(raw))

	// Drop seconds: "20:00:00" -> "20:00"
	if strings.Count(s, ":") == 2 {
		parts := strings.Split(s, ":")
		s = parts[0] + ":" + parts[1]
	}

	isPM := strings.Contains(s, "pm")
	isAM := strings.Contains(s, "am")
	s = strings.ReplaceAll(s, "pm", "")
	s = strings.ReplaceAll(s, "am", "")
	s = strings.TrimSpace(s)

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ""
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ""
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ""
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return ""
	}

	if isPM && hours < 12 {
		hours += 12
	} else if isAM && hours == 12 {
		hours = 0
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

var (
	zeroPricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\$0(\.0+)?$`),
		regexp.MustCompile(`^\$0(\.0+)?\s*-\s*\$0(\.0+)?$`),
	}
	dollarAmountPattern = regexp.MustCompile(`\$[\d.]+`)
)

// IsZeroPrice reports whether a price string represents $0. Venue APIs emit
// zero prices when the real price is simply unavailable, so these are
// treated as "no data" rather than free admission.
func IsZeroPrice(price string) bool {
	price = strings.TrimSpace(price)
	if price == "" {
		return true
	}
	for _, p := range zeroPricePatterns {
		if p.MatchString(price) {
			return true
		}
	}
	return false
}

// PriceSeeWebsite is the display string substituted for $0 prices.
const PriceSeeWebsite = "See website"

// NormalizePrice consolidates an event's price fields into the single
// display Price. Separate advance/day-of-show prices become
// "$X ADV / $Y DOS". Zero prices are replaced with the PriceSeeWebsite
// sentinel so the frontend never shows a bogus free show.
func (e *Event) NormalizePrice() {
	price := e.Price

	if price == "" && (e.AdvPrice != "" || e.DosPrice != "") {
		adv, dos := e.AdvPrice, e.DosPrice
		switch {
		case adv != "" && dos != "":
			advAmount := dollarAmountPattern.FindString(adv)
			dosAmount := dollarAmountPattern.FindString(dos)
			if advAmount != "" && dosAmount != "" {
				price = advAmount + " ADV / " + dosAmount + " DOS"
			} else {
				price = adv + " / " + dos
			}
		case adv != "":
			price = adv
		default:
			price = dos
		}
	}

	if price != "" && IsZeroPrice(price) {
		price = PriceSeeWebsite
	}

	e.AdvPrice = ""
	e.DosPrice = ""
	e.Price = price
}
