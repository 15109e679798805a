package category

import "testing"

func TestDetectFromText(t *testing.T) {
	tests := []struct {
		text     string
		expected Category
	}{
		{"Atlanta Hawks vs Boston Celtics", Sports},
		{"WWE Monday Night RAW", Sports},
		{"Hoopsgiving 2026", Sports},
		{"Comedy Night with Friends", Comedy},
		{"An Evening of Stand-Up", Comedy},
		{"The Eras Tour", Concerts},
		{"Shaky Knees Festival", Concerts},
		{"Some Unrelated Gathering", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := DetectFromText(tt.text); got != tt.expected {
				t.Errorf("DetectFromText(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestDetectFromTextPriority(t *testing.T) {
	// "Championship Comedy Tour" matches sports, comedy, and concert
	// keywords; sports wins.
	if got := DetectFromText("Championship Comedy Tour"); got != Sports {
		t.Errorf("expected sports to take priority, got %q", got)
	}

	// comedy beats concerts
	if got := DetectFromText("Comedy Jam"); got != Comedy {
		t.Errorf("expected comedy to beat concerts, got %q", got)
	}
}

func TestDetectFromTicketURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Category
	}{
		{
			"hawks game",
			"https://www.ticketmaster.com/atlanta-hawks-vs-charlotte-hornets-atlanta-georgia/event/0E00610A7D4C2C9B",
			Sports,
		},
		{
			"comedy show",
			"https://www.ticketmaster.com/big-comedy-night-atlanta-georgia/event/ABC123",
			Comedy,
		},
		{
			"no path segment",
			"https://www.ticketmaster.com/event/XYZ",
			"",
		},
		{
			"not ticketmaster",
			"https://example.com/soccer-match/event/123",
			"",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromTicketURL(tt.url); got != tt.expected {
				t.Errorf("DetectFromTicketURL(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestDetectKnownEntity(t *testing.T) {
	if got := DetectKnownEntity("Nate Bargatze"); got != Comedy {
		t.Errorf("expected known comedian match, got %q", got)
	}
	if got := DetectKnownEntity("Nate Bargatze: The Be Funny Tour"); got != Comedy {
		t.Errorf("expected substring match on known comedian, got %q", got)
	}
	if got := DetectKnownEntity("Unknown Band"); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}

func TestMapTMClassification(t *testing.T) {
	tests := []struct {
		segment  string
		genre    string
		expected Category
	}{
		{"Music", "", Concerts},
		{"Sports", "Basketball", Sports},
		{"Arts & Theatre", "Comedy", Comedy},          // genre beats segment
		{"Arts & Theatre", "Theatre", Broadway},       // explicit genre match
		{"Arts & Theatre", "Unknown Genre", Broadway}, // segment fallback
		{"Nonsense", "Nonsense", Concerts},            // default
		{"", "", Concerts},
	}

	for _, tt := range tests {
		if got := MapTMClassification(tt.segment, tt.genre); got != tt.expected {
			t.Errorf("MapTMClassification(%q, %q) = %q, want %q", tt.segment, tt.genre, got, tt.expected)
		}
	}
}

func TestValid(t *testing.T) {
	for _, c := range All {
		if !Valid(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if Valid("") || Valid("theatre") {
		t.Error("expected invalid categories to be rejected")
	}
}
