package event

import "testing"

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"8:00", "08:00"},
		{"8:30pm", "20:30"},
		{"8:00 PM", "20:00"},
		{"12:00pm", "12:00"},
		{"12:15am", "00:15"},
		{"20:00:00", "20:00"},
		{"19:00", "19:00"},
		{"", ""},
		{"TBD", ""},
		{"TBA", ""},
		{"8pm", ""},
		{"25:00", ""},
		{"10:75", ""},
		{"ab:cd", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeTime(tt.raw); got != tt.expected {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestIsZeroPrice(t *testing.T) {
	tests := []struct {
		price    string
		expected bool
	}{
		{"", true},
		{"$0", true},
		{"$0.00", true},
		{"$0.00 - $0.00", true},
		{"$10", false},
		{"$0.50", false},
		{"$0 - $25", false},
		{"Free", false},
	}

	for _, tt := range tests {
		if got := IsZeroPrice(tt.price); got != tt.expected {
			t.Errorf("IsZeroPrice(%q) = %v, want %v", tt.price, got, tt.expected)
		}
	}
}

func TestNormalizePrice(t *testing.T) {
	t.Run("consolidates adv and dos prices", func(t *testing.T) {
		e := &Event{AdvPrice: "$15 ADV", DosPrice: "$18 DOS"}
		e.NormalizePrice()
		if e.Price != "$15 ADV / $18 DOS" {
			t.Errorf("got %q", e.Price)
		}
		if e.AdvPrice != "" || e.DosPrice != "" {
			t.Error("adv/dos fields should be cleared")
		}
	})

	t.Run("adv only", func(t *testing.T) {
		e := &Event{AdvPrice: "$12"}
		e.NormalizePrice()
		if e.Price != "$12" {
			t.Errorf("got %q", e.Price)
		}
	})

	t.Run("existing price wins", func(t *testing.T) {
		e := &Event{Price: "$30 - $45", AdvPrice: "$15"}
		e.NormalizePrice()
		if e.Price != "$30 - $45" {
			t.Errorf("got %q", e.Price)
		}
	})

	t.Run("zero price becomes sentinel", func(t *testing.T) {
		e := &Event{Price: "$0.00"}
		e.NormalizePrice()
		if e.Price != PriceSeeWebsite {
			t.Errorf("got %q", e.Price)
		}
	})

	t.Run("no data stays unset", func(t *testing.T) {
		e := &Event{}
		e.NormalizePrice()
		if e.Price != "" {
			t.Errorf("got %q, want empty", e.Price)
		}
	})
}
