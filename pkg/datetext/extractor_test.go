package datetext_test

import (
	"testing"
	"time"

	"task-planner-bot/pkg/datetext"
)

func TestNewExtractor(t *testing.T) {
	t.Run("Valid timezone", func(t *testing.T) {
		e, err := datetext.NewExtractor("Europe/Minsk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Location().String() != "Europe/Minsk" {
			t.Errorf("unexpected location: %s", e.Location())
		}
	})

	t.Run("Invalid timezone", func(t *testing.T) {
		if _, err := datetext.NewExtractor("Mars/Olympus"); err == nil {
			t.Fatal("expected error for unknown timezone")
		}
	})
}

func TestExtract(t *testing.T) {
	e, err := datetext.NewExtractor("Europe/Minsk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loc := e.Location()

	// Monday, 10 March 2025, midday.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)

	cases := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "Full date",
			input:    "31.12.2025",
			expected: time.Date(2025, 12, 31, 9, 0, 0, 0, loc),
			ok:       true,
		},
		{
			name:     "Date without year uses current year",
			input:    "31.12",
			expected: time.Date(2025, 12, 31, 9, 0, 0, 0, loc),
			ok:       true,
		},
		{
			name:     "Past date without year stays in current year",
			input:    "05.01",
			expected: time.Date(2025, 1, 5, 9, 0, 0, 0, loc),
			ok:       true,
		},
		{
			name:     "Date with time",
			input:    "15.04.2025 14:30",
			expected: time.Date(2025, 4, 15, 14, 30, 0, 0, loc),
			ok:       true,
		},
		{
			name:     "Bare time means today",
			input:    "18:45",
			expected: time.Date(2025, 3, 10, 18, 45, 0, 0, loc),
			ok:       true,
		},
		{
			name:     "Tomorrow snaps to default hour",
			input:    "завтра",
			expected: time.Date(2025, 3, 11, 9, 0, 0, 0, loc),
			ok:       true,
		},
		{
			name:     "Tomorrow with time inside sentence",
			input:    "встреча завтра в 15:00",
			expected: time.Date(2025, 3, 11, 15, 0, 0, 0, loc),
			ok:       true,
		},
		{
			// now is 12:00; an explicitly requested 12:00 must survive,
			// not get mistaken for a date-only parse.
			name:     "Explicit time equal to current clock",
			input:    "завтра в 12:00",
			expected: time.Date(2025, 3, 11, 12, 0, 0, 0, loc),
			ok:       true,
		},
		{
			name:     "Weekday with time",
			input:    "в пятницу в 10:00",
			expected: time.Date(2025, 3, 14, 10, 0, 0, 0, loc),
			ok:       true,
		},
		{
			name:  "Calendar overflow rejected",
			input: "31.02.2025",
			ok:    false,
		},
		{
			name:  "No date at all",
			input: "просто какой-то текст",
			ok:    false,
		},
		{
			name:  "Empty input",
			input: "",
			ok:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := e.Extract(tc.input, now)
			if ok != tc.ok {
				t.Fatalf("Extract(%q) ok = %v, want %v (got %v)", tc.input, ok, tc.ok, got)
			}
			if tc.ok && !got.Equal(tc.expected) {
				t.Errorf("Extract(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

// A fixed (text, now) pair must always yield the same result.
func TestExtractDeterministic(t *testing.T) {
	e, err := datetext.NewExtractor("Europe/Minsk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, e.Location())

	first, ok1 := e.Extract("завтра в 11:30", now)
	second, ok2 := e.Extract("завтра в 11:30", now)
	if ok1 != ok2 || !first.Equal(second) {
		t.Errorf("non-deterministic extraction: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}
