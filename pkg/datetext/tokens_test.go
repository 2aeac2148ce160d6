package datetext

import (
	"reflect"
	"testing"
)

func TestScanTokens(t *testing.T) {
	e, err := NewExtractor("Europe/Minsk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Day word next to time",
			input:    "созвон завтра 15:00",
			expected: []string{"завтра", "15:00"},
		},
		{
			name:     "Weekday with explicit date",
			input:    "в субботу 14.04",
			expected: []string{"субботу", "14.04"},
		},
		{
			name:     "Upper case is normalized",
			input:    "Завтра сдать отчёт",
			expected: []string{"завтра"},
		},
		{
			name:     "Vocabulary word inside another word is not a token",
			input:    "позавтракать в 08:30",
			expected: []string{"08:30"},
		},
		{
			name:     "Longer day word wins over its suffix",
			input:    "послезавтра",
			expected: []string{"послезавтра"},
		},
		{
			name:     "No vocabulary",
			input:    "купить молоко",
			expected: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.scanTokens(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("scanTokens(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}
