// Package duration normalizes free-text Russian duration phrases
// ("1.5 часа", "30 минут") into a canonical display string.
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reDecimalHours = regexp.MustCompile(`^(\d+)[.,](\d+)\s*час\S*$`)
	reHoursOnly    = regexp.MustCompile(`^(\d+)\s*час\S*$`)
	reMinutesOnly  = regexp.MustCompile(`^(\d+)\s*мин\S*$`)
	reCombined     = regexp.MustCompile(`^(?:(\d+)\s*час\S*)?\s*(?:(\d+)\s*мин\S*)?$`)
)

// exact phrases that bypass pattern matching entirely.
var exactPhrases = map[string]string{
	"час":      "1 час",
	"1 час":    "1 час",
	"один час": "1 час",
	"полчаса":  "30 минут",
	"пол часа": "30 минут",
}

// Normalize converts a duration phrase to its canonical form. Rules are
// applied in a fixed order and the first match wins; text that matches
// nothing is returned trimmed but otherwise unchanged. The function is
// pure, so normalizing an already-canonical string is a no-op.
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if canonical, ok := exactPhrases[lower]; ok {
		return canonical
	}

	if m := reDecimalHours.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		frac, _ := strconv.ParseFloat("0."+m[2], 64)
		minutes := int(math.Round(frac * 60))
		return fmt.Sprintf("%d час %d минут", hours, minutes)
	}

	if m := reHoursOnly.FindStringSubmatch(lower); m != nil {
		return fmt.Sprintf("%s час", m[1])
	}

	if m := reMinutesOnly.FindStringSubmatch(lower); m != nil {
		return fmt.Sprintf("%s минут", m[1])
	}

	if m := reCombined.FindStringSubmatch(lower); m != nil && (m[1] != "" || m[2] != "") {
		var parts []string
		if m[1] != "" {
			parts = append(parts, fmt.Sprintf("%s час", m[1]))
		}
		if m[2] != "" {
			parts = append(parts, fmt.Sprintf("%s минут", m[2]))
		}
		return strings.Join(parts, " ")
	}

	return trimmed
}
