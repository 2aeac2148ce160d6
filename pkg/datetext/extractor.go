// Package datetext recovers a calendar date/time from free-form Russian
// text. Extraction is layered: a whole-text parse is always preferred,
// and keyword recombination is only attempted when it fails.
package datetext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/ru"
)

// defaultHour is used when a date was recognized but no time of day.
const defaultHour = 9

var (
	reTimeToken = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	reDateToken = regexp.MustCompile(`\b\d{1,2}\.\d{1,2}(?:\.\d{4})?\b`)

	// Word tokens are matched as whole letter runs: \b is ASCII-only in
	// Go and never fires inside Cyrillic text, so anchoring a full run
	// against the vocabulary is the reliable boundary.
	reLetterRun = regexp.MustCompile(`[\p{L}]+`)
	reDayWord   = regexp.MustCompile(`^(?:понедельник|вторник|сред[ауы]|четверг|пятниц[ауы]|суббот[ауы]|воскресенье|сегодня|завтра|послезавтра)$`)

	reExactDate = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})(?:\.(\d{4}))?(?:\s+(\d{1,2}):(\d{2}))?$`)
	reExactTime = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// Extractor parses free text into timestamps in a fixed timezone.
type Extractor struct {
	location *time.Location
	parser   *when.Parser
}

// NewExtractor creates an Extractor for the given IANA timezone string,
// e.g. "Europe/Minsk".
func NewExtractor(timezone string) (*Extractor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	w := when.New(nil)
	w.Add(ru.All...)
	w.Add(common.All...)

	return &Extractor{location: loc, parser: w}, nil
}

// Location returns the extractor's timezone.
func (e *Extractor) Location() *time.Location {
	return e.location
}

// Extract attempts to recover a timestamp from text relative to now.
// It returns false when no layer produces a parse. A successful result
// is deterministic for a fixed (text, now) pair: the first layer that
// succeeds wins and later layers are never consulted.
func (e *Extractor) Extract(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	now = now.In(e.location)

	// Whole-text parse: strict numeric layouts, then the grammatical parser.
	if t, ok := e.parsePhrase(text, now); ok {
		return t, true
	}

	tokens := e.scanTokens(text)

	// Every ordered pair of distinct tokens, earliest pair first.
	for i := range tokens {
		for j := range tokens {
			if i == j {
				continue
			}
			if t, ok := e.parsePhrase(tokens[i]+" "+tokens[j], now); ok {
				return t, true
			}
		}
	}

	// Single keywords, bare first, then with a preposition to help the
	// weekday rules.
	for _, tok := range tokens {
		if t, ok := e.parsePhrase(tok, now); ok {
			return t, true
		}
		if t, ok := e.parsePhrase("в "+tok, now); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// scanTokens collects vocabulary tokens in order of appearance.
func (e *Extractor) scanTokens(text string) []string {
	lower := strings.ToLower(text)

	type hit struct {
		pos int
		tok string
	}
	var hits []hit
	for _, loc := range reLetterRun.FindAllStringIndex(lower, -1) {
		if word := lower[loc[0]:loc[1]]; reDayWord.MatchString(word) {
			hits = append(hits, hit{pos: loc[0], tok: word})
		}
	}
	for _, re := range []*regexp.Regexp{reTimeToken, reDateToken} {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			hits = append(hits, hit{pos: loc[0], tok: lower[loc[0]:loc[1]]})
		}
	}

	// Stable order of appearance, duplicates dropped.
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].pos < hits[i].pos {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}

	seen := make(map[string]bool)
	var tokens []string
	for _, h := range hits {
		if !seen[h.tok] {
			seen[h.tok] = true
			tokens = append(tokens, h.tok)
		}
	}
	return tokens
}

// parsePhrase parses a small candidate phrase: strict numeric layouts
// first, then the natural language parser.
func (e *Extractor) parsePhrase(phrase string, now time.Time) (time.Time, bool) {
	phrase = strings.TrimSpace(phrase)

	if m := reExactDate.FindStringSubmatch(phrase); m != nil {
		return e.buildDate(m, now)
	}
	if m := reExactTime.FindStringSubmatch(phrase); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return time.Time{}, false
		}
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, e.location), true
	}

	r, err := e.parser.Parse(phrase, now)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	t := r.Time.In(e.location)
	if e.inheritedClock(phrase, now, t) {
		t = time.Date(t.Year(), t.Month(), t.Day(), defaultHour, 0, 0, 0, e.location)
	}
	return t, true
}

// inheritedClock reports whether a parse merely carried over now's
// clock, meaning the phrase named a day but no time. Re-parsing against
// a nudged reference moves an inherited clock along with it, while an
// explicitly requested clock stays put even when it happens to equal
// the current one.
func (e *Extractor) inheritedClock(phrase string, now, parsed time.Time) bool {
	r, err := e.parser.Parse(phrase, now.Add(time.Minute))
	if err != nil || r == nil {
		return parsed.Hour() == now.Hour() && parsed.Minute() == now.Minute()
	}
	nudged := r.Time.In(e.location)
	return nudged.Hour() != parsed.Hour() || nudged.Minute() != parsed.Minute()
}

// buildDate assembles a timestamp from an exact DD.MM[.YYYY][ HH:MM]
// match. A missing year means the current year; dates are taken as
// given, with no roll-forward into the next year.
func (e *Extractor) buildDate(m []string, now time.Time) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	hour, minute := defaultHour, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if hour > 23 || minute > 59 {
			return time.Time{}, false
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, e.location)
	// Reject overflowed dates like 31.02.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}
