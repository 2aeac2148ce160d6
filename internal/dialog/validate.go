package dialog

import (
	"regexp"
	"strings"
	"time"
)

// validation is the outcome of checking one answer against its state's
// format contract: either an accepted value or a rejection message the
// state re-prompts with.
type validation struct {
	ok     bool
	value  string
	when   time.Time
	reason string
}

func accepted(value string) validation {
	return validation{ok: true, value: value}
}

func acceptedTime(t time.Time) validation {
	return validation{ok: true, when: t}
}

func rejected(reason string) validation {
	return validation{ok: false, reason: reason}
}

const dateLayout = "02.01.2006"

var reClock = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// validateTitle accepts any text that is non-empty after trimming.
func validateTitle(text, emptyReason string) validation {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return rejected(emptyReason)
	}
	return accepted(trimmed)
}

// validateStrictDate accepts exactly DD.MM.YYYY, interpreted as
// midnight in the given timezone.
func validateStrictDate(text string, loc *time.Location, invalidReason string) validation {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(text), loc)
	if err != nil {
		return rejected(invalidReason)
	}
	return acceptedTime(t)
}

// validateDueDate tries the strict DD.MM.YYYY form first and falls back
// to free-text extraction for phrases like "завтра в 15:00".
func (e *engine) validateDueDate(text string) validation {
	if v := validateStrictDate(text, e.location, MsgTaskDateInvalid); v.ok {
		return v
	}
	if t, ok := e.dates.Extract(text, now()); ok {
		return acceptedTime(t)
	}
	return rejected(MsgTaskDateInvalid)
}

// validateClock accepts HH:MM with hour 0-23 and minute 0-59.
func validateClock(text string) validation {
	trimmed := strings.TrimSpace(text)
	if !reClock.MatchString(trimmed) {
		return rejected(MsgTimeInvalid)
	}
	return accepted(trimmed)
}

// combineDateTime merges a DD.MM.YYYY date with an HH:MM clock in loc.
func combineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" 15:04", date+" "+clock, loc)
}
