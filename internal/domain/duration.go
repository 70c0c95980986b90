package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isoDurationPattern matches the subset of ISO 8601 durations the provider
// emits for slices: hours and/or minutes, no days, seconds, or fractions.
var isoDurationPattern = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// Duration is an immutable elapsed-time value with hour+minute granularity.
// It is backed by total minutes, so two durations built from different
// constructors compare equal when they cover the same elapsed time.
type Duration struct {
	minutes int
}

// DurationFromMinutes creates a Duration from a raw minute count.
func DurationFromMinutes(minutes int) (Duration, error) {
	if minutes < 0 {
		return Duration{}, NewValidationError("duration", "duration must not be negative")
	}
	return Duration{minutes: minutes}, nil
}

// DurationFromParts creates a Duration from separate hour and minute counts.
func DurationFromParts(hours, minutes int) (Duration, error) {
	if hours < 0 || minutes < 0 {
		return Duration{}, NewValidationError("duration", "duration parts must not be negative")
	}
	return Duration{minutes: hours*60 + minutes}, nil
}

// ParseDuration parses an ISO 8601 style duration token of the form PT[n]H[n]M.
// At least one of the hour or minute components must be present. Anything
// outside that subset (days, seconds, fractions, garbage) is rejected.
func ParseDuration(token string) (Duration, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Duration{}, WrapInvalidRequest("duration token is empty")
	}

	match := isoDurationPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return Duration{}, WrapInvalidRequest("invalid duration token %q", token)
	}
	if match[1] == "" && match[2] == "" {
		return Duration{}, WrapInvalidRequest("duration token %q has neither hours nor minutes", token)
	}

	var hours, minutes int
	if match[1] != "" {
		h, err := strconv.Atoi(match[1])
		if err != nil {
			return Duration{}, WrapInvalidRequest("invalid hours in duration token %q", token)
		}
		hours = h
	}
	if match[2] != "" {
		m, err := strconv.Atoi(match[2])
		if err != nil {
			return Duration{}, WrapInvalidRequest("invalid minutes in duration token %q", token)
		}
		minutes = m
	}

	return Duration{minutes: hours*60 + minutes}, nil
}

// ZeroDuration returns a zero-length duration.
// The response mapper falls back to this when a slice carries no usable token.
func ZeroDuration() Duration {
	return Duration{}
}

// Minutes returns the total elapsed time in minutes.
func (d Duration) Minutes() int {
	return d.minutes
}

// Hours returns the whole-hour component.
func (d Duration) Hours() int {
	return d.minutes / 60
}

// MinutesPart returns the minute component after whole hours are removed.
func (d Duration) MinutesPart() int {
	return d.minutes % 60
}

// IsZero reports whether the duration covers no elapsed time.
func (d Duration) IsZero() bool {
	return d.minutes == 0
}

// Less reports whether d covers less elapsed time than other.
func (d Duration) Less(other Duration) bool {
	return d.minutes < other.minutes
}

// ISO8601 serializes the duration back to the PT[n]H[n]M token form.
// A zero duration serializes as "PT0M".
func (d Duration) ISO8601() string {
	hours := d.Hours()
	mins := d.MinutesPart()

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("PT%dH%dM", hours, mins)
	case hours > 0:
		return fmt.Sprintf("PT%dH", hours)
	default:
		return fmt.Sprintf("PT%dM", mins)
	}
}

// Formatted returns a human-readable duration string such as "3h 10m".
func (d Duration) Formatted() string {
	hours := d.Hours()
	mins := d.MinutesPart()

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
