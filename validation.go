package sdn_advanced

import (
	"regexp"
	"strconv"
)

// isoDatePattern matches the three representable forms §4.8 can emit:
// YYYY, YYYY-MM, YYYY-MM-DD.
var isoDatePattern = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)

// ValidateThreshold checks a matcher.Screen threshold is within [0,10],
// per §6.
func ValidateThreshold(threshold int) error {
	if threshold < 0 || threshold > 10 {
		return &ValidationError{
			Field:   "threshold",
			Value:   strconv.Itoa(threshold),
			Message: "must be between 0 and 10",
		}
	}
	return nil
}

// ValidateLimit checks a matcher.Screen limit is within [1,100], per §6.
func ValidateLimit(limit int) error {
	if limit < 1 || limit > 100 {
		return &ValidationError{
			Field:   "limit",
			Value:   strconv.Itoa(limit),
			Message: "must be between 1 and 100",
		}
	}
	return nil
}

// ValidateISODate checks that a date string emitted by the date-period
// decoder (§4.8) has one of its three valid shapes. Empty string is
// accepted (a date that didn't resolve to a year is simply absent).
func ValidateISODate(date string) error {
	if date == "" {
		return nil
	}
	if !isoDatePattern.MatchString(date) {
		return &ValidationError{
			Field:   "date",
			Value:   date,
			Message: "must match YYYY, YYYY-MM, or YYYY-MM-DD",
		}
	}
	return nil
}
