// Package format normalizes the free-text display fields used across the
// catalog (wait times, experience, distances, clock times) into canonical
// presentation strings. Every function is pure and degrades to a documented
// default instead of returning an error.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	intRun     = regexp.MustCompile(`\d+`)
	decimalRun = regexp.MustCompile(`[\d.]+`)
	waitWord   = regexp.MustCompile(`(?i)\s*wait\s*`)
)

// StandardizeWaitTime strips "~" and the word "wait" and ensures a
// "N minutes" shape. Empty or unparseable input defaults to "15 minutes".
func StandardizeWaitTime(waitTime string) string {
	if waitTime == "" {
		return "15 minutes"
	}

	clean := strings.ReplaceAll(waitTime, "~", "")
	clean = waitWord.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	if strings.Contains(clean, "minute") {
		return clean
	}
	if n := intRun.FindString(clean); n != "" {
		return n + " minutes"
	}
	return "15 minutes"
}

// StandardizeExperience normalizes a free-text experience string to
// "N years". Strings already mentioning "year" pass through unchanged;
// totally unparseable input yields "0 years".
func StandardizeExperience(experience string) string {
	if strings.Contains(experience, "year") {
		return experience
	}
	if n := intRun.FindString(experience); n != "" {
		return n + " years"
	}
	return "0 years"
}

// ExperienceYears renders a numeric experience as "N years".
func ExperienceYears(years int) string {
	return fmt.Sprintf("%d years", years)
}

// StandardizeDistance extracts the first decimal run and appends " km".
// Empty input yields "0 km"; input without digits passes through.
func StandardizeDistance(distance string) string {
	if distance == "" {
		return "0 km"
	}
	if n := decimalRun.FindString(distance); n != "" {
		return n + " km"
	}
	return distance
}

// FormatRating renders a rating with one decimal place.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// TitleCase capitalizes every whitespace-separated word and lower-cases the
// rest of each word.
func TitleCase(text string) string {
	words := strings.Split(text, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// ConvertTo24Hour converts "H:MM AM/PM" to "HH:MM". Malformed input is
// returned unchanged.
func ConvertTo24Hour(time12h string) string {
	timePart, modifier, ok := strings.Cut(time12h, " ")
	if !ok {
		return time12h
	}
	hours, minutes, ok := strings.Cut(timePart, ":")
	if !ok {
		return time12h
	}

	if hours == "12" {
		hours = "00"
	}
	if strings.EqualFold(modifier, "PM") {
		h, err := strconv.Atoi(hours)
		if err != nil {
			return time12h
		}
		hours = strconv.Itoa(h + 12)
	}

	if len(hours) < 2 {
		hours = "0" + hours
	}
	return hours + ":" + minutes
}

// ConvertTo12Hour converts "HH:MM" to "H:MM AM/PM". Malformed input is
// returned unchanged.
func ConvertTo12Hour(time24h string) string {
	hours, minutes, ok := strings.Cut(time24h, ":")
	if !ok {
		return time24h
	}
	hour24, err := strconv.Atoi(hours)
	if err != nil {
		return time24h
	}

	hour12 := hour24
	modifier := "AM"
	switch {
	case hour24 == 0:
		hour12 = 12
	case hour24 == 12:
		modifier = "PM"
	case hour24 > 12:
		hour12 = hour24 - 12
		modifier = "PM"
	}

	return fmt.Sprintf("%d:%s %s", hour12, minutes, modifier)
}

// AppointmentStatusLabel converts a status code to display text. Unknown
// codes pass through unchanged.
func AppointmentStatusLabel(status string) string {
	labels := map[string]string{
		"scheduled":   "Scheduled",
		"confirmed":   "Confirmed",
		"in-progress": "In Progress",
		"completed":   "Completed",
		"cancelled":   "Cancelled",
	}
	if label, ok := labels[status]; ok {
		return label
	}
	return status
}

// Initials extracts up to two upper-cased initials from a name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(word[:1]))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// ParseLeadingInt extracts the first integer run from s, or 0.
func ParseLeadingInt(s string) int {
	n := intRun.FindString(s)
	if n == "" {
		return 0
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0
	}
	return v
}

// ParseDistanceKm extracts the first decimal run from s, or 0.
func ParseDistanceKm(s string) float64 {
	n := decimalRun.FindString(s)
	if n == "" {
		return 0
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0
	}
	return v
}
