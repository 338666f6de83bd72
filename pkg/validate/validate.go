// Package validate holds the field-level predicates used before catalog
// mutations. Each predicate is pure and returns strictly true/false.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	phoneRegex  = regexp.MustCompile(`^\+65\s?[3689]\d{3}\s?\d{4}$`)
	dateRegex   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex   = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):[0-5][0-9]\s?(AM|PM)$`)
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nricRegex   = regexp.MustCompile(`^[STFG]\d{7}[A-Z]$`)
	postalRegex = regexp.MustCompile(`^\d{6}$`)
)

// PhoneNumber reports whether phone is a valid Singapore number
// (+65 XXXX XXXX or +65 XXXXXXXX).
func PhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// Date reports whether date is a real calendar date in YYYY-MM-DD form.
func Date(date string) bool {
	if !dateRegex.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// ClockTime reports whether t is a 12-hour clock time such as "2:30 PM".
func ClockTime(t string) bool {
	return timeRegex.MatchString(t)
}

// Email reports whether email has a plausible mailbox shape.
func Email(email string) bool {
	return emailRegex.MatchString(email)
}

// NRIC validates a Singapore NRIC/FIN including its checksum letter: the
// seven digits are weighted, summed mod 11, and the result indexes one of
// two letter tables depending on the leading series letter.
func NRIC(nric string) bool {
	if !nricRegex.MatchString(nric) {
		return false
	}

	weights := [7]int{2, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i < 7; i++ {
		sum += int(nric[i+1]-'0') * weights[i]
	}

	checkLetters := "KLMNPQRTUWX"
	if nric[0] == 'S' || nric[0] == 'T' {
		checkLetters = "ABCDEFGHIZJ"
	}

	return nric[8] == checkLetters[sum%11]
}

// PostalCode reports whether code is a six-digit Singapore postal code.
func PostalCode(code string) bool {
	return postalRegex.MatchString(code)
}

// TextLength reports whether the trimmed text length is within [min, max].
func TextLength(text string, min, max int) bool {
	n := len(strings.TrimSpace(text))
	return n >= min && n <= max
}

// NumberRange reports whether value lies within [min, max].
func NumberRange(value, min, max float64) bool {
	return value >= min && value <= max
}
