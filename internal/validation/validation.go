package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/habito-app/habito/internal/constants"
)

// phonePattern matches a 10-digit Indian mobile number (first digit 6-9).
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidPhone reports whether the string is a valid login identifier.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateRegistration checks the mandatory registration fields before any
// store operation is attempted.
func ValidateRegistration(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if !ValidPhone(phone) {
		return fmt.Errorf("phone must be a valid 10-digit Indian mobile number (starts with 6-9)")
	}
	return nil
}

// ValidHex reports whether the string is a 3- or 6-digit hex color.
func ValidHex(color string) bool {
	return hexPattern.MatchString(color)
}

// ValidHour reports whether h is a valid hour of day.
func ValidHour(h int) bool {
	return h >= 0 && h <= 23
}

// ValidDateKey reports whether the string is a well-formed YYYY-MM-DD key.
func ValidDateKey(key string) bool {
	_, err := time.Parse(constants.DateFormat, key)
	return err == nil
}

// ParseWeekdays parses a comma-separated list of weekdays, accepting names,
// three-letter abbreviations and indices (0=Sunday .. 6=Saturday).
func ParseWeekdays(s string) ([]time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	var weekdays []time.Weekday
	seen := map[time.Weekday]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		wd, ok := dayMap[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			wd = time.Weekday(num)
		}
		if !seen[wd] {
			seen[wd] = true
			weekdays = append(weekdays, wd)
		}
	}
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return weekdays, nil
}
