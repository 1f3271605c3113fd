package utils

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// ParseSkills turns a comma separated skills input into a trimmed, de-duplicated
// list. Empty entries are dropped.
func ParseSkills(input string) []string {
	parts := strings.Split(input, ",")
	seen := make(map[string]bool, len(parts))
	var skills []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		skills = append(skills, p)
	}
	return skills
}

// ParseScheduledDate parses a customer supplied date. An empty input defaults
// to today. The slot is advisory only and is not checked against technician
// availability.
func ParseScheduledDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.BeginningOfDay(), nil
	}
	t, err := now.Parse(input)
	if err != nil {
		return time.Time{}, err
	}
	return now.With(t).BeginningOfDay(), nil
}
