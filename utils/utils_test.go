package utils

import (
	"testing"
	"time"
)

func TestParseSkills(t *testing.T) {
	skills := ParseSkills("Split AC, Window AC , ,Gas Charging,Split AC")
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d: %v", len(skills), skills)
	}
	if skills[0] != "Split AC" || skills[1] != "Window AC" || skills[2] != "Gas Charging" {
		t.Fatalf("unexpected skills: %v", skills)
	}

	if got := ParseSkills(""); len(got) != 0 {
		t.Fatalf("expected no skills from empty input, got %v", got)
	}
	if got := ParseSkills(" , , "); len(got) != 0 {
		t.Fatalf("expected no skills from blank input, got %v", got)
	}
}

func TestParseScheduledDate(t *testing.T) {
	d, err := ParseScheduledDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseScheduledDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected beginning of day, got %v", d)
	}

	today, err := ParseScheduledDate("")
	if err != nil {
		t.Fatalf("ParseScheduledDate(empty): %v", err)
	}
	now := time.Now()
	if today.Year() != now.Year() || today.YearDay() != now.YearDay() {
		t.Fatalf("expected today as default, got %v", today)
	}

	if _, err := ParseScheduledDate("not-a-date"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
