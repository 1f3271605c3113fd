package technician

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Skills is a set of skill labels persisted as a comma separated text column.
type Skills []string

// Value implements driver.Valuer.
func (s Skills) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

// Scan implements sql.Scanner.
func (s *Skills) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported skills column type %T", value)
	}

	if raw == "" {
		*s = nil
		return nil
	}
	*s = strings.Split(raw, ",")
	return nil
}

// Contains reports whether the set holds the given skill.
func (s Skills) Contains(skill string) bool {
	for _, sk := range s {
		if sk == skill {
			return true
		}
	}
	return false
}
