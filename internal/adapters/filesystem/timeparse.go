package filesystem

import "time"

// parseWeekday maps the YAML day_of_week integer (0=Sunday..6=Saturday, the
// same convention as time.Weekday) onto time.Weekday directly.
func parseWeekday(day int) time.Weekday {
	return time.Weekday(day % 7)
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
