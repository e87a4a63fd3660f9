package util

import (
    "strconv"
    "time"
)

// ParseTime tries RFC3339, RFC3339Nano, and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t, true
    }
    if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
        return t, true
    }
    if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
        return time.Unix(ts, 0), true
    }
    return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
    if t, ok := ParseTime(s); ok {
        return t
    }
    return def
}

// DayKey returns the UTC calendar day of t as YYYY-MM-DD.
// History dedup keys off this, so two signals on the same day collapse.
func DayKey(t time.Time) string {
    return t.UTC().Format("2006-01-02")
}

// DateOffset returns the calendar date n days after t, as YYYY-MM-DD.
func DateOffset(t time.Time, days int) string {
    return t.UTC().AddDate(0, 0, days).Format("2006-01-02")
}
