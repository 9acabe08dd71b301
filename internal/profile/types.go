package profile

import "time"

// TimestampLayout is the ISO-8601 layout used for every stored timestamp:
// UTC with millisecond precision, e.g. 2026-10-16T07:05:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HistoryEntry records one completed diagnosis.
type HistoryEntry struct {
	ID        string `json:"id"`
	Result    string `json:"result"`    // result title
	Timestamp string `json:"timestamp"` // TimestampLayout
	Date      string `json:"date"`      // locale-formatted for display
}

// Profile is everything stored for one username. Timestamps are kept as the
// stored strings so that a load/save round trip is byte-stable.
type Profile struct {
	CreatedAt    string         `json:"createdAt"`
	LastActivity string         `json:"lastActivity,omitempty"`
	History      []HistoryEntry `json:"history"`
}

// Profiles maps username to profile; it is the whole players_data value.
type Profiles map[string]*Profile

// Created parses CreatedAt.
func (p *Profile) Created() (time.Time, bool) {
	return parseTimestamp(p.CreatedAt)
}

// LastActive parses LastActivity.
func (p *Profile) LastActive() (time.Time, bool) {
	return parseTimestamp(p.LastActivity)
}

// Latest returns the newest history entry.
func (p *Profile) Latest() (HistoryEntry, bool) {
	if p == nil || len(p.History) == 0 {
		return HistoryEntry{}, false
	}
	return p.History[0], true
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func newProfile(now time.Time) *Profile {
	return &Profile{
		CreatedAt: formatTimestamp(now),
		History:   []HistoryEntry{},
	}
}
