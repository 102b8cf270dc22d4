package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Base carries the fields every stored document gets at creation time.
// It is embedded so the JSON stays flat.
type Base struct {
	ID        string     `json:"id"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
}

func (b *Base) GetID() string { return b.ID }

func (b *Base) SetID(id string) { b.ID = id }

func (b *Base) SetCreatedAt(t time.Time) {
	b.CreatedAt = &Timestamp{Time: t.UTC()}
}

// Timestamp is a time.Time that accepts the date formats clients send:
// RFC 3339, naive ISO-8601 date-times (read as UTC) and bare dates.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// NewTimestamp wraps t as a UTC Timestamp pointer
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.UTC()}
}

// ParseTimestamp parses s using the accepted layouts
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t.UTC()}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
