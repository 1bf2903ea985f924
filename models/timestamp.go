package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Форматы, в которых бэкенд присылает время. JSON-кодировщик бэкенда отдаёт
// naive datetime в формате HTTP-даты с суффиксом GMT, формы отдают ISO-8601 без зоны.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

const (
	wireLayout  = "2006-01-02T15:04:05"
	formLayout  = "2006-01-02T15:04"
	humanLayout = "02.01.2006, 15:04:05"
)

// Timestamp хранит настенное время, как его понимает бэкенд.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unsupported timestamp format %q", s)
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ts.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(wireLayout))
}

// FormValue - значение для поля datetime-local (до минут).
func (ts Timestamp) FormValue() string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(formLayout)
}

// Human - отображение в формате ru-RU.
func (ts Timestamp) Human() string {
	if ts.IsZero() {
		return "—"
	}
	return ts.Format(humanLayout)
}
