package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 14 {
		t.Errorf("ParseDate() = %v, want 2025-03-14", d)
	}

	if _, err := ParseDate("14/03/2025"); err == nil {
		t.Error("ParseDate should reject non-ISO input")
	}
	if _, err := ParseDate("2025-03-14T10:00:00Z"); err == nil {
		t.Error("ParseDate should reject timestamps")
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Due *Date `json:"due_date"`
	}

	if err := json.Unmarshal([]byte(`{"due_date":"2024-12-01"}`), &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if payload.Due == nil || payload.Due.String() != "2024-12-01" {
		t.Fatalf("unmarshaled due = %v, want 2024-12-01", payload.Due)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"due_date":"2024-12-01"}` {
		t.Errorf("Marshal() = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"due_date":"soon"}`), &payload); err == nil {
		t.Error("Unmarshal should reject malformed dates")
	}
}

func TestDateOf(t *testing.T) {
	instant := time.Date(2025, time.July, 9, 23, 45, 12, 0, time.UTC)
	d := DateOf(instant)
	if d.String() != "2025-07-09" {
		t.Errorf("DateOf() = %s, want 2025-07-09", d)
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("DateOf() kept a time component: %02d:%02d:%02d", h, m, s)
	}
}
