package ntime

import (
	"bytes"
	"encoding/json"
	"time"
)

// NTime represents a nullable time.Time, marshalled to JSON as an RFC3339 (ISO-8601) string or null.
type NTime struct {
	time    time.Time
	isValid bool // false when Time is null
}

// UnmarshalJSON parses a quoted RFC3339 time string into a time.Time object; null yields an invalid NTime.
func (nt *NTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*nt = NTime{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*nt = parsed
	return nil
}

// MarshalJSON implements the Marshaller interface and operates on values rather than pointers, given NTime's heft.
func (nt NTime) MarshalJSON() ([]byte, error) {
	if nt.isValid {
		return json.Marshal(nt.String())
	}
	return []byte("null"), nil
}

// String formats valid times in UTC, with sub-second precision only when present.
func (nt NTime) String() string {
	if !nt.isValid {
		return ""
	}
	return nt.time.UTC().Format(time.RFC3339Nano)
}

// Parse reads an RFC3339 timestamp.
func Parse(value string) (NTime, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return NTime{}, err
	}
	return From(parsed), nil
}

func From(t time.Time) NTime {
	return NTime{time: t.UTC(), isValid: true}
}

func (nt NTime) Time() time.Time {
	return nt.time
}

func (nt NTime) Valid() bool {
	return nt.isValid
}

func (nt NTime) Before(compared NTime) bool {
	return nt.time.Before(compared.time)
}

func (nt NTime) After(compared NTime) bool {
	return nt.time.After(compared.time)
}
