package event

import (
	"encoding/json"
	"fmt"
)

// Importance is the ordinal priority of an event: LOW < MIDDLE < HIGH < CRITICAL.
type Importance int

const (
	ImportanceLow Importance = iota + 1
	ImportanceMiddle
	ImportanceHigh
	ImportanceCritical
)

// HighPlus reports whether the importance is HIGH or CRITICAL.
func (i Importance) HighPlus() bool {
	return i >= ImportanceHigh
}

// MiddlePlus reports whether the importance is MIDDLE or above.
func (i Importance) MiddlePlus() bool {
	return i >= ImportanceMiddle
}

func (i Importance) String() string {
	switch i {
	case ImportanceLow:
		return "LOW"
	case ImportanceMiddle:
		return "MIDDLE"
	case ImportanceHigh:
		return "HIGH"
	case ImportanceCritical:
		return "CRITICAL"
	}
	return fmt.Sprintf("Importance(%d)", int(i))
}

// ParseImportance converts the wire representation back to an Importance.
func ParseImportance(s string) (Importance, error) {
	switch s {
	case "LOW":
		return ImportanceLow, nil
	case "MIDDLE":
		return ImportanceMiddle, nil
	case "HIGH":
		return ImportanceHigh, nil
	case "CRITICAL":
		return ImportanceCritical, nil
	}
	return 0, fmt.Errorf("unknown importance %q", s)
}

func (i Importance) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *Importance) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseImportance(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
