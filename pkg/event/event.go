package event

import "encoding/json"

// Time range bounds for timed events, as minute offsets from the 07:00
// day origin, quantized to half-hour slots.
const (
	SlotStepMin = 30
	MaxStartMin = 1410
	MaxEndMin   = 1440
)

// DateEvent is an untimed, all-day entry on one local calendar date.
// System date events (seeded holidays) can be edited and disabled but
// never deleted.
type DateEvent struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	Title      string     `json:"title"`
	CategoryID string     `json:"categoryId"`
	Importance Importance `json:"importance"`
	Note       string     `json:"note,omitempty"`
	IsSystem   bool       `json:"isSystem,omitempty"`
	IsEnabled  bool       `json:"isEnabled"`
	CreatedAt  int64      `json:"createdAt"`
}

// UnmarshalJSON treats an absent isEnabled field as enabled. Older blobs
// omitted the flag entirely.
func (e *DateEvent) UnmarshalJSON(data []byte) error {
	type alias DateEvent
	aux := struct {
		*alias
		IsEnabled *bool `json:"isEnabled"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.IsEnabled = aux.IsEnabled == nil || *aux.IsEnabled
	return nil
}

// TimedEvent is a time-ranged entry anchored to a business day running
// 07:00 on AnchorDate to 06:00 the next calendar date. StartMin and
// EndMin are minute offsets from the 07:00 origin; EndMin > StartMin.
// An event starting at offset 1380 happens at 06:00 the next calendar
// date but still belongs to AnchorDate's cell.
type TimedEvent struct {
	ID         string     `json:"id"`
	AnchorDate string     `json:"anchorDate"`
	StartMin   int        `json:"startMin"`
	EndMin     int        `json:"endMin"`
	Title      string     `json:"title"`
	CategoryID string     `json:"categoryId"`
	Importance Importance `json:"importance"`
	Location   string     `json:"location,omitempty"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
}
