package snapshot

import (
	"github.com/lifnux/lifnux/pkg/category"
	"github.com/lifnux/lifnux/pkg/event"
	"github.com/lifnux/lifnux/pkg/status"
)

// Snapshot is the whole application state as one JSON document. It is
// written and read as a unit; there is no per-entity persistence.
type Snapshot struct {
	Categories  []category.Category `json:"categories"`
	DateEvents  []event.DateEvent   `json:"dateEvents"`
	TimedEvents []event.TimedEvent  `json:"timedEvents"`

	CompanyName           string `json:"companyName"`
	IsEmployed            bool   `json:"isEmployed"`
	EmploymentStartDate   string `json:"employmentStartDate"`
	EmploymentEndDate     string `json:"employmentEndDate,omitempty"`
	RemainingLeaveMinutes int    `json:"remainingLeaveMinutes"`
}

func (s Snapshot) status() status.Status {
	return status.Status{
		CompanyName:           s.CompanyName,
		IsEmployed:            s.IsEmployed,
		EmploymentStartDate:   s.EmploymentStartDate,
		EmploymentEndDate:     s.EmploymentEndDate,
		RemainingLeaveMinutes: s.RemainingLeaveMinutes,
	}
}

func (s *Snapshot) setStatus(st status.Status) {
	s.CompanyName = st.CompanyName
	s.IsEmployed = st.IsEmployed
	s.EmploymentStartDate = st.EmploymentStartDate
	s.EmploymentEndDate = st.EmploymentEndDate
	s.RemainingLeaveMinutes = st.RemainingLeaveMinutes
}
