package pipeline

import "time"

// VenueStatus records the outcome of one venue's scrape. Last-success
// fields survive failed runs so a broken adapter still shows when it
// last worked.
type VenueStatus struct {
	LastRun          time.Time `json:"last_run"`
	Success          bool      `json:"success"`
	Error            string    `json:"error,omitempty"`
	EventCount       int       `json:"event_count"`
	LastSuccess      time.Time `json:"last_success,omitzero"`
	LastSuccessCount int       `json:"last_success_count,omitempty"`
}

// Status is the scrape-status artifact written after every run.
type Status struct {
	LastRun     time.Time               `json:"last_run"`
	Venues      map[string]*VenueStatus `json:"venues"`
	AllSuccess  bool                    `json:"all_success"`
	AnySuccess  bool                    `json:"any_success"`
	TotalEvents int                     `json:"total_events"`
}

// NewStatus creates an empty status record.
func NewStatus() *Status {
	return &Status{Venues: make(map[string]*VenueStatus)}
}

// RecordSuccess marks a venue run as successful.
func (s *Status) RecordSuccess(venue string, count int, now time.Time) {
	s.Venues[venue] = &VenueStatus{
		LastRun:          now,
		Success:          true,
		EventCount:       count,
		LastSuccess:      now,
		LastSuccessCount: count,
	}
}

// RecordFailure marks a venue run as failed, carrying forward the
// last-success fields from the previous status.
func (s *Status) RecordFailure(venue string, err error, prev *Status, now time.Time) {
	vs := &VenueStatus{
		LastRun: now,
		Error:   err.Error(),
	}
	if prev != nil {
		if old, ok := prev.Venues[venue]; ok {
			vs.LastSuccess = old.LastSuccess
			vs.LastSuccessCount = old.LastSuccessCount
		}
	}
	s.Venues[venue] = vs
}

// Finalize computes the run-level summary fields.
func (s *Status) Finalize(totalEvents int, now time.Time) {
	s.LastRun = now
	s.TotalEvents = totalEvents

	s.AllSuccess = len(s.Venues) > 0
	s.AnySuccess = false
	for _, vs := range s.Venues {
		if vs.Success {
			s.AnySuccess = true
		} else {
			s.AllSuccess = false
		}
	}
}
