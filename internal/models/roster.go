package models

// RosterState tracks the one-shot startup load of the reference rosters.
type RosterState string

const (
	RosterStateLoading RosterState = "loading"
	RosterStateReady   RosterState = "ready"
	RosterStateFailed  RosterState = "failed"
)

// Student is a roster entry loaded from the remote students CSV.
// Entries are immutable for the lifetime of the session.
type Student struct {
	Seq   string `json:"seq"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Email string `json:"email"`
}

// Teacher is a roster entry loaded from the remote teachers CSV.
type Teacher struct {
	Seq        string `json:"seq"`
	Name       string `json:"name"`
	HourlyRate string `json:"hourly_rate"`
}

// RosterStatus reports load progress to clients.
type RosterStatus struct {
	State    RosterState `json:"state"`
	Students int         `json:"students"`
	Teachers int         `json:"teachers"`
	Notice   *Notice     `json:"notice,omitempty"`
}
