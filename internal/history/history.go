package history

import "time"

// Action describes what changed the learning path.
type Action string

const (
	ActionSave    Action = "save"
	ActionPublish Action = "publish"
)

// Revision is one save or publish attempt.
type Revision struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	OK        bool      `json:"ok"`
	DataFile  string    `json:"dataFile"`
	Sections  int       `json:"sections"`
	Items     int       `json:"items"`
	Pending   int       `json:"pending"`
	Summary   string    `json:"summary"`
	// Detail holds command output or the failure message.
	Detail string `json:"detail,omitempty"`
	// Snapshot is the saved document, for save revisions only.
	Snapshot string `json:"snapshot,omitempty"`
}
