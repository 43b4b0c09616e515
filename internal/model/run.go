package model

import (
	"encoding/json"
	"time"
)

// Run is one persisted lint run: which session it examined, how bad things
// were and the full report for later display.
type Run struct {
	ID            int             `json:"id"`
	SessionID     string          `json:"session_id"`
	ObjectName    string          `json:"object_name"`
	TotalProblems int             `json:"total_problems"`
	Report        json.RawMessage `json:"report"`
	CreatedAt     time.Time       `json:"created_at"`
}
