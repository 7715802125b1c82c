// Package models defines the idea-bank record types exchanged with the
// remote service and tracked by the client.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ID is a server-assigned idea identifier. The backend emits ids both as
// JSON numbers and as strings depending on the sheet column type, so the
// client normalizes them to a stable string key usable by the vote ledger.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	return fmt.Errorf("idea id must be a string or a number, got %s", data)
}

// MarshalJSON sends numeric ids back as numbers so the backend receives the
// same representation it handed out.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Idea is a user-submitted proposal record. The authoritative copy of the
// vote counters lives server-side; the client only displays the values from
// the last fetch.
type Idea struct {
	ID        ID        `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Status    string    `json:"status,omitempty"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Date      time.Time `json:"date"`
}

// Comment belongs to exactly one idea. LocalID marks comments appended
// optimistically before the server acknowledged them; it is never sent on
// the wire.
type Comment struct {
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
	LocalID string    `json:"-"`
}

// VoteDirection is the closed set of vote kinds the backend accepts.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}
