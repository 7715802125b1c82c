package models

import "strings"

// StatusKind buckets the open-ended status labels the backend uses into the
// classes the UI can render. Labels are matched by substring, not equality,
// because operators edit them freely in the sheet.
type StatusKind string

const (
	StatusNew         StatusKind = "new"
	StatusUnderReview StatusKind = "under_review"
	StatusInProgress  StatusKind = "in_progress"
	StatusImplemented StatusKind = "implemented"
	StatusRejected    StatusKind = "rejected"
)

// ClassifyStatus maps a free-text status label to its kind. Unknown or empty
// labels count as new.
func ClassifyStatus(status string) StatusKind {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "розгляд"):
		return StatusUnderReview
	case strings.Contains(lower, "робот"):
		return StatusInProgress
	case strings.Contains(lower, "реаліз") || strings.Contains(lower, "виконан"):
		return StatusImplemented
	case strings.Contains(lower, "відхил"):
		return StatusRejected
	default:
		return StatusNew
	}
}
