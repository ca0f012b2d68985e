package domain

import "time"

// QueueStatus represents the lifecycle state of a walk-in queue entry
type QueueStatus string

const (
	QueueStatusWaiting    QueueStatus = "waiting"
	QueueStatusInProgress QueueStatus = "in-progress"
	QueueStatusCompleted  QueueStatus = "completed"
	QueueStatusNoShow     QueueStatus = "no-show"
)

// QueueEntry represents a walk-in client in a shop queue.
// Position is meaningful only while Status is waiting and is 0 otherwise.
type QueueEntry struct {
	ID                       string
	ShopID                   string
	ClientName               string
	ServiceID                *string
	StaffID                  *string
	EstimatedDurationMinutes int
	Status                   QueueStatus
	Position                 int
	JoinedAt                 time.Time
	StartedAt                *time.Time
	CompletedAt              *time.Time
}

// IsWaiting returns true if the entry is still in the waiting order
func (e *QueueEntry) IsWaiting() bool {
	return e.Status == QueueStatusWaiting
}

// IsInProgress returns true if the entry is currently being served
func (e *QueueEntry) IsInProgress() bool {
	return e.Status == QueueStatusInProgress
}

// IsFinished returns true if the entry reached a terminal state
func (e *QueueEntry) IsFinished() bool {
	return e.Status == QueueStatusCompleted || e.Status == QueueStatusNoShow
}

// DurationOr returns the estimated duration, or fallback when it is unknown
func (e *QueueEntry) DurationOr(fallback int) int {
	if e.EstimatedDurationMinutes > 0 {
		return e.EstimatedDurationMinutes
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultDurationMinutes
}
