// Package queuestate holds the lifecycle rules for walk-in queue and waitlist entries.
// Every function works on a snapshot supplied by the caller and returns the new state
// without touching the input.
package queuestate

import (
	"fmt"
	"sort"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// Result is the outcome of a queue transition
type Result struct {
	// Entries is the full snapshot after the transition, in input order
	Entries []domain.QueueEntry
	// Changed holds only the entries whose state differs from the input
	Changed []domain.QueueEntry
}

// Waiting returns the waiting entries ordered by position
func (r Result) Waiting() []domain.QueueEntry {
	return WaitingOrder(r.Entries)
}

type transition struct {
	entries []domain.QueueEntry
	changed map[string]bool
}

func begin(snapshot []domain.QueueEntry) *transition {
	entries := make([]domain.QueueEntry, len(snapshot))
	copy(entries, snapshot)
	return &transition{entries: entries, changed: make(map[string]bool)}
}

func (t *transition) find(id string) (*domain.QueueEntry, error) {
	for i := range t.entries {
		if t.entries[i].ID == id {
			return &t.entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id=%s", ErrEntryNotFound, id)
}

func (t *transition) touch(id string) {
	t.changed[id] = true
}

// renumber rewrites the waiting positions to a dense 1..N sequence keeping relative order
func (t *transition) renumber() {
	waiting := make([]*domain.QueueEntry, 0, len(t.entries))
	for i := range t.entries {
		if t.entries[i].IsWaiting() {
			waiting = append(waiting, &t.entries[i])
		}
	}
	sort.SliceStable(waiting, func(i, j int) bool {
		return lessByPosition(waiting[i], waiting[j])
	})
	for i, e := range waiting {
		if e.Position != i+1 {
			e.Position = i + 1
			t.touch(e.ID)
		}
	}
}

func (t *transition) result() Result {
	changed := make([]domain.QueueEntry, 0, len(t.changed))
	for i := range t.entries {
		if t.changed[t.entries[i].ID] {
			changed = append(changed, t.entries[i])
		}
	}
	return Result{Entries: t.entries, Changed: changed}
}

func requireStatus(e *domain.QueueEntry, want domain.QueueStatus, action string) error {
	if e.Status != want {
		return fmt.Errorf("%w: %s requires status %s, entry id=%s is %s",
			ErrInvalidTransition, action, want, e.ID, e.Status)
	}
	return nil
}

// Join appends entry to the end of the waiting order
func Join(snapshot []domain.QueueEntry, entry domain.QueueEntry, now time.Time) (Result, error) {
	t := begin(snapshot)
	if _, err := t.find(entry.ID); err == nil {
		return Result{}, fmt.Errorf("%w: id=%s", ErrEntryExists, entry.ID)
	}

	maxPosition := 0
	for i := range t.entries {
		if t.entries[i].IsWaiting() && t.entries[i].Position > maxPosition {
			maxPosition = t.entries[i].Position
		}
	}

	entry.Status = domain.QueueStatusWaiting
	entry.Position = maxPosition + 1
	entry.StartedAt = nil
	entry.CompletedAt = nil
	if entry.JoinedAt.IsZero() {
		entry.JoinedAt = now
	}

	t.entries = append(t.entries, entry)
	t.touch(entry.ID)
	return t.result(), nil
}

// Start moves a waiting entry into service and closes the gap it leaves
func Start(snapshot []domain.QueueEntry, id string, now time.Time) (Result, error) {
	t := begin(snapshot)
	e, err := t.find(id)
	if err != nil {
		return Result{}, err
	}
	if err := requireStatus(e, domain.QueueStatusWaiting, "start"); err != nil {
		return Result{}, err
	}

	startedAt := now
	e.Status = domain.QueueStatusInProgress
	e.StartedAt = &startedAt
	e.Position = 0
	t.touch(e.ID)

	t.renumber()
	return t.result(), nil
}

// Complete finishes an entry that is in service
func Complete(snapshot []domain.QueueEntry, id string, now time.Time) (Result, error) {
	t := begin(snapshot)
	e, err := t.find(id)
	if err != nil {
		return Result{}, err
	}
	if err := requireStatus(e, domain.QueueStatusInProgress, "complete"); err != nil {
		return Result{}, err
	}

	completedAt := now
	e.Status = domain.QueueStatusCompleted
	e.CompletedAt = &completedAt
	t.touch(e.ID)

	return t.result(), nil
}

// NoShow drops a waiting entry that did not turn up and closes the gap
func NoShow(snapshot []domain.QueueEntry, id string, now time.Time) (Result, error) {
	t := begin(snapshot)
	e, err := t.find(id)
	if err != nil {
		return Result{}, err
	}
	if err := requireStatus(e, domain.QueueStatusWaiting, "no-show"); err != nil {
		return Result{}, err
	}

	completedAt := now
	e.Status = domain.QueueStatusNoShow
	e.CompletedAt = &completedAt
	e.Position = 0
	t.touch(e.ID)

	t.renumber()
	return t.result(), nil
}

// MoveUp swaps a waiting entry with the one directly ahead of it.
// At the head of the queue it is a no-op.
func MoveUp(snapshot []domain.QueueEntry, id string) (Result, error) {
	return move(snapshot, id, -1)
}

// MoveDown swaps a waiting entry with the one directly behind it.
// At the tail of the queue it is a no-op.
func MoveDown(snapshot []domain.QueueEntry, id string) (Result, error) {
	return move(snapshot, id, +1)
}

func move(snapshot []domain.QueueEntry, id string, step int) (Result, error) {
	t := begin(snapshot)
	e, err := t.find(id)
	if err != nil {
		return Result{}, err
	}
	if err := requireStatus(e, domain.QueueStatusWaiting, "reorder"); err != nil {
		return Result{}, err
	}

	order := make([]*domain.QueueEntry, 0, len(t.entries))
	for i := range t.entries {
		if t.entries[i].IsWaiting() {
			order = append(order, &t.entries[i])
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return lessByPosition(order[i], order[j])
	})

	idx := -1
	for i, w := range order {
		if w.ID == id {
			idx = i
			break
		}
	}

	neighbour := idx + step
	if neighbour < 0 || neighbour >= len(order) {
		return t.result(), nil
	}

	a, b := order[idx], order[neighbour]
	a.Position, b.Position = b.Position, a.Position
	t.touch(a.ID)
	t.touch(b.ID)

	return t.result(), nil
}

// WaitingOrder returns copies of the waiting entries ordered by position
func WaitingOrder(snapshot []domain.QueueEntry) []domain.QueueEntry {
	waiting := make([]domain.QueueEntry, 0, len(snapshot))
	for i := range snapshot {
		if snapshot[i].IsWaiting() {
			waiting = append(waiting, snapshot[i])
		}
	}
	sort.SliceStable(waiting, func(i, j int) bool {
		return lessByPosition(&waiting[i], &waiting[j])
	})
	return waiting
}

// InProgress returns copies of the entries currently being served
func InProgress(snapshot []domain.QueueEntry) []domain.QueueEntry {
	out := make([]domain.QueueEntry, 0)
	for i := range snapshot {
		if snapshot[i].IsInProgress() {
			out = append(out, snapshot[i])
		}
	}
	return out
}

// lessByPosition orders by position, then join time, then id so equal positions never tie
func lessByPosition(a, b *domain.QueueEntry) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	if !a.JoinedAt.Equal(b.JoinedAt) {
		return a.JoinedAt.Before(b.JoinedAt)
	}
	return a.ID < b.ID
}
