package waittime

import (
	"sort"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

// ServerPool tracks, for each server, the offset in minutes from "now" at which it becomes free.
// freeAt is kept sorted ascending so freeAt[0] is always the next server to free up.
type ServerPool struct {
	freeAt []int
}

// NewServerPool seeds a pool of max(serverCount, 1) servers from the in-progress work.
// The i-th smallest remaining time occupies server i; servers beyond the busy ones are idle.
func NewServerPool(inProgress []domain.QueueEntry, serverCount, defaultDuration int, now time.Time) *ServerPool {
	servers := serverCount
	if servers < 1 {
		servers = 1
	}

	remaining := RemainingMinutes(inProgress, defaultDuration, now)

	freeAt := make([]int, servers)
	for i := 0; i < servers && i < len(remaining); i++ {
		freeAt[i] = remaining[i]
	}
	sort.Ints(freeAt)

	return &ServerPool{freeAt: freeAt}
}

// RemainingMinutes returns max(0, duration-elapsed) for every in-progress entry, sorted ascending.
// Entries that never recorded a start are treated as just started.
func RemainingMinutes(inProgress []domain.QueueEntry, defaultDuration int, now time.Time) []int {
	remaining := make([]int, 0, len(inProgress))
	for i := range inProgress {
		job := &inProgress[i]

		elapsed := 0
		if job.StartedAt != nil {
			elapsed = types.ElapsedMinutes(*job.StartedAt, now)
		}

		left := job.DurationOr(defaultDuration) - elapsed
		if left < 0 {
			left = 0
		}
		remaining = append(remaining, left)
	}
	sort.Ints(remaining)
	return remaining
}

// NextFree returns the earliest offset at which any server is available
func (p *ServerPool) NextFree() int {
	return p.freeAt[0]
}

// Assign gives a job of the given duration to the earliest free server
func (p *ServerPool) Assign(duration int) {
	p.freeAt[0] += duration
	// Only freeAt[0] grew, so bubbling it forward restores order.
	for i := 0; i+1 < len(p.freeAt) && p.freeAt[i] > p.freeAt[i+1]; i++ {
		p.freeAt[i], p.freeAt[i+1] = p.freeAt[i+1], p.freeAt[i]
	}
}

// Size returns the number of modelled servers
func (p *ServerPool) Size() int {
	return len(p.freeAt)
}

// FreeAt returns a copy of the per-server free offsets, smallest first
func (p *ServerPool) FreeAt() []int {
	out := make([]int, len(p.freeAt))
	copy(out, p.freeAt)
	return out
}
