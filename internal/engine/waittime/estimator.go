package waittime

import (
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// Options carries the simulation parameters shared by every estimate
type Options struct {
	ServerCount     int
	DefaultDuration int
	Now             time.Time
}

// EstimateWait returns the minutes until a job placed after waitingAhead could start.
// Jobs are dispatched in arrival order to the next free server.
func EstimateWait(waitingAhead, inProgress []domain.QueueEntry, opts Options) int {
	pool := NewServerPool(inProgress, opts.ServerCount, opts.DefaultDuration, opts.Now)
	for i := range waitingAhead {
		pool.Assign(waitingAhead[i].DurationOr(opts.DefaultDuration))
	}
	return pool.NextFree()
}

// EstimateAllWaits returns the wait for every entry of a queue ordered by position.
// The simulation is advanced incrementally; entry i sees exactly queue[0..i) ahead of it.
func EstimateAllWaits(queue, inProgress []domain.QueueEntry, opts Options) map[string]int {
	waits := make(map[string]int, len(queue))

	pool := NewServerPool(inProgress, opts.ServerCount, opts.DefaultDuration, opts.Now)
	for i := range queue {
		waits[queue[i].ID] = pool.NextFree()
		pool.Assign(queue[i].DurationOr(opts.DefaultDuration))
	}

	return waits
}

// EstimateNewArrival returns the wait for a client joining behind the whole queue
func EstimateNewArrival(queue, inProgress []domain.QueueEntry, opts Options) int {
	return EstimateWait(queue, inProgress, opts)
}
