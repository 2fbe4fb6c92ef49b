package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs,
// keeping callers decoupled from the queue backend. Implementations should
// enqueue atomically with respect to any surrounding transaction when the
// backend supports it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports whether
	// the job was actually inserted (unique-job skips return false).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
