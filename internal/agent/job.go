package agent

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// DefaultMaxAttempts bounds retries of a failed agent run before River
// discards the job.
const DefaultMaxAttempts = 3

// JobArgs contains the arguments for an agent run submitted to River. The
// message ID keys job uniqueness so retried submissions of the same user
// message do not produce duplicate assistant replies.
type JobArgs struct {
	// SessionID is the chat session the run belongs to.
	SessionID uuid.UUID `json:"session_id"`
	// MessageID is the user message that triggered the run.
	MessageID uuid.UUID `json:"message_id" river:"unique"`
	// Prompt is the text handed to the Runner.
	Prompt string `json:"prompt"`
}

// Kind returns the River job kind used to register and dispatch the agent worker.
func (args JobArgs) Kind() string { return "AgentRunJob" }

// InsertOpts enforces one run per triggering message in any non-terminal state.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: DefaultMaxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
