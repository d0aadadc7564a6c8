package bulk

import (
	"errors"
	"time"

	"github.com/hlynes/personagen/filter"
)

// State is the lifecycle state of an export job.
type State string

const (
	StateQueued    State = "queued"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

var (
	// ErrNotFound is returned when a job id is unknown.
	ErrNotFound = errors.New("bulk: job not found")

	// ErrFinished is returned when cancelling a job that already
	// reached a terminal state.
	ErrFinished = errors.New("bulk: job already finished")
)

// Request describes an export to run.
type Request struct {
	Locale string
	Seed   int64
	Start  int64
	Count  int
	Filter *filter.Filter
}

// Job is a point-in-time snapshot of an export job. Generated counts
// records produced, Written counts records that passed the filter and
// landed in the output file; without a filter the two match.
type Job struct {
	ID          string     `json:"id"`
	Locale      string     `json:"locale"`
	Seed        int64      `json:"seed"`
	Start       int64      `json:"start"`
	Count       int        `json:"count"`
	Filter      string     `json:"filter,omitempty"`
	State       State      `json:"state"`
	Generated   int        `json:"generated"`
	Written     int        `json:"written"`
	OutputFile  string     `json:"output_file,omitempty"`
	OutputBytes int64      `json:"output_bytes,omitempty"`
	OutputSize  string     `json:"output_size,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// Finished reports whether the job reached a terminal state.
func (j *Job) Finished() bool {
	switch j.State {
	case StateCompleted, StateFailed, StateCancelled:
		return true
	}
	return false
}
