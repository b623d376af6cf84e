package model

import "time"

// JobResult is the per-file outcome of a run.
type JobResult int

const (
	Succeeded JobResult = iota
	SkippedNotVideo
	FailedMissingInput
	FailedExecutor
	FailedExecutorNotFound
	// Planned is only produced by dry runs.
	Planned
)

func (r JobResult) String() string {
	switch r {
	case Succeeded:
		return "succeeded"
	case SkippedNotVideo:
		return "skipped (not a video)"
	case FailedMissingInput:
		return "failed (input missing)"
	case FailedExecutor:
		return "failed (ffmpeg error)"
	case FailedExecutorNotFound:
		return "failed (ffmpeg not found)"
	case Planned:
		return "planned"
	default:
		return "unknown"
	}
}

// Failed reports whether r is one of the failure results.
func (r JobResult) Failed() bool {
	return r == FailedMissingInput || r == FailedExecutor || r == FailedExecutorNotFound
}

// JobOutcome records what happened to a single input file.
type JobOutcome struct {
	Input    string
	Output   string   // Empty when the file was skipped before naming.
	Command  []string // Argument vector handed to the executor.
	Result   JobResult
	Elapsed  time.Duration
	Bytes    int64 // Size of the produced file; 0 unless Succeeded.
	Err      error
	Warnings []string // Best-effort steps that failed (deletion, subtitles).
}
