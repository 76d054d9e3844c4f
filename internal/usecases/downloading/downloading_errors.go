package downloading

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownJobStatus means the remote returned a status outside the
	// documented set. Fatal for that job, never retried.
	ErrUnknownJobStatus = errors.New("unknown job status received")

	// ErrJobNotReady means the polling budget was exhausted while the job
	// was still pending. The unready report is not fetched.
	ErrJobNotReady = errors.New("report job not ready after retries")

	// ErrMissingDateTime means a report row lacked the dateTime field the
	// day partitioning is keyed on.
	ErrMissingDateTime = errors.New("report row missing dateTime field")
)

// Pipeline stages, recorded on failures for diagnostics.
const (
	StageSchedule  = "schedule"
	StagePoll      = "poll"
	StageFetch     = "fetch"
	StageShape     = "shape"
	StageWrite     = "write"
	StageStructure = "structure"
)

// DownloadError is a failure of one pipeline stage for one account,
// optionally scoped to one date window.
type DownloadError struct {
	Err     error
	Account string
	Stage   string
	Window  string
}

func (e *DownloadError) Error() string {
	if e.Window != "" {
		return fmt.Sprintf("account %s: stage %s: window %s: %v", e.Account, e.Stage, e.Window, e.Err)
	}
	return fmt.Sprintf("account %s: stage %s: %v", e.Account, e.Stage, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

func newDownloadError(err error, account, stage string) *DownloadError {
	return &DownloadError{Err: err, Account: account, Stage: stage}
}

func newWindowError(err error, account, stage, window string) *DownloadError {
	return &DownloadError{Err: err, Account: account, Stage: stage, Window: window}
}
