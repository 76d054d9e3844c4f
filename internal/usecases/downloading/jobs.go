package downloading

import (
	"context"
	"time"

	"github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/criteoclient"
	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// reportJob associates a remote job handle with the date window it covers.
type reportJob struct {
	ID     string
	Window domain.DateWindow
}

// scheduleJobs submits one report request per window, in window order. A
// failed submission surfaces immediately; the orchestrator decides what to
// do with the account.
func scheduleJobs(client criteoclient.Client, windows []domain.DateWindow) ([]reportJob, error) {
	jobs := make([]reportJob, 0, len(windows))
	for _, window := range windows {
		request := criteodomain.NewCampaignReportRequest(window.StartDate(), window.EndDate())

		jobID, err := client.ScheduleReportJob(request)
		if err != nil {
			return nil, errors.Wrapf(err, "scheduling report job for window %s", window)
		}

		jobs = append(jobs, reportJob{ID: jobID, Window: window})
	}
	return jobs, nil
}

// awaitCompletion polls one job until it completes or the attempt budget
// runs out. Pending consumes an attempt and waits delay; Completed stops;
// any other status fails immediately with ErrUnknownJobStatus. Transport
// errors are retried within the same budget. Exhausting the budget while
// still pending fails with ErrJobNotReady: an unready report is never
// fetched.
func awaitCompletion(ctx context.Context, client criteoclient.Client, job reportJob, attempts int, delay time.Duration) error {
	for attempt := 1; attempt <= attempts; attempt++ {
		status, err := client.GetJobStatus(job.ID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"job_id":  job.ID,
				"attempt": attempt,
			}).Warn("job status request failed")
			if attempt == attempts {
				return errors.Wrapf(err, "polling job %s", job.ID)
			}
			if err := sleepContext(ctx, delay); err != nil {
				return err
			}
			continue
		}

		switch status {
		case criteodomain.JobStatusCompleted:
			return nil
		case criteodomain.JobStatusPending:
			logrus.WithFields(logrus.Fields{
				"job_id":  job.ID,
				"attempt": attempt,
				"window":  job.Window.String(),
			}).Info("report job still pending")
			if attempt == attempts {
				return errors.Wrapf(ErrJobNotReady, "job %s after %d attempts", job.ID, attempts)
			}
			if err := sleepContext(ctx, delay); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrUnknownJobStatus, "job %s status %q", job.ID, status)
		}
	}

	return errors.Wrapf(ErrJobNotReady, "job %s", job.ID)
}

// sleepContext waits for the delay or for cancellation, whichever comes
// first.
func sleepContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
