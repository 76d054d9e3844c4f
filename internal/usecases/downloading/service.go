package downloading

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/criteoclient"
	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/mara/criteo-performance-downloader/infrastructure/storage"
	"github.com/mara/criteo-performance-downloader/internal/config"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Service orchestrates the per-account download pipeline: schedule report
// jobs, poll them, fetch and shape the results, publish artifacts, then
// fetch and publish the account structure. Accounts are isolated from each
// other: every account is attempted and all failures are collected.
type Service struct {
	cfg       *config.Config
	newClient criteoclient.Factory
	store     *storage.ArtifactStore

	mu     sync.Mutex
	report *RunReport

	now func() time.Time
}

// AccountFailure records one failed pipeline stage for one account.
type AccountFailure struct {
	Account string
	Err     error
}

// RunReport summarizes one orchestration run across all accounts.
type RunReport struct {
	RunID     string
	Accounts  int
	Artifacts int
	Failures  []AccountFailure
}

// Failed reports whether any account had any failure.
func (r *RunReport) Failed() bool {
	return len(r.Failures) > 0
}

func NewService(cfg *config.Config, newClient criteoclient.Factory, store *storage.ArtifactStore) *Service {
	return &Service{
		cfg:       cfg,
		newClient: newClient,
		store:     store,
		now:       time.Now,
	}
}

// DownloadAll runs the pipeline for every configured account, starting the
// performance history at startDate. One account's failure never prevents
// the remaining accounts from being processed.
func (s *Service) DownloadAll(ctx context.Context, startDate time.Time) *RunReport {
	accounts := s.cfg.AccountList()

	s.mu.Lock()
	s.report = &RunReport{
		RunID:    uuid.New().String(),
		Accounts: len(accounts),
	}
	report := s.report
	s.mu.Unlock()

	if len(accounts) == 0 {
		logrus.Warn("no accounts configured, nothing to download")
		return report
	}

	maxConcurrent := s.cfg.Downloader.MaxConcurrentAccounts
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     report.RunID,
		"accounts":   len(accounts),
		"start_date": startDate.Format(time.DateOnly),
	}).Info("starting download run")

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc domain.Account) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			s.downloadAccount(ctx, acc, startDate, report.RunID)
		}(account)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"accounts":  report.Accounts,
		"artifacts": report.Artifacts,
		"failures":  len(report.Failures),
	}).Info("download run finished")

	return report
}

// downloadAccount runs the full pipeline for one account. Failures are
// recorded and the pipeline moves on: a broken performance window does not
// block the other windows, and a broken performance stage does not block
// the account structure download.
func (s *Service) downloadAccount(ctx context.Context, account domain.Account, startDate time.Time, runID string) {
	log := logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"account": account.NormalizedName,
	})

	client, err := s.newClient(account)
	if err != nil {
		log.WithError(err).Error("could not build criteo client")
		s.recordFailure(account, newDownloadError(err, account.NormalizedName, StageSchedule))
		return
	}

	log.Info("downloading performance data")
	s.downloadPerformance(ctx, log, client, account, startDate)

	log.Info("downloading account structure")
	if err := s.downloadAccountStructure(log, client, account); err != nil {
		log.WithError(err).Error("account structure download failed")
		s.recordFailure(account, err)
	}
}

// downloadPerformance schedules one report job per date window, waits for
// each and publishes one artifact per reported day. Window failures are
// isolated: results already obtained for other windows are still written.
func (s *Service) downloadPerformance(ctx context.Context, log *logrus.Entry, client criteoclient.Client, account domain.Account, startDate time.Time) {
	windows := ChunkDateRange(startDate, previousDay(s.now()))
	if len(windows) == 0 {
		log.WithField("start_date", startDate.Format(time.DateOnly)).Info("empty date range, no performance data to download")
		return
	}

	jobs, err := scheduleJobs(client, windows)
	if err != nil {
		s.recordFailure(account, newDownloadError(err, account.NormalizedName, StageSchedule))
		return
	}

	log.WithField("jobs", len(jobs)).Info("report jobs scheduled")

	for _, job := range jobs {
		if err := s.downloadWindow(ctx, log, client, account, job); err != nil {
			log.WithError(err).WithField("window", job.Window.String()).Error("window download failed")
		}
	}
}

// downloadWindow takes one scheduled job through poll, fetch, shape and
// write. The first failing stage is recorded and ends the window.
func (s *Service) downloadWindow(ctx context.Context, log *logrus.Entry, client criteoclient.Client, account domain.Account, job reportJob) error {
	window := job.Window.String()

	attempts := s.cfg.Downloader.RetryAttempts
	if err := awaitCompletion(ctx, client, job, attempts, s.cfg.RetryDelay()); err != nil {
		failure := newWindowError(err, account.NormalizedName, StagePoll, window)
		s.recordFailure(account, failure)
		return failure
	}

	downloadURL, err := client.GetReportDownloadURL(job.ID)
	if err != nil {
		failure := newWindowError(err, account.NormalizedName, StageFetch, window)
		s.recordFailure(account, failure)
		return failure
	}

	table, err := client.DownloadReport(downloadURL)
	if err != nil {
		failure := newWindowError(err, account.NormalizedName, StageFetch, window)
		s.recordFailure(account, failure)
		return failure
	}

	days, err := ShapePerformance(table)
	if err != nil {
		failure := newWindowError(err, account.NormalizedName, StageShape, window)
		s.recordFailure(account, failure)
		return failure
	}

	for _, day := range days {
		relPath := storage.PerformancePath(day.Date, account)
		if err := s.store.Publish(day.Records, relPath); err != nil {
			failure := newWindowError(err, account.NormalizedName, StageWrite, window)
			s.recordFailure(account, failure)
			return failure
		}
		s.recordArtifact()
	}

	log.WithFields(logrus.Fields{
		"job_id": job.ID,
		"window": window,
		"days":   len(days),
	}).Info("performance window published")

	return nil
}

// downloadAccountStructure fetches the advertiser name and campaign
// structure, flattens it and publishes one artifact for the account.
func (s *Service) downloadAccountStructure(log *logrus.Entry, client criteoclient.Client, account domain.Account) error {
	info, err := client.GetAccount()
	if err != nil {
		return newDownloadError(errors.Wrap(err, "fetching account details"), account.NormalizedName, StageStructure)
	}

	groups, err := client.GetCampaigns(criteodomain.CampaignSelector{})
	if err != nil {
		return newDownloadError(errors.Wrap(err, "fetching campaigns"), account.NormalizedName, StageStructure)
	}

	records := ShapeAccountStructure(groups, account, info.AdvertiserName)

	relPath := storage.AccountStructurePath(account)
	if err := s.store.Publish(records, relPath); err != nil {
		return newDownloadError(err, account.NormalizedName, StageWrite)
	}
	s.recordArtifact()

	log.WithFields(logrus.Fields{
		"advertiser": info.AdvertiserName,
		"records":    len(records),
	}).Info("account structure published")

	return nil
}

func (s *Service) recordFailure(account domain.Account, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.Failures = append(s.report.Failures, AccountFailure{
		Account: account.NormalizedName,
		Err:     err,
	})
}

func (s *Service) recordArtifact() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.Artifacts++
}
