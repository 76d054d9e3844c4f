package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mara/criteo-performance-downloader/internal/config"
	"github.com/mara/criteo-performance-downloader/internal/usecases/downloading"
	"github.com/sirupsen/logrus"
)

// DownloadSyncConfig holds the scheduling knobs for recurring downloads.
type DownloadSyncConfig struct {
	CronSchedule         string
	Enabled              bool
	RedownloadWindowDays int
}

// DownloadSyncService reruns the download pipeline on a cron schedule.
// Recurring runs only re-fetch the redownload window of recent history, so
// late attribution corrections from the reporting API are picked up without
// re-reading years of data.
type DownloadSyncService struct {
	scheduler  *gocron.Scheduler
	config     DownloadSyncConfig
	appConfig  *config.Config
	downloader *downloading.Service

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time

	now func() time.Time
}

func NewDownloadSyncService(downloader *downloading.Service, appConfig *config.Config) *DownloadSyncService {
	syncConfig := DownloadSyncConfig{
		CronSchedule:         appConfig.DownloadSync.CronSchedule,
		Enabled:              appConfig.DownloadSync.Enabled,
		RedownloadWindowDays: appConfig.Downloader.RedownloadWindowDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":          syncConfig.CronSchedule,
		"sync_enabled":           syncConfig.Enabled,
		"redownload_window_days": syncConfig.RedownloadWindowDays,
	}).Info("download sync scheduler configured")

	return &DownloadSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		appConfig:  appConfig,
		downloader: downloader,
		now:        time.Now,
	}
}

// Start schedules the recurring sync and stops it when the context ends.
func (s *DownloadSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("download sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting download sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling download sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping download sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs one sync outside the cron schedule.
func (s *DownloadSyncService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("download sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("starting manual download sync")
	go s.syncAll(ctx)
}

func (s *DownloadSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("download sync already running, skipping this tick")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := s.now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startDate, err := s.effectiveStartDate()
	if err != nil {
		logrus.WithError(err).Error("could not determine sync start date")
		return
	}

	logrus.WithField("start_date", startDate.Format(time.DateOnly)).Info("starting scheduled download sync")

	report := s.downloader.DownloadAll(ctx, startDate)

	duration := time.Since(startTime)
	if report.Failed() {
		for _, failure := range report.Failures {
			logrus.WithError(failure.Err).WithField("account", failure.Account).Error("download sync failure")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"accounts":  report.Accounts,
		"artifacts": report.Artifacts,
		"failures":  len(report.Failures),
	}).Info("scheduled download sync finished")

	s.lastSyncCompletedAt = s.now()
}

// effectiveStartDate bounds recurring runs to the redownload window: recent
// days are always re-fetched, but never from before the configured first
// report date.
func (s *DownloadSyncService) effectiveStartDate() (time.Time, error) {
	firstDate, err := s.appConfig.FirstReportDate()
	if err != nil {
		return time.Time{}, err
	}

	cutoff := s.now().AddDate(0, 0, -1-s.config.RedownloadWindowDays)
	year, month, day := cutoff.Date()
	cutoff = time.Date(year, month, day, 0, 0, 0, 0, cutoff.Location())

	if cutoff.After(firstDate) {
		return cutoff, nil
	}
	return firstDate, nil
}
