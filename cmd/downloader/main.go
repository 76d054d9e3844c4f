package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/criteoclient"
	"github.com/mara/criteo-performance-downloader/infrastructure/storage"
	"github.com/mara/criteo-performance-downloader/internal/config"
	"github.com/mara/criteo-performance-downloader/internal/scheduler"
	"github.com/mara/criteo-performance-downloader/internal/usecases/downloading"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	configureLogger()

	once := bindFlags()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewArtifactStore(cfg.Downloader.DataDir)
	factory := criteoclient.NewFactory(cfg)
	downloader := downloading.NewService(cfg, factory, store)

	if *once || !cfg.DownloadSync.Enabled {
		runOnce(ctx, cfg, downloader)
		return
	}

	syncService := scheduler.NewDownloadSyncService(downloader, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("could not start download sync scheduler")
	}

	// Catch up immediately instead of waiting for the first cron tick.
	syncService.TriggerManualSync(ctx)

	<-ctx.Done()
	logrus.Info("shutting down")
}

// runOnce downloads the full configured history a single time and exits
// non-zero when any account failed.
func runOnce(ctx context.Context, cfg *config.Config, downloader *downloading.Service) {
	startDate, err := cfg.FirstReportDate()
	if err != nil {
		logrus.Fatal(err)
	}

	report := downloader.DownloadAll(ctx, startDate)
	for _, failure := range report.Failures {
		logrus.WithError(failure.Err).WithField("account", failure.Account).Error("download failure")
	}

	if report.Failed() {
		os.Exit(1)
	}
}

// bindFlags registers the CLI overrides on top of the environment-driven
// configuration. Flag defaults mirror config.SetDefaults so an unset flag
// never shadows an environment value.
func bindFlags() *bool {
	pflag.String("data_dir", "/tmp/criteo", "directory the result data is written to")
	pflag.String("first_date", "2015-01-01", "first day for which data is downloaded")
	pflag.String("accounts_file", "accounts.yaml", "yaml file listing the criteo accounts")
	once := pflag.Bool("once", false, "run a single full download instead of the cron scheduler")
	pflag.Parse()

	for _, key := range []string{"data_dir", "first_date", "accounts_file"} {
		if flag := pflag.Lookup(key); flag.Changed {
			viper.Set(key, flag.Value.String())
		}
	}

	return once
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
