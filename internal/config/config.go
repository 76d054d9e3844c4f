package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Criteo       Criteo       `mapstructure:",squash"`
	Downloader   Downloader   `mapstructure:",squash"`
	DownloadSync DownloadSync `mapstructure:",squash"`
	Accounts     []Account    `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Criteo struct {
	URL               string  `mapstructure:"criteo_api_url"`
	RequestsPerSecond float64 `mapstructure:"criteo_requests_per_second"`
	TimeoutSeconds    int     `mapstructure:"criteo_timeout_seconds"`
}

type Downloader struct {
	DataDir               string `mapstructure:"data_dir"`
	FirstDate             string `mapstructure:"first_date"`
	AccountsFile          string `mapstructure:"accounts_file"`
	RetryAttempts         int    `mapstructure:"retry_attempts"`
	RetryDelaySeconds     int    `mapstructure:"retry_delay_seconds"`
	RedownloadWindowDays  int    `mapstructure:"redownload_window_days"`
	MaxConcurrentAccounts int    `mapstructure:"max_concurrent_accounts"`
}

type DownloadSync struct {
	CronSchedule string `mapstructure:"download_sync_cron"`
	Enabled      bool   `mapstructure:"download_sync_enabled"`
}

// Account holds one tenant's credentials as read from the accounts file.
type Account struct {
	Name     string `mapstructure:"name"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Token    string `mapstructure:"token"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("CRITEO_API_URL", "https://advertising.criteo.com/api/v201010/advertiserservice.asmx")
	viper.SetDefault("CRITEO_REQUESTS_PER_SECOND", 5.0)
	viper.SetDefault("CRITEO_TIMEOUT_SECONDS", 60)

	viper.SetDefault("DATA_DIR", "/tmp/criteo")
	viper.SetDefault("FIRST_DATE", "2015-01-01")
	viper.SetDefault("ACCOUNTS_FILE", "accounts.yaml")
	viper.SetDefault("RETRY_ATTEMPTS", 5)
	viper.SetDefault("RETRY_DELAY_SECONDS", 30)
	viper.SetDefault("REDOWNLOAD_WINDOW_DAYS", 30)
	viper.SetDefault("MAX_CONCURRENT_ACCOUNTS", 1)

	viper.SetDefault("DOWNLOAD_SYNC_CRON", "0 4 * * *")
	viper.SetDefault("DOWNLOAD_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Debug("no .env file read by viper, relying on environment")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.loadAccounts(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadAccounts reads the accounts file, a yaml list of name/username/
// password/token entries. A missing file is not an error so that one-shot
// runs can pass accounts purely through the environment of a wrapper.
func (c *Config) loadAccounts() error {
	path := c.Downloader.AccountsFile
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.WithField("accounts_file", path).Warn("accounts file not found, no accounts configured")
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading accounts file %s", path)
	}

	if err := v.UnmarshalKey("accounts", &c.Accounts); err != nil {
		return errors.Wrapf(err, "decoding accounts file %s", path)
	}

	return nil
}

// AccountList builds the immutable domain accounts from the raw credentials.
func (c *Config) AccountList() []domain.Account {
	accounts := make([]domain.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		accounts = append(accounts, domain.NewAccount(a.Name, a.Username, a.Password, a.Token))
	}
	return accounts
}

// FirstReportDate parses the configured first download date.
func (c *Config) FirstReportDate() (time.Time, error) {
	date, err := time.Parse(time.DateOnly, c.Downloader.FirstDate)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid first_date %q", c.Downloader.FirstDate)
	}
	return date, nil
}

// RetryDelay returns the inter-attempt delay for job status polling.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Downloader.RetryDelaySeconds) * time.Second
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Warn("could not determine working directory")
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.WithField("path", location).Debug("loaded .env file")
			return
		}
	}
}
