package criteoclient

import (
	"net/http"
	"sync"
	"time"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/mara/criteo-performance-downloader/internal/config"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"golang.org/x/time/rate"
)

// Client is the surface of the Criteo advertiser service the downloader
// consumes. One client is authenticated for exactly one account.
type Client interface {
	ScheduleReportJob(job criteodomain.ReportJobRequest) (string, error)
	GetJobStatus(jobID string) (string, error)
	GetReportDownloadURL(jobID string) (string, error)
	DownloadReport(downloadURL string) (*criteodomain.ReportTable, error)
	GetAccount() (*criteodomain.AccountInfo, error)
	GetCampaigns(selector criteodomain.CampaignSelector) ([]criteodomain.CampaignGroup, error)
}

// Factory builds an authenticated client for one account.
type Factory func(account domain.Account) (Client, error)

// NewFactory returns a Factory wired to the configured endpoint. The login
// call is deferred until the first operation, so constructing clients for
// accounts that end up failing elsewhere costs nothing.
func NewFactory(cfg *config.Config) Factory {
	return func(account domain.Account) (Client, error) {
		return NewClient(cfg, account), nil
	}
}

type CriteoClient struct {
	Cfg     *config.Config
	Account domain.Account

	httpClient *http.Client
	limiter    *rate.Limiter

	authMu    sync.Mutex
	authToken string
}

func NewClient(cfg *config.Config, account domain.Account) *CriteoClient {
	return &CriteoClient{
		Cfg:     cfg,
		Account: account,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Criteo.TimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.Criteo.RequestsPerSecond), 1),
	}
}

// ensureAuthenticated performs the clientLogin call once and caches the
// returned auth token for the lifetime of the client.
func (c *CriteoClient) ensureAuthenticated() (string, error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	if c.authToken != "" {
		return c.authToken, nil
	}

	token, err := c.clientLogin()
	if err != nil {
		return "", err
	}

	c.authToken = token
	return token, nil
}
