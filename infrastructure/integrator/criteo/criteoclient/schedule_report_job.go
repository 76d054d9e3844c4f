package criteoclient

import (
	"encoding/xml"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type scheduleReportJobRequest struct {
	XMLName   xml.Name      `xml:"scheduleReportJob"`
	Xmlns     string        `xml:"xmlns,attr"`
	ReportJob reportJobBody `xml:"reportJob"`
}

type reportJobBody struct {
	ReportSelector  struct{} `xml:"reportSelector"`
	ReportType      string   `xml:"reportType"`
	AggregationType string   `xml:"aggregationType"`
	StartDate       string   `xml:"startDate"`
	EndDate         string   `xml:"endDate"`
	IsResultGzipped bool     `xml:"isResultGzipped"`
}

type scheduleReportJobResponse struct {
	XMLName     xml.Name `xml:"scheduleReportJobResponse"`
	JobResponse struct {
		JobID string `xml:"jobID"`
	} `xml:"jobResponse"`
}

// ScheduleReportJob submits one report generation request and returns the
// opaque job id the service assigned to it.
func (c *CriteoClient) ScheduleReportJob(job criteodomain.ReportJobRequest) (string, error) {
	request := scheduleReportJobRequest{
		Xmlns: apiNamespace,
		ReportJob: reportJobBody{
			ReportType:      job.ReportType,
			AggregationType: job.AggregationType,
			StartDate:       job.StartDate,
			EndDate:         job.EndDate,
			IsResultGzipped: job.IsResultGzipped,
		},
	}

	var response scheduleReportJobResponse
	if err := c.call("scheduleReportJob", request, &response); err != nil {
		return "", err
	}

	if response.JobResponse.JobID == "" {
		return "", errors.New("scheduleReportJob returned no job id")
	}

	logrus.WithFields(logrus.Fields{
		"account":    c.Account.NormalizedName,
		"job_id":     response.JobResponse.JobID,
		"start_date": job.StartDate,
		"end_date":   job.EndDate,
	}).Debug("report job scheduled")

	return response.JobResponse.JobID, nil
}
