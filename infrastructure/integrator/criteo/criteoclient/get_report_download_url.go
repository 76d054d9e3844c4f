package criteoclient

import (
	"encoding/xml"

	"github.com/pkg/errors"
)

type getReportDownloadURLRequest struct {
	XMLName xml.Name `xml:"getReportDownloadUrl"`
	Xmlns   string   `xml:"xmlns,attr"`
	JobID   string   `xml:"jobID"`
}

type getReportDownloadURLResponse struct {
	XMLName xml.Name `xml:"getReportDownloadUrlResponse"`
	Result  string   `xml:"jobURL"`
}

// GetReportDownloadURL resolves the URL under which a completed report job's
// result document can be fetched.
func (c *CriteoClient) GetReportDownloadURL(jobID string) (string, error) {
	request := getReportDownloadURLRequest{Xmlns: apiNamespace, JobID: jobID}

	var response getReportDownloadURLResponse
	if err := c.call("getReportDownloadUrl", request, &response); err != nil {
		return "", err
	}

	if response.Result == "" {
		return "", errors.Errorf("no download url for job %s", jobID)
	}

	return response.Result, nil
}
