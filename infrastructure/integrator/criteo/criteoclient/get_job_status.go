package criteoclient

import "encoding/xml"

type getJobStatusRequest struct {
	XMLName xml.Name `xml:"getJobStatus"`
	Xmlns   string   `xml:"xmlns,attr"`
	JobID   string   `xml:"jobID"`
}

type getJobStatusResponse struct {
	XMLName xml.Name `xml:"getJobStatusResponse"`
	Result  string   `xml:"getJobStatusResult"`
}

// GetJobStatus returns the remote status string for a scheduled report job.
// Interpreting the string is the caller's concern: anything outside the
// documented set is an error state, not a retryable one.
func (c *CriteoClient) GetJobStatus(jobID string) (string, error) {
	request := getJobStatusRequest{Xmlns: apiNamespace, JobID: jobID}

	var response getJobStatusResponse
	if err := c.call("getJobStatus", request, &response); err != nil {
		return "", err
	}

	return response.Result, nil
}
