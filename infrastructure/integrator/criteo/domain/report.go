package domain

// Job status strings the reporting API defines. Anything else is an error,
// not a state.
const (
	JobStatusPending   = "Pending"
	JobStatusCompleted = "Completed"
)

// Report request constants. The downloader always asks for daily campaign
// aggregation with an uncompressed result.
const (
	ReportTypeCampaign   = "Campaign"
	AggregationTypeDaily = "Daily"
)

// ReportJobRequest is the fixed-shape report request submitted for one date
// window.
type ReportJobRequest struct {
	ReportType      string
	AggregationType string
	StartDate       string
	EndDate         string
	IsResultGzipped bool
}

// NewCampaignReportRequest builds the request for a daily campaign
// performance report over [startDate, endDate].
func NewCampaignReportRequest(startDate, endDate string) ReportJobRequest {
	return ReportJobRequest{
		ReportType:      ReportTypeCampaign,
		AggregationType: AggregationTypeDaily,
		StartDate:       startDate,
		EndDate:         endDate,
		IsResultGzipped: false,
	}
}

// ReportRow is one row of a retrieved report: the row element's attributes,
// including the dateTime field the shaper groups on.
type ReportRow map[string]string

// ReportTable is the rows element of a retrieved report document, in
// document order.
type ReportTable struct {
	Rows []ReportRow
}

// AccountInfo is the subset of the advertiser account details the
// downloader consumes.
type AccountInfo struct {
	AdvertiserName string
}

// CampaignGroup is one top-level campaign with its nested sub-campaigns, as
// returned by the campaigns operation. Sub-campaigns keep their raw payload
// shape; the shaper flattens them.
type CampaignGroup struct {
	Name      string
	Campaigns []Value
}
