package criteoclient

import (
	"encoding/xml"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/pkg/errors"
)

type getCampaignsRequest struct {
	XMLName  xml.Name `xml:"getCampaigns"`
	Xmlns    string   `xml:"xmlns,attr"`
	Selector struct {
		CampaignIDs []string `xml:"campaignIds>int,omitempty"`
	} `xml:"campaignSelector"`
}

type getCampaignsResponse struct {
	XMLName   xml.Name `xml:"getCampaignsResponse"`
	Campaigns struct {
		Groups []campaignGroupElement `xml:"campaign"`
	} `xml:"campaigns"`
}

type campaignGroupElement struct {
	Name      string `xml:"campaignName"`
	Campaigns struct {
		Inner []byte `xml:",innerxml"`
	} `xml:"campaigns"`
}

// GetCampaigns fetches the account's campaign structure: top-level campaign
// groups, each carrying its nested sub-campaigns as raw payload values.
func (c *CriteoClient) GetCampaigns(selector criteodomain.CampaignSelector) ([]criteodomain.CampaignGroup, error) {
	request := getCampaignsRequest{Xmlns: apiNamespace}
	request.Selector.CampaignIDs = selector.CampaignIDs

	var response getCampaignsResponse
	if err := c.call("getCampaigns", request, &response); err != nil {
		return nil, err
	}

	groups := make([]criteodomain.CampaignGroup, 0, len(response.Campaigns.Groups))
	for _, element := range response.Campaigns.Groups {
		values, err := parsePayloadElements(element.Campaigns.Inner)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing sub-campaigns of %q", element.Name)
		}

		groups = append(groups, criteodomain.CampaignGroup{
			Name:      element.Name,
			Campaigns: values,
		})
	}

	return groups, nil
}
