package criteoclient

import (
	"encoding/xml"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/pkg/errors"
)

type getAccountRequest struct {
	XMLName xml.Name `xml:"getAccount"`
	Xmlns   string   `xml:"xmlns,attr"`
}

type getAccountResponse struct {
	XMLName xml.Name `xml:"getAccountResponse"`
	Account struct {
		AdvertiserName string `xml:"advertiserName"`
	} `xml:"account"`
}

// GetAccount fetches the advertiser account details for the authenticated
// account.
func (c *CriteoClient) GetAccount() (*criteodomain.AccountInfo, error) {
	request := getAccountRequest{Xmlns: apiNamespace}

	var response getAccountResponse
	if err := c.call("getAccount", request, &response); err != nil {
		return nil, err
	}

	if response.Account.AdvertiserName == "" {
		return nil, errors.New("getAccount returned no advertiser name")
	}

	return &criteodomain.AccountInfo{
		AdvertiserName: response.Account.AdvertiserName,
	}, nil
}
