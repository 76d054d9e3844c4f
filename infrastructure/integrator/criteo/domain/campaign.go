package domain

// CampaignSelector filters the campaigns operation. The zero value selects
// every campaign of the account, which is what the structure download uses.
type CampaignSelector struct {
	CampaignIDs []string
}
