package domain

// PerformanceRecord is one row of campaign performance for a single calendar
// day, exactly as the reporting API returned it: field name -> value.
type PerformanceRecord map[string]string

// AccountStructureRecord is one flattened sub-campaign enriched with the
// account's platform, channel, partner and advertiser name.
type AccountStructureRecord map[string]interface{}
