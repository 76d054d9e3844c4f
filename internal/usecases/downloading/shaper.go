package downloading

import (
	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/pkg/errors"
)

// DayPerformance holds one day's performance records in original row order.
type DayPerformance struct {
	Date    string
	Records []domain.PerformanceRecord
}

// ShapePerformance partitions report rows into per-day groups keyed on the
// exact dateTime value. Day groups appear in first-seen order, rows keep
// their order within a day, and every field of every row is preserved.
func ShapePerformance(table *criteodomain.ReportTable) ([]DayPerformance, error) {
	var days []DayPerformance
	index := make(map[string]int)

	for i, row := range table.Rows {
		day, ok := row["dateTime"]
		if !ok {
			return nil, errors.Wrapf(ErrMissingDateTime, "row %d", i)
		}

		record := make(domain.PerformanceRecord, len(row))
		for field, value := range row {
			record[field] = value
		}

		at, seen := index[day]
		if !seen {
			index[day] = len(days)
			days = append(days, DayPerformance{Date: day})
			at = index[day]
		}
		days[at].Records = append(days[at].Records, record)
	}

	return days, nil
}

// ShapeAccountStructure flattens the nested campaign groups into one record
// per sub-campaign and enriches each with the account's platform, channel
// and partner tags plus the advertiser name.
func ShapeAccountStructure(groups []criteodomain.CampaignGroup, account domain.Account, advertiserName string) []domain.AccountStructureRecord {
	var records []domain.AccountStructureRecord
	for _, group := range groups {
		for _, campaign := range group.Campaigns {
			record := domain.AccountStructureRecord(campaign.FlattenObject())
			record["platform"] = account.Platform
			record["channel"] = account.Channel
			record["partner"] = account.Partner
			record["advertiserName"] = advertiserName
			records = append(records, record)
		}
	}
	return records
}
