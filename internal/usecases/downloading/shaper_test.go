package downloading

import (
	"testing"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapePerformanceGroupsRowsByDay(t *testing.T) {
	table := &criteodomain.ReportTable{
		Rows: []criteodomain.ReportRow{
			{"dateTime": "2023-01-01", "campaignID": "1", "clicks": "10"},
			{"dateTime": "2023-01-01", "campaignID": "2", "clicks": "3"},
			{"dateTime": "2023-01-02", "campaignID": "1", "clicks": "7"},
		},
	}

	days, err := ShapePerformance(table)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "2023-01-01", days[0].Date)
	require.Len(t, days[0].Records, 2)
	assert.Equal(t, "1", days[0].Records[0]["campaignID"])
	assert.Equal(t, "2", days[0].Records[1]["campaignID"])

	assert.Equal(t, "2023-01-02", days[1].Date)
	require.Len(t, days[1].Records, 1)
	assert.Equal(t, "7", days[1].Records[0]["clicks"])
}

func TestShapePerformancePreservesAllFields(t *testing.T) {
	table := &criteodomain.ReportTable{
		Rows: []criteodomain.ReportRow{
			{"dateTime": "2023-01-01", "campaignID": "1", "impressions": "1000", "cost": "12.34"},
		},
	}

	days, err := ShapePerformance(table)
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, domain.PerformanceRecord{
		"dateTime":    "2023-01-01",
		"campaignID":  "1",
		"impressions": "1000",
		"cost":        "12.34",
	}, days[0].Records[0])
}

func TestShapePerformanceEmptyTable(t *testing.T) {
	days, err := ShapePerformance(&criteodomain.ReportTable{})
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestShapePerformanceMissingDateTime(t *testing.T) {
	table := &criteodomain.ReportTable{
		Rows: []criteodomain.ReportRow{
			{"campaignID": "1"},
		},
	}

	_, err := ShapePerformance(table)
	assert.ErrorIs(t, err, ErrMissingDateTime)
}

func TestShapeAccountStructureFlattensGroups(t *testing.T) {
	groups := []criteodomain.CampaignGroup{
		{
			Name: "group-a",
			Campaigns: []criteodomain.Value{
				criteodomain.ObjectValue(map[string]criteodomain.Value{
					"campaignID": criteodomain.ScalarValue("101"),
					"status":     criteodomain.ScalarValue("RUNNING"),
				}),
				criteodomain.ObjectValue(map[string]criteodomain.Value{
					"campaignID": criteodomain.ScalarValue("102"),
				}),
			},
		},
		{
			Name: "group-b",
			Campaigns: []criteodomain.Value{
				criteodomain.ObjectValue(map[string]criteodomain.Value{
					"campaignID": criteodomain.ScalarValue("201"),
				}),
			},
		},
	}

	account := domain.NewAccount("MY Account DE", "user", "pass", "token")
	records := ShapeAccountStructure(groups, account, "ACME GmbH")

	require.Len(t, records, 3)
	for _, record := range records {
		assert.Equal(t, "my.account.de", record["platform"])
		assert.Equal(t, "retargeting", record["channel"])
		assert.Equal(t, "criteo", record["partner"])
		assert.Equal(t, "ACME GmbH", record["advertiserName"])
	}

	assert.Equal(t, "101", records[0]["campaignID"])
	assert.Equal(t, "RUNNING", records[0]["status"])
	assert.Equal(t, "102", records[1]["campaignID"])
	assert.Equal(t, "201", records[2]["campaignID"])
}

func TestShapeAccountStructureFlattensNestedValues(t *testing.T) {
	groups := []criteodomain.CampaignGroup{
		{
			Name: "group-a",
			Campaigns: []criteodomain.Value{
				criteodomain.ObjectValue(map[string]criteodomain.Value{
					"campaignID": criteodomain.ScalarValue("101"),
					"budget": criteodomain.ObjectValue(map[string]criteodomain.Value{
						"amount":   criteodomain.ScalarValue("1000"),
						"currency": criteodomain.ScalarValue("EUR"),
					}),
					"categories": criteodomain.SequenceValue(
						criteodomain.ScalarValue("shoes"),
						criteodomain.ScalarValue("bags"),
					),
				}),
			},
		},
	}

	account := domain.NewAccount("Webshop", "user", "pass", "token")
	records := ShapeAccountStructure(groups, account, "ACME GmbH")
	require.Len(t, records, 1)

	budget, ok := records[0]["budget"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1000", budget["amount"])
	assert.Equal(t, "EUR", budget["currency"])

	categories, ok := records[0]["categories"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"shoes", "bags"}, categories)
}
