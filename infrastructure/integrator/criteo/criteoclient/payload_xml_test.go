package criteoclient

import (
	"testing"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayloadElementsScalars(t *testing.T) {
	values, err := parsePayloadElements([]byte(`<campaign><campaignID>101</campaignID><status>RUNNING</status></campaign>`))
	require.NoError(t, err)
	require.Len(t, values, 1)

	record := values[0].FlattenObject()
	assert.Equal(t, "101", record["campaignID"])
	assert.Equal(t, "RUNNING", record["status"])
}

func TestParsePayloadElementsNestedObjects(t *testing.T) {
	raw := []byte(`<campaign>
  <campaignID>101</campaignID>
  <budget><amount>1000</amount><currency>EUR</currency></budget>
</campaign>`)

	values, err := parsePayloadElements(raw)
	require.NoError(t, err)
	require.Len(t, values, 1)

	record := values[0].FlattenObject()
	budget, ok := record["budget"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1000", budget["amount"])
	assert.Equal(t, "EUR", budget["currency"])
}

func TestParsePayloadElementsRepeatedNamesBecomeSequences(t *testing.T) {
	raw := []byte(`<campaign>
  <category>shoes</category>
  <category>bags</category>
  <category>hats</category>
</campaign>`)

	values, err := parsePayloadElements(raw)
	require.NoError(t, err)
	require.Len(t, values, 1)

	record := values[0].FlattenObject()
	assert.Equal(t, []interface{}{"shoes", "bags", "hats"}, record["category"])
}

func TestParsePayloadElementsMultipleSiblings(t *testing.T) {
	raw := []byte(`<campaign><campaignID>1</campaignID></campaign><campaign><campaignID>2</campaignID></campaign>`)

	values, err := parsePayloadElements(raw)
	require.NoError(t, err)
	require.Len(t, values, 2)

	assert.Equal(t, criteodomain.KindObject, values[0].Kind)
	assert.Equal(t, "1", values[0].FlattenObject()["campaignID"])
	assert.Equal(t, "2", values[1].FlattenObject()["campaignID"])
}

func TestParsePayloadElementsAttributes(t *testing.T) {
	values, err := parsePayloadElements([]byte(`<campaign id="7" status="PAUSED"/>`))
	require.NoError(t, err)
	require.Len(t, values, 1)

	record := values[0].FlattenObject()
	assert.Equal(t, "7", record["id"])
	assert.Equal(t, "PAUSED", record["status"])
}
