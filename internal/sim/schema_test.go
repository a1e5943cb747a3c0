package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seda/schoolpulse/internal/app/models"
	"github.com/seda/schoolpulse/internal/sim"
)

// TestResponseColumns_CoversCatalog: the schema carries the five
// dimension columns plus, per survey, one total and one column per
// item.
func TestResponseColumns_CoversCatalog(t *testing.T) {
	columns := sim.ResponseColumns()

	want := 5
	for _, survey := range sim.Surveys {
		want += 1 + survey.Items
	}
	require.Len(t, columns, want)

	keys := make(map[string]bool, len(columns))
	for _, column := range columns {
		require.False(t, keys[column.Key], "duplicate column key %s", column.Key)
		keys[column.Key] = true
	}
	assert.True(t, keys["uid"])
	assert.True(t, keys["phq9_total"])
	assert.True(t, keys["phq9_item_9"])
	assert.True(t, keys["gad7_item_7"])
}

// TestResponseColumns_Extraction: extractors pull values off a
// response; surveys absent from the response yield empty strings.
func TestResponseColumns_Extraction(t *testing.T) {
	response := models.RelabelledResponse{
		UID:       "UID-00042",
		SchoolID:  "sch-birchwood",
		YearGroup: "Year 9",
		Wave:      sim.Waves[1],
		Scores: map[string]models.SurveyScore{
			"phq9": {Total: 11, Items: []int{2, 1, 0, 3, 2, 1, 0, 1, 1}},
		},
	}

	values := make(map[string]string)
	for _, column := range sim.ResponseColumns() {
		values[column.Key] = column.Value(response)
	}

	assert.Equal(t, "UID-00042", values["uid"])
	assert.Equal(t, "11", values["phq9_total"])
	assert.Equal(t, "2", values["phq9_item_1"])
	assert.Equal(t, "1", values["phq9_item_9"])
	assert.Equal(t, "", values["gad7_total"], "absent survey extracts empty")
	assert.Equal(t, "", values["gad7_item_3"])
}
