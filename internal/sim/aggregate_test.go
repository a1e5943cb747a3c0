package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seda/schoolpulse/internal/app/models"
	"github.com/seda/schoolpulse/internal/sim"
)

// respWithTotal builds a minimal relabelled response carrying a single
// survey total.
func respWithTotal(uid, schoolID, yearGroup, background, wave, surveyID string, total int) models.RelabelledResponse {
	return models.RelabelledResponse{
		UID:        uid,
		SchoolID:   schoolID,
		YearGroup:  yearGroup,
		Background: background,
		Wave:       wave,
		Scores:     map[string]models.SurveyScore{surveyID: {Total: total}},
	}
}

// TestAggregate_CIFormula pins the statistics for totals [1, 2, 3]:
// mean 2.00, sample stddev 1.00 (divisor n-1), ci95 = 1.96/sqrt(3).
func TestAggregate_CIFormula(t *testing.T) {
	wave := sim.Waves[0]
	responses := []models.RelabelledResponse{
		respWithTotal("UID-00001", "sch-ashfield", "Year 7", "Group A", wave, "phq9", 1),
		respWithTotal("UID-00002", "sch-ashfield", "Year 7", "Group A", wave, "phq9", 2),
		respWithTotal("UID-00003", "sch-ashfield", "Year 7", "Group A", wave, "phq9", 3),
	}

	rows, err := sim.Aggregate(responses, sim.AggregateOptions{
		GroupBy:   []sim.GroupField{sim.GroupSchool},
		Threshold: 1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	stats := rows[0].Stats["phq9"]
	assert.Equal(t, 3, stats.N)
	assert.Equal(t, 2.00, stats.Mean)
	assert.Equal(t, 1.13, stats.CI95, "1.96*1.00/sqrt(3) rounded to 2dp")
	assert.False(t, rows[0].Suppressed)
}

// TestAggregate_SuppressionFlag: a row is suppressed exactly when the
// reference survey's n falls below the threshold, but stays in the
// result.
func TestAggregate_SuppressionFlag(t *testing.T) {
	wave := sim.Waves[1]
	responses := []models.RelabelledResponse{
		respWithTotal("UID-00001", "sch-birchwood", "Year 8", "Group B", wave, "phq9", 4),
		respWithTotal("UID-00002", "sch-birchwood", "Year 8", "Group B", wave, "phq9", 6),
		respWithTotal("UID-00003", "sch-birchwood", "Year 8", "Group B", wave, "phq9", 8),
	}

	rows, err := sim.Aggregate(responses, sim.AggregateOptions{
		GroupBy:   []sim.GroupField{sim.GroupSchool},
		Threshold: 5,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].Suppressed, "n=3 < threshold 5")
	assert.Contains(t, rows[0].Note, "below release threshold 5")
}

// TestAggregate_DefaultThreshold: a non-positive threshold falls back
// to the default of 5.
func TestAggregate_DefaultThreshold(t *testing.T) {
	wave := sim.Waves[0]
	responses := []models.RelabelledResponse{
		respWithTotal("UID-00001", "sch-dunmore", "Year 9", "Group C", wave, "phq9", 2),
	}

	rows, err := sim.Aggregate(responses, sim.AggregateOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Suppressed, "n=1 < default threshold 5")
}

// TestAggregate_MissingSurveyStats: a survey with no defined totals in
// the group resolves by definition to n=0, mean=0, ci95=0.
func TestAggregate_MissingSurveyStats(t *testing.T) {
	wave := sim.Waves[0]
	responses := []models.RelabelledResponse{
		respWithTotal("UID-00001", "sch-ashfield", "Year 7", "Group A", wave, "phq9", 5),
	}

	rows, err := sim.Aggregate(responses, sim.AggregateOptions{Threshold: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	gad := rows[0].Stats["gad7"]
	assert.Equal(t, 0, gad.N)
	assert.Equal(t, 0.0, gad.Mean)
	assert.Equal(t, 0.0, gad.CI95)
}

// TestAggregate_SingleSample: n=1 yields a defined mean and a zero
// half-width instead of a division error.
func TestAggregate_SingleSample(t *testing.T) {
	wave := sim.Waves[2]
	responses := []models.RelabelledResponse{
		respWithTotal("UID-00001", "sch-claremont", "Year 10", "Group D", wave, "phq9", 7),
	}

	rows, err := sim.Aggregate(responses, sim.AggregateOptions{Threshold: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	stats := rows[0].Stats["phq9"]
	assert.Equal(t, 1, stats.N)
	assert.Equal(t, 7.00, stats.Mean)
	assert.Equal(t, 0.0, stats.CI95)
}

// TestAggregate_AllPlaceholders: dimensions excluded from the grouping
// key carry "All <dimension>" values, while wave always partitions.
func TestAggregate_AllPlaceholders(t *testing.T) {
	responses := []models.RelabelledResponse{
		respWithTotal("UID-00001", "sch-ashfield", "Year 7", "Group A", sim.Waves[0], "phq9", 1),
		respWithTotal("UID-00002", "sch-claremont", "Year 9", "Group B", sim.Waves[0], "phq9", 2),
		respWithTotal("UID-00003", "sch-ashfield", "Year 7", "Group A", sim.Waves[1], "phq9", 3),
	}

	rows, err := sim.Aggregate(responses, sim.AggregateOptions{Threshold: 1})
	require.NoError(t, err)
	require.Len(t, rows, 2, "wave is always part of the key")

	for _, row := range rows {
		assert.Equal(t, "All schools", row.School)
		assert.Equal(t, "All year groups", row.YearGroup)
		assert.Equal(t, "All backgrounds", row.Background)
		assert.Equal(t, "All trusted third parties", row.TTP)
		assert.NotEmpty(t, row.Wave)
	}
	assert.Equal(t, 2, rows[0].Stats["phq9"].N, "first wave groups two responses")
}

// TestAggregate_TTPDimension: grouping by TTP resolves school ids to
// their trusted third party's display name.
func TestAggregate_TTPDimension(t *testing.T) {
	wave := sim.Waves[0]
	responses := []models.RelabelledResponse{
		respWithTotal("UID-00001", "sch-ashfield", "Year 7", "Group A", wave, "phq9", 1),
		respWithTotal("UID-00002", "sch-claremont", "Year 7", "Group A", wave, "phq9", 2),
	}

	rows, err := sim.Aggregate(responses, sim.AggregateOptions{
		GroupBy:   []sim.GroupField{sim.GroupTTP},
		Threshold: 1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	ttps := []string{rows[0].TTP, rows[1].TTP}
	assert.Contains(t, ttps, "Northbridge Research Trust")
	assert.Contains(t, ttps, "Harbourside Data Trust")
	assert.Equal(t, "All schools", rows[0].School)
}

// TestAggregate_UnknownField rejects fields outside the documented
// dimension set.
func TestAggregate_UnknownField(t *testing.T) {
	_, err := sim.Aggregate(nil, sim.AggregateOptions{
		GroupBy: []sim.GroupField{"postcode"},
	})
	assert.ErrorIs(t, err, sim.ErrUnknownGroupField)
}

// TestAggregate_EmptyInput yields no rows and no error.
func TestAggregate_EmptyInput(t *testing.T) {
	rows, err := sim.Aggregate(nil, sim.AggregateOptions{Threshold: 5})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// TestAggregate_InputUntouched: aggregation is side-effect free and
// re-invokable with different options over the same responses.
func TestAggregate_InputUntouched(t *testing.T) {
	ds, err := sim.Generate(3)
	require.NoError(t, err)
	snapshot := make([]models.RelabelledResponse, len(ds.RelabelledResponses))
	copy(snapshot, ds.RelabelledResponses)

	first, err := sim.Aggregate(ds.RelabelledResponses, sim.AggregateOptions{
		GroupBy: []sim.GroupField{sim.GroupSchool},
	})
	require.NoError(t, err)
	second, err := sim.Aggregate(ds.RelabelledResponses, sim.AggregateOptions{
		GroupBy:   []sim.GroupField{sim.GroupSchool, sim.GroupYearGroup},
		Threshold: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, snapshot, ds.RelabelledResponses, "input must not be mutated")
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
}

// TestAggregate_DeterministicOrder: rows come back in first-seen order
// for identical input.
func TestAggregate_DeterministicOrder(t *testing.T) {
	ds, err := sim.Generate(5)
	require.NoError(t, err)

	opts := sim.AggregateOptions{GroupBy: []sim.GroupField{sim.GroupSchool, sim.GroupYearGroup}}
	first, err := sim.Aggregate(ds.RelabelledResponses, opts)
	require.NoError(t, err)
	second, err := sim.Aggregate(ds.RelabelledResponses, opts)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
