package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/seda/schoolpulse/internal/app/models"
)

// GroupField names one dimension the aggregation engine can group by.
type GroupField string

const (
	GroupSchool     GroupField = "school"
	GroupYearGroup  GroupField = "year_group"
	GroupWave       GroupField = "wave"
	GroupBackground GroupField = "background"
	GroupTTP        GroupField = "ttp"
)

// ErrUnknownGroupField rejects grouping fields outside the documented
// dimension set.
var ErrUnknownGroupField = errors.New("unknown grouping field")

// DefaultSuppressionThreshold is the minimum group size below which a
// row is flagged unsafe to release in chart form.
const DefaultSuppressionThreshold = 5

// Placeholder values carried by dimensions excluded from the grouping
// key.
const (
	allSchools     = "All schools"
	allYearGroups  = "All year groups"
	allBackgrounds = "All backgrounds"
	allTTPs        = "All trusted third parties"
)

// AggregateOptions selects the grouping key and suppression threshold
// of one aggregation pass. The wave dimension is always part of the
// key regardless of GroupBy. A non-positive threshold falls back to
// the default.
type AggregateOptions struct {
	GroupBy   []GroupField
	Threshold int
}

// Aggregate partitions relabelled responses by the chosen dimensions
// and computes suppressed per-survey statistics for each group. It is
// side-effect free and may be re-invoked any number of times against
// the same responses with different options; the input is never
// mutated. Rows come back in first-seen order; suppressed rows are
// included so table views can render them.
func Aggregate(responses []models.RelabelledResponse, opts AggregateOptions) ([]models.AggregateRow, error) {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultSuppressionThreshold
	}
	include := map[GroupField]bool{GroupWave: true}
	for _, field := range opts.GroupBy {
		switch field {
		case GroupSchool, GroupYearGroup, GroupWave, GroupBackground, GroupTTP:
			include[field] = true
		default:
			return nil, fmt.Errorf("%q: %w", field, ErrUnknownGroupField)
		}
	}

	schoolName := schoolNames()
	ttpName := schoolTTPNames()

	type group struct {
		row     models.AggregateRow
		members []models.RelabelledResponse
	}
	byKey := make(map[string]*group)
	var order []string

	for _, response := range responses {
		school, yearGroup, background, ttp := allSchools, allYearGroups, allBackgrounds, allTTPs
		if include[GroupSchool] {
			school = schoolName[response.SchoolID]
		}
		if include[GroupYearGroup] {
			yearGroup = response.YearGroup
		}
		if include[GroupBackground] {
			background = response.Background
		}
		if include[GroupTTP] {
			ttp = ttpName[response.SchoolID]
		}

		key := school + "|" + yearGroup + "|" + response.Wave + "|" + background + "|" + ttp
		g, ok := byKey[key]
		if !ok {
			g = &group{row: models.AggregateRow{
				School:     school,
				YearGroup:  yearGroup,
				Wave:       response.Wave,
				Background: background,
				TTP:        ttp,
			}}
			byKey[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, response)
	}

	rows := make([]models.AggregateRow, 0, len(order))
	for _, key := range order {
		g := byKey[key]
		stats := make(map[string]models.SurveyStats, len(Surveys))
		for _, survey := range Surveys {
			var totals []float64
			for _, member := range g.members {
				if score, ok := member.Scores[survey.ID]; ok {
					totals = append(totals, float64(score.Total))
				}
			}
			stats[survey.ID] = summarize(totals)
		}

		row := g.row
		row.Stats = stats
		reference := stats[Surveys[0].ID]
		row.Suppressed = reference.N < opts.Threshold
		if row.Suppressed {
			row.Note = fmt.Sprintf("n=%d: below release threshold %d", reference.N, opts.Threshold)
		} else {
			row.Note = fmt.Sprintf("n=%d", reference.N)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// summarize computes n, mean and the 95% confidence half-width
// (1.96 * stddev / sqrt(n), sample stddev with divisor n-1) for a set
// of survey totals, rounded to two decimals. Degenerate groups resolve
// by definition: everything is 0 when n is 0, stddev is 0 when n <= 1.
func summarize(totals []float64) models.SurveyStats {
	n := len(totals)
	if n == 0 {
		return models.SurveyStats{}
	}

	sum := 0.0
	for _, t := range totals {
		sum += t
	}
	mean := sum / float64(n)

	stddev := 0.0
	if n > 1 {
		ss := 0.0
		for _, t := range totals {
			ss += (t - mean) * (t - mean)
		}
		stddev = math.Sqrt(ss / float64(n-1))
	}

	ci95 := 1.96 * stddev / math.Sqrt(float64(n))
	return models.SurveyStats{N: n, Mean: round2(mean), CI95: round2(ci95)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
