package sim

import (
	"fmt"
	"strconv"

	"github.com/seda/schoolpulse/internal/app/models"
)

// Column is one entry of the declarative field schema: a logical
// column key, a human-readable title and the rule extracting its value
// from a relabelled response. The schema is built once from the survey
// catalog; consumers shape arbitrary row/column views from it instead
// of inspecting responses ad hoc.
type Column struct {
	Key   string
	Title string
	Value func(models.RelabelledResponse) string
}

// ResponseColumns builds the column schema for the pseudonymous
// response table: the fixed dimension columns followed by, per survey,
// a total column and one column per item.
func ResponseColumns() []Column {
	columns := []Column{
		{Key: "uid", Title: "UID", Value: func(r models.RelabelledResponse) string { return r.UID }},
		{Key: "school", Title: "School", Value: func(r models.RelabelledResponse) string { return r.SchoolID }},
		{Key: "year_group", Title: "Year group", Value: func(r models.RelabelledResponse) string { return r.YearGroup }},
		{Key: "background", Title: "Background", Value: func(r models.RelabelledResponse) string { return r.Background }},
		{Key: "wave", Title: "Wave", Value: func(r models.RelabelledResponse) string { return r.Wave }},
	}

	for _, survey := range Surveys {
		surveyID := survey.ID
		columns = append(columns, Column{
			Key:   surveyID + "_total",
			Title: survey.Name + " total",
			Value: func(r models.RelabelledResponse) string {
				score, ok := r.Scores[surveyID]
				if !ok {
					return ""
				}
				return strconv.Itoa(score.Total)
			},
		})
		for item := 0; item < survey.Items; item++ {
			item := item
			columns = append(columns, Column{
				Key:   fmt.Sprintf("%s_item_%d", surveyID, item+1),
				Title: fmt.Sprintf("%s item %d", survey.Name, item+1),
				Value: func(r models.RelabelledResponse) string {
					score, ok := r.Scores[surveyID]
					if !ok || item >= len(score.Items) {
						return ""
					}
					return strconv.Itoa(score.Items[item])
				},
			})
		}
	}
	return columns
}
