package sim

import "github.com/seda/schoolpulse/internal/app/models"

// Fixed catalogs. Generation iterates these in declaration order;
// changing the order changes the draw sequence and therefore the
// output of every run.

// TrustedThirdParties lists the mediating organisations. Each supplies
// the name pool used for its schools.
var TrustedThirdParties = []models.TrustedThirdParty{
	{ID: "ttp-north", Name: "Northbridge Research Trust"},
	{ID: "ttp-harbour", Name: "Harbourside Data Trust"},
}

// Schools lists the participating schools, two per trusted third party.
var Schools = []models.School{
	{ID: "sch-ashfield", Name: "Ashfield High School", Code: "ASH", TTPID: "ttp-north"},
	{ID: "sch-birchwood", Name: "Birchwood Academy", Code: "BIR", TTPID: "ttp-north"},
	{ID: "sch-claremont", Name: "Claremont College", Code: "CLA", TTPID: "ttp-harbour"},
	{ID: "sch-dunmore", Name: "Dunmore Secondary", Code: "DUN", TTPID: "ttp-harbour"},
}

// YearGroups lists the cohorts sampled in every school.
var YearGroups = []string{"Year 7", "Year 8", "Year 9", "Year 10"}

// Waves lists the sampling rounds of the longitudinal programme, in
// chronological order. Consumers that need chronological aggregate
// rows re-sort by this order.
var Waves = []string{"2023 Autumn", "2024 Spring", "2024 Autumn", "2025 Spring"}

// Surveys lists the instruments administered each wave. Items are
// scored 0..3. The first entry is the reference survey for the
// small-cell suppression rule.
var Surveys = []models.SurveyDefinition{
	{ID: "phq9", Name: "Mood (PHQ-9 adapted)", Items: 9},
	{ID: "gad7", Name: "Anxiety (GAD-7 adapted)", Items: 7},
}

// Backgrounds is the synthetic demographic catalog feeding the
// demographic grouping dimension of the aggregation engine.
var Backgrounds = []string{"Group A", "Group B", "Group C", "Group D"}

// namePool holds the first/last names a trusted third party draws
// from when its schools' populations are simulated.
type namePool struct {
	First []string
	Last  []string
}

var namePools = map[string]namePool{
	"ttp-north": {
		First: []string{
			"Elin", "Marcus", "Freya", "Oliver", "Saskia", "Jonas", "Amara",
			"Felix", "Nadia", "Ruben", "Clara", "Theo", "Ingrid", "Casper",
			"Lena", "Viktor",
		},
		Last: []string{
			"Voss", "Lindqvist", "Berger", "Halvorsen", "Meyer", "Dahl",
			"Kristensen", "Olsen", "Brandt", "Sommer", "Falk", "Nygaard",
		},
	},
	"ttp-harbour": {
		First: []string{
			"Isla", "Callum", "Maeve", "Dylan", "Orla", "Ewan", "Niamh",
			"Rhys", "Bronwyn", "Fergus", "Tamsin", "Lachlan", "Catrin",
			"Declan", "Seren", "Angus",
		},
		Last: []string{
			"Pembroke", "Carrick", "Donnelly", "Marsh", "Tregarth", "Quinn",
			"Bowen", "Hartley", "Lynagh", "Driscoll", "Penrose", "Macrae",
		},
	},
}

// schoolTTPNames maps school id to its trusted third party's display
// name, for the aggregation engine's TTP grouping dimension.
func schoolTTPNames() map[string]string {
	ttpByID := make(map[string]string, len(TrustedThirdParties))
	for _, ttp := range TrustedThirdParties {
		ttpByID[ttp.ID] = ttp.Name
	}
	out := make(map[string]string, len(Schools))
	for _, school := range Schools {
		out[school.ID] = ttpByID[school.TTPID]
	}
	return out
}

// schoolNames maps school id to display name.
func schoolNames() map[string]string {
	out := make(map[string]string, len(Schools))
	for _, school := range Schools {
		out[school.ID] = school.Name
	}
	return out
}
