package models

// SurveyDefinition describes one instrument of the survey programme.
// The catalog is fixed; definitions are never generated.
type SurveyDefinition struct {
	ID    string `json:"id" example:"phq9"`
	Name  string `json:"name" example:"Mood (PHQ-9 adapted)"`
	Items int    `json:"items" example:"9"`
}
