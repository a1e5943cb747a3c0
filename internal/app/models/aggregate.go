package models

// SurveyStats holds the suppression-aware statistics computed for one
// survey within one aggregate group.
type SurveyStats struct {
	N    int     `json:"n" example:"11"`
	Mean float64 `json:"mean" example:"9.45"`
	CI95 float64 `json:"ci95" example:"2.31"` // 95% confidence half-width, normal approximation
}

// AggregateRow is one group produced by the aggregation engine. Fields
// excluded from the grouping key carry an "All <dimension>"
// placeholder. Suppressed rows stay in the collection so table views
// can render them highlighted; chart consumers are expected to drop
// them.
type AggregateRow struct {
	School     string                 `json:"school" example:"Ashfield High School"`
	YearGroup  string                 `json:"yearGroup" example:"All year groups"`
	Wave       string                 `json:"wave" example:"2024 Spring"`
	Background string                 `json:"background" example:"All backgrounds"`
	TTP        string                 `json:"ttp" example:"All trusted third parties"`
	Stats      map[string]SurveyStats `json:"stats"`
	Suppressed bool                   `json:"suppressed" example:"false"`
	Note       string                 `json:"note" example:"n=11"`
}
