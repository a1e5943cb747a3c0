package models

// SurveyScore holds one student's scores for a single survey within
// one wave: the per-item scores (each in 0..3) and their sum.
type SurveyScore struct {
	Total int   `json:"total" example:"14"`
	Items []int `json:"items"`
}

// RawResponse is one student's response for one wave, keyed by survey
// id. A (student, wave) pair with no response at all is simply absent
// from the collection; when a response is present, every total equals
// the sum of that survey's item scores.
type RawResponse struct {
	StudentID  string                 `json:"studentId" example:"sch-ashfield-0001"`
	SchoolID   string                 `json:"schoolId" example:"sch-ashfield"`
	YearGroup  string                 `json:"yearGroup" example:"Year 8"`
	Background string                 `json:"background" example:"Group B"`
	Wave       string                 `json:"wave" example:"2024 Spring"`
	Scores     map[string]SurveyScore `json:"scores"`
}

// RelabelledResponse is a RawResponse with the student id replaced by
// the pseudonymous UID. The student id is discarded entirely; this is
// the only response form the public tier ever sees.
type RelabelledResponse struct {
	UID        string                 `json:"uid" example:"UID-00001"`
	SchoolID   string                 `json:"schoolId" example:"sch-ashfield"`
	YearGroup  string                 `json:"yearGroup" example:"Year 8"`
	Background string                 `json:"background" example:"Group B"`
	Wave       string                 `json:"wave" example:"2024 Spring"`
	Scores     map[string]SurveyScore `json:"scores"`
}
