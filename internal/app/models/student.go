package models

// Student defines a simulated student. The generated name is
// personally identifying data and is only exposed through the
// protected identifiable tier of the API.
type Student struct {
	ID         string `json:"id" example:"sch-ashfield-0001"` // School id plus a run-wide sequential counter
	SchoolID   string `json:"schoolId" example:"sch-ashfield"`
	YearGroup  string `json:"yearGroup" example:"Year 8"`
	FirstName  string `json:"firstName" example:"Elin"`
	LastName   string `json:"lastName" example:"Voss"`
	Background string `json:"background" example:"Group B"` // Demographic dimension used by aggregation
}

// FullName returns the display name used for duplicate checks during
// population generation.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
