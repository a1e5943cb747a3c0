package models

// School represents a participating school. Every school belongs to
// exactly one trusted third party.
type School struct {
	ID    string `json:"id" example:"sch-ashfield"`
	Name  string `json:"name" example:"Ashfield High School"`
	Code  string `json:"code" example:"ASH"`
	TTPID string `json:"ttpId" example:"ttp-north"`
}
