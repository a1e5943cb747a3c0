package models

// TrustedThirdParty represents an organisation that mediates between
// participating schools and the research consumer. It holds the
// pseudonymisation mapping for its schools and supplies the name pool
// used when simulating their populations.
type TrustedThirdParty struct {
	ID   string `json:"id" example:"ttp-north"`
	Name string `json:"name" example:"Northbridge Research Trust"`
}
