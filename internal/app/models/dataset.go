package models

// Dataset is the complete output of one generation run: every entity
// produced in one pass from a single seed. Nothing in it is mutated
// after construction; a seed change discards and regenerates the
// whole structure.
type Dataset struct {
	Seed uint32 `json:"seed" example:"20240101"`

	TrustedThirdParties []TrustedThirdParty `json:"trustedThirdParties"`
	Schools             []School            `json:"schools"`
	YearGroups          []string            `json:"yearGroups"`
	Waves               []string            `json:"waves"`
	Surveys             []SurveyDefinition  `json:"surveys"`
	Backgrounds         []string            `json:"backgrounds"`

	Students           []Student           `json:"students"`
	CredentialRecords  []CredentialRecord  `json:"credentialRecords"`
	StudentCredentials []StudentCredential `json:"studentCredentials"`
	// Surplus pool records never bound to a student.
	AdministrativeCredentials []CredentialRecord `json:"administrativeCredentials"`

	RewriteMap          []RewriteMapEntry    `json:"rewriteMap"`
	RawResponses        []RawResponse        `json:"rawResponses"`
	RelabelledResponses []RelabelledResponse `json:"relabelledResponses"`
}
