package dto

import "github.com/seda/schoolpulse/internal/app/models"

// CatalogResponse bundles the fixed catalogs the presentation layer
// needs to build its filter controls.
type CatalogResponse struct {
	TrustedThirdParties []models.TrustedThirdParty `json:"trustedThirdParties"`
	Schools             []models.School            `json:"schools"`
	YearGroups          []string                   `json:"yearGroups"`
	Waves               []string                   `json:"waves"`
	Surveys             []models.SurveyDefinition  `json:"surveys"`
	Backgrounds         []string                   `json:"backgrounds"`
}

// DatasetCounts summarises the size of each generated collection.
type DatasetCounts struct {
	Students                  int `json:"students"`
	CredentialRecords         int `json:"credentialRecords"`
	StudentCredentials        int `json:"studentCredentials"`
	AdministrativeCredentials int `json:"administrativeCredentials"`
	RawResponses              int `json:"rawResponses"`
	RelabelledResponses       int `json:"relabelledResponses"`
}

// DatasetSummary is the public description of the current dataset:
// the seed, collection sizes and the response column schema. No
// identifiable data appears here.
type DatasetSummary struct {
	Seed    uint32        `json:"seed" example:"20240101"`
	Counts  DatasetCounts `json:"counts"`
	Columns []string      `json:"columns"`
}

// RegenerateRequest asks for the dataset to be rebuilt from a new
// seed.
type RegenerateRequest struct {
	Seed *uint32 `json:"seed" binding:"required" example:"42"`
}

// CredentialsResponse exposes the identifiable credential tier: the
// perfect matching plus the surplus administrative records.
type CredentialsResponse struct {
	Assigned       []models.StudentCredential `json:"assigned"`
	Administrative []models.CredentialRecord  `json:"administrative"`
	Pool           []models.CredentialRecord  `json:"pool"`
}
