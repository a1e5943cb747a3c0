package sim

import "github.com/seda/schoolpulse/internal/app/models"

// Generate builds the complete demonstration dataset from a single
// seed: population, credential pools and matching, simulated
// responses, rewrite map and relabelled responses, plus copies of the
// fixed catalogs. The stages run in a fixed order against one fresh
// Source; the only failure mode is an undersized credential pool.
func Generate(seed uint32) (*models.Dataset, error) {
	src := NewSource(seed)

	students := generatePopulation(src)
	records := generateCredentialPools(src, students)
	credentials, spares, err := assignCredentials(students, records)
	if err != nil {
		return nil, err
	}
	rawResponses := simulateResponses(src, students)
	rewriteMap := buildRewriteMap(students)
	relabelled := relabel(rawResponses, rewriteMap)

	return &models.Dataset{
		Seed: seed,

		TrustedThirdParties: TrustedThirdParties,
		Schools:             Schools,
		YearGroups:          YearGroups,
		Waves:               Waves,
		Surveys:             Surveys,
		Backgrounds:         Backgrounds,

		Students:                  students,
		CredentialRecords:         records,
		StudentCredentials:        credentials,
		AdministrativeCredentials: spares,

		RewriteMap:          rewriteMap,
		RawResponses:        rawResponses,
		RelabelledResponses: relabelled,
	}, nil
}
