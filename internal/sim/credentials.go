package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/seda/schoolpulse/internal/app/models"
)

// ErrInsufficientCredentials signals a fatal misconfiguration: a
// school's credential pool ran out before every student received a
// login. Dataset construction aborts; this is never recovered from.
var ErrInsufficientCredentials = errors.New("credential pool smaller than student count")

const (
	// credentialOversize is the pool sizing factor: each school gets
	// ceil(1.25 * student count) records, leaving unassigned spares.
	credentialOversize = 1.25

	loginSuffixLength = 4
	passwordLength    = 8
)

// credentialAlphabet deliberately omits the lookalikes 0/o, 1/l/i.
const credentialAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"

// generateCredentialPools builds the per-school credential pools in
// school catalog order. Login ids are the school code plus a random
// suffix, regenerated on collision within the school.
func generateCredentialPools(src *Source, students []models.Student) []models.CredentialRecord {
	perSchool := make(map[string]int, len(Schools))
	for _, student := range students {
		perSchool[student.SchoolID]++
	}

	var records []models.CredentialRecord
	for _, school := range Schools {
		// Legacy 4-5 digit base draw, kept only so the draw stream
		// stays compatible with earlier dataset revisions.
		_ = src.IntBetween(1000, 99999)

		poolSize := int(math.Ceil(credentialOversize * float64(perSchool[school.ID])))
		taken := make(map[string]bool, poolSize)
		for i := 0; i < poolSize; i++ {
			var loginID string
			for {
				loginID = school.Code + "-" + randomToken(src, loginSuffixLength)
				if !taken[loginID] {
					break
				}
			}
			taken[loginID] = true
			records = append(records, models.CredentialRecord{
				SchoolID: school.ID,
				LoginID:  loginID,
				Password: randomToken(src, passwordLength),
			})
		}
	}
	return records
}

// randomToken draws n characters from the credential alphabet.
func randomToken(src *Source, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = credentialAlphabet[src.IntBetween(0, len(credentialAlphabet)-1)]
	}
	return string(buf)
}

// assignCredentials binds each student, in generation order, to the
// first unassigned record of their school. It returns the assignments
// plus the surplus records left in the pools (the administrative
// spares). Exhausting a school's pool is fatal.
func assignCredentials(students []models.Student, records []models.CredentialRecord) ([]models.StudentCredential, []models.CredentialRecord, error) {
	assigned := make([]bool, len(records))
	credentials := make([]models.StudentCredential, 0, len(students))

	for _, student := range students {
		found := -1
		for i, record := range records {
			if !assigned[i] && record.SchoolID == student.SchoolID {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, nil, fmt.Errorf("school %s: %w", student.SchoolID, ErrInsufficientCredentials)
		}
		assigned[found] = true
		credentials = append(credentials, models.StudentCredential{
			StudentID: student.ID,
			SchoolID:  student.SchoolID,
			LoginID:   records[found].LoginID,
		})
	}

	var spares []models.CredentialRecord
	for i, record := range records {
		if !assigned[i] {
			spares = append(spares, record)
		}
	}
	return credentials, spares, nil
}
