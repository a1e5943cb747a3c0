package sim

import (
	"fmt"

	"github.com/seda/schoolpulse/internal/app/models"
)

// UnknownUID is substituted when a response references a student id
// absent from the rewrite map. Callers must treat it as a recognisable
// placeholder, never as a real UID.
const UnknownUID = "UNKNOWN"

// buildRewriteMap assigns every student a sequential, zero-padded UID.
// The assignment is a bijection over all students of the run,
// independent of school.
func buildRewriteMap(students []models.Student) []models.RewriteMapEntry {
	entries := make([]models.RewriteMapEntry, 0, len(students))
	for i, student := range students {
		entries = append(entries, models.RewriteMapEntry{
			SchoolID:  student.SchoolID,
			StudentID: student.ID,
			UID:       fmt.Sprintf("UID-%05d", i+1),
		})
	}
	return entries
}

// relabel replaces each response's student id with its UID, dropping
// the student id entirely. A missing mapping falls back to UnknownUID
// rather than failing.
func relabel(responses []models.RawResponse, rewriteMap []models.RewriteMapEntry) []models.RelabelledResponse {
	uidByStudent := make(map[string]string, len(rewriteMap))
	for _, entry := range rewriteMap {
		uidByStudent[entry.StudentID] = entry.UID
	}

	out := make([]models.RelabelledResponse, 0, len(responses))
	for _, response := range responses {
		uid, ok := uidByStudent[response.StudentID]
		if !ok {
			uid = UnknownUID
		}
		out = append(out, models.RelabelledResponse{
			UID:        uid,
			SchoolID:   response.SchoolID,
			YearGroup:  response.YearGroup,
			Background: response.Background,
			Wave:       response.Wave,
			Scores:     response.Scores,
		})
	}
	return out
}
