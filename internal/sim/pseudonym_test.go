package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seda/schoolpulse/internal/app/models"
)

// TestBuildRewriteMap_SequentialZeroPadded: UIDs run UID-00001,
// UID-00002, ... over all students regardless of school.
func TestBuildRewriteMap_SequentialZeroPadded(t *testing.T) {
	students := []models.Student{
		{ID: "sch-ashfield-0001", SchoolID: "sch-ashfield"},
		{ID: "sch-ashfield-0002", SchoolID: "sch-ashfield"},
		{ID: "sch-claremont-0003", SchoolID: "sch-claremont"},
	}

	entries := buildRewriteMap(students)
	require.Len(t, entries, 3)

	assert.Equal(t, "UID-00001", entries[0].UID)
	assert.Equal(t, "UID-00002", entries[1].UID)
	assert.Equal(t, "UID-00003", entries[2].UID)
	assert.Equal(t, "sch-claremont-0003", entries[2].StudentID)
	assert.Equal(t, "sch-claremont", entries[2].SchoolID)
}

// TestRelabel_ReplacesStudentID: the student id is replaced by the UID
// and does not survive anywhere on the relabelled record.
func TestRelabel_ReplacesStudentID(t *testing.T) {
	students := []models.Student{{ID: "sch-ashfield-0001", SchoolID: "sch-ashfield"}}
	rewriteMap := buildRewriteMap(students)

	responses := []models.RawResponse{{
		StudentID: "sch-ashfield-0001",
		SchoolID:  "sch-ashfield",
		YearGroup: "Year 7",
		Wave:      Waves[0],
		Scores:    map[string]models.SurveyScore{"phq9": {Total: 3, Items: []int{1, 2}}},
	}}

	relabelled := relabel(responses, rewriteMap)
	require.Len(t, relabelled, 1)

	assert.Equal(t, "UID-00001", relabelled[0].UID)
	assert.Equal(t, "sch-ashfield", relabelled[0].SchoolID)
	assert.Equal(t, responses[0].Scores, relabelled[0].Scores)
}

// TestRelabel_UnknownSentinel: a response whose student id is missing
// from the rewrite map resolves to the UNKNOWN placeholder instead of
// failing.
func TestRelabel_UnknownSentinel(t *testing.T) {
	responses := []models.RawResponse{{
		StudentID: "ghost-student",
		SchoolID:  "sch-ashfield",
		Wave:      Waves[0],
	}}

	relabelled := relabel(responses, nil)
	require.Len(t, relabelled, 1)
	assert.Equal(t, UnknownUID, relabelled[0].UID)
}
