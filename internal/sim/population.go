package sim

import (
	"fmt"

	"github.com/seda/schoolpulse/internal/app/models"
)

const (
	minCohortSize = 8
	maxCohortSize = 13

	// maxNameAttempts bounds the duplicate-avoidance retry loop. Once
	// exhausted the duplicate name is accepted as-is; parity with the
	// original behaviour matters more than guaranteed uniqueness here.
	maxNameAttempts = 50
)

// generatePopulation builds every student of the run. For each school
// and year group it draws a cohort size, then names each member from
// the school's TTP name pool. Student ids carry a numeric suffix that
// keeps increasing across schools.
//
// Draws per school/year group: one for the cohort size, then per
// student two per naming attempt plus one for the background.
func generatePopulation(src *Source) []models.Student {
	var students []models.Student
	issued := make(map[string]bool)
	counter := 1

	for _, school := range Schools {
		pool := namePools[school.TTPID]
		for _, yearGroup := range YearGroups {
			cohort := src.IntBetween(minCohortSize, maxCohortSize)
			for i := 0; i < cohort; i++ {
				first, last := drawName(src, pool, issued)
				student := models.Student{
					ID:         fmt.Sprintf("%s-%04d", school.ID, counter),
					SchoolID:   school.ID,
					YearGroup:  yearGroup,
					FirstName:  first,
					LastName:   last,
					Background: src.Pick(Backgrounds),
				}
				issued[student.FullName()] = true
				counter++
				students = append(students, student)
			}
		}
	}
	return students
}

// drawName picks a first/last name pair not yet issued in this run,
// retrying up to maxNameAttempts before accepting a duplicate.
func drawName(src *Source, pool namePool, issued map[string]bool) (string, string) {
	var first, last string
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		first = src.Pick(pool.First)
		last = src.Pick(pool.Last)
		if !issued[first+" "+last] {
			break
		}
	}
	return first, last
}
