package sim

import "github.com/seda/schoolpulse/internal/app/models"

// elevationState is the latent per-student condition biasing item
// scores upward. It is threaded explicitly through the wave loop so
// the transition logic stays testable on its own.
type elevationState int

const (
	stateNormal elevationState = iota
	stateElevated
)

const (
	pInitialElevation = 0.10
	pMissingWave      = 0.05
	pFreshElevation   = 0.10
	pElevationDecay   = 0.50
	pElevationOnset   = 0.50
)

// initialElevation draws the starting state for a student.
func initialElevation(src *Source) elevationState {
	if src.Chance(pInitialElevation) {
		return stateElevated
	}
	return stateNormal
}

// nextElevation advances the latent state after a processed wave.
// Elevated decays with 50% probability; Normal flips on with 50%
// probability only when the wave itself was elevated. A skipped wave
// never reaches this function.
func nextElevation(src *Source, state elevationState, waveElevated bool) elevationState {
	switch state {
	case stateElevated:
		if src.Chance(pElevationDecay) {
			return stateNormal
		}
		return stateElevated
	default:
		if waveElevated && src.Chance(pElevationOnset) {
			return stateElevated
		}
		return stateNormal
	}
}

// simulateResponses generates the per-student, per-wave survey scores.
// Each wave a student has a small chance of no response at all (state
// untouched); otherwise every survey's items are drawn, from {2,3}
// when the wave is elevated and {0..3} when not. Carrying the state
// across waves is what produces autocorrelated flare-up sequences
// instead of independent noise.
func simulateResponses(src *Source, students []models.Student) []models.RawResponse {
	var responses []models.RawResponse
	for _, student := range students {
		state := initialElevation(src)
		for _, wave := range Waves {
			if src.Chance(pMissingWave) {
				continue
			}
			// The fresh elevation roll only happens when the carried
			// state is not already elevated.
			waveElevated := state == stateElevated || src.Chance(pFreshElevation)

			scores := make(map[string]models.SurveyScore, len(Surveys))
			for _, survey := range Surveys {
				items := make([]int, survey.Items)
				total := 0
				for i := range items {
					if waveElevated {
						items[i] = src.IntBetween(2, 3)
					} else {
						items[i] = src.IntBetween(0, 3)
					}
					total += items[i]
				}
				scores[survey.ID] = models.SurveyScore{Total: total, Items: items}
			}

			responses = append(responses, models.RawResponse{
				StudentID:  student.ID,
				SchoolID:   student.SchoolID,
				YearGroup:  student.YearGroup,
				Background: student.Background,
				Wave:       wave,
				Scores:     scores,
			})
			state = nextElevation(src, state, waveElevated)
		}
	}
	return responses
}
