package services

import (
	"sync"

	"github.com/seda/schoolpulse/internal/app/models"
	"github.com/seda/schoolpulse/internal/pkg/logger"
	"github.com/seda/schoolpulse/internal/sim"
)

// DatasetService owns the current in-memory dataset. Generation is
// cheap enough to run synchronously; reads take a shared lock so
// regeneration never exposes a half-swapped dataset.
type DatasetService struct {
	mu        sync.RWMutex
	dataset   *models.Dataset
	threshold int
}

// NewDatasetService generates the initial dataset from the configured
// seed and keeps it resident.
func NewDatasetService(seed uint32, suppressionThreshold int) (*DatasetService, error) {
	dataset, err := sim.Generate(seed)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Uint32("seed", seed).
		Int("students", len(dataset.Students)).
		Int("responses", len(dataset.RawResponses)).
		Msg("Dataset generated")

	return &DatasetService{
		dataset:   dataset,
		threshold: suppressionThreshold,
	}, nil
}

// Dataset returns the current dataset. Callers must treat it as
// read-only; every collection inside is shared.
func (s *DatasetService) Dataset() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Regenerate rebuilds the dataset from a new seed and swaps it in
// atomically. The same seed always reproduces the same dataset.
func (s *DatasetService) Regenerate(seed uint32) (*models.Dataset, error) {
	dataset, err := sim.Generate(seed)
	if err != nil {
		logger.Error().Err(err).Uint32("seed", seed).Msg("Dataset regeneration failed")
		return nil, err
	}

	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()

	logger.Info().Uint32("seed", seed).Msg("Dataset regenerated")
	return dataset, nil
}

// Aggregate runs one aggregation pass over the current relabelled
// responses. A zero threshold falls back to the configured default.
func (s *DatasetService) Aggregate(groupBy []sim.GroupField, threshold int) ([]models.AggregateRow, error) {
	if threshold <= 0 {
		threshold = s.threshold
	}
	s.mu.RLock()
	responses := s.dataset.RelabelledResponses
	s.mu.RUnlock()

	return sim.Aggregate(responses, sim.AggregateOptions{
		GroupBy:   groupBy,
		Threshold: threshold,
	})
}
