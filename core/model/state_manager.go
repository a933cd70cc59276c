// Package model provides state management and the shared contracts for
// single-feature regression models.
package model

import (
	"sync"

	"github.com/YuminosukeSato/sgdreg/pkg/errors"
)

// StateManager tracks whether a model has been trained and on how much data.
type StateManager struct {
	Fitted bool
	mu     sync.RWMutex

	// NSamples is the dataset size seen by the last training call.
	NSamples int
	// NEpochs is the total number of epochs run since the last Reset.
	NEpochs int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been trained on at least one sample.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// RecordTraining marks the model as fitted when nSamples > 0 and adds epochs
// to the running total.
func (s *StateManager) RecordTraining(nSamples, epochs int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NSamples = nSamples
	s.NEpochs += epochs
	if nSamples > 0 && epochs > 0 {
		s.Fitted = true
	}
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NSamples = 0
	s.NEpochs = 0
}

// RequireFitted returns an error if the model has not been trained yet.
func (s *StateManager) RequireFitted(op string) error {
	if !s.IsFitted() {
		return errors.NewModelError(op, "model has not been trained yet; call Train() first", nil)
	}
	return nil
}

// ModelState is a snapshot of StateManager for logging and debugging.
type ModelState struct {
	Fitted   bool `json:"fitted"`
	NSamples int  `json:"n_samples,omitempty"`
	NEpochs  int  `json:"n_epochs,omitempty"`
}

// GetState returns the current state as a ModelState struct.
func (s *StateManager) GetState() ModelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ModelState{
		Fitted:   s.Fitted,
		NSamples: s.NSamples,
		NEpochs:  s.NEpochs,
	}
}
