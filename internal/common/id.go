package common

import (
	"github.com/google/uuid"
)

// NewPlateBlockID generates a random v4 UUID for a plate block. Two runs
// over identical input intentionally produce different IDs (spec.md §5);
// only texto_plano and content_hash are required to be deterministic.
func NewPlateBlockID() string {
	return uuid.New().String()
}
