package llm

import (
	"context"
	"errors"
	"fmt"

	"tripplanner/internal/domain/models"
)

// Generator produces the raw model text for a trip itinerary.
type Generator interface {
	GenerateItinerary(ctx context.Context, req models.TripRequest) (string, error)
}

// ErrNotConfigured is returned when no model credentials are available.
var ErrNotConfigured = errors.New("llm: provider is not configured")

// GenerationError wraps transport or provider failures of a model call.
type GenerationError struct {
	Provider string
	Err      error
}

func (e GenerationError) Error() string {
	return fmt.Sprintf("llm: %s generation failed: %v", e.Provider, e.Err)
}

func (e GenerationError) Unwrap() error { return e.Err }

func IsGenerationError(err error) bool {
	var target GenerationError
	return errors.As(err, &target)
}

// Draft asks the generator for an itinerary and parses its reply.
func Draft(ctx context.Context, gen Generator, req models.TripRequest) (models.ItineraryDraft, error) {
	if gen == nil {
		return models.ItineraryDraft{}, ErrNotConfigured
	}
	raw, err := gen.GenerateItinerary(ctx, req)
	if err != nil {
		return models.ItineraryDraft{}, err
	}
	return ParseDraft(raw)
}
