package ports

import (
	"context"
	"trip-data-collector/internal/domain"
)

// Contract for fetching one raw distance-matrix response per pair.
type MatrixClient interface {
	// Return the raw API payload for a single origin/destination pair.
	FetchDistanceMatrix(ctx context.Context, origin string, destination string) (domain.RawResponse, error)
}
