package collector

import (
	"context"
	"fmt"

	"trip-data-collector/internal/domain"
	"trip-data-collector/internal/ports"
)

// Collector runs the collection pipeline for origin/destination pairs:
// fetch, parse, optional raw persistence. Strictly sequential and
// synchronous; errors bubble to the caller with no local recovery and no
// internal logging.
type Collector struct {
	client ports.MatrixClient
	sink   ports.RawWriter
}

func New(client ports.MatrixClient, sink ports.RawWriter) *Collector {
	return &Collector{client: client, sink: sink}
}

// RunForOnePair executes one full round trip for a single pair.
//
// Fetch errors propagate to the caller unmodified. A response the parser
// cannot navigate is not an error: both text fields come back absent and the
// raw response is still persisted when requested. With persistRaw false no
// filesystem write happens.
func (c *Collector) RunForOnePair(
	ctx context.Context,
	origin string,
	destination string,
	persistRaw bool,
) (domain.ResultRecord, error) {
	raw, err := c.client.FetchDistanceMatrix(ctx, origin, destination)
	if err != nil {
		return domain.ResultRecord{}, err
	}

	distance, duration := parseElementTexts(raw)

	if persistRaw {
		if err := c.sink.Append(raw); err != nil {
			return domain.ResultRecord{}, fmt.Errorf("persist raw response: %w", err)
		}
	}

	return domain.ResultRecord{
		Origin:       origin,
		Destination:  destination,
		DistanceText: distance,
		DurationText: duration,
		Raw:          raw,
	}, nil
}

// RunBatch runs the pipeline for each pair in input order. Pair N+1 does not
// start until pair N's full round trip completes. There is no per-pair
// isolation: the first failure aborts the remaining pairs and is returned
// exactly as RunForOnePair surfaced it, discarding earlier successes.
func (c *Collector) RunBatch(
	ctx context.Context,
	pairs []domain.Pair,
	persistRaw bool,
) ([]domain.ResultRecord, error) {
	results := make([]domain.ResultRecord, 0, len(pairs))

	for _, p := range pairs {
		record, err := c.RunForOnePair(ctx, p.Origin, p.Destination, persistRaw)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}

	return results, nil
}
