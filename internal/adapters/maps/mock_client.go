package maps

import (
	"context"
	"fmt"

	"trip-data-collector/internal/domain"
)

// MockResponse is a canned result for one origin/destination pair.
type MockResponse struct {
	Origin, Destination string
	Raw                 domain.RawResponse
	Err                 error
}

// MockClient serves canned responses in tests. It records the pairs it was
// asked for so callers can assert sequential short-circuit behavior.
type MockClient struct {
	m     map[string]MockResponse
	Calls []domain.Pair
}

func NewMockClient(responses []MockResponse) *MockClient {
	m := make(map[string]MockResponse, len(responses))
	for _, r := range responses {
		m[r.Origin+"|"+r.Destination] = r
	}
	return &MockClient{m: m}
}

func (c *MockClient) FetchDistanceMatrix(ctx context.Context, origin, destination string) (domain.RawResponse, error) {
	c.Calls = append(c.Calls, domain.Pair{Origin: origin, Destination: destination})

	r, ok := c.m[origin+"|"+destination]
	if !ok {
		return nil, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}
	if r.Err != nil {
		return nil, r.Err
	}

	return r.Raw, nil
}
