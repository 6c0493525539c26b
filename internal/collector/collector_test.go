package collector

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"trip-data-collector/internal/adapters/maps"
	"trip-data-collector/internal/adapters/sink"
	"trip-data-collector/internal/domain"
)

func okResponse(t *testing.T, distance, duration string) domain.RawResponse {
	t.Helper()
	return mustRaw(t, `{"status":"OK","rows":[{"elements":[{"distance":{"text":"`+distance+`"},"duration":{"text":"`+duration+`"}}]}]}`)
}

func countLines(t *testing.T, path string) int {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		n++
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan output: %v", err)
	}
	return n
}

func TestRunForOnePair(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "trips.jsonl")
	client := maps.NewMockClient([]maps.MockResponse{
		{Origin: "SF", Destination: "Oakland", Raw: okResponse(t, "10 km", "15 mins")},
	})
	c := New(client, sink.NewJSONL(outputPath))

	record, err := c.RunForOnePair(context.Background(), "SF", "Oakland", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Origin != "SF" || record.Destination != "Oakland" {
		t.Fatalf("pair = %q -> %q", record.Origin, record.Destination)
	}
	if !record.DistanceText.OK || record.DistanceText.Value != "10 km" {
		t.Fatalf("distance = %+v", record.DistanceText)
	}
	if !record.DurationText.OK || record.DurationText.Value != "15 mins" {
		t.Fatalf("duration = %+v", record.DurationText)
	}
	if record.Raw == nil {
		t.Fatal("record should carry the raw response")
	}

	if got := countLines(t, outputPath); got != 1 {
		t.Fatalf("output has %d lines, want 1", got)
	}
}

func TestRunForOnePairNoPersist(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "trips.jsonl")
	client := maps.NewMockClient([]maps.MockResponse{
		{Origin: "SF", Destination: "Oakland", Raw: okResponse(t, "10 km", "15 mins")},
	})
	c := New(client, sink.NewJSONL(outputPath))

	if _, err := c.RunForOnePair(context.Background(), "SF", "Oakland", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Fatalf("output file should not exist, stat err = %v", err)
	}
}

// A response the parser cannot navigate is not an error: the record reports
// both fields absent and the raw response is still persisted.
func TestRunForOnePairParseDegradation(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "trips.jsonl")
	client := maps.NewMockClient([]maps.MockResponse{
		{Origin: "SF", Destination: "Oakland", Raw: mustRaw(t, `{"status":"ZERO_RESULTS"}`)},
	})
	c := New(client, sink.NewJSONL(outputPath))

	record, err := c.RunForOnePair(context.Background(), "SF", "Oakland", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.DistanceText.OK || record.DurationText.OK {
		t.Fatalf("got distance=%+v duration=%+v, want both absent", record.DistanceText, record.DurationText)
	}
	if got := countLines(t, outputPath); got != 1 {
		t.Fatalf("output has %d lines, want 1", got)
	}
}

func TestRunBatch(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "trips.jsonl")
	client := maps.NewMockClient([]maps.MockResponse{
		{Origin: "A", Destination: "B", Raw: okResponse(t, "1 km", "2 mins")},
		{Origin: "C", Destination: "D", Raw: okResponse(t, "3 km", "4 mins")},
		{Origin: "E", Destination: "F", Raw: okResponse(t, "5 km", "6 mins")},
	})
	c := New(client, sink.NewJSONL(outputPath))

	pairs := []domain.Pair{
		{Origin: "A", Destination: "B"},
		{Origin: "C", Destination: "D"},
		{Origin: "E", Destination: "F"},
	}
	results, err := c.RunBatch(context.Background(), pairs, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, p := range pairs {
		if results[i].Origin != p.Origin || results[i].Destination != p.Destination {
			t.Fatalf("result %d = %q -> %q, want input order preserved", i, results[i].Origin, results[i].Destination)
		}
	}

	if got := countLines(t, outputPath); got != 3 {
		t.Fatalf("output has %d lines, want 3", got)
	}
}

func TestRunBatchShortCircuit(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "trips.jsonl")
	boom := errors.New("connection refused")
	client := maps.NewMockClient([]maps.MockResponse{
		{Origin: "A", Destination: "B", Raw: okResponse(t, "1 km", "2 mins")},
		{Origin: "C", Destination: "D", Err: boom},
		{Origin: "E", Destination: "F", Raw: okResponse(t, "5 km", "6 mins")},
	})
	c := New(client, sink.NewJSONL(outputPath))

	pairs := []domain.Pair{
		{Origin: "A", Destination: "B"},
		{Origin: "C", Destination: "D"},
		{Origin: "E", Destination: "F"},
	}
	results, err := c.RunBatch(context.Background(), pairs, true)

	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the failing pair's error", err)
	}
	if results != nil {
		t.Fatalf("results = %v, want nil on batch failure", results)
	}

	// The third pair's network call is never attempted.
	if len(client.Calls) != 2 {
		t.Fatalf("client saw %d calls, want 2", len(client.Calls))
	}
	last := client.Calls[len(client.Calls)-1]
	if last.Origin != "C" || last.Destination != "D" {
		t.Fatalf("last call = %q -> %q, want the failing pair", last.Origin, last.Destination)
	}
}
