package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"trip-data-collector/internal/adapters/maps"
	"trip-data-collector/internal/adapters/sink"
	"trip-data-collector/internal/collector"
	"trip-data-collector/internal/config"
	"trip-data-collector/internal/domain"
	"trip-data-collector/internal/platform/logging"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the Distance Matrix client and the JSONL sink behind ports and
// runs the pipeline for the requested pairs. Configuration errors are fatal
// here, before any network call is attempted.
func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	logPath := flag.String("log", "logs/collector.log", "path to the collector log file")
	pairsPath := flag.String("pairs", "", "optional JSON file with origin/destination pairs")
	origin := flag.String("origin", "", "origin for a single pair")
	destination := flag.String("destination", "", "destination for a single pair")
	skipRaw := flag.Bool("skip-raw", false, "do not append raw responses to the output file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	logger, closeLog, err := logging.New(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	apiKey, err := config.ResolveAPIKey(cfg.GoogleMaps.APIKeyEnv)
	if err != nil {
		log.Fatal(err)
	}

	client, err := maps.NewClient(
		cfg.GoogleMaps.BaseURL,
		cfg.GoogleMaps.Path,
		apiKey,
		cfg.GoogleMaps.FixedParams,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatal(err)
	}

	outputPath, err := cfg.ResolveOutputPath()
	if err != nil {
		log.Fatal(err)
	}

	pairs, err := loadPairs(*pairsPath, *origin, *destination)
	if err != nil {
		log.Fatal(err)
	}

	runner := collector.New(client, sink.NewJSONL(outputPath))

	logger.Info("starting collection", "pairs", len(pairs), "output", outputPath)

	results, err := runner.RunBatch(context.Background(), pairs, !*skipRaw)
	if err != nil {
		logger.Error("collection aborted", "err", err)
		log.Fatal(err)
	}

	for i, res := range results {
		fmt.Printf("--- Pair #%d ---\n", i+1)
		fmt.Println("Origin      :", res.Origin)
		fmt.Println("Destination :", res.Destination)
		fmt.Println("Distance    :", textOrAbsent(res.DistanceText))
		fmt.Println("Duration    :", textOrAbsent(res.DurationText))
	}

	logger.Info("collection complete", "records", len(results))
}

func textOrAbsent(t domain.Text) string {
	if !t.OK {
		return "(absent)"
	}
	return t.Value
}

// loadPairs reads pairs from a JSON file, or falls back to the single pair
// given by -origin/-destination.
func loadPairs(path, origin, destination string) ([]domain.Pair, error) {
	if path == "" {
		if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
			return nil, errors.New("either -pairs or both -origin and -destination are required")
		}
		return []domain.Pair{{Origin: origin, Destination: destination}}, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load pairs: read %q: %w", path, err)
	}

	var pairs []domain.Pair
	if err := json.Unmarshal(bytes, &pairs); err != nil {
		return nil, fmt.Errorf("load pairs: parse json: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("load pairs: %q contains no pairs", path)
	}

	for i, p := range pairs {
		if strings.TrimSpace(p.Origin) == "" || strings.TrimSpace(p.Destination) == "" {
			return nil, fmt.Errorf("load pairs: entry at index %d: origin and destination cannot be empty", i+1)
		}
	}

	return pairs, nil
}
