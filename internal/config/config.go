package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports a missing config file.
	ErrNotFound = errors.New("config file not found")
	// ErrMissingSection reports that apis.google_maps is absent.
	ErrMissingSection = errors.New("missing apis.google_maps section")
)

const (
	defaultTimeoutSeconds = 10
	defaultRawDataDir     = "data/raw"
	defaultOutputFileName = "google_maps_distance_matrix.jsonl"
)

// Config is the collector configuration. Loaded once per collector instance
// and immutable thereafter.
type Config struct {
	GoogleMaps     GoogleMapsConfig
	RawDataDir     string
	TimeoutSeconds int
}

// GoogleMapsConfig holds the Distance Matrix endpoint settings.
type GoogleMapsConfig struct {
	BaseURL     string
	Path        string
	FixedParams map[string]string
	APIKeyEnv   string
	OutputFile  string
}

// file mirrors the YAML document shape. google_maps is a pointer so a
// missing section is distinguishable from an empty one.
type file struct {
	APIs struct {
		GoogleMaps *struct {
			BaseURL   string `yaml:"base_url"`
			Endpoints struct {
				DistanceMatrix struct {
					Path   string `yaml:"path"`
					Params struct {
						Fixed map[string]string `yaml:"fixed"`
					} `yaml:"params"`
					Output struct {
						FileName string `yaml:"file_name"`
					} `yaml:"output"`
				} `yaml:"distance_matrix"`
			} `yaml:"endpoints"`
			Auth struct {
				APIKeyEnv string `yaml:"api_key_env"`
			} `yaml:"auth"`
		} `yaml:"google_maps"`
	} `yaml:"apis"`
	Storage struct {
		RawDataDir string `yaml:"raw_data_dir"`
	} `yaml:"storage"`
	DataCollection struct {
		DefaultTimeoutSeconds int `yaml:"default_timeout_seconds"`
	} `yaml:"data_collection"`
}

// Load reads and validates the YAML config document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("load config %q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load config %q: parse yaml: %w", path, err)
	}

	gm := f.APIs.GoogleMaps
	if gm == nil {
		return nil, fmt.Errorf("load config %q: %w", path, ErrMissingSection)
	}

	cfg := &Config{
		GoogleMaps: GoogleMapsConfig{
			BaseURL:     strings.TrimRight(gm.BaseURL, "/"),
			Path:        gm.Endpoints.DistanceMatrix.Path,
			FixedParams: gm.Endpoints.DistanceMatrix.Params.Fixed,
			APIKeyEnv:   gm.Auth.APIKeyEnv,
			OutputFile:  gm.Endpoints.DistanceMatrix.Output.FileName,
		},
		RawDataDir:     f.Storage.RawDataDir,
		TimeoutSeconds: f.DataCollection.DefaultTimeoutSeconds,
	}

	if cfg.GoogleMaps.FixedParams == nil {
		cfg.GoogleMaps.FixedParams = map[string]string{}
	}
	if cfg.GoogleMaps.OutputFile == "" {
		cfg.GoogleMaps.OutputFile = defaultOutputFileName
	}
	if cfg.RawDataDir == "" {
		cfg.RawDataDir = defaultRawDataDir
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}

	return cfg, nil
}

// ResolveOutputPath ensures the raw-data directory exists and returns the
// full path of the append-only output file. Idempotent: an existing
// directory is left untouched.
func (c *Config) ResolveOutputPath() (string, error) {
	if err := os.MkdirAll(c.RawDataDir, 0o755); err != nil {
		return "", fmt.Errorf("resolve output path: create %q: %w", c.RawDataDir, err)
	}
	return filepath.Join(c.RawDataDir, c.GoogleMaps.OutputFile), nil
}
