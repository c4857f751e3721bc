package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PipelinePath points at the HCL pipeline description to seed the
	// graph from.
	PipelinePath string
	// KindsPath optionally points at a directory of extra kind manifests.
	KindsPath string

	// RunNode optionally names one node to run after loading.
	RunNode string
	// Summary prints the loaded topology to the output writer.
	Summary bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		return nil, errors.New("PipelinePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
