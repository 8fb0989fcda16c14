package model

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the complete chatlex configuration.
type Config struct {
	Ingest IngestConfig `yaml:"ingest"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// IngestConfig controls transcript reading and feature extraction.
type IngestConfig struct {
	// Encoding is the IANA name of the transcript text encoding. It is an
	// explicit parameter, never auto-detected.
	Encoding string `yaml:"encoding"`

	// Workers bounds concurrent feature extraction within one transcript
	// and concurrent transcripts in batch mode.
	Workers int `yaml:"workers"`
}

// StoreConfig controls the pseudonym store.
type StoreConfig struct {
	// Path is the JSON file holding the persisted contact-to-pseudonym map.
	Path string `yaml:"path"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format  string `yaml:"format"` // json or yaml
	Dir     string `yaml:"dir"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		Ingest: IngestConfig{
			Encoding: "utf-8",
			Workers:  runtime.NumCPU(),
		},
		Store: StoreConfig{
			Path: filepath.Join(home, ".chatlex", "pseudonyms.json"),
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Output: OutputConfig{
			Format: "json",
			Dir:    ".",
		},
	}
}
