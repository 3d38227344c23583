// File: cmd/triadcount/config.go
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/triad/balance"
)

// Config carries file-based defaults for the count command. Flags given on
// the command line always win over config file values.
type Config struct {
	// Output is the report destination path; empty means stdout.
	Output string `yaml:"output"`
	// Workers overrides the counting worker count; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Threshold is the node count at which counting goes parallel.
	Threshold int `yaml:"threshold"`
	// Strict aborts ingestion on the first malformed CSV cell.
	Strict bool `yaml:"strict"`
}

// loadConfig reads and decodes a YAML config file. Keys absent from the
// file keep their documented defaults rather than decoding to zero values.
func loadConfig(path string) (Config, error) {
	c := Config{
		Workers:   balance.DefaultWorkers,
		Threshold: balance.DefaultParallelThreshold,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}

	return c, nil
}
