package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reed-lang/reed/reed"
)

const defaultConfigPath = ".reed.yml"

type fileConfig struct {
	StepQuota      int `yaml:"step_quota"`
	RecursionLimit int `yaml:"recursion_limit"`
}

// loadConfig reads the yaml configuration. An empty path means the default
// location, which is allowed to be absent; an explicit path must exist.
func loadConfig(path string) (reed.Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return reed.Config{}, nil
		}
		return reed.Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return reed.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return reed.Config{
		StepQuota:      fc.StepQuota,
		RecursionLimit: fc.RecursionLimit,
	}, nil
}
