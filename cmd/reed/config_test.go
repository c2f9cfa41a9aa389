package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaultMayBeAbsent(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.StepQuota != 0 || cfg.RecursionLimit != 0 {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigExplicitMustExist(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reed.yml")
	source := "step_quota: 5000\nrecursion_limit: 32\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.StepQuota != 5000 {
		t.Fatalf("StepQuota = %d, want 5000", cfg.StepQuota)
	}
	if cfg.RecursionLimit != 32 {
		t.Fatalf("RecursionLimit = %d, want 32", cfg.RecursionLimit)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reed.yml")
	if err := os.WriteFile(path, []byte("step_quota: [what"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := loadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("unexpected error: %v", err)
	}
}
