// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithNoFileOrEnv(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Watermark.HopSize != 1024 {
		t.Errorf("HopSize = %d, want 1024", cfg.Watermark.HopSize)
	}
	if cfg.Watermark.EmbedStrength != 0.007 {
		t.Errorf("EmbedStrength = %v, want 0.007", cfg.Watermark.EmbedStrength)
	}
	if cfg.Frame.TotalBits != 464 {
		t.Errorf("TotalBits = %d, want 464", cfg.Frame.TotalBits)
	}
	if cfg.Frame.DataShards != 4 || cfg.Frame.ParityShards != 2 {
		t.Errorf("shards = %d/%d, want 4/2", cfg.Frame.DataShards, cfg.Frame.ParityShards)
	}
	if cfg.Keystore.Path != "audiowm-secrets.db" {
		t.Errorf("Keystore.Path = %q, want default", cfg.Keystore.Path)
	}
}

func TestLoad_YAMLFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audiowm.yaml")

	yaml := []byte("watermark:\n  hop_size: 2048\nframe:\n  total_bits: 928\nkeystore:\n  path: custom.db\n")
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Watermark.HopSize != 2048 {
		t.Errorf("HopSize = %d, want 2048", cfg.Watermark.HopSize)
	}
	if cfg.Frame.TotalBits != 928 {
		t.Errorf("TotalBits = %d, want 928", cfg.Frame.TotalBits)
	}
	if cfg.Keystore.Path != "custom.db" {
		t.Errorf("Keystore.Path = %q, want %q", cfg.Keystore.Path, "custom.db")
	}
	// Untouched default should survive the partial override.
	if cfg.Frame.DataShards != 4 {
		t.Errorf("DataShards = %d, want unchanged default 4", cfg.Frame.DataShards)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AUDWM_WATERMARK_HOP_SIZE", "512")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Watermark.HopSize != 512 {
		t.Errorf("HopSize = %d, want 512 (from env)", cfg.Watermark.HopSize)
	}
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Load with missing file succeeded, want an error")
	}
}
