package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.MaxBullets != 5 || cfg.BulletBounces != 1 || cfg.RayLength != 500 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfig_OverridesOnlyGivenFields(t *testing.T) {
	cfg, err := ParseConfig([]byte("bullet_bounces: 3\nbullet_speed: 4.5\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := DefaultConfig()
	want.BulletBounces = 3
	want.BulletSpeed = 4.5
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfig_RejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"negative bounces":  "bullet_bounces: -1\n",
		"tank too large":    "tank_size: 40\n",
		"tolerance too big": "merge_tolerance: 20\n",
		"negative speed":    "move_speed: -2\n",
	}
	for name, doc := range tests {
		_, err := ParseConfig([]byte(doc))
		if !errors.Is(err, ErrBadConfig) {
			t.Errorf("%s: expected ErrBadConfig, got %v", name, err)
		}
	}
}

func TestConfigValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBullets = 0
	cfg.RayLength = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Fatalf("expected two joined errors, got %v", err)
	}
}

func TestParseConfig_MalformedYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("max_bullets: [oops")); err == nil {
		t.Fatal("malformed YAML should fail")
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil || cfg != DefaultConfig() {
		t.Fatalf("empty path should give defaults, got %+v, %v", cfg, err)
	}

	path := filepath.Join(t.TempDir(), "arena.yaml")
	if err := os.WriteFile(path, []byte("max_bullets: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxBullets != 8 {
		t.Fatalf("expected 8 bullets, got %d", cfg.MaxBullets)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}
