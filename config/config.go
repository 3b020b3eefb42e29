package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wolfadex/noom-colors/parameter"
)

// Config holds the user-tunable settings. Everything has a sensible
// default; the file is optional.
type Config struct {
	// Sound enables the green chime and keystroke blips.
	Sound bool `toml:"sound"`
	// BurstsPerGreen is how many firework bursts fire on the
	// transition into Green (the app shipped both 1x and 5x at
	// different points; pick your favorite).
	BurstsPerGreen int `toml:"bursts_per_green"`
	// ParticlesPerBurst is the particle count of a single burst.
	ParticlesPerBurst int `toml:"particles_per_burst"`
}

func Default() Config {
	return Config{
		Sound:             true,
		BurstsPerGreen:    1,
		ParticlesPerBurst: parameter.BurstParticleCount,
	}
}

// Path returns the per-user config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "noom-colors", "config.toml"), nil
}

// Load reads a TOML config file. A missing file yields the defaults;
// a file that exists but does not parse is an error. Out-of-range
// values are clamped rather than rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

func (c *Config) clamp() {
	if c.BurstsPerGreen < 1 {
		c.BurstsPerGreen = 1
	}
	if c.BurstsPerGreen > 8 {
		c.BurstsPerGreen = 8
	}
	if c.ParticlesPerBurst < 8 {
		c.ParticlesPerBurst = 8
	}
	if c.ParticlesPerBurst > parameter.ParticleCap {
		c.ParticlesPerBurst = parameter.ParticleCap
	}
}
