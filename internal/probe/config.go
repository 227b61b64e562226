package probe

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/dungeonprobe/internal/constraints"
)

// DefaultPreset is used when DUNGEONPROBE_PRESET is unset.
const DefaultPreset = "standard"

// Config holds probe options read from the environment.
type Config struct {
	Preset   string
	Headless bool

	// Overrides applied on top of the preset. Nil means keep the preset value.
	MaxSpaces   *int
	MaxKeys     *int
	MaxSwitches *int
}

// ConfigFromEnv reads DUNGEONPROBE_* variables through getenv (usually os.Getenv).
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{Preset: getenv("DUNGEONPROBE_PRESET")}
	if cfg.Preset == "" {
		cfg.Preset = DefaultPreset
	}

	if v := getenv("DUNGEONPROBE_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DUNGEONPROBE_HEADLESS %q: %w", v, err)
		}
		cfg.Headless = headless
	}

	overrides := []struct {
		key string
		dst **int
	}{
		{"DUNGEONPROBE_MAX_SPACES", &cfg.MaxSpaces},
		{"DUNGEONPROBE_MAX_KEYS", &cfg.MaxKeys},
		{"DUNGEONPROBE_MAX_SWITCHES", &cfg.MaxSwitches},
	}
	for _, o := range overrides {
		v := getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", o.key, v, err)
		}
		*o.dst = &n
	}

	return cfg, nil
}

// Apply writes any overrides into c.
func (cfg Config) Apply(c *constraints.Count) {
	if cfg.MaxSpaces != nil {
		c.SetMaxSpaces(*cfg.MaxSpaces)
	}
	if cfg.MaxKeys != nil {
		c.SetMaxKeys(*cfg.MaxKeys)
	}
	if cfg.MaxSwitches != nil {
		c.SetMaxSwitches(*cfg.MaxSwitches)
	}
}
