package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lmehta/cohortplan/internal/auth"
	"github.com/lmehta/cohortplan/internal/store"
)

// SlotTimeConfig is a fallback wall-clock window for one slot position,
// used when a cohort has no slot defaults of its own in the store.
type SlotTimeConfig struct {
	Slot  int    `yaml:"slot"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the API server.
	Listen string `yaml:"listen"`

	// SlotsPerDay is the number of bookable slots on each working day.
	SlotsPerDay int `yaml:"slots_per_day"`

	// SkipWeekday names the weekday automatic allocation steps over
	// (e.g. "sunday"). Empty disables skipping.
	SkipWeekday string `yaml:"skip_weekday"`

	// SweepCron schedules the orphaned-challenge sweep in watch mode.
	SweepCron string `yaml:"sweep_cron"`

	// SweepGraceMinutes is how old a challenge with no sessions must be
	// before the sweeper deletes it.
	SweepGraceMinutes int `yaml:"sweep_grace_minutes"`

	// Roles maps actor ids to role names ("admin", "coach", "learner").
	Roles map[string]string `yaml:"roles"`

	// SlotTimes are fallback slot windows applied when the store has no
	// per-cohort defaults.
	SlotTimes []SlotTimeConfig `yaml:"slot_times"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:            "127.0.0.1:8095",
		SlotsPerDay:       4,
		SkipWeekday:       "sunday",
		SweepCron:         "0 * * * *",
		SweepGraceMinutes: 60,
		Roles:             map[string]string{},
		SlotTimes:         []SlotTimeConfig{},
	}
}

// Normalize fills in missing or invalid values so partially filled configs
// still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8095"
	}
	if c.SlotsPerDay <= 0 {
		c.SlotsPerDay = 4
	}
	if _, ok := parseWeekday(c.SkipWeekday); !ok && c.SkipWeekday != "" {
		c.SkipWeekday = "sunday"
	}
	if c.SweepCron == "" {
		c.SweepCron = "0 * * * *"
	}
	if c.SweepGraceMinutes <= 0 {
		c.SweepGraceMinutes = 60
	}
	if c.Roles == nil {
		c.Roles = map[string]string{}
	}
	if c.SlotTimes == nil {
		c.SlotTimes = []SlotTimeConfig{}
	}
}

// SkipDay returns the configured non-working weekday, if any.
func (c *Config) SkipDay() (time.Weekday, bool) {
	return parseWeekday(c.SkipWeekday)
}

// RoleMap converts the configured role names into an auth role map.
func (c *Config) RoleMap() map[string]auth.Role {
	out := make(map[string]auth.Role, len(c.Roles))
	for actor, role := range c.Roles {
		out[actor] = auth.Role(strings.ToLower(role))
	}
	return out
}

// FallbackTimes converts the configured slot windows into the store's
// fallback table form.
func (c *Config) FallbackTimes() map[int]store.SlotTimes {
	out := make(map[int]store.SlotTimes, len(c.SlotTimes))
	for _, st := range c.SlotTimes {
		if st.Slot >= 1 {
			out[st.Slot] = store.SlotTimes{Start: st.Start, End: st.End}
		}
	}
	return out
}

func parseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}

// Load loads configuration from the given YAML path. A missing file is
// created with defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".cohortplan-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// DefaultPath resolves the config file path in priority order:
// 1. COHORTPLAN_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/cohortplan/config.yaml
// 3. ~/.config/cohortplan/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("COHORTPLAN_CONFIG"); p != "" {
		return p, nil
	}
	confHome := os.Getenv("XDG_CONFIG_HOME")
	if confHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		confHome = filepath.Join(home, ".config")
	}
	return filepath.Join(confHome, "cohortplan", "config.yaml"), nil
}
