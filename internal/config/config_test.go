package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lmehta/cohortplan/internal/auth"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SlotsPerDay != 4 {
		t.Errorf("slots per day = %d, want 4", cfg.SlotsPerDay)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.SlotsPerDay = 6
	cfg.SkipWeekday = "friday"
	cfg.Roles = map[string]string{"u1": "Admin"}
	cfg.SlotTimes = []SlotTimeConfig{{Slot: 1, Start: "09:00", End: "10:30"}}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SlotsPerDay != 6 {
		t.Errorf("slots per day = %d, want 6", loaded.SlotsPerDay)
	}
	if wd, ok := loaded.SkipDay(); !ok || wd != time.Friday {
		t.Errorf("skip day = %v/%v, want Friday", wd, ok)
	}
	if loaded.RoleMap()["u1"] != auth.RoleAdmin {
		t.Errorf("role for u1 = %q, want admin", loaded.RoleMap()["u1"])
	}
	times := loaded.FallbackTimes()
	if got := times[1].Start; got != "09:00" {
		t.Errorf("fallback slot 1 start = %q, want 09:00", got)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := &Config{SkipWeekday: "someday", SlotsPerDay: -1}
	cfg.Normalize()

	if cfg.SlotsPerDay != 4 {
		t.Errorf("slots per day = %d, want 4", cfg.SlotsPerDay)
	}
	if cfg.SkipWeekday != "sunday" {
		t.Errorf("skip weekday = %q, want sunday", cfg.SkipWeekday)
	}
	if cfg.SweepCron == "" || cfg.Listen == "" {
		t.Error("cron and listen defaults missing")
	}
	if cfg.SweepGraceMinutes != 60 {
		t.Errorf("grace = %d, want 60", cfg.SweepGraceMinutes)
	}
}

func TestSkipDayDisabled(t *testing.T) {
	cfg := &Config{SkipWeekday: ""}
	if _, ok := cfg.SkipDay(); ok {
		t.Error("empty skip weekday must disable skipping")
	}
}
