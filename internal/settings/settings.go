// Package settings persists the small user-preference blob (language,
// last-used filters, reminder schedule) separately from the record store.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Languages supported by the string tables.
var Languages = []string{"en", "de", "pl"}

// Filters is the persisted last-used filter state.
type Filters struct {
	SearchTerm string `mapstructure:"search_term"`
	IsApplied  bool   `mapstructure:"is_applied"`
	IsRejected bool   `mapstructure:"is_rejected"`
	IsFavorite bool   `mapstructure:"is_favorite"`
}

// Reminder configures the follow-up notification.
type Reminder struct {
	Enabled   bool     `mapstructure:"enabled"`
	Time      string   `mapstructure:"time"`       // "09:00"
	Workdays  []string `mapstructure:"workdays"`   // ["Mon","Tue","Wed","Thu","Fri"]
	AfterDays int      `mapstructure:"after_days"` // applications awaiting a reply longer than this
	Timezone  string   `mapstructure:"timezone"`   // optional, e.g. "Europe/Warsaw"
}

// Settings is the whole persisted blob.
type Settings struct {
	Language    string   `mapstructure:"language"`
	LastChanged string   `mapstructure:"last_changed"`
	Filters     Filters  `mapstructure:"filters"`
	Reminder    Reminder `mapstructure:"reminder"`
}

// Default returns the built-in settings every load merges against.
func Default() Settings {
	return Settings{
		Language: "en",
		Filters: Filters{
			SearchTerm: "",
			IsApplied:  true,
			IsRejected: true,
			IsFavorite: false,
		},
		Reminder: Reminder{
			Enabled:   true,
			Time:      "09:00",
			Workdays:  []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			AfterDays: 14,
			Timezone:  "",
		},
	}
}

// Service owns the settings file with an explicit load/save lifecycle.
type Service struct {
	path string
}

// NewService places the settings under the user config dir.
func NewService() (*Service, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".config", "jobtrack")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Service{path: filepath.Join(dir, "config.yaml")}, nil
}

// NewServiceAt uses an explicit file path.
func NewServiceAt(path string) *Service { return &Service{path: path} }

func (s *Service) newViper() *viper.Viper {
	def := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(s.path)

	v.SetDefault("language", def.Language)
	v.SetDefault("last_changed", def.LastChanged)
	v.SetDefault("filters.search_term", def.Filters.SearchTerm)
	v.SetDefault("filters.is_applied", def.Filters.IsApplied)
	v.SetDefault("filters.is_rejected", def.Filters.IsRejected)
	v.SetDefault("filters.is_favorite", def.Filters.IsFavorite)
	v.SetDefault("reminder.enabled", def.Reminder.Enabled)
	v.SetDefault("reminder.time", def.Reminder.Time)
	v.SetDefault("reminder.workdays", def.Reminder.Workdays)
	v.SetDefault("reminder.after_days", def.Reminder.AfterDays)
	v.SetDefault("reminder.timezone", def.Reminder.Timezone)

	return v
}

// Load reads the settings, filling any missing field from the defaults. A
// missing file yields the defaults.
func (s *Service) Load() (Settings, error) {
	v := s.newViper()
	_ = v.ReadInConfig() // ok if missing

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("settings unmarshal: %w", err)
	}
	if !validLanguage(cfg.Language) {
		cfg.Language = Default().Language
	}
	return cfg, nil
}

// Save writes the whole blob. Defaults are re-merged on the next load, so a
// partial file can never lose them permanently.
func (s *Service) Save(cfg Settings) error {
	v := s.newViper()

	v.Set("language", cfg.Language)
	v.Set("last_changed", time.Now().Format(time.RFC3339))
	v.Set("filters.search_term", cfg.Filters.SearchTerm)
	v.Set("filters.is_applied", cfg.Filters.IsApplied)
	v.Set("filters.is_rejected", cfg.Filters.IsRejected)
	v.Set("filters.is_favorite", cfg.Filters.IsFavorite)
	v.Set("reminder.enabled", cfg.Reminder.Enabled)
	v.Set("reminder.time", cfg.Reminder.Time)
	v.Set("reminder.workdays", cfg.Reminder.Workdays)
	v.Set("reminder.after_days", cfg.Reminder.AfterDays)
	v.Set("reminder.timezone", cfg.Reminder.Timezone)

	return v.WriteConfigAs(s.path)
}

// SetLanguage validates and persists the language choice.
func (s *Service) SetLanguage(lang string) error {
	if !validLanguage(lang) {
		return fmt.Errorf("unsupported language %q (supported: %s)", lang, strings.Join(Languages, ", "))
	}
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Language = lang
	return s.Save(cfg)
}

// SetFilters persists the last-used filter state.
func (s *Service) SetFilters(f Filters) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Filters = f
	return s.Save(cfg)
}

func validLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Location resolves the reminder timezone, defaulting to the local zone.
func (r Reminder) Location() *time.Location {
	if tz := strings.TrimSpace(r.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
