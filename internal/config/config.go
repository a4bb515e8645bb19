package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/2nist/Band-Manager/internal/game"
)

type rawConfig struct {
	StudioTiers    []game.StudioTier    `json:"studio_tiers"`
	TransportTiers []game.TransportTier `json:"transport_tiers"`
	GearTiers      []game.GearTier      `json:"gear_tiers"`
	Venues         []game.Venue         `json:"venues"`
	Tours          []game.TourPackage   `json:"tours"`
	Staff          game.StaffRates      `json:"staff"`
	Genres         []string             `json:"genres"`
	SongTitles     []string             `json:"song_titles"`
	MemberNames    []string             `json:"member_names"`
	Events         game.EventContent    `json:"events"`
	Server         *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the content tables and the server address to bind to.
type LoadedConfig struct {
	Content       *game.Content
	ServerAddress string
}

// Env holds process configuration read from environment variables. Secrets
// stay out of the config file so it can be committed.
type Env struct {
	SessionSecret      string `env:"SESSION_SECRET"`
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	SecureCookie       bool   `env:"SESSION_SECURE_COOKIE" envDefault:"false"`
	ConfigPath         string `env:"BAND_CONFIG" envDefault:"band_config.json"`
	DatabasePath       string `env:"BAND_DB" envDefault:"band.db"`
}

// LoadEnv parses process configuration from the environment.
func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &e, nil
}

// LoadConfig reads the configuration file at path, validates the content
// tables and returns them together with the server address. The events
// section may be omitted; the built-in event tables are used in that case.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(path, b)
}

// ParseConfig parses and validates raw config bytes. Split out from
// LoadConfig so tests can feed literals without touching the filesystem.
func ParseConfig(path string, b []byte) (*LoadedConfig, error) {
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	content := &game.Content{
		StudioTiers:    rc.StudioTiers,
		TransportTiers: rc.TransportTiers,
		GearTiers:      rc.GearTiers,
		Venues:         rc.Venues,
		Tours:          rc.Tours,
		Staff:          rc.Staff,
		Genres:         rc.Genres,
		SongTitles:     rc.SongTitles,
		MemberNames:    rc.MemberNames,
		Events:         rc.Events,
	}
	if content.Events.Empty() {
		content.Events = game.DefaultEventContent()
	}
	if err := validateContent(path, content); err != nil {
		return nil, err
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	return &LoadedConfig{Content: content, ServerAddress: addr}, nil
}

func validateContent(path string, c *game.Content) error {
	if len(c.StudioTiers) == 0 {
		return fmt.Errorf("config file %s: studio_tiers is empty", path)
	}
	if len(c.Venues) == 0 {
		return fmt.Errorf("config file %s: venues is empty", path)
	}
	if len(c.Genres) == 0 {
		return fmt.Errorf("config file %s: genres is empty", path)
	}
	if len(c.SongTitles) == 0 {
		return fmt.Errorf("config file %s: song_titles is empty", path)
	}
	if len(c.MemberNames) < game.MaxMembers {
		return fmt.Errorf("config file %s: member_names needs at least %d entries", path, game.MaxMembers)
	}

	// Unique venue names (case-insensitive): gig booking addresses venues by
	// name, so a duplicate would make bookings ambiguous.
	venueSet := make(map[string]struct{}, len(c.Venues))
	for _, v := range c.Venues {
		key := strings.ToLower(strings.TrimSpace(v.Name))
		if key == "" {
			return fmt.Errorf("config file %s: venue entry missing 'name'", path)
		}
		if _, exists := venueSet[key]; exists {
			return fmt.Errorf("config file %s: duplicate venue name '%s'", path, v.Name)
		}
		venueSet[key] = struct{}{}
		if v.Capacity <= 0 {
			return fmt.Errorf("config file %s: venue '%s' has non-positive capacity", path, v.Name)
		}
	}

	tourSet := make(map[string]struct{}, len(c.Tours))
	for _, tr := range c.Tours {
		key := strings.ToLower(strings.TrimSpace(tr.Name))
		if key == "" {
			return fmt.Errorf("config file %s: tour entry missing 'name'", path)
		}
		if _, exists := tourSet[key]; exists {
			return fmt.Errorf("config file %s: duplicate tour name '%s'", path, tr.Name)
		}
		tourSet[key] = struct{}{}
		if tr.Weeks <= 0 {
			return fmt.Errorf("config file %s: tour '%s' has non-positive duration", path, tr.Name)
		}
	}

	if len(c.Staff.ManagerUpkeep) != len(c.Staff.ManagerHireCost) {
		return fmt.Errorf("config file %s: staff manager_upkeep and manager_hire_cost must be the same length", path)
	}
	return nil
}
