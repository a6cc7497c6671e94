package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Plan      PlanConfig      `yaml:"plan"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// PlanConfig describes the training plan to schedule: when it starts, when
// the race is, which program-week tapers, and optionally a catalog file
// overriding the built-in program.
type PlanConfig struct {
	StartDate   string `yaml:"start_date"` // YYYY-MM-DD
	RaceDate    string `yaml:"race_date"`  // YYYY-MM-DD
	RaceWeek    int    `yaml:"race_week"`
	CatalogPath string `yaml:"catalog_path"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Dates parses the plan's start and race dates.
func (p PlanConfig) Dates() (start, race time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02", p.StartDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing plan.start_date: %w", err)
	}
	race, err = time.ParseInLocation("2006-01-02", p.RaceDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing plan.race_date: %w", err)
	}
	return start, race, nil
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix PLANFORGE_ and underscore-separated
// paths:
//
//	PLANFORGE_SERVER_HOST, PLANFORGE_SERVER_PORT,
//	PLANFORGE_DB_HOST, PLANFORGE_DB_PORT, PLANFORGE_DB_NAME,
//	PLANFORGE_DB_USER, PLANFORGE_DB_PASSWORD, PLANFORGE_DB_SSLMODE,
//	PLANFORGE_AUTH_API_KEY,
//	PLANFORGE_PLAN_START_DATE, PLANFORGE_PLAN_RACE_DATE
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLANFORGE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PLANFORGE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("PLANFORGE_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("PLANFORGE_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("PLANFORGE_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("PLANFORGE_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("PLANFORGE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PLANFORGE_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("PLANFORGE_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("PLANFORGE_PLAN_START_DATE"); v != "" {
		cfg.Plan.StartDate = v
	}
	if v := os.Getenv("PLANFORGE_PLAN_RACE_DATE"); v != "" {
		cfg.Plan.RaceDate = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Plan.RaceWeek == 0 {
		cfg.Plan.RaceWeek = 5
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Plan.StartDate == "" {
		return fmt.Errorf("plan.start_date is required")
	}
	if c.Plan.RaceDate == "" {
		return fmt.Errorf("plan.race_date is required")
	}
	if _, _, err := c.Plan.Dates(); err != nil {
		return err
	}
	if c.Plan.RaceWeek < 1 || c.Plan.RaceWeek > 10 {
		return fmt.Errorf("plan.race_week must be in 1-10")
	}
	return nil
}
