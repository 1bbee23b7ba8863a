package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	Report ReportConfig `yaml:"report"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// Mode is "debug" or "release"; release turns gin's debug output off.
	Mode string `yaml:"mode"`
	// AllowedOrigins for CORS; empty means any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type ReportConfig struct {
	// Filename is the default download filename for built workbooks.
	Filename string `yaml:"filename"`
	// StoreTTLMinutes is how long a stored report stays downloadable.
	StoreTTLMinutes int `yaml:"store_ttl_minutes"`
	// MaxStored caps the number of reports held in memory (0 = unbounded).
	MaxStored int `yaml:"max_stored"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Report: ReportConfig{
			Filename:        "report.xlsx",
			StoreTTLMinutes: 30,
			MaxStored:       100,
		},
	}
}

// Load reads a YAML config, fills unset fields with defaults, and validates.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, err
		}
		c.applyDefaults()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyDefaults refills fields the YAML left empty. Unmarshalling on top of
// the default struct keeps unmentioned fields, but an explicit empty value
// still needs backfilling.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Mode == "" {
		c.Server.Mode = def.Server.Mode
	}
	if c.Report.Filename == "" {
		c.Report.Filename = def.Report.Filename
	}
	if c.Report.StoreTTLMinutes == 0 {
		c.Report.StoreTTLMinutes = def.Report.StoreTTLMinutes
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("server.mode must be debug or release, got %q", c.Server.Mode)
	}
	if c.Report.StoreTTLMinutes < 0 {
		return errors.New("report.store_ttl_minutes must be >= 0")
	}
	if c.Report.MaxStored < 0 {
		return errors.New("report.max_stored must be >= 0")
	}
	if !strings.HasSuffix(c.Report.Filename, ".xlsx") {
		return fmt.Errorf("report.filename must end in .xlsx, got %q", c.Report.Filename)
	}
	return nil
}

func (c *Config) StoreTTL() time.Duration {
	return time.Duration(c.Report.StoreTTLMinutes) * time.Minute
}
