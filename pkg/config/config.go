package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAPIUserAgent      = "curl/8.5.0 (hudmirror)"
	DefaultDownloadUserAgent = "Wget/1.21.4 (hudmirror)"
	DefaultAPIURL            = "https://api.github.com"
	DefaultTimeout           = 60 * time.Second
)

type HTTPConfig struct {
	Timeout           Duration `toml:"timeout"`
	APIUserAgent      string   `toml:"api_user_agent"`
	DownloadUserAgent string   `toml:"download_user_agent"`
}

type GitHubConfig struct {
	APIURL string `toml:"api_url"`
	Token  string `toml:"token"`
}

type DownloadConfig struct {
	Progress bool `toml:"progress"`
}

type Config struct {
	Database string         `toml:"database"`
	OutDir   string         `toml:"outdir"`
	HTTP     HTTPConfig     `toml:"http"`
	GitHub   GitHubConfig   `toml:"github"`
	Download DownloadConfig `toml:"download"`
}

// Duration decodes TOML strings such as "90s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func Default() *Config {
	return &Config{
		Database: "huds.xml",
		OutDir:   "out",
		HTTP: HTTPConfig{
			Timeout:           Duration{DefaultTimeout},
			APIUserAgent:      DefaultAPIUserAgent,
			DownloadUserAgent: DefaultDownloadUserAgent,
		},
		GitHub: GitHubConfig{
			APIURL: DefaultAPIURL,
		},
	}
}

// DefaultPath resolves the config file location: $HUDMIRROR_CONFIG, then
// ~/.config/hudmirror/config.toml.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv("HUDMIRROR_CONFIG")); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hudmirror", "config.toml")
}

// Load reads path on top of the defaults. A missing file yields the defaults.
// GITHUB_TOKEN fills in an unset token.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Database = ExpandPath(strings.TrimSpace(c.Database))
	c.OutDir = ExpandPath(strings.TrimSpace(c.OutDir))
	c.HTTP.APIUserAgent = strings.TrimSpace(c.HTTP.APIUserAgent)
	c.HTTP.DownloadUserAgent = strings.TrimSpace(c.HTTP.DownloadUserAgent)
	c.GitHub.APIURL = strings.TrimRight(strings.TrimSpace(c.GitHub.APIURL), "/")
	c.GitHub.Token = strings.TrimSpace(c.GitHub.Token)
	if c.HTTP.APIUserAgent == "" {
		c.HTTP.APIUserAgent = DefaultAPIUserAgent
	}
	if c.HTTP.DownloadUserAgent == "" {
		c.HTTP.DownloadUserAgent = DefaultDownloadUserAgent
	}
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = DefaultAPIURL
	}
}

func (c *Config) Validate() error {
	if c.Database == "" {
		return fmt.Errorf("invalid config: database is required")
	}
	if c.OutDir == "" {
		return fmt.Errorf("invalid config: outdir is required")
	}
	if c.HTTP.Timeout.Duration < 0 {
		return fmt.Errorf("invalid config: http.timeout must not be negative")
	}
	return nil
}

// ExpandPath expands a leading ~/ to the user's home directory
// and expands environment variables (e.g. $HOME, ${VAR}) in the path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
