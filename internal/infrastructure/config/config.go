package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/termdeck/termdeck/internal/shared/paths"
)

// Registry modes.
const (
	ModeDesktop = "desktop"
	ModeBridge  = "bridge"
)

// Config holds all daemon configuration.
type Config struct {
	Server     ServerConfig
	Registry   RegistryConfig
	Bridge     BridgeConfig
	State      StateConfig
	Classifier ClassifierConfig
	Icons      IconsConfig
	Logging    LogConfig
	RateLimit  RateLimitConfig
	Pomodoro   PomodoroConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"7430"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// RegistryConfig selects and tunes the catalog source.
type RegistryConfig struct {
	// Mode is "desktop" (scan .desktop entries) or "bridge" (platform API).
	Mode string `envconfig:"REGISTRY_MODE" default:"desktop"`
	// DesktopDirs are system application directories, in precedence order.
	DesktopDirs []string `envconfig:"DESKTOP_DIRS" default:"/usr/share/applications,/usr/local/share/applications"`
	// UserDesktopDirs hold per-user entries; empty means derive from $HOME.
	UserDesktopDirs []string `envconfig:"DESKTOP_USER_DIRS"`
	// SelfIdentity is the launcher's own identity, excluded from the catalog.
	SelfIdentity string `envconfig:"SELF_IDENTITY" default:"dev.termdeck.shell"`
}

// BridgeConfig holds bridge client configuration.
type BridgeConfig struct {
	URL              string        `envconfig:"BRIDGE_URL" default:"http://127.0.0.1:7420"`
	Timeout          time.Duration `envconfig:"BRIDGE_TIMEOUT" default:"10s"`
	Retries          int           `envconfig:"BRIDGE_RETRIES" default:"3"`
	RetryWaitMin     time.Duration `envconfig:"BRIDGE_RETRY_WAIT_MIN" default:"500ms"`
	RetryWaitMax     time.Duration `envconfig:"BRIDGE_RETRY_WAIT_MAX" default:"5s"`
	BreakerThreshold int           `envconfig:"BRIDGE_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown  time.Duration `envconfig:"BRIDGE_BREAKER_COOLDOWN" default:"30s"`
}

// StateConfig holds persistent state location.
type StateConfig struct {
	// Dir overrides the state directory; empty derives an XDG default.
	Dir string `envconfig:"STATE_DIR"`
}

// Resolve returns the effective state directory: the configured override,
// else the XDG state default.
func (s StateConfig) Resolve() string {
	if s.Dir != "" {
		return s.Dir
	}
	return paths.StateDir()
}

// ClassifierConfig points at an optional category rule file.
type ClassifierConfig struct {
	RulesPath string `envconfig:"CLASSIFIER_RULES"`
}

// IconsConfig holds icon lookup directories.
type IconsConfig struct {
	Dirs []string `envconfig:"ICON_DIRS" default:"/usr/share/pixmaps,/usr/share/icons/hicolor/48x48/apps,/usr/share/icons/hicolor/scalable/apps"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"50"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"100"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// PomodoroConfig holds default Pomodoro phase durations.
type PomodoroConfig struct {
	Work  time.Duration `envconfig:"POMODORO_WORK" default:"25m"`
	Break time.Duration `envconfig:"POMODORO_BREAK" default:"5m"`
}

// Load loads and validates configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("termdeck", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate rejects configurations the daemon cannot run with.
func (c *Config) Validate() error {
	if c.Registry.Mode != ModeDesktop && c.Registry.Mode != ModeBridge {
		return fmt.Errorf("registry mode %q is not %q or %q", c.Registry.Mode, ModeDesktop, ModeBridge)
	}
	if c.Registry.Mode == ModeBridge && c.Bridge.URL == "" {
		return fmt.Errorf("bridge mode requires TERMDECK_BRIDGE_URL")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit rps must be positive, got %d", c.RateLimit.RequestsPerSecond)
	}
	if c.Pomodoro.Work <= 0 || c.Pomodoro.Break <= 0 {
		return fmt.Errorf("pomodoro durations must be positive")
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "7430",
			Host: "127.0.0.1",
		},
		Registry: RegistryConfig{
			Mode:         ModeDesktop,
			DesktopDirs:  []string{"/usr/share/applications", "/usr/local/share/applications"},
			SelfIdentity: "dev.termdeck.shell",
		},
		Bridge: BridgeConfig{
			URL:              "http://127.0.0.1:7420",
			Timeout:          10 * time.Second,
			Retries:          3,
			RetryWaitMin:     500 * time.Millisecond,
			RetryWaitMax:     5 * time.Second,
			BreakerThreshold: 5,
			BreakerCooldown:  30 * time.Second,
		},
		Icons: IconsConfig{
			Dirs: []string{
				"/usr/share/pixmaps",
				"/usr/share/icons/hicolor/48x48/apps",
				"/usr/share/icons/hicolor/scalable/apps",
			},
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
			Enabled:           true,
		},
		Pomodoro: PomodoroConfig{
			Work:  25 * time.Minute,
			Break: 5 * time.Minute,
		},
	}
}
