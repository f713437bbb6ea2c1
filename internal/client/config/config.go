package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/suggest"
)

// Mode selects where the CLI keeps its state.
type Mode string

const (
	// ModeLocal runs the auth and task services in-process over SQLite.
	ModeLocal Mode = "local"
	// ModeRemote talks to a taskboard server over gRPC.
	ModeRemote Mode = "remote"
)

// Config holds runtime settings for the taskboard CLI.
type Config struct {
	Mode                Mode
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	SQLitePath          string
	SecretKey           string
	SimulateLatency     bool
	GeminiAPIKey        string
	GeminiModel         string
	LogLevel            string
}

// LoadDefaults populates Config with defaults. Local mode delays calls the
// way a remote API would unless -d is given.
func (c *Config) LoadDefaults() {
	c.Mode = ModeLocal
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.SQLitePath = "taskboard.db"
	c.SecretKey = "secretKey"
	c.SimulateLatency = true
	c.GeminiModel = suggest.DefaultGeminiModel
	c.LogLevel = "warn"
}

// LoadConfig builds a Config from defaults, the file named by -c/-config,
// the environment and flags, in that order. Invalid input panics.
func LoadConfig() *Config {
	return load(os.Args[1:], os.Getenv)
}

func load(args []string, getenv func(string) string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg, getenv)
	parseFlags(cfg, args)
	cfg.validate()
	return cfg
}

func parseEnv(cfg *Config, getenv func(string) string) {
	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if v := getenv(name); v != "" {
			cfg.GeminiAPIKey = v
			return
		}
	}
}

func (c *Config) validate() {
	switch c.Mode {
	case ModeLocal, ModeRemote:
	default:
		panic("unknown client mode " + string(c.Mode))
	}
}
