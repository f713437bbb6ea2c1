package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
	"github.com/dmitrijs2005/taskboard/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of Config.
type FileConfig struct {
	Mode                *string         `json:"mode" yaml:"mode"`
	ServerEndpointAddr  *string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	SQLitePath          *string         `json:"sqlite_path" yaml:"sqlite_path"`
	SecretKey           *string         `json:"secret_key" yaml:"secret_key"`
	SimulateLatency     *bool           `json:"simulate_latency" yaml:"simulate_latency"`
	GeminiAPIKey        *string         `json:"gemini_api_key" yaml:"gemini_api_key"`
	GeminiModel         *string         `json:"gemini_model" yaml:"gemini_model"`
	LogLevel            *string         `json:"log_level" yaml:"log_level"`
}

func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	if flagx.FormatOf(path) == flagx.FormatYAML {
		err = yaml.Unmarshal(data, fc)
	} else {
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.Mode != nil {
		cfg.Mode = Mode(*fc.Mode)
	}
	set(&cfg.ServerEndpointAddr, fc.ServerEndpointAddr)
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	set(&cfg.SQLitePath, fc.SQLitePath)
	set(&cfg.SecretKey, fc.SecretKey)
	set(&cfg.SimulateLatency, fc.SimulateLatency)
	set(&cfg.GeminiAPIKey, fc.GeminiAPIKey)
	set(&cfg.GeminiModel, fc.GeminiModel)
	set(&cfg.LogLevel, fc.LogLevel)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
