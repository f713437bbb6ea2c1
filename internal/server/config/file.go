package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
	"github.com/dmitrijs2005/taskboard/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of Config. Durations accept "1h" style
// strings or integer nanoseconds. Only fields present in the file override
// the defaults.
type FileConfig struct {
	HTTPAddr        *string         `json:"http_addr" yaml:"http_addr"`
	GRPCAddr        *string         `json:"grpc_addr" yaml:"grpc_addr"`
	Storage         *string         `json:"storage" yaml:"storage"`
	SQLitePath      *string         `json:"sqlite_path" yaml:"sqlite_path"`
	DatabaseDSN     *string         `json:"database_dsn" yaml:"database_dsn"`
	S3AccessKey     *string         `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey     *string         `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3Bucket        *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region        *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint  *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3Prefix        *string         `json:"s3_prefix" yaml:"s3_prefix"`
	S3UsePathStyle  *bool           `json:"s3_use_path_style" yaml:"s3_use_path_style"`
	SecretKey       *string         `json:"secret_key" yaml:"secret_key"`
	TokenTTL        *timex.Duration `json:"token_ttl" yaml:"token_ttl"`
	SimulateLatency *bool           `json:"simulate_latency" yaml:"simulate_latency"`
	GeminiAPIKey    *string         `json:"gemini_api_key" yaml:"gemini_api_key"`
	GeminiModel     *string         `json:"gemini_model" yaml:"gemini_model"`
	LogLevel        *string         `json:"log_level" yaml:"log_level"`
	LogFormat       *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays the config file named by -c/-config, if any. A file
// that cannot be read or decoded panics.
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
	switch flagx.FormatOf(path) {
	case flagx.FormatYAML:
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	set(&cfg.HTTPAddr, fc.HTTPAddr)
	set(&cfg.GRPCAddr, fc.GRPCAddr)
	set(&cfg.Storage, fc.Storage)
	set(&cfg.SQLitePath, fc.SQLitePath)
	set(&cfg.DatabaseDSN, fc.DatabaseDSN)
	set(&cfg.S3.AccessKey, fc.S3AccessKey)
	set(&cfg.S3.SecretKey, fc.S3SecretKey)
	set(&cfg.S3.Bucket, fc.S3Bucket)
	set(&cfg.S3.Region, fc.S3Region)
	set(&cfg.S3.BaseEndpoint, fc.S3BaseEndpoint)
	set(&cfg.S3.Prefix, fc.S3Prefix)
	set(&cfg.S3.UsePathStyle, fc.S3UsePathStyle)
	set(&cfg.SecretKey, fc.SecretKey)
	if fc.TokenTTL != nil {
		cfg.TokenTTL = fc.TokenTTL.Duration
	}
	set(&cfg.SimulateLatency, fc.SimulateLatency)
	set(&cfg.GeminiAPIKey, fc.GeminiAPIKey)
	set(&cfg.GeminiModel, fc.GeminiModel)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
