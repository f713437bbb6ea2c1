package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()
	assert.Equal(t, ModeLocal, c.Mode)
	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.True(t, c.SimulateLatency)
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	assert.Empty(t, cmp.Diff(defaults(), load(nil, noEnv)))
}

func TestLoad_Flags(t *testing.T) {
	cfg := load([]string{"-m", "remote", "-a", "10.0.0.1:7000", "-i", "10s", "-d", "-f", "x.db", "-s", "k", "-l", "debug"}, noEnv)

	want := defaults()
	want.Mode = ModeRemote
	want.ServerEndpointAddr = "10.0.0.1:7000"
	want.OnlineCheckInterval = 10 * time.Second
	want.SimulateLatency = false
	want.SQLitePath = "x.db"
	want.SecretKey = "k"
	want.LogLevel = "debug"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoad_FileThenFlags(t *testing.T) {
	path := writeFile(t, "cli.yaml", "mode: remote\nserver_endpoint_addr: host:1\nonline_check_interval: 5s\nsimulate_latency: false\n")

	cfg := load([]string{"-c", path, "-a", "host:2"}, noEnv)

	assert.Equal(t, ModeRemote, cfg.Mode)
	assert.Equal(t, "host:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
	assert.False(t, cfg.SimulateLatency)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "cli.json", `{"sqlite_path":"state.db","online_check_interval":1000000000}`)

	cfg := load([]string{"-config", path}, noEnv)

	assert.Equal(t, "state.db", cfg.SQLitePath)
	assert.Equal(t, time.Second, cfg.OnlineCheckInterval)
}

func TestLoad_Env(t *testing.T) {
	env := map[string]string{"API_KEY": "fallback"}
	cfg := load(nil, func(k string) string { return env[k] })
	assert.Equal(t, "fallback", cfg.GeminiAPIKey)
}

func TestLoad_Panics(t *testing.T) {
	assert.Panics(t, func() { load([]string{"-m", "hybrid"}, noEnv) })
	assert.Panics(t, func() { load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}, noEnv) })
	assert.Panics(t, func() { load([]string{"-i", "soon"}, noEnv) })
}
