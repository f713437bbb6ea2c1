package server

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Storage = "memory"
	c.HTTPAddr = "127.0.0.1:0"
	c.GRPCAddr = "127.0.0.1:0"
	return c
}

func TestNewApp_BadLogLevel(t *testing.T) {
	c := testConfig()
	c.LogLevel = "loud"

	_, err := NewApp(context.Background(), c, &bytes.Buffer{})
	require.ErrorContains(t, err, "logger init error")
}

func TestNewApp_BadStorage(t *testing.T) {
	c := testConfig()
	c.Storage = "floppy"

	_, err := NewApp(context.Background(), c, &bytes.Buffer{})
	require.ErrorContains(t, err, "storage init error")
}

func TestNewApp_WarnsOnDefaultSecret(t *testing.T) {
	var logs bytes.Buffer
	_, err := NewApp(context.Background(), testConfig(), &logs)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Token secret is the built-in default")

	c := testConfig()
	c.SecretKey = "s3cr3t"
	logs.Reset()
	_, err = NewApp(context.Background(), c, &logs)
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "Token secret")
}

func TestRun_StopsOnCancel(t *testing.T) {
	var logs bytes.Buffer
	app, err := NewApp(context.Background(), testConfig(), &logs)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.Contains(t, logs.String(), "Stopped")
}
