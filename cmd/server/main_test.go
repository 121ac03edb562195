package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"listings/internal/config"
	"listings/internal/engine"
)

func writeData(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunShutsDownOnLoadFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.InfoLevel)
	cfg := &config.Config{
		DataPath: writeData(t, `[{"id":1,"first_name":42,"last_name":"b","email":"c"}]`),
		Addr:     "127.0.0.1:0",
	}

	err := run(context.Background(), cfg, zap.New(core))

	var verr *engine.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "first_name", verr.Field)
	assert.Equal(t, 1, logs.FilterMessage("Failed to load listings").Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := &config.Config{
		DataPath: writeData(t, `[{"id":1,"first_name":"a","last_name":"b","email":"c"}]`),
		Addr:     "127.0.0.1:0",
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, cfg, zap.NewNop()))
}
