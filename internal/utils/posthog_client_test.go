package utils

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosthogClientWrapper_NoopWithoutAPIKey(t *testing.T) {
	w := InitializePosthogClient("", "https://eu.i.posthog.com", slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() {
		w.Enqueue("municipality:1", "approval_request_approved", map[string]any{"email_sent": true})
		w.Close()
	})
}

func TestPosthogClientWrapper_NilIsSafe(t *testing.T) {
	var w *PosthogClientWrapper

	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() { w.Enqueue("x", "y", nil) })
}
