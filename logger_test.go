package gendex_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gendex"
)

func newBufferLogger() (*gendex.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return gendex.NewLogger(handler), &buf
}

func TestLoggerLogSave(t *testing.T) {
	logger, buf := newBufferLogger()

	logger.LogSave(context.Background(), 3, 128, nil)

	out := buf.String()
	assert.Contains(t, out, "snapshot saved")
	assert.Contains(t, out, "sections=3")
	assert.Contains(t, out, "bytes=128")
}

func TestLoggerLogSaveError(t *testing.T) {
	logger, buf := newBufferLogger()

	logger.LogSave(context.Background(), 1, 0, errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "snapshot save failed")
	assert.Contains(t, out, "disk full")
}

func TestLoggerLogLoad(t *testing.T) {
	logger, buf := newBufferLogger()

	logger.LogLoad(context.Background(), 2, 64, nil)
	logger.LogLoad(context.Background(), 0, 0, errors.New("bad magic"))

	out := buf.String()
	assert.Contains(t, out, "snapshot loaded")
	assert.Contains(t, out, "snapshot load failed")
	assert.Contains(t, out, "bad magic")
}

func TestLoggerLogVerify(t *testing.T) {
	logger, buf := newBufferLogger()

	logger.LogVerify(context.Background(), "state.gdx", nil)
	logger.LogVerify(context.Background(), "broken.gdx", errors.New("checksum mismatch"))

	out := buf.String()
	assert.Contains(t, out, "snapshot verified")
	assert.Contains(t, out, "file=state.gdx")
	assert.Contains(t, out, "snapshot verify failed")
	assert.Contains(t, out, "checksum mismatch")
}

func TestLoggerWithHelpers(t *testing.T) {
	logger, buf := newBufferLogger()

	logger.WithFile("state.gdx").WithSection("positions").WithCodec("json").WithCount(7).Info("section written")

	out := buf.String()
	assert.Contains(t, out, "file=state.gdx")
	assert.Contains(t, out, "section=positions")
	assert.Contains(t, out, "codec=json")
	assert.Contains(t, out, "count=7")
}

func TestNewLoggerNilHandler(t *testing.T) {
	logger := gendex.NewLogger(nil)
	assert.NotNil(t, logger)
}

func TestNoopLogger(t *testing.T) {
	logger := gendex.NoopLogger()
	assert.NotNil(t, logger)

	// Must not panic, everything is below the handler's level.
	logger.Info("dropped")
	logger.Error("dropped")
}
