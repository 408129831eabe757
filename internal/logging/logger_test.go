package logging

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestConfig(writer *strings.Builder) Config {
	return Config{
		Writer: writer,
		RunID:  "test-run",
		Level:  InfoLevel,
	}
}

func TestGet_WithoutLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	logger := Get(ctx)

	require.NotNil(t, logger)
	// When no logger is attached, zerolog.Ctx returns a disabled logger
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	config := createTestConfig(&buf)

	ctx, err := New(context.Background(), nil, config)

	require.NoError(t, err)
	require.NotNil(t, ctx)

	logger := Get(ctx)
	require.NotNil(t, logger)
	assert.Equal(t, InfoLevel, logger.GetLevel())
}

func TestNew_TagsRunID(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))
	require.NoError(t, err)

	Get(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"run_id":"test-run"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))
	require.NoError(t, err)

	Get(ctx).Debug().Msg("hidden")
	Get(ctx).Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_ConsoleEcho(t *testing.T) {
	t.Parallel()

	var file, console strings.Builder
	config := createTestConfig(&file)
	config.Console = &console

	ctx, err := New(context.Background(), nil, config)
	require.NoError(t, err)

	Get(ctx).Info().Int("batch", 3).Msg("batch processed")

	assert.Contains(t, file.String(), `"batch":3`)
	assert.Contains(t, console.String(), "batch processed")
	assert.Contains(t, console.String(), "batch=")
}

func TestNew_WithFilesystem(t *testing.T) {
	t.Parallel()

	ctx, err := New(context.Background(), afero.NewMemMapFs(), Config{RunID: "run", Level: InfoLevel})

	require.NoError(t, err)
	assert.NotNil(t, Get(ctx))
}

func TestNew_NoWriterNoFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	config := Config{
		Writer: nil, // No writer provided
		RunID:  "test-run",
		Level:  InfoLevel,
	}

	ctx, err := New(context.Background(), nil, config) // No filesystem provided

	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem required when no writer provided")
	assert.Nil(t, ctx)
}

func TestOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, orDefault(5, 10))
	assert.Equal(t, 10, orDefault(0, 10))
	assert.Equal(t, 10, orDefault(-1, 10))
}
