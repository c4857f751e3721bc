package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DisplaysHelpWhenNoPathIsProvided(t *testing.T) {
	t.Parallel()

	outW := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{}, outW)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.True(t, strings.Contains(outW.String(), "Usage:"), "expected help text, got:\n%s", outW.String())
}

func TestParse_PositionalPath(t *testing.T) {
	t.Parallel()

	config, shouldExit, err := Parse([]string{"pipeline.hcl"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "pipeline.hcl", config.PipelinePath)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
	assert.True(t, config.Summary)
}

func TestParse_FlagsOverridePositional(t *testing.T) {
	t.Parallel()

	config, _, err := Parse([]string{
		"--pipeline", "a.hcl",
		"--kinds-path", "kinds",
		"--run", "seed",
		"--summary=false",
		"--log-level", "DEBUG",
		"--log-format", "json",
	}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "a.hcl", config.PipelinePath)
	assert.Equal(t, "kinds", config.KindsPath)
	assert.Equal(t, "seed", config.RunNode)
	assert.False(t, config.Summary)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
}

func TestParse_Shorthand(t *testing.T) {
	t.Parallel()

	config, _, err := Parse([]string{"-p", "b.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "b.hcl", config.PipelinePath)
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--log-format", "xml", "x.hcl"}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	_, _, err = Parse([]string{"--log-level", "verbose", "x.hcl"}, &bytes.Buffer{})
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
