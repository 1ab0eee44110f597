package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIdleInput(t *testing.T) {
	assert.NoError(t, validateIdleInput(" 5 "))
	assert.Error(t, validateIdleInput("0"))
	assert.Error(t, validateIdleInput("-3"))
	assert.Error(t, validateIdleInput("2.5"))
	assert.Error(t, validateIdleInput("soon"))
}

func TestPromptRoundTrip(t *testing.T) {
	c := Defaults()

	opts := promptDefaults(c)
	assert.Equal(t, "Firefox\nCode\nSafari", opts.Allowlist)
	assert.Equal(t, "2", opts.IdleThreshold)

	opts.Allowlist = "Code\n\n  Xcode \nCode"
	opts.IdleThreshold = "10"
	opts.WorkingColor = " #112233 "
	opts.ShowStatusBar = false

	require.NoError(t, applyPromptOptions(c, opts))
	require.NoError(t, c.Validate())

	assert.Equal(t, []string{"Code", "Xcode"}, c.Allowlist)
	assert.InDelta(t, 10.0, c.IdleThreshold, 0)
	assert.Equal(t, "#112233", c.Colors.Working)
	assert.False(t, c.ShowStatusBar)

	opts.IdleThreshold = "ten"
	assert.Error(t, applyPromptOptions(c, opts))
}
