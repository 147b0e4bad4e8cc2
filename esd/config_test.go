package esd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shesd/esd"
)

// TestLoadParameter_Defaults keeps defaults for an empty or partial document.
func TestLoadParameter_Defaults(t *testing.T) {
	p, err := esd.LoadParameter(nil)
	require.NoError(t, err)
	assert.Equal(t, esd.DefaultParameter(), p)

	p, err = esd.LoadParameter([]byte("alpha: 0.01\n"))
	require.NoError(t, err)
	assert.Equal(t, esd.Parameter{K: esd.DefaultK, Alpha: 0.01, Tail: esd.BothTails}, p)
}

// TestLoadParameter_Full decodes every key.
func TestLoadParameter_Full(t *testing.T) {
	p, err := esd.LoadParameter([]byte("k: 0.2\nalpha: 0.001\ntail: Upper\n"))
	require.NoError(t, err)
	assert.Equal(t, esd.Parameter{K: 0.2, Alpha: 0.001, Tail: esd.UpperTail}, p)
}

// TestLoadParameter_Errors covers validation, unknown tails and unknown keys.
func TestLoadParameter_Errors(t *testing.T) {
	_, err := esd.LoadParameter([]byte("k: 1.5\n"))
	assert.ErrorIs(t, err, esd.ErrInvalidK)

	_, err = esd.LoadParameter([]byte("alpha: -0.1\n"))
	assert.ErrorIs(t, err, esd.ErrInvalidAlpha)

	_, err = esd.LoadParameter([]byte("tail: sideways\n"))
	assert.ErrorIs(t, err, esd.ErrUnknownTail)

	_, err = esd.LoadParameter([]byte("kk: 0.2\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = esd.LoadParameter([]byte("k: [\n"))
	assert.Error(t, err, "syntax errors surface")
}

// TestParameter_YAMLRoundTrip marshals with the text tail and decodes back.
func TestParameter_YAMLRoundTrip(t *testing.T) {
	in := esd.Parameter{K: 0.3, Alpha: 0.02, Tail: esd.LowerTail}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tail: lower")

	out, err := esd.LoadParameter(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	var direct esd.Parameter
	direct.K = 0.4
	require.NoError(t, yaml.Unmarshal([]byte("tail: upper\n"), &direct))
	assert.Equal(t, esd.Parameter{K: 0.4, Tail: esd.UpperTail}, direct, "absent keys keep receiver values")
}

// TestTail_Text checks String and the text codec.
func TestTail_Text(t *testing.T) {
	assert.Equal(t, "both", esd.BothTails.String())
	assert.Equal(t, "upper", esd.UpperTail.String())
	assert.Equal(t, "lower", esd.LowerTail.String())
	assert.Equal(t, "Tail(9)", esd.Tail(9).String())

	var tail esd.Tail
	require.NoError(t, tail.UnmarshalText([]byte(" two-sided ")))
	assert.Equal(t, esd.BothTails, tail)

	_, err := esd.Tail(9).MarshalText()
	assert.ErrorIs(t, err, esd.ErrUnknownTail)
}

// TestParameter_MaxOutliers floors n·K.
func TestParameter_MaxOutliers(t *testing.T) {
	p := esd.Parameter{K: 0.49}
	assert.Equal(t, 0, p.MaxOutliers(0))
	assert.Equal(t, 0, p.MaxOutliers(2))
	assert.Equal(t, 2, p.MaxOutliers(5))
	assert.Equal(t, 49, p.MaxOutliers(100))
}
