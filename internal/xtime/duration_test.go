package xtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90m")))
	assert.Equal(t, Duration(90*time.Minute), d)

	require.Error(t, d.UnmarshalText([]byte("not a duration")))
}

func TestDurationMarshalText(t *testing.T) {
	text, err := Duration(30 * time.Second).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "30s", string(text))
}
