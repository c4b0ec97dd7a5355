package logger

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger(uint32(log.DebugLevel))
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.SetWriter(&buf)
	assert.Equal(t, &buf, l.Writer())

	l.Debugf("debug %s", "line")
	l.Warn("warn line")
	assert.Contains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "warn line")
}

func TestLogger_LevelFilters(t *testing.T) {
	l := NewLogger(DefaultLevel)
	var buf bytes.Buffer
	l.SetWriter(&buf)

	l.Infof("quiet")
	l.Warnf("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewDiscard(t *testing.T) {
	l := NewDiscard()
	assert.NotPanics(t, func() {
		l.Errorf("dropped %d", 1)
		l.Info("dropped")
	})
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		" error ": log.ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, uint32(want), got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
