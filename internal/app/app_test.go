package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresStoreAndMetrics(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Dir = t.TempDir()
	cfg.MetricsFile = filepath.Join(t.TempDir(), "securedb.prom")

	a, err := New(*cfg, "key")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Dir, DefaultFile), a.Store.Path())

	// The bootstrap write is counted because metrics attach before it.
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.Events.WithLabelValues("saved")))

	require.NoError(t, a.Store.Add("a", 1))
	require.NoError(t, a.Close())

	b, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `securedb_events_total{kind="recordAdded"} 1`)
}

func TestNew_RequiresKey(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Dir = t.TempDir()
	_, err := New(*cfg, "")
	assert.Error(t, err)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Dir = t.TempDir()
	cfg.Cipher = "rot13"
	_, err := New(*cfg, "key")
	assert.Error(t, err)
}
