package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securedb/internal/logger"
	"securedb/internal/metrics"
	"securedb/internal/store"
)

func TestCollector_CountsStoreEvents(t *testing.T) {
	dir := t.TempDir()
	s, err := store.New(dir, "db.enc", "key", store.WithLogger(logger.NewDiscard()))
	require.NoError(t, err)

	c := metrics.New()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))
	c.Attach(s)

	require.NoError(t, s.Add("a", 1))
	require.NoError(t, s.Add("b", 2))
	require.NoError(t, s.Delete("a"))
	require.NoError(t, s.Clear())
	require.NoError(t, os.WriteFile(s.Path(), []byte("junk"), 0o600))
	_, _ = s.Load()

	assert.Equal(t, 4.0, testutil.ToFloat64(c.Events.WithLabelValues("saved")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Events.WithLabelValues("recordAdded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Events.WithLabelValues("recordDeleted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Events.WithLabelValues("databaseCleared")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Events.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Errors.WithLabelValues("decryption")))
}

func TestCollector_RegisterTwiceFails(t *testing.T) {
	c := metrics.New()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))
	assert.Error(t, c.Register(reg))
}

func TestWriteTextfile(t *testing.T) {
	c := metrics.New()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))
	c.Events.WithLabelValues("saved").Inc()

	path := filepath.Join(t.TempDir(), "securedb.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `securedb_events_total{kind="saved"} 1`)
}
