package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/arbor/internal/hierarchy"
	"github.com/fyrsmithlabs/arbor/internal/logging"
)

const sampleManifest = `
name: root
nodes:
  - name: a
    value: 5
  - name: b
    value: 3
  - name: sub
    nodes:
      - name: c
        value: 2
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCatalog_LoadFile(t *testing.T) {
	tl := logging.NewTestLogger()
	c := New(tl.Logger)

	name, err := c.LoadFile(writeManifest(t, sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, "root", name)
	assert.Equal(t, []string{"root"}, c.Names())

	root, ok := c.Get("root")
	require.True(t, ok)
	assert.Equal(t, int64(10), root.Metric())

	tl.AssertLogged(t, zapcore.InfoLevel, "tree loaded")
}

func TestCatalog_LoadFile_Invalid(t *testing.T) {
	c := New(nil)

	_, err := c.LoadFile(writeManifest(t, "nodes:\n  - value: 1\n"))
	assert.Error(t, err)
	assert.Empty(t, c.Names())
}

func TestCatalog_LoadFile_ReplacesExisting(t *testing.T) {
	c := New(nil)

	_, err := c.LoadFile(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	_, err = c.LoadFile(writeManifest(t, "name: root\nnodes:\n  - name: only\n    value: 42\n"))
	require.NoError(t, err)

	metric, err := c.MetricOf("root", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), metric)
	assert.Equal(t, []string{"root"}, c.Names())
}

func TestCatalog_MetricOf(t *testing.T) {
	c := New(nil)
	_, err := c.LoadFile(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	t.Run("whole tree", func(t *testing.T) {
		metric, err := c.MetricOf("root", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(10), metric)
	})

	t.Run("subtree", func(t *testing.T) {
		metric, err := c.MetricOf("root", hierarchy.Path{"root", "sub"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), metric)
	})

	t.Run("unknown tree", func(t *testing.T) {
		_, err := c.MetricOf("absent", nil)
		assert.ErrorIs(t, err, ErrTreeNotFound)
	})

	t.Run("unknown path", func(t *testing.T) {
		_, err := c.MetricOf("root", hierarchy.Path{"root", "nope"})
		assert.ErrorIs(t, err, hierarchy.ErrNotFound)
	})
}

func TestCatalog_Find(t *testing.T) {
	c := New(nil)
	_, err := c.LoadFile(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	paths, err := c.Find("root", hierarchy.NameEquals("c"))
	require.NoError(t, err)
	assert.Equal(t, []hierarchy.Path{{"root", "sub", "c"}}, paths)

	_, err = c.Find("absent", hierarchy.NameEquals("c"))
	assert.ErrorIs(t, err, ErrTreeNotFound)
}

func TestCatalog_FindHonorsMaxDepth(t *testing.T) {
	c := New(nil, WithMaxDepth(2))
	_, err := c.LoadFile(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	// The sample tree is 3 levels deep at root/sub/c.
	_, err = c.Find("root", hierarchy.NameEquals("c"))
	assert.ErrorIs(t, err, hierarchy.ErrDepthExceeded)
}

func TestCatalog_Remove(t *testing.T) {
	c := New(nil)
	_, err := c.LoadFile(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	assert.True(t, c.Remove("root"))
	assert.False(t, c.Remove("root"))
	assert.Empty(t, c.Names())
}

func TestCatalog_Metrics(t *testing.T) {
	c := New(nil)
	before := testutil.ToFloat64(c.metrics.QueriesTotal.WithLabelValues("find"))

	_, err := c.LoadFile(writeManifest(t, sampleManifest))
	require.NoError(t, err)
	_, err = c.Find("root", hierarchy.IsLeaf())
	require.NoError(t, err)

	after := testutil.ToFloat64(c.metrics.QueriesTotal.WithLabelValues("find"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, float64(1), testutil.ToFloat64(c.metrics.TreeCount))
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	c := New(nil)
	w, err := NewWatcher(c, nil)
	require.NoError(t, err)
	defer w.Close()

	path := writeManifest(t, sampleManifest)
	require.NoError(t, w.Watch(path))
	w.Start()

	metric, err := c.MetricOf("root", nil)
	require.NoError(t, err)
	require.Equal(t, int64(10), metric)

	require.NoError(t, os.WriteFile(path, []byte("name: root\nnodes:\n  - name: a\n    value: 99\n"), 0o600))

	require.Eventually(t, func() bool {
		m, err := c.MetricOf("root", nil)
		return err == nil && m == 99
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_CloseWithoutStart(t *testing.T) {
	w, err := NewWatcher(New(nil), nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}
