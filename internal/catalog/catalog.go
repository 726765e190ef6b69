package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/arbor/internal/hierarchy"
	"github.com/fyrsmithlabs/arbor/internal/manifest"
)

// ErrTreeNotFound is returned when no tree with the requested name is
// registered.
var ErrTreeNotFound = errors.New("tree not found")

// Catalog is a registry of trees keyed by root name. All methods are safe
// for concurrent use; loads take the write lock, queries the read lock, so
// a reload never races a traversal.
type Catalog struct {
	mu       sync.RWMutex
	trees    map[string]hierarchy.Node
	logger   *zap.Logger
	metrics  *Metrics
	maxDepth int
}

// Option customizes a Catalog.
type Option func(*Catalog)

// WithMaxDepth sets the Find traversal ceiling used for catalog queries.
func WithMaxDepth(depth int) Option {
	return func(c *Catalog) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}

// New creates an empty catalog. A nil logger disables logging.
func New(logger *zap.Logger, opts ...Option) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{
		trees:    make(map[string]hierarchy.Node),
		logger:   logger.Named("catalog"),
		metrics:  NewMetrics(),
		maxDepth: hierarchy.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadFile loads a manifest file, builds its tree, and registers it under
// its root name, replacing any previous tree with that name. It returns the
// registered name.
func (c *Catalog) LoadFile(path string) (string, error) {
	spec, err := manifest.Load(path)
	if err != nil {
		c.metrics.RecordLoad("error")
		return "", fmt.Errorf("load manifest %s: %w", path, err)
	}
	root, err := spec.Build()
	if err != nil {
		c.metrics.RecordLoad("error")
		return "", fmt.Errorf("build tree from %s: %w", path, err)
	}

	c.mu.Lock()
	c.trees[root.Name()] = root
	size := len(c.trees)
	c.mu.Unlock()

	c.metrics.RecordLoad("ok")
	c.metrics.SetTreeCount(size)
	c.logger.Info("tree loaded",
		zap.String("tree", root.Name()),
		zap.String("path", path),
		zap.Int64("metric", root.Metric()),
	)
	return root.Name(), nil
}

// Get returns the tree registered under name.
func (c *Catalog) Get(name string) (hierarchy.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	root, ok := c.trees[name]
	return root, ok
}

// Names returns the registered tree names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.trees))
	for name := range c.trees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove unregisters a tree. It reports whether the tree existed.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.trees[name]; !ok {
		return false
	}
	delete(c.trees, name)
	c.metrics.SetTreeCount(len(c.trees))
	return true
}

// MetricOf returns the aggregate metric of the subtree at path within the
// named tree. An empty path means the whole tree.
func (c *Catalog) MetricOf(tree string, at hierarchy.Path) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	root, ok := c.trees[tree]
	if !ok {
		return 0, fmt.Errorf("%q: %w", tree, ErrTreeNotFound)
	}
	node := root
	if len(at) > 0 {
		var err error
		node, err = hierarchy.Resolve(root, at)
		if err != nil {
			return 0, err
		}
	}

	start := time.Now()
	metric := node.Metric()
	c.metrics.RecordQuery("metric", time.Since(start))
	return metric, nil
}

// Find runs a predicate search over the named tree.
func (c *Catalog) Find(tree string, pred hierarchy.Predicate) ([]hierarchy.Path, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	root, ok := c.trees[tree]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tree, ErrTreeNotFound)
	}

	start := time.Now()
	paths, err := root.Find(pred, hierarchy.WithMaxDepth(c.maxDepth))
	if err != nil {
		return nil, err
	}
	c.metrics.RecordQuery("find", time.Since(start))
	c.logger.Debug("find completed",
		zap.String("tree", tree),
		zap.Int("matches", len(paths)),
	)
	return paths, nil
}
