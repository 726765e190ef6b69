package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/arbor/internal/catalog"
	"github.com/fyrsmithlabs/arbor/internal/hierarchy"
)

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ListTreesResponse is the response body for GET /api/v1/trees.
type ListTreesResponse struct {
	Trees []string `json:"trees"`
}

// MetricResponse is the response body for GET /api/v1/trees/:tree/metric.
type MetricResponse struct {
	Tree   string `json:"tree"`
	Path   string `json:"path,omitempty"`
	Metric int64  `json:"metric"`
}

// FindResponse is the response body for GET /api/v1/trees/:tree/find.
type FindResponse struct {
	Tree  string   `json:"tree"`
	Paths []string `json:"paths"`
	Count int      `json:"count"`
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleListTrees returns the registered tree names.
func (s *Server) handleListTrees(c echo.Context) error {
	return c.JSON(http.StatusOK, ListTreesResponse{Trees: s.catalog.Names()})
}

// handleMetric returns the aggregate metric of a tree or, with ?path=, of a
// subtree. Paths are "/"-joined node names starting at the root.
func (s *Server) handleMetric(c echo.Context) error {
	tree := c.Param("tree")

	var at hierarchy.Path
	if raw := c.QueryParam("path"); raw != "" {
		at = hierarchy.Path(strings.Split(raw, "/"))
	}

	metric, err := s.catalog.MetricOf(tree, at)
	if err != nil {
		return s.queryError(c, err)
	}
	return c.JSON(http.StatusOK, MetricResponse{
		Tree:   tree,
		Path:   at.String(),
		Metric: metric,
	})
}

// handleFind searches a tree. Query parameters compose with AND:
//
//	name           exact node name
//	name_contains  substring of the node name
//	min_metric     lower bound on the aggregate metric
//	leaf_only      restrict to leaves
//
// With no parameters every node matches.
func (s *Server) handleFind(c echo.Context) error {
	tree := c.Param("tree")

	pred, err := predicateFromQuery(c)
	if err != nil {
		s.logger.Warn("invalid find request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	paths, err := s.catalog.Find(tree, pred)
	if err != nil {
		return s.queryError(c, err)
	}

	joined := make([]string, len(paths))
	for i, p := range paths {
		joined[i] = p.String()
	}
	return c.JSON(http.StatusOK, FindResponse{
		Tree:  tree,
		Paths: joined,
		Count: len(joined),
	})
}

func predicateFromQuery(c echo.Context) (hierarchy.Predicate, error) {
	var preds []hierarchy.Predicate

	if name := c.QueryParam("name"); name != "" {
		preds = append(preds, hierarchy.NameEquals(name))
	}
	if sub := c.QueryParam("name_contains"); sub != "" {
		preds = append(preds, hierarchy.NameContains(sub))
	}
	if raw := c.QueryParam("min_metric"); raw != "" {
		min, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("min_metric must be an integer")
		}
		preds = append(preds, hierarchy.MetricAtLeast(min))
	}
	if raw := c.QueryParam("leaf_only"); raw != "" {
		leafOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("leaf_only must be a boolean")
		}
		if leafOnly {
			preds = append(preds, hierarchy.IsLeaf())
		}
	}

	if len(preds) == 0 {
		return hierarchy.NameContains(""), nil
	}
	return hierarchy.And(preds...), nil
}

// queryError maps catalog errors to HTTP status codes.
func (s *Server) queryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrTreeNotFound), errors.Is(err, hierarchy.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		s.logger.Error("query failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "query failed")
	}
}
