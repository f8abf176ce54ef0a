package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports"
)

// Handler holds the HTTP handlers.
type Handler struct {
	cache   ports.GroupCache
	logger  ports.Logger
	metrics *Metrics
}

// NewHandler creates a new handler for the given cache.
func NewHandler(cache ports.GroupCache, logger ports.Logger, metrics *Metrics) *Handler {
	return &Handler{
		cache:   cache,
		logger:  logger,
		metrics: metrics,
	}
}

// GroupResponse is the JSON form of a FilesGroup.
type GroupResponse struct {
	Name     string            `json:"name"`
	JS       []string          `json:"js"`
	CSS      []string          `json:"css"`
	Minified map[string]string `json:"minified"`
}

// GroupsResponse lists the groups of the cache.
type GroupsResponse struct {
	Digest string   `json:"digest"`
	Groups []string `json:"groups"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListGroups handles GET /groups.
func (h *Handler) ListGroups(c echo.Context) error {
	stats, ok, err := h.ready(c)
	if !ok {
		return err
	}

	if notModified(c, stats.Digest) {
		return c.NoContent(http.StatusNotModified)
	}

	names, err := h.cache.Groups()
	if err != nil {
		return h.notReady(c, err)
	}
	return c.JSON(http.StatusOK, GroupsResponse{Digest: stats.Digest, Groups: names})
}

// GetGroup handles GET /groups/:name.
func (h *Handler) GetGroup(c echo.Context) error {
	stats, ok, err := h.ready(c)
	if !ok {
		return err
	}

	name := c.Param("name")
	g, err := h.cache.Group(name)
	if err != nil {
		return h.notReady(c, err)
	}
	if g == nil {
		h.metrics.lookup(resultMiss)
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("group %s not found", name)})
	}
	h.metrics.lookup(resultHit)

	if notModified(c, stats.Digest) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, toGroupResponse(g))
}

// ready makes sure the cache is loaded. When it reports false the response has
// already been written and the returned error is the handler's result.
func (h *Handler) ready(c echo.Context) (domain.LoadStats, bool, error) {
	if err := h.cache.Init(c.Request().Context()); err != nil {
		return domain.LoadStats{}, false, h.notReady(c, err)
	}
	stats, err := h.cache.Stats()
	if err != nil {
		return domain.LoadStats{}, false, h.notReady(c, err)
	}
	h.metrics.groups.Set(float64(stats.Groups))
	return stats, true, nil
}

func (h *Handler) notReady(c echo.Context, err error) error {
	h.metrics.lookup(resultNotReady)
	h.logger.Error(err)
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: domain.ErrNotInitialized.Error()})
}

// notModified sets the ETag for digest and reports whether the client already has it.
func notModified(c echo.Context, digest string) bool {
	etag := strconv.Quote(digest)
	c.Response().Header().Set("ETag", etag)
	return c.Request().Header.Get("If-None-Match") == etag
}

func toGroupResponse(g *domain.FilesGroup) GroupResponse {
	resp := GroupResponse{
		Name:     g.Name(),
		JS:       g.JSFiles(),
		CSS:      g.CSSFiles(),
		Minified: make(map[string]string),
	}
	if resp.JS == nil {
		resp.JS = []string{}
	}
	if resp.CSS == nil {
		resp.CSS = []string{}
	}
	for _, t := range domain.ResourceTypes {
		if p, ok := g.MinifiedFile(t); ok {
			resp.Minified[t.String()] = p
		}
	}
	return resp
}
