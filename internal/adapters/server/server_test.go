package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrotag/internal/adapters/server"
	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const digest = "00000000deadbeef"

func mainGroup(t *testing.T) *domain.FilesGroup {
	t.Helper()
	set, err := domain.NewGroupSet(&domain.Model{Groups: []domain.Group{{
		Name: "main",
		Resources: []domain.Resource{
			{URI: "/a.js", Type: domain.JS},
			{URI: "/b.js", Type: domain.JS},
		},
	}}})
	require.NoError(t, err)
	set.Attach(domain.MinifiedName{Path: "/min/main-a1b2.js", Group: "main", Type: domain.JS})
	return set.Get("main")
}

func newServer(t *testing.T) (*server.Server, *mocks.MockGroupCache, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockGroupCache(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	return server.New(mockCache, mockLogger), mockCache, mockLogger
}

func expectReady(mockCache *mocks.MockGroupCache) {
	mockCache.EXPECT().Init(gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Stats().Return(domain.LoadStats{Groups: 1, Digest: digest}, nil).AnyTimes()
}

func get(srv http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _, _ := newServer(t)

	rec := get(srv, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetGroup(t *testing.T) {
	srv, mockCache, _ := newServer(t)
	expectReady(mockCache)
	mockCache.EXPECT().Group("main").Return(mainGroup(t), nil)

	rec := get(srv, "/groups/main")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"`+digest+`"`, rec.Header().Get("ETag"))

	var resp server.GroupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "main", resp.Name)
	assert.Equal(t, []string{"/a.js", "/b.js"}, resp.JS)
	assert.Empty(t, resp.CSS)
	assert.Equal(t, map[string]string{"js": "/min/main-a1b2.js"}, resp.Minified)
}

func TestGetGroup_NotModified(t *testing.T) {
	srv, mockCache, _ := newServer(t)
	expectReady(mockCache)
	mockCache.EXPECT().Group("main").Return(mainGroup(t), nil)

	rec := get(srv, "/groups/main", "If-None-Match", `"`+digest+`"`)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetGroup_NotFound(t *testing.T) {
	srv, mockCache, _ := newServer(t)
	expectReady(mockCache)
	mockCache.EXPECT().Group("missing").Return(nil, nil)

	rec := get(srv, "/groups/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"group missing not found"}`, rec.Body.String())
}

func TestGetGroup_NotInitialized(t *testing.T) {
	srv, mockCache, mockLogger := newServer(t)
	mockCache.EXPECT().Init(gomock.Any()).Return(errors.Join(domain.ErrNotInitialized, errors.New("boom")))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	rec := get(srv, "/groups/main")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrNotInitialized.Error())
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestListGroups(t *testing.T) {
	srv, mockCache, _ := newServer(t)
	expectReady(mockCache)
	mockCache.EXPECT().Groups().Return([]string{"admin", "main"}, nil)

	rec := get(srv, "/groups")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"digest":"`+digest+`","groups":["admin","main"]}`, rec.Body.String())

	rec = get(srv, "/groups", "If-None-Match", `"`+digest+`"`)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestMetrics(t *testing.T) {
	srv, mockCache, _ := newServer(t)
	expectReady(mockCache)
	mockCache.EXPECT().Group("main").Return(mainGroup(t), nil)
	mockCache.EXPECT().Group("missing").Return(nil, nil)

	get(srv, "/groups/main")
	get(srv, "/groups/missing")

	rec := get(srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `wrotag_group_lookups_total{result="hit"} 1`)
	assert.Contains(t, body, `wrotag_group_lookups_total{result="miss"} 1`)
	assert.Contains(t, body, "wrotag_groups 1")
}
