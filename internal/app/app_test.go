package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrotag/internal/app"
	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, opts domain.CacheOptions, paths []string) (*app.App, *bytes.Buffer, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockSource := mocks.NewMockConfigSource(ctrl)
	mockSource.EXPECT().Model(gomock.Any()).Return(mainModel(), nil).MaxTimes(1)
	mockSource.EXPECT().MinifiedPaths(gomock.Any()).Return(paths, nil).MaxTimes(1)

	mockLoader := mocks.NewMockSourceLoader(ctrl)
	mockLoader.EXPECT().Load("wrotag.yaml").Return(mockSource, opts, nil)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var out bytes.Buffer
	a := app.New(mockLoader, mockLogger, app.NewHolder(mockLogger))
	a.SetOutput(&out)
	require.NoError(t, a.Configure("wrotag.yaml", false))
	return a, &out, mockLogger
}

func TestApp_ListGroups(t *testing.T) {
	a, out, _ := newApp(t, domain.CacheOptions{}, []string{"/min/main-a1b2.js", "/min/main-a1b2.css"})

	require.NoError(t, a.ListGroups(context.Background()))

	lines := splitLines(out.String())
	require.Len(t, lines, 3)
	assert.Regexp(t, `^GROUP\s+JS\s+CSS\s+MINIFIED$`, lines[0])
	assert.Regexp(t, `^admin\s+1\s+0\s+-$`, lines[1])
	assert.Regexp(t, `^main\s+2\s+1\s+/min/main-a1b2.js,/min/main-a1b2.css$`, lines[2])
}

func TestApp_ShowGroup(t *testing.T) {
	a, out, _ := newApp(t, domain.CacheOptions{}, []string{"/min/main-a1b2.js"})

	require.NoError(t, a.ShowGroup(context.Background(), "main"))

	assert.Equal(t, "group main\njs:\n  a.js\n  b.js\n  minified: /min/main-a1b2.js\ncss:\n  main.css\n", out.String())
}

func TestApp_ShowGroup_NotFound(t *testing.T) {
	a, _, _ := newApp(t, domain.CacheOptions{}, nil)

	err := a.ShowGroup(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestApp_Check(t *testing.T) {
	a, out, mockLogger := newApp(t, domain.CacheOptions{}, []string{"/min/main-1.js", "/min/other-1.js", "/min/broken.js"})
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	stats, err := a.Check(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Groups)
	assert.Equal(t, 1, stats.Attached)
	assert.Equal(t, 1, stats.Unmatched)
	assert.Equal(t, 1, stats.Malformed)
	assert.Contains(t, out.String(), "malformed: 1")
	assert.Contains(t, out.String(), "digest:    "+stats.Digest)
}

func TestApp_Configure_StrictOverride(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSource := mocks.NewMockConfigSource(ctrl)
	mockSource.EXPECT().Model(gomock.Any()).Return(mainModel(), nil)
	mockSource.EXPECT().MinifiedPaths(gomock.Any()).Return([]string{"/min/broken.js"}, nil)

	mockLoader := mocks.NewMockSourceLoader(ctrl)
	mockLoader.EXPECT().Load("wrotag.yaml").Return(mockSource, domain.CacheOptions{}, nil)

	mockLogger := mocks.NewMockLogger(ctrl)
	a := app.New(mockLoader, mockLogger, app.NewHolder(mockLogger))
	require.NoError(t, a.Configure("wrotag.yaml", true))

	_, err := a.Check(context.Background())
	require.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestApp_Configure_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loadErr := errors.New("settings unreadable")

	mockLoader := mocks.NewMockSourceLoader(ctrl)
	mockLoader.EXPECT().Load("wrotag.yaml").Return(nil, domain.CacheOptions{}, loadErr)

	mockLogger := mocks.NewMockLogger(ctrl)
	a := app.New(mockLoader, mockLogger, app.NewHolder(mockLogger))

	err := a.Configure("wrotag.yaml", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)

	_, err = a.Cache(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConstructed)
}

func splitLines(s string) []string {
	var lines []string
	for _, l := range bytes.Split([]byte(s), []byte("\n")) {
		if len(l) > 0 {
			lines = append(lines, string(bytes.TrimRight(l, " ")))
		}
	}
	return lines
}
