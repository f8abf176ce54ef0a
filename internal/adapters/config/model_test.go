package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wrotag/internal/adapters/config"
	"go.trai.ch/wrotag/internal/core/domain"
)

const wroXML = `<?xml version="1.0" encoding="UTF-8"?>
<groups xmlns="http://www.isdc.ro/wro">
  <group name="main">
    <js>/static/js/a.js</js>
    <css>/static/css/main.css</css>
    <js>
      /static/js/b.js
    </js>
  </group>
  <group name="admin">
    <css>/static/css/admin.css</css>
  </group>
</groups>
`

func TestParseXMLModel(t *testing.T) {
	model, err := config.ParseXMLModel([]byte(wroXML))
	require.NoError(t, err)
	require.Len(t, model.Groups, 2)

	main := model.Groups[0]
	assert.Equal(t, "main", main.Name)
	assert.Equal(t, []domain.Resource{
		{URI: "/static/js/a.js", Type: domain.JS},
		{URI: "/static/css/main.css", Type: domain.CSS},
		{URI: "/static/js/b.js", Type: domain.JS},
	}, main.Resources)

	assert.Equal(t, "admin", model.Groups[1].Name)
	assert.Equal(t, []string{"/static/css/admin.css"}, model.Groups[1].ResourcesOfType(domain.CSS))
}

func TestParseXMLModel_GroupRefRejected(t *testing.T) {
	_, err := config.ParseXMLModel([]byte(`<groups><group name="all"><group-ref>main</group-ref></group></groups>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedElement)
}

func TestParseXMLModel_Malformed(t *testing.T) {
	_, err := config.ParseXMLModel([]byte(`<groups><group name="main">`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse model file")
}

func TestParseYAMLModel(t *testing.T) {
	content := `
version: "1"
groups:
  - name: main
    resources: [/a.js, /main.css, "/b.js?v=2"]
    js: [/c.js]
  - name: admin
    css: [/admin.css]
`
	model, err := config.ParseYAMLModel([]byte(content))
	require.NoError(t, err)
	require.Len(t, model.Groups, 2)

	assert.Equal(t, []string{"/a.js", "/b.js?v=2", "/c.js"}, model.Groups[0].ResourcesOfType(domain.JS))
	assert.Equal(t, []string{"/main.css"}, model.Groups[0].ResourcesOfType(domain.CSS))
	assert.Equal(t, []string{"/admin.css"}, model.Groups[1].ResourcesOfType(domain.CSS))
}

func TestParseYAMLModel_UnknownResourceType(t *testing.T) {
	_, err := config.ParseYAMLModel([]byte("groups:\n  - name: main\n    resources: [/logo.png]\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownResourceType)
}

func TestNewModelProvider(t *testing.T) {
	tmpDir := t.TempDir()

	p, err := config.NewModelProvider(filepath.Join(tmpDir, "wro.xml"))
	require.NoError(t, err)
	assert.IsType(t, &config.XMLModelProvider{}, p)

	p, err = config.NewModelProvider(filepath.Join(tmpDir, "wro.yml"))
	require.NoError(t, err)
	assert.IsType(t, &config.YAMLModelProvider{}, p)

	_, err = config.NewModelProvider(filepath.Join(tmpDir, "wro.json"))
	require.Error(t, err)
}

func TestModelProvider_ReadsFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "wro.xml")
	writeFile(t, path, wroXML)

	model, err := (&config.XMLModelProvider{Path: path}).Model(context.Background())
	require.NoError(t, err)
	assert.Len(t, model.Groups, 2)

	_, err = (&config.YAMLModelProvider{Path: filepath.Join(tmpDir, "missing.yaml")}).Model(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read model file")
}
