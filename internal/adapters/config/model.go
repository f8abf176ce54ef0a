package config

import (
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wrotag/internal/core/domain"
	"go.trai.ch/wrotag/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.ModelProvider = (*XMLModelProvider)(nil)
	_ ports.ModelProvider = (*YAMLModelProvider)(nil)
)

// NewModelProvider returns the provider matching the extension of the model file.
func NewModelProvider(path string) (ports.ModelProvider, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return &XMLModelProvider{Path: path}, nil
	case ".yaml", ".yml":
		return &YAMLModelProvider{Path: path}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedModelFormat, ""), "path", path)
	}
}

// XMLModelProvider reads a wro.xml model file.
type XMLModelProvider struct {
	Path string
}

// Model implements ports.ModelProvider.
func (p *XMLModelProvider) Model(ctx context.Context) (*domain.Model, error) {
	data, err := readModelFile(ctx, p.Path)
	if err != nil {
		return nil, err
	}
	return ParseXMLModel(data)
}

// ParseXMLModel decodes a wro.xml document. Only js and css children are supported;
// group-ref and any other element are rejected.
func ParseXMLModel(data []byte) (*domain.Model, error) {
	var doc xmlGroups
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse model file")
	}

	model := &domain.Model{Groups: make([]domain.Group, 0, len(doc.Groups))}
	for _, g := range doc.Groups {
		group := domain.Group{Name: strings.TrimSpace(g.Name)}
		for _, child := range g.Children {
			uri := strings.TrimSpace(child.Value)
			switch child.XMLName.Local {
			case "js":
				group.Resources = append(group.Resources, domain.Resource{URI: uri, Type: domain.JS})
			case "css":
				group.Resources = append(group.Resources, domain.Resource{URI: uri, Type: domain.CSS})
			default:
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnsupportedElement, ""), "element", child.XMLName.Local), "group", group.Name)
			}
		}
		model.Groups = append(model.Groups, group)
	}

	return model, nil
}

// YAMLModelProvider reads a wro.yaml model file.
type YAMLModelProvider struct {
	Path string
}

// Model implements ports.ModelProvider.
func (p *YAMLModelProvider) Model(ctx context.Context) (*domain.Model, error) {
	data, err := readModelFile(ctx, p.Path)
	if err != nil {
		return nil, err
	}
	return ParseYAMLModel(data)
}

// ParseYAMLModel decodes a wro.yaml document. Within a group, untyped resources
// come first, followed by the explicit js and css lists.
func ParseYAMLModel(data []byte) (*domain.Model, error) {
	var wrofile Wrofile
	if err := yaml.Unmarshal(data, &wrofile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse model file")
	}

	model := &domain.Model{Groups: make([]domain.Group, 0, len(wrofile.Groups))}
	for _, dto := range wrofile.Groups {
		group := domain.Group{Name: dto.Name}

		for _, uri := range dto.Resources {
			t, err := domain.ResourceTypeOf(uri)
			if err != nil {
				return nil, zerr.With(err, "group", dto.Name)
			}
			group.Resources = append(group.Resources, domain.Resource{URI: uri, Type: t})
		}
		for _, uri := range dto.JS {
			group.Resources = append(group.Resources, domain.Resource{URI: uri, Type: domain.JS})
		}
		for _, uri := range dto.CSS {
			group.Resources = append(group.Resources, domain.Resource{URI: uri, Type: domain.CSS})
		}

		model.Groups = append(model.Groups, group)
	}

	return model, nil
}

func readModelFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the settings file
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read model file"), "path", path)
	}
	return data, nil
}
