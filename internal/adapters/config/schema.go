package config

import "encoding/xml"

// SettingsFile represents the structure of the wrotag.yaml settings file.
type SettingsFile struct {
	Version     string      `yaml:"version"`
	Model       string      `yaml:"model"`
	Minified    MinifiedDTO `yaml:"minified"`
	StrictNames bool        `yaml:"strictNames"`
}

// MinifiedDTO describes where minified bundles are found and how they are addressed.
type MinifiedDTO struct {
	Dir       string   `yaml:"dir"`
	URLPrefix string   `yaml:"urlPrefix"`
	Ignore    []string `yaml:"ignore"`
}

// Wrofile represents the structure of a wro.yaml model file.
type Wrofile struct {
	Version string     `yaml:"version"`
	Groups  []GroupDTO `yaml:"groups"`
}

// GroupDTO represents a group definition in a wro.yaml model file.
// Resources are typed by extension; JS and CSS list typed resources explicitly.
type GroupDTO struct {
	Name      string   `yaml:"name"`
	Resources []string `yaml:"resources"`
	JS        []string `yaml:"js"`
	CSS       []string `yaml:"css"`
}

// xmlGroups is the root element of a wro.xml model file.
type xmlGroups struct {
	XMLName xml.Name   `xml:"groups"`
	Groups  []xmlGroup `xml:"group"`
}

// xmlGroup keeps its children in document order so resource order survives decoding.
type xmlGroup struct {
	Name     string     `xml:"name,attr"`
	Children []xmlChild `xml:",any"`
}

type xmlChild struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}
