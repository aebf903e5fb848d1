package attrs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/cardview/pkg/view"
)

// SchemaMajor is the document major version this package reads.
const SchemaMajor = "v1"

// Document is a card described in YAML.
//
//	version: 1.0.0
//	display:
//	  density: 2
//	theme:
//	  primaryContainer: "#FFD8E4"
//	attributes:
//	  title: Wi-Fi
//	  summary: Connected\nStrong signal
//	  iconWidth: 24dp
//	content:
//	  - text: Details
type Document struct {
	Version    string            `yaml:"version"`
	Display    DisplayConfig     `yaml:"display,omitempty"`
	Theme      map[string]string `yaml:"theme,omitempty"`
	Attributes Set               `yaml:"attributes"`
	Content    []ContentNode     `yaml:"content,omitempty"`
}

// DisplayConfig overrides the display metrics. Zero values mean 1.
type DisplayConfig struct {
	Density       float64 `yaml:"density,omitempty"`
	ScaledDensity float64 `yaml:"scaledDensity,omitempty"`
	Width         float64 `yaml:"width,omitempty"` // dp
}

// ContentNode is a text node added to the card's content slot.
type ContentNode struct {
	Text  string  `yaml:"text"`
	Size  float64 `yaml:"size,omitempty"` // sp
	Color string  `yaml:"color,omitempty"`
}

// Metrics returns the display metrics the document asks for.
func (d DisplayConfig) Metrics() view.DisplayMetrics {
	m := view.DefaultDisplayMetrics()
	if d.Density > 0 {
		m.Density = d.Density
		m.ScaledDensity = d.Density
	}
	if d.ScaledDensity > 0 {
		m.ScaledDensity = d.ScaledDensity
	}
	return m
}

// ErrUnsupportedVersion is returned for documents whose major version is not
// SchemaMajor.
var ErrUnsupportedVersion = errors.New("unsupported document version")

// ParseDocument decodes and validates a YAML card document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse card document: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	if doc.Attributes == nil {
		doc.Attributes = Set{}
	}
	return &doc, nil
}

// LoadDocument reads and parses the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func checkVersion(version string) error {
	v := strings.TrimSpace(version)
	if v == "" {
		return fmt.Errorf("missing document version")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid document version %q", version)
	}
	if semver.Major(v) != SchemaMajor {
		return fmt.Errorf("%w %s (want %s.x)", ErrUnsupportedVersion, version, SchemaMajor)
	}
	return nil
}
