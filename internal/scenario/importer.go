package scenario

import (
	"io"
	"path/filepath"
	"strings"
)

// Parser reads scenarios out of one on-disk format.
type Parser interface {
	Parse(r io.Reader) ([]Scenario, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	var formats []string
	for key := range r.parsers {
		formats = append(formats, key)
	}
	return formats
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&YAMLParser{})
	r.Register(&CSVParser{})
	return r
}

// DetectFormat maps a file extension to a parser format, or "".
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}

// YAMLParser reads a single-scenario YAML document.
type YAMLParser struct{}

// Parse reads one scenario from a YAML document.
func (p *YAMLParser) Parse(r io.Reader) ([]Scenario, error) {
	sc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return []Scenario{sc}, nil
}

// Format returns the parser's format name.
func (p *YAMLParser) Format() string { return "yaml" }

// CSVParser reads a batch CSV of scenarios, one per row.
type CSVParser struct{}

// Parse reads all scenarios from a batch CSV.
func (p *CSVParser) Parse(r io.Reader) ([]Scenario, error) {
	return ReadScenarios(r)
}

// Format returns the parser's format name.
func (p *CSVParser) Format() string { return "csv" }
