// Package document reads graph files: the vertices, edges, orientation,
// algorithm and source of one run, written as TOML, YAML or JSON.
//
//	algorithm = "dijkstra"
//	directed  = true
//	source    = "A"
//
//	[[nodes]]
//	id = "A"
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 5
//
// Documents are validated on load. Dijkstra documents must not carry negative
// weights; the recorder itself never checks them.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepwalk/core"
	"github.com/katalvlaran/stepwalk/engine"
	"github.com/katalvlaran/stepwalk/render"
	"github.com/katalvlaran/stepwalk/steps"
)

var (
	// ErrUnknownFormat is returned for a file extension or format name that
	// is not toml, yaml, yml or json.
	ErrUnknownFormat = errors.New("document: unknown format")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("document: invalid graph document")
)

// Format names an encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Document is one graph file.
type Document struct {
	Algorithm steps.Algorithm `json:"algorithm" toml:"algorithm" yaml:"algorithm" validate:"omitempty,oneof=bfs dfs dijkstra"`
	Directed  bool            `json:"directed" toml:"directed" yaml:"directed"`
	Source    string          `json:"source" toml:"source" yaml:"source"`
	Nodes     []core.Vertex   `json:"nodes" toml:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
	Edges     []core.Edge     `json:"edges" toml:"edges" yaml:"edges" validate:"dive"`
}

// Request turns the document into an engine request. Empty fields of the
// document are filled from the given overrides first.
func (d *Document) Request(alg steps.Algorithm, source string) engine.Request {
	if alg == "" {
		alg = d.Algorithm
	}
	if alg == "" {
		alg = steps.BFS
	}
	if source == "" {
		source = d.Source
	}

	return engine.Request{
		Algorithm: alg,
		Vertices:  d.Nodes,
		Edges:     d.Edges,
		Directed:  d.Directed,
		Source:    source,
	}
}

// Graph returns the drawable graph.
func (d *Document) Graph() render.Graph {
	return render.Graph{Vertices: d.Nodes, Edges: d.Edges, Directed: d.Directed}
}

// VertexIDs lists the node ids in file order.
func (d *Document) VertexIDs() []string {
	ids := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		ids[i] = n.ID
	}

	return ids
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(documentRules, Document{})
}

// documentRules rejects negative weights on Dijkstra documents.
func documentRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(Document)
	if d.Algorithm != steps.Dijkstra {
		return
	}
	for i, e := range d.Edges {
		if e.Weight < 0 {
			sl.ReportError(e.Weight, fmt.Sprintf("Edges[%d].Weight", i), "Weight", "nonnegative", "")
		}
	}
}

// Validate checks field rules and the Dijkstra weight rule.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Parse decodes and validates data in format f.
func Parse(data []byte, f Format) (*Document, error) {
	var d Document
	var err error
	switch f {
	case TOML:
		err = toml.Unmarshal(data, &d)
	case YAML:
		err = yaml.Unmarshal(data, &d)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: decode %s: %w", f, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads the file at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data, f)
}

// Encode writes d in format f. The output parses back with Parse.
func Encode(d *Document, f Format) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case TOML:
		if err := toml.NewEncoder(&buf).Encode(d); err != nil {
			return nil, fmt.Errorf("document: encode toml: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("document: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case JSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("document: encode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return buf.Bytes(), nil
}
