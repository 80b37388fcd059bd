package typefix

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/reoring/typefix/value"
	"gopkg.in/yaml.v3"
)

// LoadSchemaYAML reads the first YAML document in data as a schema. Mapping
// order is kept, so properties and patternProperties run in file order.
func LoadSchemaYAML(data []byte) (Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Schema{}, violation("", CodeParseError, "invalid YAML schema: empty document", nil)
		}
		return Schema{}, violation("", CodeParseError, "invalid YAML schema: "+err.Error(), nil)
	}
	w := yamlWalker{budget: maxYAMLNodes}
	node, err := w.value(&doc, 0)
	if err != nil {
		return Schema{}, violation("", CodeParseError, "invalid YAML schema: "+err.Error(), nil)
	}
	s, err := NewSchema(node)
	if err != nil {
		return Schema{}, violation("", CodeInvalidSchema, err.Error(), nil)
	}
	return s, nil
}

// LoadSchemaFile reads a schema from disk. Files ending in .yaml or .yml are
// read as YAML, everything else as JSON.
func LoadSchemaFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("typefix: read schema: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadSchemaYAML(data)
	default:
		return ParseSchema(data)
	}
}

// maxYAMLNodes caps the nodes built from one YAML schema, counting every
// alias expansion.
const maxYAMLNodes = 100_000

// yamlWalker converts a yaml.Node tree into a Value. Aliases are expanded in
// place, so each expansion is charged against budget.
type yamlWalker struct {
	budget int
}

func (w *yamlWalker) value(n *yaml.Node, depth int) (value.Value, error) {
	if depth > DefaultMaxDepth {
		return value.Value{}, fmt.Errorf("nesting deeper than %d", DefaultMaxDepth)
	}
	if w.budget--; w.budget < 0 {
		return value.Value{}, fmt.Errorf("more than %d nodes after alias expansion", maxYAMLNodes)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(), nil
		}
		return w.value(n.Content[0], depth)
	case yaml.AliasNode:
		return w.value(n.Alias, depth+1)
	case yaml.SequenceNode:
		elems := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := w.value(c, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
		}
		return value.Array(elems...), nil
	case yaml.MappingNode:
		obj := value.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return value.Value{}, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			v, err := w.value(vn, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			obj.Set(k.Value, v)
		}
		return value.ObjectOf(obj), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return value.Value{}, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func yamlScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return value.Int(i), nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return value.Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return value.Value{}, fmt.Errorf("line %d: non-finite number %q", n.Line, n.Value)
		}
		return value.Float(f), nil
	default:
		return value.Text(n.Value), nil
	}
}
