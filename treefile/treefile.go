// Package treefile reads syntax trees from YAML, JSON or TOML documents.
//
// A node is a mapping with a "kind" key naming its kind (Root, FnDef,
// BinOpExpr, ...) and lower-case keys for its fields. Where a node is
// expected, a bare string is shorthand for a Symbol and a bare number for a
// NumberLiteral. Operators and modifiers are written the way they are spelled
// in source: op: "+", visib: pub, form: "%return", container: struct.
package treefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pelletier/go-toml/v2"
	"github.com/pontaoski/astrender/ast"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/astrender", "treefile")

type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFor picks the document format from a file extension. JSON documents
// are read as YAML.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("%s: unknown tree file extension %q", path, filepath.Ext(path))
}

// DecodeError reports a malformed tree document. Path locates the offending
// value, e.g. "decls[0].proto.params[1].type".
type DecodeError struct {
	Path string
	Msg  string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// Load reads and decodes the tree file at path.
func Load(path string) (ast.Node, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	plog.Debugf("loading %s as %s", path, format)
	return Decode(data, format)
}

// Decode builds a tree from a document.
func Decode(data []byte, format Format) (node ast.Node, err error) {
	var doc interface{}
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case TOML:
		var m map[string]interface{}
		err = toml.Unmarshal(data, &m)
		doc = m
	default:
		err = fmt.Errorf("unknown format %s", format)
	}
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	defer func() {
		if r := recover(); r != nil {
			derr, ok := r.(*DecodeError)
			if !ok {
				panic(r)
			}
			node, err = nil, tracerr.Wrap(derr)
		}
	}()

	d := &decoder{}
	node = d.node(normalize(doc), "")
	plog.Debugf("decoded %s", node.Kind())
	return node, nil
}

// normalize turns the map[interface{}]interface{} values yaml.v2 produces
// into map[string]interface{}, so both formats look alike below.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case map[string]interface{}:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case []interface{}:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	}
	return v
}
