package treefile

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"

	"github.com/pontaoski/astrender/ast"
)

type decoder struct{}

func (d *decoder) fail(path string, format string, args ...interface{}) {
	panic(&DecodeError{Path: path, Msg: fmt.Sprintf(format, args...)})
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// object is one mapping being decoded. Every key must be consumed; leftovers
// are reported as unknown fields.
type object struct {
	d    *decoder
	path string
	m    map[string]interface{}
	used map[string]bool
}

func (d *decoder) object(v interface{}, path string) *object {
	m, ok := v.(map[string]interface{})
	if !ok {
		d.fail(path, "expected a mapping, got %s", describe(v))
	}
	return &object{d: d, path: path, m: m, used: map[string]bool{"kind": true}}
}

func (o *object) raw(key string) (interface{}, bool) {
	o.used[key] = true
	v, ok := o.m[key]
	return v, ok && v != nil
}

func (o *object) done() {
	var unknown []string
	for k := range o.m {
		if !o.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) != 0 {
		sort.Strings(unknown)
		o.d.fail(o.path, "unknown fields %v", unknown)
	}
}

func (o *object) str(key string) string {
	v, ok := o.raw(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.d.fail(join(o.path, key), "expected a string, got %s", describe(v))
	}
	return s
}

func (o *object) requiredStr(key string) string {
	if _, ok := o.raw(key); !ok {
		o.d.fail(join(o.path, key), "missing")
	}
	return o.str(key)
}

func (o *object) flag(key string) bool {
	v, ok := o.raw(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		o.d.fail(join(o.path, key), "expected a bool, got %s", describe(v))
	}
	return b
}

func (o *object) list(key string) []interface{} {
	v, ok := o.raw(key)
	if !ok {
		return nil
	}
	l, ok := v.([]interface{})
	if !ok {
		o.d.fail(join(o.path, key), "expected a list, got %s", describe(v))
	}
	return l
}

func (o *object) strs(key string) []string {
	var out []string
	for i, v := range o.list(key) {
		s, ok := v.(string)
		if !ok {
			o.d.fail(index(join(o.path, key), i), "expected a string, got %s", describe(v))
		}
		out = append(out, s)
	}
	return out
}

// child decodes an optional child node.
func (o *object) child(key string) ast.Node {
	v, ok := o.raw(key)
	if !ok {
		return nil
	}
	return o.d.node(v, join(o.path, key))
}

func (o *object) required(key string) ast.Node {
	n := o.child(key)
	if n == nil {
		o.d.fail(join(o.path, key), "missing")
	}
	return n
}

func (o *object) children(key string) []ast.Node {
	var out []ast.Node
	for i, v := range o.list(key) {
		out = append(out, o.d.node(v, index(join(o.path, key), i)))
	}
	return out
}

// spelling reports a failed token lookup at key.
func (o *object) spelling(key string, err error) {
	if err != nil {
		o.d.fail(join(o.path, key), "%v", err)
	}
}

func describe(v interface{}) string {
	if v == nil {
		return "nothing"
	}
	return fmt.Sprintf("%T", v)
}

// number turns a scalar into a BigNum. Integers may be given as strings so
// that they can exceed 64 bits.
func (d *decoder) number(v interface{}, path string) *ast.BigNum {
	switch v := v.(type) {
	case int:
		return ast.NewInt(int64(v))
	case int64:
		return ast.NewInt(v)
	case uint64:
		return ast.NewUint(new(big.Int).SetUint64(v), false)
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			d.fail(path, "%v is not a number literal", v)
		}
		return ast.NewFloat(v)
	case string:
		if i, ok := new(big.Int).SetString(v, 0); ok {
			neg := i.Sign() < 0
			return ast.NewUint(i.Abs(i), neg)
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return d.number(f, path)
		}
		d.fail(path, "%q is not a number", v)
	default:
		d.fail(path, "expected a number, got %s", describe(v))
	}
	return nil
}

func (d *decoder) char(v interface{}, path string) byte {
	switch v := v.(type) {
	case string:
		if len(v) == 1 {
			return v[0]
		}
	case int:
		if v >= 0 && v <= math.MaxUint8 {
			return byte(v)
		}
	case int64:
		if v >= 0 && v <= math.MaxUint8 {
			return byte(v)
		}
	}
	d.fail(path, "expected a single byte, got %v", v)
	return 0
}
