// Package render turns a syntax tree back into canonical source text.
//
// Output is a re-rendering, not a formatting-preserving echo: comments and
// original whitespace are gone, and every binary expression is wrapped in
// parentheses so that no precedence table is needed.
package render

import (
	"io"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/astrender/ast"
	"github.com/pontaoski/astrender/errors"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/astrender", "render")

// output is the sink shared by every printer of one Render call. The first
// write error sticks and silences the rest.
type output struct {
	w   io.Writer
	err error
}

func (o *output) WriteString(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// printer is passed by value; nested() gives the children one more level of
// indentation without touching the caller's copy.
type printer struct {
	out   *output
	depth int
	unit  int
}

func (p printer) nested() printer {
	p.depth++
	return p
}

func (p printer) write(ss ...string) {
	for _, s := range ss {
		p.out.WriteString(s)
	}
}

func (p printer) indent() {
	if n := p.depth * p.unit; n > 0 {
		p.out.WriteString(strings.Repeat(" ", n))
	}
}

// Render writes the source text of node to w, indenting nested constructs by
// indentSize spaces per level.
//
// Reaching a node kind that has no rendering yet, or an operator or modifier
// outside its table, aborts the render and returns the fault wrapped with a
// stack trace. Whatever was already written to w is then a truncated fragment
// and must be discarded.
func Render(w io.Writer, node ast.Node, indentSize int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := errors.AsFault(r)
			if !ok {
				panic(r)
			}
			plog.Debugf("render aborted: %v", fault)
			err = tracerr.Wrap(fault)
		}
	}()

	plog.Tracef("rendering %s with indent %d", node.Kind(), indentSize)

	p := printer{out: &output{w: w}, unit: indentSize}
	p.node(node)
	return p.out.err
}

// String renders node into a string.
func String(node ast.Node, indentSize int) (string, error) {
	var b strings.Builder
	if err := Render(&b, node, indentSize); err != nil {
		return "", err
	}
	return b.String(), nil
}
