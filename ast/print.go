package ast

import (
	"io"
	"strings"

	"github.com/pontaoski/astrender/errors"
	"github.com/ztrue/tracerr"
)

// dumpStep is the extra indentation of each level in Fprint.
const dumpStep = 2

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) line(indent int, s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, strings.Repeat(" ", indent)+s+"\n")
}

// Fprint writes the shape of the tree rooted at node to w: one line per node
// holding its kind name, each level indented two spaces deeper than its
// parent, starting at indent.
func Fprint(w io.Writer, node Node, indent int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := errors.AsFault(r)
			if !ok {
				panic(r)
			}
			err = tracerr.Wrap(fault)
		}
	}()

	d := &dumper{w: w}
	Walk(node, func(n Node, depth int) bool {
		d.line(indent+depth*dumpStep, n.Kind().String())
		return d.err == nil
	})
	return d.err
}

// Sprint is Fprint into a string.
func Sprint(node Node, indent int) (string, error) {
	var b strings.Builder
	err := Fprint(&b, node, indent)
	return b.String(), err
}
