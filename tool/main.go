package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

const errorsPath = "github.com/pontaoski/astrender/errors"

type KindDecls struct {
	Nodes []*NodeDecl `@@*`
}

type NodeDecl struct {
	Name string `"node" @Ident ";"`
}

func (k *KindDecls) Check() error {
	seen := map[string]bool{}
	for _, n := range k.Nodes {
		if seen[n.Name] {
			return fmt.Errorf("node %s declared twice", n.Name)
		}
		seen[n.Name] = true
	}
	return nil
}

func kindID(name string) string {
	return "Kind" + name
}

func GenerateKinds(source, pkgname string, k *KindDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by adtgen from %s. DO NOT EDIT.", source))
	f.ImportAlias(errorsPath, "errors")

	f.Comment("Kind tags every node.")
	f.Type().Id("Kind").Int()

	f.Const().DefsFunc(func(g *Group) {
		for i, n := range k.Nodes {
			if i == 0 {
				g.Id(kindID(n.Name)).Id("Kind").Op("=").Iota()
			} else {
				g.Id(kindID(n.Name))
			}
		}
	})

	f.Comment("String returns the kind name printed by the structural dump.")
	f.Func().Params(Id("k").Id("Kind")).Id("String").Params().String().Block(
		Switch(Id("k")).BlockFunc(func(g *Group) {
			for _, n := range k.Nodes {
				g.Case(Id(kindID(n.Name))).Block(Return(Lit(n.Name)))
			}
		}),
		Panic(Qual(errorsPath, "Internal").Call(Lit("node kind"), Int().Call(Id("k")))),
	)

	for _, n := range k.Nodes {
		f.Func().Params(Op("*").Id(n.Name)).Id("Kind").Params().Id("Kind").Block(
			Return(Id(kindID(n.Name))),
		)
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&KindDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls := KindDecls{}
	err = parser.ParseBytes(inData, &decls)
	if err != nil {
		panic(err)
	}
	if err := decls.Check(); err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateKinds(filepath.Base(in), pkgname, &decls)), 0o644)
	if err != nil {
		panic(err)
	}
}
