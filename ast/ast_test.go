package ast

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/astrender/errors"
	"github.com/pontaoski/astrender/token"
	"github.com/ztrue/tracerr"
)

func sym(name string) *Symbol {
	return &Symbol{Name: name}
}

func sampleTree() *Root {
	return &Root{Decls: []Node{
		&FnDef{
			Proto: &FnProto{
				Name: "add",
				Params: []*ParamDecl{
					{Name: "a", Type: sym("i32")},
					{Name: "b", Type: sym("i32")},
				},
				ReturnType: sym("i32"),
			},
			Body: &Block{Statements: []Node{
				&ReturnExpr{Expr: &BinOpExpr{Op1: sym("a"), Op: token.BinOpAdd, Op2: sym("b")}},
			}},
		},
		&VariableDeclaration{Name: "x", IsConst: true, Expr: &NumberLiteral{Value: NewInt(1)}},
	}}
}

func TestFprint(t *testing.T) {
	got, err := Sprint(sampleTree(), 0)
	if err != nil {
		t.Fatal(err)
	}
	want := `Root
  FnDef
    FnProto
      ParamDecl
        Symbol
      ParamDecl
        Symbol
      Symbol
    Block
      ReturnExpr
        BinOpExpr
          Symbol
          Symbol
  VariableDeclaration
    NumberLiteral
`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintInitialIndent(t *testing.T) {
	got, err := Sprint(&Block{Statements: []Node{&Break{}}}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := "   Block\n     Break\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestVisitChildrenSkipsAbsent(t *testing.T) {
	tests := []struct {
		node Node
		want []Kind
	}{
		{&VariableDeclaration{Name: "v"}, nil},
		{&VariableDeclaration{Name: "v", Type: sym("u8")}, []Kind{KindSymbol}},
		{&ArrayType{Elem: sym("u8")}, []Kind{KindSymbol}},
		{&ArrayType{Size: &NumberLiteral{Value: NewInt(4)}, Elem: sym("u8")}, []Kind{KindNumberLiteral, KindSymbol}},
		{&FnDef{Proto: &FnProto{ReturnType: sym("void")}}, []Kind{KindFnProto}},
		{&WhileExpr{Condition: sym("c"), Body: &Block{}}, []Kind{KindSymbol, KindBlock}},
		{&FnCallExpr{Callee: sym("f"), Args: []Node{sym("a"), &StringLiteral{}}}, []Kind{KindSymbol, KindSymbol, KindStringLiteral}},
		{&AsmExpr{
			Outputs: []*AsmOutput{{VariableName: "x"}, {ReturnType: sym("usize")}},
			Inputs:  []*AsmInput{{Expr: sym("y")}},
		}, []Kind{KindSymbol, KindSymbol}},
	}
	for i, tt := range tests {
		var got []Kind
		tt.node.VisitChildren(func(n Node) { got = append(got, n.Kind()) })
		if repr.String(got) != repr.String(tt.want) {
			t.Errorf("case %d (%s): got %s, want %s", i, tt.node.Kind(), repr.String(got), repr.String(tt.want))
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	var kinds []Kind
	Walk(sampleTree(), func(n Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindFnDef
	})
	want := []Kind{KindRoot, KindFnDef, KindVariableDeclaration, KindNumberLiteral}
	if repr.String(kinds) != repr.String(want) {
		t.Fatalf("got %s, want %s", repr.String(kinds), repr.String(want))
	}
}

type bogus struct{}

func (bogus) Kind() Kind { return Kind(-1) }
func (bogus) VisitChildren(func(Node)) {}

func TestFprintUnknownKind(t *testing.T) {
	_, err := Sprint(&Block{Statements: []Node{bogus{}}}, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := tracerr.Unwrap(err).(*errors.InternalError); !ok {
		t.Fatalf("expected *errors.InternalError, got %#v", tracerr.Unwrap(err))
	}
}

func TestKindNames(t *testing.T) {
	if KindRoot.String() != "Root" || KindVarLiteral.String() != "VarLiteral" || KindAsmExpr.String() != "AsmExpr" {
		t.Fatal("unexpected kind names")
	}
}

func TestBigNum(t *testing.T) {
	n := NewInt(-5)
	if !n.Negative || n.Int.Int64() != 5 || n.Kind != BigNumInt {
		t.Fatalf("NewInt(-5) = %s", repr.String(n))
	}
	n = NewInt(5)
	if n.Negative || n.Int.Int64() != 5 {
		t.Fatalf("NewInt(5) = %s", repr.String(n))
	}
	f := NewFloat(-0.5)
	if !f.Negative || f.Kind != BigNumFloat {
		t.Fatalf("NewFloat(-0.5) = %s", repr.String(f))
	}
}
