// Package ast holds the syntax tree consumed by the renderer and the
// structural dump. Every node exclusively owns its children.
package ast

import (
	"github.com/pontaoski/astrender/token"
)

//go:generate sh -c "cd ../tool && go run . ../ast/kinds.adt ../ast/kind_string.go ast"

// Node is implemented by every kind of syntax tree node.
type Node interface {
	Kind() Kind
	// VisitChildren calls fn on each direct child in declaration order.
	// Absent optional children are skipped.
	VisitChildren(fn func(Node))
}

type Root struct {
	Decls []Node
}

type FnProto struct {
	Visib      token.VisibMod
	Name       string
	Params     []*ParamDecl
	IsVarArgs  bool
	IsExtern   bool
	IsInline   bool
	ReturnType Node
}

type FnDef struct {
	Proto *FnProto
	Body  *Block
}

type FnDecl struct {
	Proto *FnProto
}

// ParamDecl is a function parameter. An empty Name is an anonymous
// parameter, which only has a type.
type ParamDecl struct {
	Name      string
	Type      Node
	IsNoAlias bool
	IsInline  bool
}

type Block struct {
	Statements []Node
}

type BinOpExpr struct {
	Op1 Node
	Op  token.BinOp
	Op2 Node
}

type UnwrapErrorExpr struct {
	Op1    Node
	Symbol string
	Op2    Node
}

type PrefixOpExpr struct {
	Op      token.PrefixOp
	Operand Node
}

type FnCallExpr struct {
	Callee    Node
	Args      []Node
	IsBuiltin bool
}

type ArrayAccessExpr struct {
	Array     Node
	Subscript Node
}

type SliceExpr struct {
	Array   Node
	Start   Node
	End     Node
	IsConst bool
}

type FieldAccessExpr struct {
	Struct Node
	Field  string
}

type ReturnExpr struct {
	ReturnKind token.ReturnKind
	Expr       Node
}

type Defer struct {
	ReturnKind token.ReturnKind
	Expr       Node
}

type VariableDeclaration struct {
	Visib    token.VisibMod
	Name     string
	IsConst  bool
	IsExtern bool
	Type     Node
	Expr     Node
}

type TypeDecl struct {
	Visib token.VisibMod
	Name  string
	Type  Node
}

type ErrorValueDecl struct {
	Visib token.VisibMod
	Name  string
}

type Use struct {
	Visib token.VisibMod
	Expr  Node
}

type NumberLiteral struct {
	Value *BigNum
}

type StringLiteral struct {
	Value []byte
	// C marks a null terminated c"..." literal.
	C bool
}

type CharLiteral struct {
	Value byte
}

type Symbol struct {
	Name string
}

type BoolLiteral struct {
	Value bool
}

type NullLiteral struct{}

type UndefinedLiteral struct{}

type ZeroesLiteral struct{}

type ThisLiteral struct{}

type IfBoolExpr struct {
	Condition Node
	Then      Node
	Else      Node
}

type IfVarExpr struct {
	Name    string
	IsConst bool
	Type    Node
	Expr    Node
	Then    Node
	Else    Node
}

type WhileExpr struct {
	Condition Node
	Continue  Node
	Body      Node
	IsInline  bool
}

type ForExpr struct {
	Elem     string
	Index    string
	Array    Node
	Body     Node
	IsInline bool
}

type SwitchExpr struct {
	Expr   Node
	Prongs []*SwitchProng
}

type SwitchProng struct {
	Items    []Node
	Var      string
	IsVarPtr bool
	Expr     Node
}

type SwitchRange struct {
	Start Node
	End   Node
}

type Label struct {
	Name string
}

type Goto struct {
	Name string
}

type Break struct{}

type Continue struct{}

type AsmOutput struct {
	SymbolicName string
	Constraint   string
	// Exactly one of VariableName and ReturnType is set.
	VariableName string
	ReturnType   Node
}

type AsmInput struct {
	SymbolicName string
	Constraint   string
	Expr         Node
}

type AsmExpr struct {
	IsVolatile bool
	Template   string
	Outputs    []*AsmOutput
	Inputs     []*AsmInput
	Clobbers   []string
}

type ContainerDecl struct {
	Visib         token.VisibMod
	ContainerKind token.ContainerKind
	Name          string
	Fields        []*StructField
}

type StructField struct {
	Visib token.VisibMod
	Name  string
	Type  Node
}

type StructValueField struct {
	Name string
	Expr Node
}

type ContainerInitExpr struct {
	Type    Node
	Entries []Node
}

// ArrayType is [Size]Elem, or []Elem when Size is nil.
type ArrayType struct {
	Size    Node
	IsConst bool
	Elem    Node
}

type ErrorType struct{}

type TypeLiteral struct{}

type VarLiteral struct{}
