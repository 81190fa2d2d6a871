package treefile

import (
	"github.com/pontaoski/astrender/ast"
	"github.com/pontaoski/astrender/token"
)

func (d *decoder) node(v interface{}, path string) ast.Node {
	switch v := v.(type) {
	case string:
		return &ast.Symbol{Name: v}
	case int, int64, uint64, float64:
		return &ast.NumberLiteral{Value: d.number(v, path)}
	}

	o := d.object(v, path)
	kind := o.requiredStr("kind")
	build, ok := builders[kind]
	if !ok {
		d.fail(join(path, "kind"), "unknown node kind %q", kind)
	}
	n := build(o)
	o.done()
	return n
}

func (o *object) proto(key string) *ast.FnProto {
	n := o.required(key)
	p, ok := n.(*ast.FnProto)
	if !ok {
		o.d.fail(join(o.path, key), "expected FnProto, got %s", n.Kind())
	}
	return p
}

func (o *object) block(key string) *ast.Block {
	n := o.required(key)
	b, ok := n.(*ast.Block)
	if !ok {
		o.d.fail(join(o.path, key), "expected Block, got %s", n.Kind())
	}
	return b
}

// defaulted decodes a list whose entries may omit their kind, defaulting it,
// and checks that every entry is of that kind.
func (o *object) defaulted(key, kind string) []ast.Node {
	var out []ast.Node
	for i, v := range o.list(key) {
		path := index(join(o.path, key), i)
		if m, ok := v.(map[string]interface{}); ok {
			if _, ok := m["kind"]; !ok {
				m["kind"] = kind
			}
		}
		n := o.d.node(v, path)
		if n.Kind().String() != kind {
			o.d.fail(path, "expected %s, got %s", kind, n.Kind())
		}
		out = append(out, n)
	}
	return out
}

func params(o *object) []*ast.ParamDecl {
	var out []*ast.ParamDecl
	for _, n := range o.defaulted("params", "ParamDecl") {
		out = append(out, n.(*ast.ParamDecl))
	}
	return out
}

func prongs(o *object) []*ast.SwitchProng {
	var out []*ast.SwitchProng
	for _, n := range o.defaulted("prongs", "SwitchProng") {
		out = append(out, n.(*ast.SwitchProng))
	}
	return out
}

func fields(o *object) []*ast.StructField {
	var out []*ast.StructField
	for _, n := range o.defaulted("fields", "StructField") {
		out = append(out, n.(*ast.StructField))
	}
	return out
}

func visib(o *object) token.VisibMod {
	v, err := token.ParseVisibMod(o.str("visib"))
	o.spelling("visib", err)
	return v
}

func form(o *object) token.ReturnKind {
	k, err := token.ParseReturnKind(o.str("form"))
	o.spelling("form", err)
	return k
}

func binOp(o *object) token.BinOp {
	op, err := token.ParseBinOp(o.str("op"))
	o.spelling("op", err)
	return op
}

func prefixOp(o *object) token.PrefixOp {
	op, err := token.ParsePrefixOp(o.str("op"))
	o.spelling("op", err)
	return op
}

func containerKind(o *object) token.ContainerKind {
	k, err := token.ParseContainerKind(o.str("container"))
	o.spelling("container", err)
	return k
}

var builders map[string]func(o *object) ast.Node

func init() {
	builders = map[string]func(o *object) ast.Node{
		"Root": func(o *object) ast.Node {
			return &ast.Root{Decls: o.children("decls")}
		},
		"FnDef": func(o *object) ast.Node {
			return &ast.FnDef{Proto: o.proto("proto"), Body: o.block("body")}
		},
		"FnDecl": func(o *object) ast.Node {
			return &ast.FnDecl{Proto: o.proto("proto")}
		},
		"FnProto": func(o *object) ast.Node {
			return &ast.FnProto{
				Visib:      visib(o),
				Name:       o.requiredStr("name"),
				Params:     params(o),
				IsVarArgs:  o.flag("varargs"),
				IsExtern:   o.flag("extern"),
				IsInline:   o.flag("inline"),
				ReturnType: o.required("return"),
			}
		},
		"ParamDecl": func(o *object) ast.Node {
			return &ast.ParamDecl{
				Name:      o.str("name"),
				Type:      o.required("type"),
				IsNoAlias: o.flag("noalias"),
				IsInline:  o.flag("inline"),
			}
		},
		"Block": func(o *object) ast.Node {
			return &ast.Block{Statements: o.children("statements")}
		},
		"BinOpExpr": func(o *object) ast.Node {
			return &ast.BinOpExpr{
				Op1: o.required("lhs"),
				Op:  binOp(o),
				Op2: o.required("rhs"),
			}
		},
		"UnwrapErrorExpr": func(o *object) ast.Node {
			return &ast.UnwrapErrorExpr{
				Op1:    o.required("lhs"),
				Symbol: o.str("symbol"),
				Op2:    o.required("rhs"),
			}
		},
		"PrefixOpExpr": func(o *object) ast.Node {
			return &ast.PrefixOpExpr{
				Op:      prefixOp(o),
				Operand: o.required("operand"),
			}
		},
		"FnCallExpr": func(o *object) ast.Node {
			return &ast.FnCallExpr{
				Callee:    o.required("callee"),
				Args:      o.children("args"),
				IsBuiltin: o.flag("builtin"),
			}
		},
		"ArrayAccessExpr": func(o *object) ast.Node {
			return &ast.ArrayAccessExpr{Array: o.required("array"), Subscript: o.required("subscript")}
		},
		"SliceExpr": func(o *object) ast.Node {
			return &ast.SliceExpr{
				Array:   o.required("array"),
				Start:   o.required("start"),
				End:     o.child("end"),
				IsConst: o.flag("const"),
			}
		},
		"FieldAccessExpr": func(o *object) ast.Node {
			return &ast.FieldAccessExpr{Struct: o.required("struct"), Field: o.requiredStr("field")}
		},
		"ReturnExpr": func(o *object) ast.Node {
			return &ast.ReturnExpr{ReturnKind: form(o), Expr: o.required("expr")}
		},
		"Defer": func(o *object) ast.Node {
			return &ast.Defer{ReturnKind: form(o), Expr: o.required("expr")}
		},
		"VariableDeclaration": func(o *object) ast.Node {
			return &ast.VariableDeclaration{
				Visib:    visib(o),
				Name:     o.requiredStr("name"),
				IsConst:  o.flag("const"),
				IsExtern: o.flag("extern"),
				Type:     o.child("type"),
				Expr:     o.child("expr"),
			}
		},
		"TypeDecl": func(o *object) ast.Node {
			return &ast.TypeDecl{Visib: visib(o), Name: o.requiredStr("name"), Type: o.required("type")}
		},
		"ErrorValueDecl": func(o *object) ast.Node {
			return &ast.ErrorValueDecl{Visib: visib(o), Name: o.requiredStr("name")}
		},
		"Use": func(o *object) ast.Node {
			return &ast.Use{Visib: visib(o), Expr: o.required("expr")}
		},
		"NumberLiteral": func(o *object) ast.Node {
			v, ok := o.raw("value")
			if !ok {
				o.d.fail(join(o.path, "value"), "missing")
			}
			return &ast.NumberLiteral{Value: o.d.number(v, join(o.path, "value"))}
		},
		"StringLiteral": func(o *object) ast.Node {
			return &ast.StringLiteral{Value: []byte(o.str("value")), C: o.flag("c")}
		},
		"CharLiteral": func(o *object) ast.Node {
			v, _ := o.raw("value")
			return &ast.CharLiteral{Value: o.d.char(v, join(o.path, "value"))}
		},
		"Symbol": func(o *object) ast.Node {
			return &ast.Symbol{Name: o.requiredStr("name")}
		},
		"BoolLiteral": func(o *object) ast.Node {
			return &ast.BoolLiteral{Value: o.flag("value")}
		},
		"NullLiteral":      func(o *object) ast.Node { return &ast.NullLiteral{} },
		"UndefinedLiteral": func(o *object) ast.Node { return &ast.UndefinedLiteral{} },
		"ZeroesLiteral":    func(o *object) ast.Node { return &ast.ZeroesLiteral{} },
		"ThisLiteral":      func(o *object) ast.Node { return &ast.ThisLiteral{} },
		"IfBoolExpr": func(o *object) ast.Node {
			return &ast.IfBoolExpr{
				Condition: o.required("condition"),
				Then:      o.required("then"),
				Else:      o.child("else"),
			}
		},
		"IfVarExpr": func(o *object) ast.Node {
			return &ast.IfVarExpr{
				Name:    o.requiredStr("name"),
				IsConst: o.flag("const"),
				Type:    o.child("type"),
				Expr:    o.required("expr"),
				Then:    o.required("then"),
				Else:    o.child("else"),
			}
		},
		"WhileExpr": func(o *object) ast.Node {
			return &ast.WhileExpr{
				Condition: o.required("condition"),
				Continue:  o.child("continue"),
				Body:      o.required("body"),
				IsInline:  o.flag("inline"),
			}
		},
		"ForExpr": func(o *object) ast.Node {
			return &ast.ForExpr{
				Elem:     o.requiredStr("elem"),
				Index:    o.str("index"),
				Array:    o.required("array"),
				Body:     o.required("body"),
				IsInline: o.flag("inline"),
			}
		},
		"SwitchExpr": func(o *object) ast.Node {
			return &ast.SwitchExpr{
				Expr:   o.required("expr"),
				Prongs: prongs(o),
			}
		},
		"SwitchProng": func(o *object) ast.Node {
			return &ast.SwitchProng{
				Items:    o.children("items"),
				Var:      o.str("var"),
				IsVarPtr: o.flag("ptr"),
				Expr:     o.required("expr"),
			}
		},
		"SwitchRange": func(o *object) ast.Node {
			return &ast.SwitchRange{Start: o.required("start"), End: o.required("end")}
		},
		"Label": func(o *object) ast.Node {
			return &ast.Label{Name: o.requiredStr("name")}
		},
		"Goto": func(o *object) ast.Node {
			return &ast.Goto{Name: o.requiredStr("name")}
		},
		"Break":    func(o *object) ast.Node { return &ast.Break{} },
		"Continue": func(o *object) ast.Node { return &ast.Continue{} },
		"AsmExpr":  asmExpr,
		"ContainerDecl": func(o *object) ast.Node {
			return &ast.ContainerDecl{
				Visib:         visib(o),
				ContainerKind: containerKind(o),
				Name:          o.requiredStr("name"),
				Fields:        fields(o),
			}
		},
		"StructField": func(o *object) ast.Node {
			return &ast.StructField{Visib: visib(o), Name: o.requiredStr("name"), Type: o.required("type")}
		},
		"StructValueField": func(o *object) ast.Node {
			return &ast.StructValueField{Name: o.requiredStr("name"), Expr: o.required("expr")}
		},
		"ContainerInitExpr": func(o *object) ast.Node {
			return &ast.ContainerInitExpr{Type: o.required("type"), Entries: o.children("entries")}
		},
		"ArrayType": func(o *object) ast.Node {
			return &ast.ArrayType{Size: o.child("size"), IsConst: o.flag("const"), Elem: o.required("elem")}
		},
		"ErrorType":   func(o *object) ast.Node { return &ast.ErrorType{} },
		"TypeLiteral": func(o *object) ast.Node { return &ast.TypeLiteral{} },
		"VarLiteral":  func(o *object) ast.Node { return &ast.VarLiteral{} },
	}
}

func asmExpr(o *object) ast.Node {
	n := &ast.AsmExpr{
		IsVolatile: o.flag("volatile"),
		Template:   o.str("template"),
		Clobbers:   o.strs("clobbers"),
	}
	for i, v := range o.list("outputs") {
		out := o.d.object(v, index(join(o.path, "outputs"), i))
		op := &ast.AsmOutput{
			SymbolicName: out.requiredStr("name"),
			Constraint:   out.str("constraint"),
			VariableName: out.str("var"),
			ReturnType:   out.child("return"),
		}
		if (op.VariableName == "") == (op.ReturnType == nil) {
			o.d.fail(out.path, "exactly one of var and return must be set")
		}
		out.done()
		n.Outputs = append(n.Outputs, op)
	}
	for i, v := range o.list("inputs") {
		in := o.d.object(v, index(join(o.path, "inputs"), i))
		n.Inputs = append(n.Inputs, &ast.AsmInput{
			SymbolicName: in.requiredStr("name"),
			Constraint:   in.str("constraint"),
			Expr:         in.required("expr"),
		})
		in.done()
	}
	return n
}
