package render

import (
	"math"
	"strconv"

	"github.com/pontaoski/astrender/ast"
	"github.com/pontaoski/astrender/errors"
	"github.com/pontaoski/astrender/lexer"
	"github.com/pontaoski/astrender/token"
)

// node emits n. Adding a kind means adding a case here and removing it from
// the unimplemented list at the bottom.
func (p printer) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Root:
		p.root(n)
	case *ast.FnProto:
		p.fnProto(n)
	case *ast.FnDef:
		p.node(n.Proto)
		p.write(" ")
		p.node(n.Body)
	case *ast.Block:
		p.block(n)
	case *ast.ReturnExpr:
		p.write(n.ReturnKind.Return(), " ")
		p.node(n.Expr)
	case *ast.Defer:
		p.write(n.ReturnKind.Defer(), " ")
		p.node(n.Expr)
	case *ast.VariableDeclaration:
		p.write(n.Visib.String(), token.Extern(n.IsExtern), token.ConstOrVar(n.IsConst), " ")
		p.symbol(n.Name)
		if n.Type != nil {
			p.write(": ")
			p.node(n.Type)
		}
		if n.Expr != nil {
			p.write(" = ")
			p.node(n.Expr)
		}
	case *ast.TypeDecl:
		p.write(n.Visib.String(), "type ", n.Name, " = ")
		p.node(n.Type)
	case *ast.BinOpExpr:
		p.write("(")
		p.node(n.Op1)
		p.write(" ", n.Op.String(), " ")
		p.node(n.Op2)
		p.write(")")
	case *ast.NumberLiteral:
		p.number(n.Value)
	case *ast.StringLiteral:
		if n.C {
			p.write("c")
		}
		p.write(`"`, lexer.Escape(n.Value), `"`)
	case *ast.CharLiteral:
		if lexer.IsPrintable(n.Value) {
			p.write("'", string([]byte{n.Value}), "'")
		} else {
			p.write("'", lexer.HexEscape(n.Value), "'")
		}
	case *ast.Symbol:
		p.symbol(n.Name)
	case *ast.PrefixOpExpr:
		p.write(n.Op.String())
		p.node(n.Operand)
	case *ast.FnCallExpr:
		p.call(n)
	case *ast.ArrayAccessExpr:
		p.node(n.Array)
		p.write("[")
		p.node(n.Subscript)
		p.write("]")
	case *ast.FieldAccessExpr:
		p.node(n.Struct)
		p.write(".")
		p.symbol(n.Field)
	case *ast.UndefinedLiteral:
		p.write("undefined")
	case *ast.ContainerDecl:
		p.containerDecl(n)
	case *ast.ContainerInitExpr:
		if len(n.Entries) != 0 {
			panic(&errors.UnimplementedError{Kind: n.Kind().String(), Detail: "non-empty initializer list"})
		}
		p.write("(")
		p.node(n.Type)
		p.write("){}")
	case *ast.ArrayType:
		p.write("[")
		if n.Size != nil {
			p.node(n.Size)
		}
		p.write("]")
		if n.IsConst {
			p.write("const ")
		}
		p.node(n.Elem)
	case *ast.ErrorType:
		p.write("error")
	case *ast.TypeLiteral:
		p.write("type")
	case *ast.VarLiteral:
		p.write("var")
	case *ast.AsmExpr:
		p.asm(n)
	case *ast.WhileExpr:
		p.write(token.Inline(n.IsInline), "while (")
		p.node(n.Condition)
		if n.Continue != nil {
			p.write("; ")
			p.node(n.Continue)
		}
		p.write(") ")
		p.node(n.Body)

	case *ast.FnDecl, *ast.ParamDecl, *ast.ErrorValueDecl, *ast.UnwrapErrorExpr,
		*ast.SliceExpr, *ast.StructField, *ast.StructValueField, *ast.Use,
		*ast.BoolLiteral, *ast.NullLiteral, *ast.ZeroesLiteral, *ast.ThisLiteral,
		*ast.IfBoolExpr, *ast.IfVarExpr, *ast.ForExpr, *ast.SwitchExpr,
		*ast.SwitchProng, *ast.SwitchRange, *ast.Label, *ast.Goto,
		*ast.Break, *ast.Continue:
		panic(errors.Unimplemented(n.Kind().String()))
	default:
		panic(errors.Internal("node kind", int(n.Kind())))
	}
}

// terminated reports whether a top level declaration needs a trailing
// semicolon. Function definitions and containers close with a brace.
func terminated(n ast.Node) bool {
	switch n.Kind() {
	case ast.KindUse, ast.KindVariableDeclaration, ast.KindTypeDecl,
		ast.KindErrorValueDecl, ast.KindFnProto:
		return true
	}
	return false
}

func (p printer) root(n *ast.Root) {
	for _, decl := range n.Decls {
		p.indent()
		p.node(decl)
		if terminated(decl) {
			p.write(";")
		}
		p.write("\n")
	}
}

func (p printer) symbol(name string) {
	p.write(lexer.QuoteIdentifier(name))
}

func (p printer) fnProto(n *ast.FnProto) {
	p.write(n.Visib.String(), token.Inline(n.IsInline), token.Extern(n.IsExtern), "fn ")
	p.symbol(n.Name)
	p.write("(")
	for i, param := range n.Params {
		if param.Name != "" {
			if param.IsNoAlias {
				p.write("noalias ")
			}
			p.write(token.Inline(param.IsInline))
			p.symbol(param.Name)
			p.write(": ")
		}
		p.node(param.Type)
		if i+1 < len(n.Params) || n.IsVarArgs {
			p.write(", ")
		}
	}
	if n.IsVarArgs {
		p.write("...")
	}
	p.write(") -> ")
	p.node(n.ReturnType)
}

func (p printer) block(n *ast.Block) {
	if len(n.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	inner := p.nested()
	for i, stmt := range n.Statements {
		inner.indent()
		inner.node(stmt)
		if i != len(n.Statements)-1 {
			inner.write(";")
		}
		inner.write("\n")
	}
	p.indent()
	p.write("}")
}

func (p printer) number(v *ast.BigNum) {
	switch v.Kind {
	case ast.BigNumInt:
		if v.Negative {
			p.write("-")
		}
		if v.Int == nil {
			p.write("0")
		} else {
			p.write(v.Int.String())
		}
	case ast.BigNumFloat:
		p.write(float(v.Float))
	default:
		panic(errors.Internal("number kind", int(v.Kind)))
	}
}

// float spells f the way C's %f does, including inf and nan.
func float(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

func (p printer) call(n *ast.FnCallExpr) {
	if n.IsBuiltin {
		p.write("@")
		p.node(n.Callee)
	} else {
		p.write("(")
		p.node(n.Callee)
		p.write(")")
	}
	p.write("(")
	for i, arg := range n.Args {
		if i != 0 {
			p.write(", ")
		}
		p.node(arg)
	}
	p.write(")")
}

func (p printer) containerDecl(n *ast.ContainerDecl) {
	p.write(n.Visib.String(), n.ContainerKind.String(), " ")
	p.symbol(n.Name)
	p.write(" {\n")
	inner := p.nested()
	for _, field := range n.Fields {
		inner.indent()
		inner.symbol(field.Name)
		inner.write(": ")
		inner.node(field.Type)
		inner.write(",\n")
	}
	p.write("}")
}

func (p printer) asm(n *ast.AsmExpr) {
	if n.IsVolatile {
		p.write("asm volatile (\"", n.Template, "\"\n")
	} else {
		p.write("asm (\"", n.Template, "\"\n")
	}

	p.indent()
	p.write(": ")
	for i, out := range n.Outputs {
		if i != 0 {
			p.write(",\n")
			p.indent()
		}
		p.write("[", out.SymbolicName, "] \"", out.Constraint, "\" (")
		if out.ReturnType != nil {
			p.write("-> ")
			p.node(out.ReturnType)
		} else {
			p.write(out.VariableName)
		}
		p.write(")")
	}
	p.write("\n")

	p.indent()
	p.write(": ")
	for i, in := range n.Inputs {
		if i != 0 {
			p.write(",\n")
			p.indent()
		}
		p.write("[", in.SymbolicName, "] \"", in.Constraint, "\" (")
		p.node(in.Expr)
		p.write(")")
	}
	p.write("\n")

	p.indent()
	p.write(": ")
	for i, reg := range n.Clobbers {
		if i != 0 {
			p.write(", ")
		}
		p.write("\"", reg, "\"")
	}
	p.write(")")
}
