package ast

func visit(fn func(Node), n Node) {
	if n != nil {
		fn(n)
	}
}

func visitAll(fn func(Node), ns []Node) {
	for _, n := range ns {
		visit(fn, n)
	}
}

func (n *Root) VisitChildren(fn func(Node)) {
	visitAll(fn, n.Decls)
}

func (n *FnProto) VisitChildren(fn func(Node)) {
	for _, p := range n.Params {
		if p != nil {
			fn(p)
		}
	}
	visit(fn, n.ReturnType)
}

func (n *FnDef) VisitChildren(fn func(Node)) {
	if n.Proto != nil {
		fn(n.Proto)
	}
	if n.Body != nil {
		fn(n.Body)
	}
}

func (n *FnDecl) VisitChildren(fn func(Node)) {
	if n.Proto != nil {
		fn(n.Proto)
	}
}

func (n *ParamDecl) VisitChildren(fn func(Node)) {
	visit(fn, n.Type)
}

func (n *Block) VisitChildren(fn func(Node)) {
	visitAll(fn, n.Statements)
}

func (n *BinOpExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Op1)
	visit(fn, n.Op2)
}

func (n *UnwrapErrorExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Op1)
	visit(fn, n.Op2)
}

func (n *PrefixOpExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Operand)
}

func (n *FnCallExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Callee)
	visitAll(fn, n.Args)
}

func (n *ArrayAccessExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Array)
	visit(fn, n.Subscript)
}

func (n *SliceExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Array)
	visit(fn, n.Start)
	visit(fn, n.End)
}

func (n *FieldAccessExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Struct)
}

func (n *ReturnExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Expr)
}

func (n *Defer) VisitChildren(fn func(Node)) {
	visit(fn, n.Expr)
}

func (n *VariableDeclaration) VisitChildren(fn func(Node)) {
	visit(fn, n.Type)
	visit(fn, n.Expr)
}

func (n *TypeDecl) VisitChildren(fn func(Node)) {
	visit(fn, n.Type)
}

func (n *ErrorValueDecl) VisitChildren(fn func(Node)) {}

func (n *Use) VisitChildren(fn func(Node)) {
	visit(fn, n.Expr)
}

func (n *NumberLiteral) VisitChildren(fn func(Node)) {}

func (n *StringLiteral) VisitChildren(fn func(Node)) {}

func (n *CharLiteral) VisitChildren(fn func(Node)) {}

func (n *Symbol) VisitChildren(fn func(Node)) {}

func (n *BoolLiteral) VisitChildren(fn func(Node)) {}

func (n *NullLiteral) VisitChildren(fn func(Node)) {}

func (n *UndefinedLiteral) VisitChildren(fn func(Node)) {}

func (n *ZeroesLiteral) VisitChildren(fn func(Node)) {}

func (n *ThisLiteral) VisitChildren(fn func(Node)) {}

func (n *IfBoolExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Condition)
	visit(fn, n.Then)
	visit(fn, n.Else)
}

func (n *IfVarExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Type)
	visit(fn, n.Expr)
	visit(fn, n.Then)
	visit(fn, n.Else)
}

func (n *WhileExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Condition)
	visit(fn, n.Continue)
	visit(fn, n.Body)
}

func (n *ForExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Array)
	visit(fn, n.Body)
}

func (n *SwitchExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Expr)
	for _, p := range n.Prongs {
		if p != nil {
			fn(p)
		}
	}
}

func (n *SwitchProng) VisitChildren(fn func(Node)) {
	visitAll(fn, n.Items)
	visit(fn, n.Expr)
}

func (n *SwitchRange) VisitChildren(fn func(Node)) {
	visit(fn, n.Start)
	visit(fn, n.End)
}

func (n *Label) VisitChildren(fn func(Node)) {}

func (n *Goto) VisitChildren(fn func(Node)) {}

func (n *Break) VisitChildren(fn func(Node)) {}

func (n *Continue) VisitChildren(fn func(Node)) {}

func (n *AsmExpr) VisitChildren(fn func(Node)) {
	for _, out := range n.Outputs {
		visit(fn, out.ReturnType)
	}
	for _, in := range n.Inputs {
		visit(fn, in.Expr)
	}
}

func (n *ContainerDecl) VisitChildren(fn func(Node)) {
	for _, f := range n.Fields {
		if f != nil {
			fn(f)
		}
	}
}

func (n *StructField) VisitChildren(fn func(Node)) {
	visit(fn, n.Type)
}

func (n *StructValueField) VisitChildren(fn func(Node)) {
	visit(fn, n.Expr)
}

func (n *ContainerInitExpr) VisitChildren(fn func(Node)) {
	visit(fn, n.Type)
	visitAll(fn, n.Entries)
}

func (n *ArrayType) VisitChildren(fn func(Node)) {
	visit(fn, n.Size)
	visit(fn, n.Elem)
}

func (n *ErrorType) VisitChildren(fn func(Node)) {}

func (n *TypeLiteral) VisitChildren(fn func(Node)) {}

func (n *VarLiteral) VisitChildren(fn func(Node)) {}

// Walk visits node and then its descendants in pre-order. depth is zero for
// node itself. Returning false from fn skips the children of that node.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int) bool) {
	if !fn(node, depth) {
		return
	}
	node.VisitChildren(func(child Node) {
		walk(child, depth+1, fn)
	})
}
