package treefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/astrender/ast"
	"github.com/pontaoski/astrender/render"
	"github.com/pontaoski/astrender/token"
	"github.com/ztrue/tracerr"
)

const pointYAML = `
kind: Root
decls:
  - kind: ContainerDecl
    container: struct
    visib: pub
    name: Point
    fields:
      - {name: x, type: i32}
      - {name: "y", type: i32}
  - kind: FnDef
    proto:
      kind: FnProto
      name: norm
      params:
        - {name: p, type: Point}
      return: i32
    body:
      kind: Block
      statements:
        - kind: ReturnExpr
          expr:
            kind: BinOpExpr
            op: "+"
            lhs: {kind: FieldAccessExpr, struct: p, field: x}
            rhs: {kind: FieldAccessExpr, struct: p, field: "y"}
  - kind: VariableDeclaration
    const: true
    name: big
    expr: {kind: NumberLiteral, value: "-340282366920938463463374607431768211456"}
`

func TestDecodeYAML(t *testing.T) {
	n, err := Decode([]byte(pointYAML), YAML)
	if err != nil {
		t.Fatal(err)
	}
	got, err := render.String(n, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := `pub struct Point {
    x: i32,
    y: i32,
}
fn norm(p: Point) -> i32 {
    return (p.x + p.y)
}
const big = -340282366920938463463374607431768211456;
`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"kind": "BinOpExpr", "op": "<<%", "lhs": "a", "rhs": 3}`
	n, err := Decode([]byte(doc), YAML)
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.BinOpExpr{Op1: &ast.Symbol{Name: "a"}, Op: token.BinOpBitShiftLeftWrap, Op2: &ast.NumberLiteral{Value: ast.NewInt(3)}}
	if repr.String(n) != repr.String(want) {
		t.Fatalf("got %s, want %s", repr.String(n), repr.String(want))
	}
}

const asmTOML = `
kind = "AsmExpr"
volatile = true
template = "syscall"
clobbers = ["rcx", "r11"]

[[outputs]]
name = "ret"
constraint = "={rax}"
return = "usize"

[[inputs]]
name = "number"
constraint = "{rax}"
expr = "number"
`

func TestDecodeTOML(t *testing.T) {
	n, err := Decode([]byte(asmTOML), TOML)
	if err != nil {
		t.Fatal(err)
	}
	got, err := render.String(n, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := "asm volatile (\"syscall\"\n: [ret] \"={rax}\" (-> usize)\n: [number] \"{rax}\" (number)\n: \"rcx\", \"r11\")"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecodeEveryKind(t *testing.T) {
	docs := map[string]string{
		"FnDecl":            `{kind: FnDecl, proto: {kind: FnProto, name: f, return: void}}`,
		"ParamDecl":         `{kind: ParamDecl, name: a, type: i32, noalias: true}`,
		"ErrorValueDecl":    `{kind: ErrorValueDecl, name: Oops, visib: pub}`,
		"UnwrapErrorExpr":   `{kind: UnwrapErrorExpr, lhs: a, symbol: err, rhs: b}`,
		"SliceExpr":         `{kind: SliceExpr, array: a, start: 0, end: 4, const: true}`,
		"StructValueField":  `{kind: StructValueField, name: x, expr: 1}`,
		"Use":               `{kind: Use, expr: {kind: StringLiteral, value: std}}`,
		"BoolLiteral":       `{kind: BoolLiteral, value: true}`,
		"NullLiteral":       `{kind: NullLiteral}`,
		"ZeroesLiteral":     `{kind: ZeroesLiteral}`,
		"ThisLiteral":       `{kind: ThisLiteral}`,
		"IfBoolExpr":        `{kind: IfBoolExpr, condition: c, then: {kind: Block}, else: {kind: Block}}`,
		"IfVarExpr":         `{kind: IfVarExpr, name: x, const: true, expr: m, then: {kind: Block}}`,
		"ForExpr":           `{kind: ForExpr, elem: x, index: i, array: xs, body: {kind: Block}}`,
		"SwitchExpr":        `{kind: SwitchExpr, expr: x, prongs: [{items: [1, {kind: SwitchRange, start: 2, end: 3}], expr: "y"}]}`,
		"Label":             `{kind: Label, name: l}`,
		"Goto":              `{kind: Goto, name: l}`,
		"Break":             `{kind: Break}`,
		"Continue":          `{kind: Continue}`,
		"CharLiteral":       `{kind: CharLiteral, value: "z"}`,
		"Defer":             `{kind: Defer, form: "%defer", expr: x}`,
		"PrefixOpExpr":      `{kind: PrefixOpExpr, op: "&const ", operand: x}`,
		"ArrayType":         `{kind: ArrayType, size: 4, const: true, elem: u8}`,
		"ContainerInitExpr": `{kind: ContainerInitExpr, type: Point}`,
		"WhileExpr":         `{kind: WhileExpr, inline: true, condition: c, continue: i, body: {kind: Block}}`,
	}
	for kind, doc := range docs {
		n, err := Decode([]byte(doc), YAML)
		if err != nil {
			t.Errorf("%s: %v", kind, err)
			continue
		}
		if n.Kind().String() != kind {
			t.Errorf("%s: decoded %s", kind, n.Kind())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		doc  string
		path string
		msg  string
	}{
		{`{kind: Nope}`, "kind", `unknown node kind "Nope"`},
		{`{name: x}`, "kind", "missing"},
		{`[1, 2]`, "", "expected a mapping"},
		{`{kind: Root, decls: [{kind: Symbol}]}`, "decls[0].name", "missing"},
		{`{kind: BinOpExpr, op: "<=>", lhs: a, rhs: b}`, "op", "unknown binary operator"},
		{`{kind: BinOpExpr, op: "+", lhs: a}`, "rhs", "missing"},
		{`{kind: Symbol, name: x, colour: red}`, "", "unknown fields [colour]"},
		{`{kind: VariableDeclaration, name: x, const: "yes"}`, "const", "expected a bool"},
		{`{kind: FnDef, proto: a, body: {kind: Block}}`, "proto", "expected FnProto"},
		{`{kind: FnProto, name: f, return: void, params: [u8]}`, "params[0]", "expected ParamDecl"},
		{`{kind: NumberLiteral, value: abc}`, "value", "is not a number"},
		{`{kind: CharLiteral, value: "ab"}`, "value", "expected a single byte"},
		{`{kind: AsmExpr, outputs: [{name: r, constraint: "=r"}]}`, "outputs[0]", "exactly one of var and return"},
		{`{kind: ContainerDecl, container: class, name: C}`, "container", "unknown container kind"},
	}
	for _, tt := range tests {
		_, err := Decode([]byte(tt.doc), YAML)
		if err == nil {
			t.Errorf("%s: expected an error", tt.doc)
			continue
		}
		derr, ok := tracerr.Unwrap(err).(*DecodeError)
		if !ok {
			t.Errorf("%s: expected *DecodeError, got %#v", tt.doc, err)
			continue
		}
		if derr.Path != tt.path || !strings.Contains(derr.Msg, tt.msg) {
			t.Errorf("%s: got %q at %q, want %q at %q", tt.doc, derr.Msg, derr.Path, tt.msg, tt.path)
		}
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode([]byte("kind: [unterminated"), YAML); err == nil {
		t.Fatal("expected a YAML error")
	}
	if _, err := Decode([]byte("kind = "), TOML); err == nil {
		t.Fatal("expected a TOML error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yml")
	if err := os.WriteFile(path, []byte(`{kind: Root, decls: [{kind: TypeDecl, name: Byte, type: u8}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := render.String(n, 4); got != "type Byte = u8;\n" {
		t.Fatalf("got %q", got)
	}

	if _, err := Load(filepath.Join(dir, "tree.txt")); err == nil {
		t.Fatal("expected an unknown extension error")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected a missing file error")
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{"a.yaml": YAML, "b.YML": YAML, "c.json": YAML, "d.toml": TOML}
	for path, want := range tests {
		got, err := FormatFor(path)
		if err != nil || got != want {
			t.Errorf("FormatFor(%q) = %s, %v", path, got, err)
		}
	}
}
