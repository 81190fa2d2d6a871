package token

import "fmt"

// Reverse lookups from a spelling back to its tag, used by tree documents
// that name operators and modifiers the way they are written.

var (
	binOpsBySpelling     = map[string]BinOp{}
	prefixOpsBySpelling  = map[string]PrefixOp{}
	containersBySpelling = map[string]ContainerKind{}
	returnsBySpelling    = map[string]ReturnKind{}
	visibsBySpelling     = map[string]VisibMod{
		"":        VisibPrivate,
		"private": VisibPrivate,
		"pub":     VisibPub,
		"export":  VisibExport,
	}
)

func init() {
	for op, s := range binOps {
		binOpsBySpelling[s] = op
	}
	for op, s := range prefixOps {
		prefixOpsBySpelling[s] = op
	}
	for k, s := range containers {
		containersBySpelling[s] = k
	}
	for k, s := range returns {
		returnsBySpelling[s] = k
	}
}

func ParseBinOp(s string) (BinOp, error) {
	if op, ok := binOpsBySpelling[s]; ok {
		return op, nil
	}
	return BinOpInvalid, fmt.Errorf("unknown binary operator %q", s)
}

func ParsePrefixOp(s string) (PrefixOp, error) {
	if op, ok := prefixOpsBySpelling[s]; ok {
		return op, nil
	}
	return PrefixOpInvalid, fmt.Errorf("unknown prefix operator %q", s)
}

func ParseVisibMod(s string) (VisibMod, error) {
	if v, ok := visibsBySpelling[s]; ok {
		return v, nil
	}
	return VisibPrivate, fmt.Errorf("unknown visibility %q", s)
}

// ParseReturnKind accepts either the return or the defer spelling of a kind,
// or the bare sigil ("", "%", "?").
func ParseReturnKind(s string) (ReturnKind, error) {
	if k, ok := returnsBySpelling[s]; ok {
		return k, nil
	}
	for k, v := range defers {
		if v == s {
			return k, nil
		}
	}
	switch s {
	case "":
		return ReturnUnconditional, nil
	case "%":
		return ReturnError, nil
	case "?":
		return ReturnMaybe, nil
	}
	return ReturnUnconditional, fmt.Errorf("unknown return kind %q", s)
}

func ParseContainerKind(s string) (ContainerKind, error) {
	if k, ok := containersBySpelling[s]; ok {
		return k, nil
	}
	return ContainerStruct, fmt.Errorf("unknown container kind %q", s)
}

// BinOps returns every binary operator tag.
func BinOps() []BinOp {
	out := make([]BinOp, 0, len(binOps))
	for op := BinOpBoolOr; op <= BinOpArrayMult; op++ {
		out = append(out, op)
	}
	return out
}

// PrefixOps returns every prefix operator tag.
func PrefixOps() []PrefixOp {
	out := make([]PrefixOp, 0, len(prefixOps))
	for op := PrefixOpNegation; op <= PrefixOpUnwrapMaybe; op++ {
		out = append(out, op)
	}
	return out
}
