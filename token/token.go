package token

import (
	"github.com/pontaoski/astrender/errors"
)

type BinOp int

const (
	BinOpInvalid BinOp = iota

	BinOpBoolOr
	BinOpBoolAnd
	BinOpCmpEq
	BinOpCmpNotEq
	BinOpCmpLessThan
	BinOpCmpGreaterThan
	BinOpCmpLessOrEq
	BinOpCmpGreaterOrEq
	BinOpBinOr
	BinOpBinXor
	BinOpBinAnd
	BinOpBitShiftLeft
	BinOpBitShiftLeftWrap
	BinOpBitShiftRight
	BinOpAdd
	BinOpAddWrap
	BinOpSub
	BinOpSubWrap
	BinOpMult
	BinOpMultWrap
	BinOpDiv
	BinOpMod
	BinOpAssign
	BinOpAssignTimes
	BinOpAssignTimesWrap
	BinOpAssignDiv
	BinOpAssignMod
	BinOpAssignPlus
	BinOpAssignPlusWrap
	BinOpAssignMinus
	BinOpAssignMinusWrap
	BinOpAssignBitShiftLeft
	BinOpAssignBitShiftLeftWrap
	BinOpAssignBitShiftRight
	BinOpAssignBitAnd
	BinOpAssignBitXor
	BinOpAssignBitOr
	BinOpAssignBoolAnd
	BinOpAssignBoolOr
	BinOpUnwrapMaybe
	BinOpArrayCat
	BinOpArrayMult
)

var binOps = map[BinOp]string{
	BinOpBoolOr:                 "||",
	BinOpBoolAnd:                "&&",
	BinOpCmpEq:                  "==",
	BinOpCmpNotEq:               "!=",
	BinOpCmpLessThan:            "<",
	BinOpCmpGreaterThan:         ">",
	BinOpCmpLessOrEq:            "<=",
	BinOpCmpGreaterOrEq:         ">=",
	BinOpBinOr:                  "|",
	BinOpBinXor:                 "^",
	BinOpBinAnd:                 "&",
	BinOpBitShiftLeft:           "<<",
	BinOpBitShiftLeftWrap:       "<<%",
	BinOpBitShiftRight:          ">>",
	BinOpAdd:                    "+",
	BinOpAddWrap:                "+%",
	BinOpSub:                    "-",
	BinOpSubWrap:                "-%",
	BinOpMult:                   "*",
	BinOpMultWrap:               "*%",
	BinOpDiv:                    "/",
	BinOpMod:                    "%",
	BinOpAssign:                 "=",
	BinOpAssignTimes:            "*=",
	BinOpAssignTimesWrap:        "*%=",
	BinOpAssignDiv:              "/=",
	BinOpAssignMod:              "%=",
	BinOpAssignPlus:             "+=",
	BinOpAssignPlusWrap:         "+%=",
	BinOpAssignMinus:            "-=",
	BinOpAssignMinusWrap:        "-%=",
	BinOpAssignBitShiftLeft:     "<<=",
	BinOpAssignBitShiftLeftWrap: "<<%=",
	BinOpAssignBitShiftRight:    ">>=",
	BinOpAssignBitAnd:           "&=",
	BinOpAssignBitXor:           "^=",
	BinOpAssignBitOr:            "|=",
	BinOpAssignBoolAnd:          "&&=",
	BinOpAssignBoolOr:           "||=",
	BinOpUnwrapMaybe:            "??",
	BinOpArrayCat:               "++",
	BinOpArrayMult:              "**",
}

func (op BinOp) String() string {
	s, ok := binOps[op]
	if !ok {
		panic(errors.Internal("binary operator", int(op)))
	}
	return s
}

type PrefixOp int

const (
	PrefixOpInvalid PrefixOp = iota

	PrefixOpNegation
	PrefixOpNegationWrap
	PrefixOpBoolNot
	PrefixOpBinNot
	PrefixOpAddressOf
	PrefixOpConstAddressOf
	PrefixOpDereference
	PrefixOpMaybe
	PrefixOpError
	PrefixOpUnwrapError
	PrefixOpUnwrapMaybe
)

var prefixOps = map[PrefixOp]string{
	PrefixOpNegation:       "-",
	PrefixOpNegationWrap:   "-%",
	PrefixOpBoolNot:        "!",
	PrefixOpBinNot:         "~",
	PrefixOpAddressOf:      "&",
	PrefixOpConstAddressOf: "&const ",
	PrefixOpDereference:    "*",
	PrefixOpMaybe:          "?",
	PrefixOpError:          "%",
	PrefixOpUnwrapError:    "%%",
	PrefixOpUnwrapMaybe:    "??",
}

func (op PrefixOp) String() string {
	s, ok := prefixOps[op]
	if !ok {
		panic(errors.Internal("prefix operator", int(op)))
	}
	return s
}

// VisibMod is the visibility of a top level declaration. The zero value is
// private.
type VisibMod int

const (
	VisibPrivate VisibMod = iota
	VisibPub
	VisibExport
)

var visibMods = map[VisibMod]string{
	VisibPrivate: "",
	VisibPub:     "pub ",
	VisibExport:  "export ",
}

// String returns the modifier followed by a space, or nothing for private.
func (v VisibMod) String() string {
	s, ok := visibMods[v]
	if !ok {
		panic(errors.Internal("visibility modifier", int(v)))
	}
	return s
}

// ReturnKind selects between the plain, error-propagating and
// null-propagating forms of return and defer.
type ReturnKind int

const (
	ReturnUnconditional ReturnKind = iota
	ReturnError
	ReturnMaybe
)

var returns = map[ReturnKind]string{
	ReturnUnconditional: "return",
	ReturnError:         "%return",
	ReturnMaybe:         "?return",
}

var defers = map[ReturnKind]string{
	ReturnUnconditional: "defer",
	ReturnError:         "%defer",
	ReturnMaybe:         "?defer",
}

func (k ReturnKind) Return() string {
	s, ok := returns[k]
	if !ok {
		panic(errors.Internal("return kind", int(k)))
	}
	return s
}

func (k ReturnKind) Defer() string {
	s, ok := defers[k]
	if !ok {
		panic(errors.Internal("return kind", int(k)))
	}
	return s
}

type ContainerKind int

const (
	ContainerEnum ContainerKind = iota
	ContainerStruct
	ContainerUnion
)

var containers = map[ContainerKind]string{
	ContainerEnum:   "enum",
	ContainerStruct: "struct",
	ContainerUnion:  "union",
}

func (k ContainerKind) String() string {
	s, ok := containers[k]
	if !ok {
		panic(errors.Internal("container kind", int(k)))
	}
	return s
}

func Extern(isExtern bool) string {
	if isExtern {
		return "extern "
	}
	return ""
}

func Inline(isInline bool) string {
	if isInline {
		return "inline "
	}
	return ""
}

func ConstOrVar(isConst bool) string {
	if isConst {
		return "const"
	}
	return "var"
}
