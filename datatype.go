// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

// PrimitiveDataType enumerates the ABL built-in types a DataType can carry.
type PrimitiveDataType uint8

// Primitive data types, per spec §3.
const (
	TypeUnknown PrimitiveDataType = iota
	TypeCharacter
	TypeInteger
	TypeInt64
	TypeDecimal
	TypeLogical
	TypeDate
	TypeDateTime
	TypeDateTimeTZ
	TypeHandle
	TypeMemptr
	TypeLongchar
	TypeRaw
	TypeRowid
	TypeRecid
	TypeBlob
	TypeClob
	TypeByte
	TypeShort
	TypeUnsignedByte
	TypeUnsignedShort
	TypeUnsignedInteger
	TypeClass
)

var primitiveNames = map[PrimitiveDataType]string{
	TypeUnknown:         "UNKNOWN",
	TypeCharacter:       "CHARACTER",
	TypeInteger:         "INTEGER",
	TypeInt64:           "INT64",
	TypeDecimal:         "DECIMAL",
	TypeLogical:         "LOGICAL",
	TypeDate:            "DATE",
	TypeDateTime:        "DATETIME",
	TypeDateTimeTZ:      "DATETIME-TZ",
	TypeHandle:          "HANDLE",
	TypeMemptr:          "MEMPTR",
	TypeLongchar:        "LONGCHAR",
	TypeRaw:             "RAW",
	TypeRowid:           "ROWID",
	TypeRecid:           "RECID",
	TypeBlob:            "BLOB",
	TypeClob:            "CLOB",
	TypeByte:            "BYTE",
	TypeShort:           "SHORT",
	TypeUnsignedByte:    "UNSIGNED-BYTE",
	TypeUnsignedShort:   "UNSIGNED-SHORT",
	TypeUnsignedInteger: "UNSIGNED-INTEGER",
	TypeClass:           "CLASS",
}

// String implements fmt.Stringer.
func (p PrimitiveDataType) String() string {
	if s, ok := primitiveNames[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// ExtentUndetermined is the sentinel extent value meaning "array of
// undetermined length" (an EXTENT without a fixed size).
const ExtentUndetermined = -32767

// NotComputed is the sentinel PrimitiveDataType value meaning "unresolved".
// It is distinct from TypeUnknown, which means "the r-code encodes an
// explicit unknown/void type"; NotComputed means the decoder never found a
// type at all (e.g. a malformed record) and callers should not trust it.
const NotComputed PrimitiveDataType = 0xFF

// DataType is a tagged value: either a bare PrimitiveDataType, or, when
// Primitive is TypeClass, a PrimitiveDataType plus the class name it refers
// to.
type DataType struct {
	Primitive PrimitiveDataType
	ClassName string
}

// IsComputed reports whether the type was actually resolved from the
// r-code, as opposed to being the NotComputed sentinel.
func (d DataType) IsComputed() bool {
	return d.Primitive != NotComputed
}

// String implements fmt.Stringer.
func (d DataType) String() string {
	if d.Primitive == TypeClass && d.ClassName != "" {
		return d.ClassName
	}
	return d.Primitive.String()
}

// ParameterMode is the passing mode of a method/event parameter.
type ParameterMode uint8

// Parameter modes.
const (
	ModeInput ParameterMode = iota
	ModeOutput
	ModeInputOutput
	ModeBuffer
	ModeReturn
)

var parameterModeNames = map[ParameterMode]string{
	ModeInput:       "INPUT",
	ModeOutput:      "OUTPUT",
	ModeInputOutput: "INPUT-OUTPUT",
	ModeBuffer:      "BUFFER",
	ModeReturn:      "RETURN",
}

// String implements fmt.Stringer.
func (m ParameterMode) String() string {
	if s, ok := parameterModeNames[m]; ok {
		return s
	}
	return "INPUT"
}

// AccessFlags is a bitset combining a member's visibility with its
// modifiers. Unknown bits are preserved across decode/HasFlag but not
// otherwise interpreted, per spec §4.6.
type AccessFlags uint32

// Access flag bits.
const (
	FlagPublic AccessFlags = 1 << iota
	FlagProtected
	FlagPrivate
	FlagStatic
	FlagAbstract
	FlagOverride
	FlagFinal
	FlagSerializable
)

// HasFlag reports whether flag is set.
func (a AccessFlags) HasFlag(flag AccessFlags) bool {
	return a&flag != 0
}
