// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "encoding/binary"

// v11 leading-record layout (28 bytes). See typeblock.go for the shared
// contract this implements.
const (
	v11HeaderSize = 28

	v11HdrNameOffset       = 0
	v11HdrParentNameOffset = 4
	v11HdrPackageOffset    = 8
	v11HdrFlags            = 12
	v11HdrInterfaceCount   = 16
	v11HdrMethodCount      = 18
	v11HdrPropertyCount    = 20
	v11HdrVariableCount    = 22
	v11HdrEventCount       = 24
	v11HdrTableCount       = 26
)

// v11 fixed-stride member records, in declaration order
// methods -> properties -> variables -> events -> tables.
const (
	v11MethodStride   = 15 // nameOffset(4) access(4) returnPrimitive(1) returnClassName(4) paramCount(2)
	v11PropertyStride = 19 // nameOffset(4) access(4) primitive(1) className(4) extent(4) hasGetter(1) hasSetter(1)
	v11VariableStride = 17 // nameOffset(4) primitive(1) className(4) extent(4) access(4)
	v11EventStride    = 10 // nameOffset(4) access(4) paramCount(2)
	v11TableStride    = 16 // nameOffset(4) access(4) bufferNameOffset(4) fieldCount(2) indexCount(2)

	paramStride = 14 // nameOffset(4) primitive(1) className(4) mode(1) extent(4)
	fieldStride = 21 // nameOffset(4) primitive(1) className(4) extent(4) labelOffset(4) initialOffset(4)
)

func decodeTypeBlockV11(block []byte, order binary.ByteOrder, is64Bit bool, charset Charset) (*TypeInfo, error) {
	if len(block) < v11HeaderSize {
		return nil, shortRead("type-block")
	}

	r := NewByteReader(block, order)
	ti := &TypeInfo{}

	nameOff, _ := r.ReadU32(v11HdrNameOffset)
	parentOff, _ := r.ReadU32(v11HdrParentNameOffset)
	flagsRaw, _ := r.ReadU32(v11HdrFlags)
	interfaceCount, _ := r.ReadU16(v11HdrInterfaceCount)
	methodCount, _ := r.ReadU16(v11HdrMethodCount)
	propertyCount, _ := r.ReadU16(v11HdrPropertyCount)
	variableCount, _ := r.ReadU16(v11HdrVariableCount)
	eventCount, _ := r.ReadU16(v11HdrEventCount)
	tableCount, _ := r.ReadU16(v11HdrTableCount)

	var err error
	if ti.typeName, err = resolveString(block, nameOff, charset); err != nil {
		return nil, err
	}
	if ti.parentTypeName, err = resolveString(block, parentOff, charset); err != nil {
		return nil, err
	}
	ti.flags = AccessFlags(flagsRaw)

	cursor := v11HeaderSize

	ti.interfaces, cursor, err = decodeInterfaces(block, r, cursor, int(interfaceCount), charset)
	if err != nil {
		return nil, err
	}

	ti.methods, cursor, err = decodeMethods(block, r, cursor, int(methodCount), v11MethodStride, 0, is64Bit, charset)
	if err != nil {
		return nil, err
	}

	ti.properties, cursor, err = decodeProperties(block, r, cursor, int(propertyCount), v11PropertyStride, 0, charset)
	if err != nil {
		return nil, err
	}

	ti.variables, cursor, err = decodeVariables(block, r, cursor, int(variableCount), v11VariableStride, 0, charset)
	if err != nil {
		return nil, err
	}

	ti.events, cursor, err = decodeEvents(block, r, cursor, int(eventCount), v11EventStride, 0, is64Bit, charset)
	if err != nil {
		return nil, err
	}

	ti.tables, _, err = decodeTables(block, r, cursor, int(tableCount), v11TableStride, 0, charset)
	if err != nil {
		return nil, err
	}

	return ti, nil
}
