// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

import "encoding/binary"

// v12 leading-record layout (36 bytes): the v11 layout (typeblock_v11.go)
// plus a digest offset and a reserved word, per spec §4.6 ("the presence
// of digest/hash fields" differs between v11 and v12). v12 also reorders
// the member-kind arrays relative to v11 (methods, events, properties,
// variables, tables instead of methods, properties, variables, events,
// tables) and appends a per-record source-position word to every
// fixed-stride member record, widened per spec §4.6's "word" rule.
const (
	v12HeaderSize = 36

	v12HdrDigestOffset = 28
)

func decodeTypeBlockV12(block []byte, order binary.ByteOrder, is64Bit bool, charset Charset) (*TypeInfo, error) {
	if len(block) < v12HeaderSize {
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

	extra := wordSize(is64Bit)
	cursor := v12HeaderSize

	ti.interfaces, cursor, err = decodeInterfaces(block, r, cursor, int(interfaceCount), charset)
	if err != nil {
		return nil, err
	}

	ti.methods, cursor, err = decodeMethods(block, r, cursor, int(methodCount), v11MethodStride, extra, is64Bit, charset)
	if err != nil {
		return nil, err
	}

	ti.events, cursor, err = decodeEvents(block, r, cursor, int(eventCount), v11EventStride, extra, is64Bit, charset)
	if err != nil {
		return nil, err
	}

	ti.properties, cursor, err = decodeProperties(block, r, cursor, int(propertyCount), v11PropertyStride, extra, charset)
	if err != nil {
		return nil, err
	}

	ti.variables, cursor, err = decodeVariables(block, r, cursor, int(variableCount), v11VariableStride, extra, charset)
	if err != nil {
		return nil, err
	}

	ti.tables, _, err = decodeTables(block, r, cursor, int(tableCount), v11TableStride, extra, charset)
	if err != nil {
		return nil, err
	}

	return ti, nil
}
