// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

// This file holds the member-array decoders shared by typeblock_v11.go and
// typeblock_v12.go. Each function reads `count` fixed-stride records
// starting at cursor (stride includes any version-specific trailing bytes,
// e.g. v12's per-member source-position word, which are skipped rather
// than modeled — spec §3 doesn't surface source positions in TypeInfo),
// then reads that kind's variable-stride data immediately after, and
// returns the cursor positioned just past it.

func decodeInterfaces(block []byte, r *ByteReader, cursor, count int, charset Charset) ([]string, int, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		off, err := r.ReadU32(cursor)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		name, err := resolveString(block, off, charset)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, name)
		cursor += 4
	}
	return out, cursor, nil
}

func decodeParameters(block []byte, r *ByteReader, cursor, count int, charset Charset) ([]Parameter, int, error) {
	out := make([]Parameter, 0, count)
	for i := 0; i < count; i++ {
		nameOff, err := r.ReadU32(cursor)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		primitive, err := readByte(r, cursor+4)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		classNameOff, err := r.ReadU32(cursor + 5)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		mode, err := readByte(r, cursor+9)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		extent, err := r.ReadI32(cursor + 10)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}

		name, err := resolveString(block, nameOff, charset)
		if err != nil {
			return nil, 0, err
		}
		className, err := resolveString(block, classNameOff, charset)
		if err != nil {
			return nil, 0, err
		}

		out = append(out, Parameter{
			Name:   name,
			Type:   DataType{Primitive: PrimitiveDataType(primitive), ClassName: className},
			Mode:   ParameterMode(mode),
			Extent: extent,
		})
		cursor += paramStride
	}
	return out, cursor, nil
}

func decodeMethods(block []byte, r *ByteReader, cursor, count, stride, extra int, is64Bit bool, charset Charset) ([]MethodElement, int, error) {
	_ = is64Bit
	type fixed struct {
		nameOff, classNameOff uint32
		access                uint32
		primitive             byte
		paramCount            uint16
	}

	fixedRecords := make([]fixed, 0, count)
	for i := 0; i < count; i++ {
		nameOff, err := r.ReadU32(cursor)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		access, err := r.ReadU32(cursor + 4)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		primitive, err := readByte(r, cursor+8)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		classNameOff, err := r.ReadU32(cursor + 9)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		paramCount, err := r.ReadU16(cursor + 13)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		fixedRecords = append(fixedRecords, fixed{nameOff, classNameOff, access, primitive, paramCount})
		cursor += stride + extra
	}

	out := make([]MethodElement, 0, count)
	for i, f := range fixedRecords {
		name, err := resolveString(block, f.nameOff, charset)
		if err != nil {
			return nil, 0, err
		}
		className, err := resolveString(block, f.classNameOff, charset)
		if err != nil {
			return nil, 0, err
		}
		var params []Parameter
		params, cursor, err = decodeParameters(block, r, cursor, int(f.paramCount), charset)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, MethodElement{
			Name:       name,
			Access:     AccessFlags(f.access),
			ReturnType: DataType{Primitive: PrimitiveDataType(f.primitive), ClassName: className},
			Parameters: params,
			Position:   i,
		})
	}
	return out, cursor, nil
}

func decodeProperties(block []byte, r *ByteReader, cursor, count, stride, extra int, charset Charset) ([]PropertyElement, int, error) {
	type fixed struct {
		nameOff, classNameOff  uint32
		access                 uint32
		primitive              byte
		extent                 int32
		hasGetter, hasSetter   bool
	}

	fixedRecords := make([]fixed, 0, count)
	for i := 0; i < count; i++ {
		nameOff, err := r.ReadU32(cursor)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		access, err := r.ReadU32(cursor + 4)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		primitive, err := readByte(r, cursor+8)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		classNameOff, err := r.ReadU32(cursor + 9)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		extent, err := r.ReadI32(cursor + 13)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		hasGetterB, err := readByte(r, cursor+17)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		hasSetterB, err := readByte(r, cursor+18)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		fixedRecords = append(fixedRecords, fixed{nameOff, classNameOff, access, primitive, extent, hasGetterB != 0, hasSetterB != 0})
		cursor += stride + extra
	}

	out := make([]PropertyElement, 0, count)
	for i, f := range fixedRecords {
		name, err := resolveString(block, f.nameOff, charset)
		if err != nil {
			return nil, 0, err
		}
		className, err := resolveString(block, f.classNameOff, charset)
		if err != nil {
			return nil, 0, err
		}

		pe := PropertyElement{
			Name:     name,
			Access:   AccessFlags(f.access),
			Type:     DataType{Primitive: PrimitiveDataType(f.primitive), ClassName: className},
			Extent:   f.extent,
			Position: i,
		}

		if f.hasGetter {
			getterAccess, err := r.ReadU32(cursor)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			pe.Getter = &PropertyAccessor{Access: AccessFlags(getterAccess)}
			cursor += 4
		}
		if f.hasSetter {
			setterAccess, err := r.ReadU32(cursor)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			pe.Setter = &PropertyAccessor{Access: AccessFlags(setterAccess)}
			cursor += 4
		}

		out = append(out, pe)
	}
	return out, cursor, nil
}

func decodeVariables(block []byte, r *ByteReader, cursor, count, stride, extra int, charset Charset) ([]VariableElement, int, error) {
	out := make([]VariableElement, 0, count)
	for i := 0; i < count; i++ {
		nameOff, err := r.ReadU32(cursor)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		primitive, err := readByte(r, cursor+4)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		classNameOff, err := r.ReadU32(cursor + 5)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		extent, err := r.ReadI32(cursor + 9)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		access, err := r.ReadU32(cursor + 13)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}

		name, err := resolveString(block, nameOff, charset)
		if err != nil {
			return nil, 0, err
		}
		className, err := resolveString(block, classNameOff, charset)
		if err != nil {
			return nil, 0, err
		}

		out = append(out, VariableElement{
			Name:     name,
			Type:     DataType{Primitive: PrimitiveDataType(primitive), ClassName: className},
			Extent:   extent,
			Access:   AccessFlags(access),
			Position: i,
		})
		cursor += stride + extra
	}
	return out, cursor, nil
}

func decodeEvents(block []byte, r *ByteReader, cursor, count, stride, extra int, is64Bit bool, charset Charset) ([]EventElement, int, error) {
	_ = is64Bit
	type fixed struct {
		nameOff    uint32
		access     uint32
		paramCount uint16
	}

	fixedRecords := make([]fixed, 0, count)
	for i := 0; i < count; i++ {
		nameOff, err := r.ReadU32(cursor)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		access, err := r.ReadU32(cursor + 4)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		paramCount, err := r.ReadU16(cursor + 8)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		fixedRecords = append(fixedRecords, fixed{nameOff, access, paramCount})
		cursor += stride + extra
	}

	out := make([]EventElement, 0, count)
	for i, f := range fixedRecords {
		name, err := resolveString(block, f.nameOff, charset)
		if err != nil {
			return nil, 0, err
		}
		var params []Parameter
		params, cursor, err = decodeParameters(block, r, cursor, int(f.paramCount), charset)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, EventElement{
			Name:       name,
			Access:     AccessFlags(f.access),
			Parameters: params,
			Position:   i,
		})
	}
	return out, cursor, nil
}

func decodeTables(block []byte, r *ByteReader, cursor, count, stride, extra int, charset Charset) ([]TableElement, int, error) {
	type fixed struct {
		nameOff, bufferNameOff uint32
		access                 uint32
		fieldCount, indexCount uint16
	}

	fixedRecords := make([]fixed, 0, count)
	for i := 0; i < count; i++ {
		nameOff, err := r.ReadU32(cursor)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		access, err := r.ReadU32(cursor + 4)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		bufferNameOff, err := r.ReadU32(cursor + 8)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		fieldCount, err := r.ReadU16(cursor + 12)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		indexCount, err := r.ReadU16(cursor + 14)
		if err != nil {
			return nil, 0, shortRead("type-block")
		}
		fixedRecords = append(fixedRecords, fixed{nameOff, bufferNameOff, access, fieldCount, indexCount})
		cursor += stride + extra
	}

	out := make([]TableElement, 0, count)
	for i, f := range fixedRecords {
		name, err := resolveString(block, f.nameOff, charset)
		if err != nil {
			return nil, 0, err
		}
		bufferName, err := resolveString(block, f.bufferNameOff, charset)
		if err != nil {
			return nil, 0, err
		}

		fields := make([]Field, 0, f.fieldCount)
		for j := 0; j < int(f.fieldCount); j++ {
			fNameOff, err := r.ReadU32(cursor)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			primitive, err := readByte(r, cursor+4)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			classNameOff, err := r.ReadU32(cursor + 5)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			extent, err := r.ReadI32(cursor + 9)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			labelOff, err := r.ReadU32(cursor + 13)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			initialOff, err := r.ReadU32(cursor + 17)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}

			fName, err := resolveString(block, fNameOff, charset)
			if err != nil {
				return nil, 0, err
			}
			className, err := resolveString(block, classNameOff, charset)
			if err != nil {
				return nil, 0, err
			}
			label, err := resolveString(block, labelOff, charset)
			if err != nil {
				return nil, 0, err
			}
			initial, err := resolveString(block, initialOff, charset)
			if err != nil {
				return nil, 0, err
			}

			fields = append(fields, Field{
				Name:    fName,
				Type:    DataType{Primitive: PrimitiveDataType(primitive), ClassName: className},
				Extent:  extent,
				Label:   label,
				Initial: initial,
			})
			cursor += fieldStride
		}

		indexes := make([]Index, 0, f.indexCount)
		for j := 0; j < int(f.indexCount); j++ {
			iNameOff, err := r.ReadU32(cursor)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			iAccess, err := r.ReadU32(cursor + 4)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			componentCount, err := r.ReadU16(cursor + 8)
			if err != nil {
				return nil, 0, shortRead("type-block")
			}
			cursor += 10

			iName, err := resolveString(block, iNameOff, charset)
			if err != nil {
				return nil, 0, err
			}

			components := make([]IndexComponent, 0, componentCount)
			for k := 0; k < int(componentCount); k++ {
				fieldPos, err := r.ReadU16(cursor)
				if err != nil {
					return nil, 0, shortRead("type-block")
				}
				ascending, err := readByte(r, cursor+2)
				if err != nil {
					return nil, 0, shortRead("type-block")
				}
				components = append(components, IndexComponent{
					FieldPosition: int(fieldPos),
					Ascending:     ascending != 0,
				})
				cursor += 3
			}

			indexes = append(indexes, Index{
				Name:       iName,
				Access:     AccessFlags(iAccess),
				Components: components,
			})
		}

		out = append(out, TableElement{
			Name:       name,
			Access:     AccessFlags(f.access),
			BufferName: bufferName,
			Fields:     fields,
			Indexes:    indexes,
			Position:   i,
		})
	}
	return out, cursor, nil
}

func readByte(r *ByteReader, offset int) (byte, error) {
	b, err := r.ReadBytes(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
