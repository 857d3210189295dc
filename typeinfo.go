// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rcode

// Parameter describes one formal parameter of a method or event delegate.
type Parameter struct {
	Name   string        `json:"name"`
	Type   DataType      `json:"type"`
	Mode   ParameterMode `json:"mode"`
	Extent int32         `json:"extent"`
}

// MethodElement describes one declared method.
type MethodElement struct {
	Name       string      `json:"name"`
	Access     AccessFlags `json:"access"`
	ReturnType DataType    `json:"return_type"`
	Parameters []Parameter `json:"parameters"`
	Position   int         `json:"position"`
}

// PropertyAccessor describes a property's getter or setter body.
type PropertyAccessor struct {
	Access AccessFlags `json:"access"`
}

// PropertyElement describes one declared property.
type PropertyElement struct {
	Name     string            `json:"name"`
	Access   AccessFlags       `json:"access"`
	Type     DataType          `json:"type"`
	Extent   int32             `json:"extent"`
	Getter   *PropertyAccessor `json:"getter,omitempty"`
	Setter   *PropertyAccessor `json:"setter,omitempty"`
	Position int               `json:"position"`
}

// VariableElement describes one declared instance/static variable.
type VariableElement struct {
	Name     string      `json:"name"`
	Type     DataType    `json:"type"`
	Extent   int32       `json:"extent"`
	Access   AccessFlags `json:"access"`
	Position int         `json:"position"`
}

// EventElement describes one declared event, whose shape is a delegate
// signature (the same parameter list shape as a method).
type EventElement struct {
	Name       string      `json:"name"`
	Access     AccessFlags `json:"access"`
	Parameters []Parameter `json:"parameters"`
	Position   int         `json:"position"`
}

// Field describes one field of a temp-table/buffer.
type Field struct {
	Name    string   `json:"name"`
	Type    DataType `json:"type"`
	Extent  int32    `json:"extent"`
	Label   string   `json:"label"`
	Initial string   `json:"initial"`
}

// IndexComponent references one field, by position in Fields, that
// participates in an index.
type IndexComponent struct {
	FieldPosition int  `json:"field_position"`
	Ascending     bool `json:"ascending"`
}

// Index describes one index over a table's fields.
type Index struct {
	Name       string           `json:"name"`
	Access     AccessFlags      `json:"access"`
	Components []IndexComponent `json:"components"`
}

// TableElement describes one declared temp-table or buffer.
type TableElement struct {
	Name       string      `json:"name"`
	Access     AccessFlags `json:"access"`
	BufferName string      `json:"buffer_name"`
	Fields     []Field     `json:"fields"`
	Indexes    []Index     `json:"indexes"`
	Position   int         `json:"position"`
}

// TypeInfo is the decoded type-information block of a class artifact. Every
// field is populated exactly once during decode and is thereafter
// immutable; strings are owned copies with no back-reference into the raw
// type block, so a *TypeInfo may be shared freely across goroutines for
// read.
type TypeInfo struct {
	typeName       string
	parentTypeName string
	interfaces     []string
	flags          AccessFlags
	methods        []MethodElement
	properties     []PropertyElement
	variables      []VariableElement
	events         []EventElement
	tables         []TableElement
}

// Name returns the fully qualified class name.
func (t *TypeInfo) Name() string { return t.typeName }

// ParentName returns the fully qualified parent class name, or "" for a
// class with no explicit superclass.
func (t *TypeInfo) ParentName() string { return t.parentTypeName }

// Interfaces returns the ordered list of implemented interface names.
func (t *TypeInfo) Interfaces() []string { return t.interfaces }

// Methods returns the declared methods in declaration order.
func (t *TypeInfo) Methods() []MethodElement { return t.methods }

// Properties returns the declared properties in declaration order.
func (t *TypeInfo) Properties() []PropertyElement { return t.properties }

// Variables returns the declared variables in declaration order.
func (t *TypeInfo) Variables() []VariableElement { return t.variables }

// Events returns the declared events in declaration order.
func (t *TypeInfo) Events() []EventElement { return t.events }

// Tables returns the declared temp-tables/buffers in declaration order.
func (t *TypeInfo) Tables() []TableElement { return t.tables }

// HasFlag reports whether flag is set on the class itself (ABSTRACT,
// FINAL, SERIALIZABLE, ...).
func (t *TypeInfo) HasFlag(flag AccessFlags) bool { return t.flags.HasFlag(flag) }
