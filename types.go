package ecore

import (
	"reflect"
	"strconv"
)

// Classifier is a named type: a DataType, an Enum, or a Class. It is the
// value category every feature's eType and every instance's eClass is
// drawn from.
type Classifier interface {
	Name() string
	classifierTag()
}

// DataType is a primitive value type: a name, an underlying host type, a
// default value, and an optional string parser. Enum embeds DataType and
// adds its literal sequence.
type DataType struct {
	name         string
	hostType     reflect.Type
	defaultValue interface{}
	fromString   func(string) (interface{}, error)
}

// NewDataType builds a DataType named name whose host representation is
// the type of zero, defaulting to def, parsed from strings with
// fromString (nil means identity for strings, and unsupported for
// anything else).
func NewDataType(name string, zero, def interface{}, fromString func(string) (interface{}, error)) *DataType {
	return &DataType{
		name:         name,
		hostType:     reflect.TypeOf(zero),
		defaultValue: def,
		fromString:   fromString,
	}
}

func (d *DataType) Name() string    { return d.name }
func (d *DataType) classifierTag()  {}
func (d *DataType) HostType() reflect.Type { return d.hostType }

// DefaultValue returns the type's default, cloning it when the underlying
// representation is a mutable map so that no two instances share storage.
func (d *DataType) DefaultValue() interface{} {
	if m, ok := d.defaultValue.(map[string]string); ok {
		clone := make(map[string]string, len(m))
		for k, v := range m {
			clone[k] = v
		}
		return clone
	}
	return d.defaultValue
}

// FromString converts a string literal to this type's host representation.
func (d *DataType) FromString(s string) (interface{}, error) {
	if d.fromString == nil {
		return s, nil
	}
	return d.fromString(s)
}

// Built-in primitive data types.
var (
	String = NewDataType("String", "", "", nil)

	Boolean = NewDataType("Boolean", false, false, func(s string) (interface{}, error) {
		return s == "True" || s == "true", nil
	})

	Integer = NewDataType("Integer", 0, 0, func(s string) (interface{}, error) {
		return strconv.Atoi(s)
	})

	StringMap = NewDataType("StringMap", map[string]string{}, map[string]string{}, nil)

	// DiagnosticChain is an opaque string payload; it has no structured
	// parser, matching pyecore's EDiagnosticChain.
	DiagnosticChain = NewDataType("DiagnosticChain", "", "", nil)
)

// defaultOf returns the zero/default value described by a classifier that
// is a DataType or Enum, or nil for anything else (in particular, Class,
// whose scalar default is always nil).
func defaultOf(c Classifier) interface{} {
	switch t := c.(type) {
	case *DataType:
		return t.DefaultValue()
	case *Enum:
		return t.DefaultValue()
	}
	return nil
}

// isNilValue reports whether obj is either a bare nil interface or a
// typed nil (nil pointer/map/slice/etc. boxed in interface{}).
func isNilValue(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// IsInstance implements the typing rule from section 4.2: nil satisfies
// any type; an Enum type accepts one of its literals or a literal name; a
// DataType accepts a value whose host type matches; a Class accepts an
// Instance whose class is exactly t or descends from it.
func IsInstance(obj interface{}, t Classifier) bool {
	if isNilValue(obj) {
		return true
	}
	switch tt := t.(type) {
	case *Enum:
		return tt.Contains(obj)
	case *DataType:
		return reflect.TypeOf(obj) == tt.hostType
	case *Class:
		inst, ok := obj.(*Instance)
		if !ok {
			return false
		}
		if inst.class == tt {
			return true
		}
		for _, s := range inst.class.AllSuperTypes() {
			if s == tt {
				return true
			}
		}
		return false
	}
	return false
}
