package ecore

import "reflect"

// EnumLiteral is one named, ordered value of an Enum.
type EnumLiteral struct {
	Ordinal int
	Name    string
}

// Enum is a DataType whose values are a finite ordered sequence of
// EnumLiteral. Literal names starting with a digit are prefixed with "_"
// at creation, per section 3.
type Enum struct {
	DataType
	literals []*EnumLiteral
}

// NewEnum builds an enum named name with the given literal names in
// order. defaultName selects the default literal by name; an empty
// defaultName defaults to the first literal.
func NewEnum(name string, defaultName string, literalNames ...string) *Enum {
	e := &Enum{DataType: DataType{name: name}}
	e.hostType = reflect.TypeOf(&EnumLiteral{})
	for i, n := range literalNames {
		if len(n) > 0 && n[0] >= '0' && n[0] <= '9' {
			n = "_" + n
		}
		e.literals = append(e.literals, &EnumLiteral{Ordinal: i, Name: n})
	}
	if defaultName != "" {
		if lit, ok := e.ByName(defaultName); ok {
			e.defaultValue = lit
		}
	} else if len(e.literals) > 0 {
		e.defaultValue = e.literals[0]
	}
	return e
}

// Literals returns the enum's literals in declaration order.
func (e *Enum) Literals() []*EnumLiteral {
	out := make([]*EnumLiteral, len(e.literals))
	copy(out, e.literals)
	return out
}

// ByName looks up a literal by name.
func (e *Enum) ByName(name string) (*EnumLiteral, bool) {
	for _, l := range e.literals {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// ByOrdinal looks up a literal by ordinal position.
func (e *Enum) ByOrdinal(ordinal int) (*EnumLiteral, bool) {
	for _, l := range e.literals {
		if l.Ordinal == ordinal {
			return l, true
		}
	}
	return nil, false
}

// Contains reports membership by literal identity or by literal name.
func (e *Enum) Contains(v interface{}) bool {
	switch t := v.(type) {
	case *EnumLiteral:
		for _, l := range e.literals {
			if l == t {
				return true
			}
		}
		return false
	case string:
		_, ok := e.ByName(t)
		return ok
	}
	return false
}
