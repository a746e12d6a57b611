package ecore

// Parameter is a named, typed operation parameter.
type Parameter struct {
	name  string
	eType Classifier
}

// NewParameter builds a parameter named name of type t.
func NewParameter(name string, t Classifier) *Parameter { return &Parameter{name: name, eType: t} }

func (p *Parameter) Name() string    { return p.name }
func (p *Parameter) Type() Classifier { return p.eType }

// Operation is a declared method signature on a class: a name, a return
// type (nil for void), and an ordered parameter list. Bodies are out of
// scope (spec.md's "declared shapes only"); Operation exists so that
// eAllOperations/findEOperation have something to traverse.
type Operation struct {
	name       string
	returnType Classifier
	params     []*Parameter
}

// NewOperation builds an operation named name returning returnType (nil
// for void) with the given parameters in order.
func NewOperation(name string, returnType Classifier, params ...*Parameter) *Operation {
	return &Operation{name: name, returnType: returnType, params: append([]*Parameter{}, params...)}
}

func (o *Operation) Name() string         { return o.name }
func (o *Operation) ReturnType() Classifier { return o.returnType }
func (o *Operation) Parameters() []*Parameter {
	return append([]*Parameter{}, o.params...)
}
