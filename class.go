package ecore

// Class is a runtime-defined metaclass (EClass): a name, an abstract
// flag, an ordered list of supertypes (multiple inheritance permitted),
// owned structural features (attributes and references), and owned
// operation signatures.
type Class struct {
	name       string
	abstract   bool
	superTypes []*Class
	features   []Feature
	operations []*Operation

	// meta is the EClass describing this Class, set by the bootstrap
	// package. EClass's own meta is itself: the metamodel fixpoint.
	meta *Class
}

// NewClass builds a class named name with the given direct supertypes
// (construction accepts zero or more; spec.md's "tuple or single
// superclass" collapses to Go's variadic parameter).
func NewClass(name string, superTypes ...*Class) *Class {
	return &Class{name: name, superTypes: append([]*Class{}, superTypes...)}
}

func (c *Class) Name() string   { return c.name }
func (c *Class) classifierTag() {}

// Abstract reports whether instantiation is refused.
func (c *Class) Abstract() bool { return c.abstract }

// MarkAbstract marks c abstract, mirroring spec.md's module-level
// abstract(cls) helper, and returns c for chaining.
func MarkAbstract(c *Class) *Class {
	c.abstract = true
	return c
}

// SuperTypes returns c's direct supertypes, in declaration order.
func (c *Class) SuperTypes() []*Class { return append([]*Class{}, c.superTypes...) }

// AddSuperType appends s to c's direct supertypes. Constructing a class
// with NewClass(name, supers...) and calling AddSuperType later are
// equivalent; both simply append to eSuperTypes.
func (c *Class) AddSuperType(s *Class) { c.superTypes = append(c.superTypes, s) }

// Features returns c's own eStructuralFeatures, not including inherited
// ones.
func (c *Class) Features() []Feature { return append([]Feature{}, c.features...) }

// AddFeature appends f to c's own eStructuralFeatures.
func (c *Class) AddFeature(f Feature) { c.features = append(c.features, f) }

// Attributes returns the subset of own features that are attributes.
func (c *Class) Attributes() []*Attribute {
	var out []*Attribute
	for _, f := range c.features {
		if a, ok := f.(*Attribute); ok {
			out = append(out, a)
		}
	}
	return out
}

// References returns the subset of own features that are references.
func (c *Class) References() []*Reference {
	var out []*Reference
	for _, f := range c.features {
		if r, ok := f.(*Reference); ok {
			out = append(out, r)
		}
	}
	return out
}

// Operations returns c's own declared operations.
func (c *Class) Operations() []*Operation { return append([]*Operation{}, c.operations...) }

// AddOperation appends an operation signature to c.
func (c *Class) AddOperation(o *Operation) { c.operations = append(c.operations, o) }

// MetaClass returns the EClass describing c, set during bootstrap.
func (c *Class) MetaClass() *Class { return c.meta }

// CheckAcyclic reports ErrCyclicInheritance if c's eSuperTypes no longer
// form a DAG. Callers that mutate eSuperTypes after construction are
// responsible for invoking this; it is not checked implicitly on every
// AddSuperType, matching spec.md's "undefined behavior otherwise --
// caller's responsibility" invariant note.
func (c *Class) CheckAcyclic() error { return checkAcyclic(c) }

// AllSuperTypes returns the transitive closure of c.eSuperTypes,
// excluding c itself and de-duplicated. Ordering is not guaranteed.
func (c *Class) AllSuperTypes() []*Class { return allSuperTypes(c) }

// AllStructuralFeatures returns c's own features followed by the own
// features of each class in AllSuperTypes(), own-first.
func (c *Class) AllStructuralFeatures() []Feature {
	out := append([]Feature{}, c.features...)
	for _, s := range c.AllSuperTypes() {
		out = append(out, s.features...)
	}
	return out
}

// FindEStructuralFeature returns the first feature named name in an
// own-first traversal of c and its supertype closure, or false if none
// match.
func (c *Class) FindEStructuralFeature(name string) (Feature, bool) {
	for _, f := range c.AllStructuralFeatures() {
		if f.FeatureName() == name {
			return f, true
		}
	}
	return nil, false
}

// AllOperations returns c's own operations followed by the own
// operations of each class in AllSuperTypes().
func (c *Class) AllOperations() []*Operation {
	out := append([]*Operation{}, c.operations...)
	for _, s := range c.AllSuperTypes() {
		out = append(out, s.operations...)
	}
	return out
}

// FindEOperation returns the first operation named name in the closure,
// the operation analogue of FindEStructuralFeature.
func (c *Class) FindEOperation(name string) (*Operation, bool) {
	for _, o := range c.AllOperations() {
		if o.Name() == name {
			return o, true
		}
	}
	return nil, false
}

// New instantiates c, returning ErrAbstractInstantiation if c is marked
// abstract. The returned instance is immediately ready: bookkeeping for
// containment and opposites fires on every subsequent ESet.
func (c *Class) New() (*Instance, error) {
	if c.abstract {
		return nil, ErrAbstractInstantiation
	}
	inst := c.NewUninitialized()
	inst.ready = true
	return inst, nil
}

// NewUninitialized builds an instance bound to c without marking it
// ready, so bulk-loading code (see the loader package) can populate
// slots directly before MarkReady enables containment/opposite
// bookkeeping. It does not check abstractness: callers that need the
// guarantee should use New.
func (c *Class) NewUninitialized() *Instance {
	return &Instance{
		class:      c,
		slots:      map[string]interface{}{},
		isSet:      map[string]bool{},
		externalID: newExternalID(),
	}
}
