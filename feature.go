package ecore

// Feature is the common protocol of EAttribute and EReference: a typed,
// bounded slot definition on a class.
type Feature interface {
	FeatureName() string
	Type() Classifier
	LowerBound() int
	UpperBound() int
	Many() bool
	Ordered() bool
	Unique() bool
	Required() bool
	Changeable() bool
	Volatile() bool
	Transient() bool
	Unsettable() bool
	Derived() bool
}

// StructuralFeature holds the fields common to EAttribute and EReference.
// Embed it and it satisfies Feature by promotion.
type StructuralFeature struct {
	name       string
	eType      Classifier
	lower      int
	upper      int
	ordered    bool
	unique     bool
	required   bool
	changeable bool
	volatile   bool
	transient  bool
	unsettable bool
	derived    bool
}

func (f *StructuralFeature) FeatureName() string  { return f.name }
func (f *StructuralFeature) Type() Classifier      { return f.eType }
func (f *StructuralFeature) LowerBound() int       { return f.lower }
func (f *StructuralFeature) UpperBound() int       { return f.upper }

// Many reports whether upperBound is unbounded (negative) or greater
// than one.
func (f *StructuralFeature) Many() bool { return f.upper > 1 || f.upper < 0 }

func (f *StructuralFeature) Ordered() bool    { return f.ordered }
func (f *StructuralFeature) Unique() bool     { return f.unique }
func (f *StructuralFeature) Required() bool   { return f.required }
func (f *StructuralFeature) Changeable() bool { return f.changeable }
func (f *StructuralFeature) Volatile() bool   { return f.volatile }
func (f *StructuralFeature) Transient() bool  { return f.transient }
func (f *StructuralFeature) Unsettable() bool { return f.unsettable }
func (f *StructuralFeature) Derived() bool    { return f.derived }

func newStructuralFeature(name string, t Classifier, lower, upper int) StructuralFeature {
	return StructuralFeature{
		name:    name,
		eType:   t,
		lower:   lower,
		upper:   upper,
		ordered: true,
		unique:  true,
	}
}

// Attribute is a data-typed feature (EAttribute).
type Attribute struct {
	StructuralFeature
	defaultValue interface{}
	hasDefault   bool
}

// NewAttribute builds a scalar (lower=0, upper=1) attribute of type t.
// Use the With* methods to customize bounds, default, and flags.
func NewAttribute(name string, t Classifier) *Attribute {
	return &Attribute{StructuralFeature: newStructuralFeature(name, t, 0, 1)}
}

// WithBounds sets lowerBound/upperBound (upper = -1 means unbounded).
func (a *Attribute) WithBounds(lower, upper int) *Attribute { a.lower, a.upper = lower, upper; return a }

// WithOrdered overrides the default ordered=true.
func (a *Attribute) WithOrdered(v bool) *Attribute { a.ordered = v; return a }

// WithUnique overrides the default unique=true.
func (a *Attribute) WithUnique(v bool) *Attribute { a.unique = v; return a }

// WithRequired marks the attribute required.
func (a *Attribute) WithRequired(v bool) *Attribute { a.required = v; return a }

// WithChangeable sets the attribute's changeable flag. Instance.ESet does
// not consult it: an attribute marked non-changeable can still be written.
func (a *Attribute) WithChangeable(v bool) *Attribute { a.changeable = v; return a }

// WithDerived marks the attribute derived.
func (a *Attribute) WithDerived(v bool) *Attribute { a.derived = v; return a }

// WithDefault sets an explicit default value, overriding the data type's
// own default.
func (a *Attribute) WithDefault(v interface{}) *Attribute {
	a.defaultValue, a.hasDefault = v, true
	return a
}

// DefaultValue returns the attribute's own default if one was set,
// otherwise the underlying data type's default.
func (a *Attribute) DefaultValue() interface{} {
	if a.hasDefault {
		return a.defaultValue
	}
	return defaultOf(a.eType)
}

// Reference is a feature whose type is a Class (EReference): it may be a
// containment reference and may carry a symmetric opposite.
type Reference struct {
	StructuralFeature
	containment bool
	opposite    *Reference
}

// NewReference builds a scalar (lower=0, upper=1), non-containment
// reference of type t. Use the With* methods to customize.
func NewReference(name string, t Classifier) *Reference {
	return &Reference{StructuralFeature: newStructuralFeature(name, t, 0, 1)}
}

func (r *Reference) WithBounds(lower, upper int) *Reference { r.lower, r.upper = lower, upper; return r }
func (r *Reference) WithOrdered(v bool) *Reference          { r.ordered = v; return r }
func (r *Reference) WithUnique(v bool) *Reference           { r.unique = v; return r }
func (r *Reference) WithRequired(v bool) *Reference         { r.required = v; return r }
func (r *Reference) WithContainment(v bool) *Reference      { r.containment = v; return r }

// Containment reports whether this reference owns its referent.
func (r *Reference) Containment() bool { return r.containment }

// Opposite returns the reciprocal reference, or nil.
func (r *Reference) Opposite() *Reference { return r.opposite }

// WithOpposite assigns a reciprocal reference; the assignment is
// symmetric, as section 3 requires: setting a.Opposite = b also sets
// b's opposite to a.
func (r *Reference) WithOpposite(o *Reference) *Reference {
	r.opposite = o
	if o != nil {
		o.opposite = r
	}
	return r
}
