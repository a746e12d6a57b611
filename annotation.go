package ecore

// Annotation is a source-tagged string-keyed detail bag, matching
// pyecore's EAnnotation (SPEC_FULL.md section 5). It carries
// documentation/metadata that isn't part of the structural model itself.
// It is a standalone value: Class, Attribute, Reference, and Package have
// no field or method that holds annotations.
type Annotation struct {
	source  string
	details map[string]string
}

// NewAnnotation builds an annotation tagged with source.
func NewAnnotation(source string) *Annotation {
	return &Annotation{source: source, details: map[string]string{}}
}

func (a *Annotation) Source() string { return a.source }

// Details returns a copy of the annotation's detail map.
func (a *Annotation) Details() map[string]string {
	out := make(map[string]string, len(a.details))
	for k, v := range a.details {
		out[k] = v
	}
	return out
}

// SetDetail sets a single key/value detail entry and returns a for
// chaining.
func (a *Annotation) SetDetail(key, value string) *Annotation {
	a.details[key] = value
	return a
}

// Detail looks up a single detail entry by key.
func (a *Annotation) Detail(key string) (string, bool) {
	v, ok := a.details[key]
	return v, ok
}
