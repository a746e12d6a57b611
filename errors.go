// Package ecore implements a dynamic, reflective object model in the
// Essential MOF / Ecore family: metaclasses with typed attributes and
// references, instances bound to a metaclass with enforced typing,
// containment and opposite-reference bookkeeping, and typed collections
// for many-valued features.
package ecore

import "errors"

// Sentinel errors. Wrap with fmt.Errorf("...: %w", Err...) for context and
// compare with errors.Is.
var (
	// ErrBadValue is returned when a write or collection insertion fails
	// the isinstance rule for a feature's declared type.
	ErrBadValue = errors.New("ecore: bad value")

	// ErrNoSuchAttribute is returned by EGet when name is neither a
	// stored slot nor a feature of the instance's class.
	ErrNoSuchAttribute = errors.New("ecore: no such attribute")

	// ErrAbstractInstantiation is returned when New is called on a class
	// marked abstract.
	ErrAbstractInstantiation = errors.New("ecore: cannot instantiate abstract class")

	// ErrCyclicInheritance is returned when eSuperTypes would no longer
	// form a DAG.
	ErrCyclicInheritance = errors.New("ecore: cyclic inheritance")

	// ErrEmptyCollection is returned by Pop/PopAt on an empty collection
	// or an out-of-range index.
	ErrEmptyCollection = errors.New("ecore: empty collection")
)
