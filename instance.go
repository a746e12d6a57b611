package ecore

import (
	"fmt"

	"github.com/google/uuid"
)

// newExternalID mints an external identifier for a newly created
// instance, standing in for pyecore's _xmiid slot (see SPEC_FULL.md
// section 5).
func newExternalID() string { return uuid.NewString() }

// Instance is a model element: a runtime object bound to an EClass,
// carrying one slot per feature in eAllStructuralFeatures() plus a
// container back-pointer and bookkeeping state.
type Instance struct {
	class *Class

	// slots holds both feature-backed values and arbitrary plain values
	// set under a name that is not a feature, keyed uniformly by name
	// (see section 4.2's Get/Set protocol).
	slots map[string]interface{}

	// isSet records which feature names have been explicitly assigned
	// since construction.
	isSet map[string]bool

	container          *Instance
	containmentFeature *Reference

	// ready distinguishes construction-time writes (which must not
	// trigger opposite/containment bookkeeping) from post-construction
	// mutation. See Class.NewUninitialized and MarkReady.
	ready bool

	externalID string
}

// Class returns the EClass this instance was created from.
func (i *Instance) Class() *Class { return i.class }

// ExternalID returns the instance's external identifier, assigned once
// at creation.
func (i *Instance) ExternalID() string { return i.externalID }

// EContainer returns the instance's current containing instance, or nil
// at the root of its containment tree.
func (i *Instance) EContainer() *Instance { return i.container }

// EContainmentFeature returns the reference under which this instance is
// contained, or nil.
func (i *Instance) EContainmentFeature() *Reference { return i.containmentFeature }

// IsSet reports whether name has been explicitly assigned since
// construction.
func (i *Instance) IsSet(name string) bool { return i.isSet[name] }

// MarkReady flips the instance into post-construction mode: subsequent
// ESet calls perform containment and opposite bookkeeping. It is a
// no-op if already ready.
func (i *Instance) MarkReady() { i.ready = true }

// EGet resolves a field access per section 4.2: a directly stored slot
// is returned as-is; otherwise name is resolved as a feature of the
// instance's class, materializing a typed collection (for many-valued
// features) or the feature's default value on first access.
func (i *Instance) EGet(name string) (interface{}, error) {
	if v, ok := i.slots[name]; ok {
		return v, nil
	}
	feat, ok := i.class.FindEStructuralFeature(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchAttribute, name)
	}
	if feat.Many() {
		coll := newCollection(i, feat)
		i.slots[name] = coll
		return coll, nil
	}
	def := featureDefault(feat)
	i.slots[name] = def
	return def, nil
}

// MustEGet is EGet without the error return, for call sites that have
// already established the feature exists (tests, generated code).
func (i *Instance) MustEGet(name string) interface{} {
	v, err := i.EGet(name)
	if err != nil {
		panic(err)
	}
	return v
}

func featureDefault(f Feature) interface{} {
	if a, ok := f.(*Attribute); ok {
		return a.DefaultValue()
	}
	return defaultOf(f.Type())
}

// ESet resolves a field write per section 4.2. If name is not a feature
// of the instance's class, it is stored as a plain slot. A many-valued
// feature requires the value to already be a typed Collection. A scalar
// feature's value must satisfy IsInstance against the feature's type;
// when the feature's type is a DataType and the value is a string, the
// type's FromString parser converts it before storage. Post-store
// bookkeeping (isSet, containment, opposite) only fires once the
// instance is ready.
func (i *Instance) ESet(name string, value interface{}) error {
	feat, ok := i.class.FindEStructuralFeature(name)
	if !ok {
		i.slots[name] = value
		return nil
	}

	if feat.Many() {
		coll, ok := value.(Collection)
		if !ok {
			return fmt.Errorf("%w: feature %q is many-valued, expected a Collection, got %T", ErrBadValue, name, value)
		}
		i.slots[name] = coll
		if i.ready {
			i.isSet[name] = true
		}
		return nil
	}

	if !IsInstance(value, feat.Type()) {
		return fmt.Errorf("%w: feature %q expects %s, got %T (%v)", ErrBadValue, name, feat.Type().Name(), value, value)
	}
	if dt, ok := feat.Type().(*DataType); ok {
		if s, isStr := value.(string); isStr {
			converted, err := dt.FromString(s)
			if err != nil {
				return fmt.Errorf("%w: parsing %q as %s: %v", ErrBadValue, s, dt.Name(), err)
			}
			value = converted
		}
	}

	previous := i.slots[name]
	i.slots[name] = value
	if !i.ready {
		return nil
	}
	i.isSet[name] = true
	if ref, ok := feat.(*Reference); ok {
		applyReferenceBookkeeping(i, ref, previous, value, true)
	}
	return nil
}

// rawSetOpposite is the "far side" of a reciprocal reference assignment:
// it stores the value and performs containment/opposite bookkeeping
// without propagating back to the near side, breaking the recursion the
// design notes call out.
func (i *Instance) rawSetOpposite(name string, value interface{}) {
	feat, ok := i.class.FindEStructuralFeature(name)
	if !ok {
		return
	}
	ref, ok := feat.(*Reference)
	if !ok {
		return
	}
	previous := i.slots[name]
	i.slots[name] = value
	if !i.ready {
		return
	}
	i.isSet[name] = true
	applyReferenceBookkeeping(i, ref, previous, value, false)
}

// applyReferenceBookkeeping implements the post-store rules of section
// 4.2 for a scalar reference write: containment transfer and, unless
// suppressed, symmetric opposite maintenance.
func applyReferenceBookkeeping(owner *Instance, ref *Reference, previous, value interface{}, updateOpposite bool) {
	var prevInst, newInst *Instance
	if prev, ok := previous.(*Instance); ok {
		prevInst = prev
	}
	if v, ok := value.(*Instance); ok {
		newInst = v
	}

	if ref.containment {
		if newInst != nil {
			detachFromContainer(newInst, owner, ref)
			newInst.container = owner
			newInst.containmentFeature = ref
		} else if prevInst != nil {
			prevInst.container = nil
			prevInst.containmentFeature = nil
		}
	}

	if !updateOpposite || ref.opposite == nil {
		return
	}
	opp := ref.opposite
	if newInst != nil {
		if opp.Many() {
			if c, err := newInst.EGet(opp.FeatureName()); err == nil {
				if rm, ok := c.(rawMutator); ok {
					rm.appendRaw(owner, false)
				}
			}
		} else {
			newInst.rawSetOpposite(opp.FeatureName(), owner)
		}
	} else if prevInst != nil {
		if opp.Many() {
			if c, err := prevInst.EGet(opp.FeatureName()); err == nil {
				if rm, ok := c.(rawMutator); ok {
					rm.removeRaw(owner, false)
				}
			}
		} else {
			prevInst.rawSetOpposite(opp.FeatureName(), nil)
		}
	}
}

// detachFromContainer enforces containment singularity (spec invariant 2):
// before inst is attached under newOwner/newFeature, it is spliced out of
// whatever container currently holds it, if that differs from the target.
// This runs unconditionally — unlike opposite propagation, it is never the
// recursive near-side write the updateOpposite flag guards against, since
// the prior container is, by construction, a different owner or feature.
func detachFromContainer(inst *Instance, newOwner *Instance, newFeature *Reference) {
	oldOwner := inst.container
	oldFeature := inst.containmentFeature
	if oldOwner == nil || oldFeature == nil {
		return
	}
	if oldOwner == newOwner && oldFeature == newFeature {
		return
	}
	if oldFeature.Many() {
		if coll, err := oldOwner.EGet(oldFeature.FeatureName()); err == nil {
			if rm, ok := coll.(rawMutator); ok {
				rm.removeRaw(inst, false)
			}
		}
		return
	}
	oldOwner.slots[oldFeature.FeatureName()] = nil
}

// GetRoot walks obj's eContainer() chain to its root. The containment
// graph is guaranteed to be a forest, so this terminates (section 3,
// invariant 4).
func GetRoot(obj *Instance) *Instance {
	if obj == nil {
		return nil
	}
	cur := obj
	for cur.container != nil {
		cur = cur.container
	}
	return cur
}
