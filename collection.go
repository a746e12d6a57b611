package ecore

import "fmt"

// Collection is the public protocol shared by List, OrderedSet, and Set:
// the typed, owner-and-feature-bound collections that back many-valued
// features (section 4.3).
type Collection interface {
	Owner() *Instance
	Feature() Feature

	Len() int
	Slice() []interface{}
	At(i int) (interface{}, bool)
	IndexOf(v interface{}) (int, bool)
	Contains(v interface{}) bool

	Append(v interface{}) error
	Add(v interface{}) error
	Extend(vs ...interface{}) error
	Update(vs ...interface{}) error
	Remove(v interface{}) error
	InsertAt(i int, v interface{}) error
	PopAt(i int) (interface{}, error)
	Pop() (interface{}, error)
}

// rawMutator is the unexported "bypass opposite propagation" half of a
// collection's mutators, used only by the reciprocal-update and
// containment-transfer bookkeeping (in instance.go and in this file's
// bookkeepAdd/bookkeepRemove) to break infinite recursion (design notes,
// section 4.3).
type rawMutator interface {
	appendRaw(v interface{}, updateOpposite bool) error
	removeRaw(v interface{}, updateOpposite bool) error
}

// collectionBase implements the mutation pipeline shared by all three
// collection flavors: check the isinstance rule, perform containment and
// opposite bookkeeping (unless suppressed), then apply the structural
// change.
type collectionBase struct {
	owner   *Instance
	feature Feature
	unique  bool
	items   []interface{}
}

func (c *collectionBase) Owner() *Instance   { return c.owner }
func (c *collectionBase) Feature() Feature    { return c.feature }
func (c *collectionBase) Len() int            { return len(c.items) }

func (c *collectionBase) Slice() []interface{} {
	out := make([]interface{}, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collectionBase) At(i int) (interface{}, bool) {
	if i < 0 || i >= len(c.items) {
		return nil, false
	}
	return c.items[i], true
}

func (c *collectionBase) IndexOf(v interface{}) (int, bool) {
	for idx, e := range c.items {
		if e == v {
			return idx, true
		}
	}
	return 0, false
}

func (c *collectionBase) Contains(v interface{}) bool {
	_, ok := c.IndexOf(v)
	return ok
}

func (c *collectionBase) check(v interface{}) error {
	if !IsInstance(v, c.feature.Type()) {
		return fmt.Errorf("%w: feature %q expects %s, got %T (%v)",
			ErrBadValue, c.feature.FeatureName(), c.feature.Type().Name(), v, v)
	}
	return nil
}

// bookkeepAdd mirrors applyReferenceBookkeeping for an element entering
// a many-valued reference: attach containment and, unless suppressed by
// the caller (via the updateOpposite flag threaded through appendRaw/
// insertRaw), add the owner to the opposite side.
func (c *collectionBase) bookkeepAdd(v interface{}, updateOpposite bool) {
	ref, ok := c.feature.(*Reference)
	if !ok {
		return
	}
	inst, ok := v.(*Instance)
	if !ok {
		return
	}
	if ref.containment {
		detachFromContainer(inst, c.owner, ref)
		inst.container = c.owner
		inst.containmentFeature = ref
	}
	if !updateOpposite || ref.opposite == nil {
		return
	}
	opp := ref.opposite
	if opp.Many() {
		if oc, err := inst.EGet(opp.FeatureName()); err == nil {
			if rm, ok := oc.(rawMutator); ok {
				rm.appendRaw(c.owner, false)
			}
		}
	} else {
		inst.rawSetOpposite(opp.FeatureName(), c.owner)
	}
}

func (c *collectionBase) bookkeepRemove(v interface{}, updateOpposite bool) {
	if !updateOpposite {
		return
	}
	ref, ok := c.feature.(*Reference)
	if !ok {
		return
	}
	inst, ok := v.(*Instance)
	if !ok {
		return
	}
	if ref.containment && inst.container == c.owner {
		inst.container = nil
		inst.containmentFeature = nil
	}
	if ref.opposite == nil {
		return
	}
	opp := ref.opposite
	if opp.Many() {
		if oc, err := inst.EGet(opp.FeatureName()); err == nil {
			if rm, ok := oc.(rawMutator); ok {
				rm.removeRaw(c.owner, false)
			}
		}
	} else {
		inst.rawSetOpposite(opp.FeatureName(), nil)
	}
}

func (c *collectionBase) appendRaw(v interface{}, updateOpposite bool) error {
	if err := c.check(v); err != nil {
		return err
	}
	if c.unique && c.Contains(v) {
		return nil
	}
	c.bookkeepAdd(v, updateOpposite)
	c.items = append(c.items, v)
	return nil
}

func (c *collectionBase) insertRaw(idx int, v interface{}, updateOpposite bool) error {
	if idx < 0 || idx > len(c.items) {
		return fmt.Errorf("%w: index %d out of range [0,%d]", ErrBadValue, idx, len(c.items))
	}
	if err := c.check(v); err != nil {
		return err
	}
	if c.unique && c.Contains(v) {
		return nil
	}
	c.bookkeepAdd(v, updateOpposite)
	c.items = append(c.items, nil)
	copy(c.items[idx+1:], c.items[idx:])
	c.items[idx] = v
	return nil
}

func (c *collectionBase) popAtRaw(idx int, updateOpposite bool) (interface{}, error) {
	if idx < 0 || idx >= len(c.items) {
		return nil, fmt.Errorf("%w: index %d out of range", ErrEmptyCollection, idx)
	}
	v := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.bookkeepRemove(v, updateOpposite)
	return v, nil
}

func (c *collectionBase) removeRaw(v interface{}, updateOpposite bool) error {
	idx, ok := c.IndexOf(v)
	if !ok {
		return nil
	}
	_, err := c.popAtRaw(idx, updateOpposite)
	return err
}

// Append adds v at the tail, with full containment/opposite bookkeeping.
func (c *collectionBase) Append(v interface{}) error { return c.appendRaw(v, true) }

// Add is Append under set terminology.
func (c *collectionBase) Add(v interface{}) error { return c.Append(v) }

// Extend appends each value in order, stopping at the first error.
func (c *collectionBase) Extend(vs ...interface{}) error {
	for _, v := range vs {
		if err := c.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Update is Extend under set terminology.
func (c *collectionBase) Update(vs ...interface{}) error { return c.Extend(vs...) }

// Remove detaches v if present; removing an absent value is a no-op.
func (c *collectionBase) Remove(v interface{}) error { return c.removeRaw(v, true) }

// InsertAt inserts v at position i, shifting subsequent elements up. A
// no-op when the collection is unique and v is already present.
func (c *collectionBase) InsertAt(i int, v interface{}) error { return c.insertRaw(i, v, true) }

// PopAt removes and returns the element at position i, shifting
// subsequent elements down.
func (c *collectionBase) PopAt(i int) (interface{}, error) { return c.popAtRaw(i, true) }

// Pop removes and returns the tail element. An empty pop fails with
// ErrEmptyCollection.
func (c *collectionBase) Pop() (interface{}, error) {
	if len(c.items) == 0 {
		return nil, ErrEmptyCollection
	}
	return c.PopAt(len(c.items) - 1)
}

// List backs an ordered, non-unique feature, and is also the fallback
// variant for an unordered, non-unique feature (section 4.3's table).
type List struct{ collectionBase }

// OrderedSet backs an ordered, unique feature: insert is a no-op when the
// value is already present.
type OrderedSet struct{ collectionBase }

// Set backs an unordered, unique feature.
type Set struct{ collectionBase }

func newList(owner *Instance, f Feature) *List {
	return &List{collectionBase{owner: owner, feature: f, unique: false}}
}

func newOrderedSet(owner *Instance, f Feature) *OrderedSet {
	return &OrderedSet{collectionBase{owner: owner, feature: f, unique: true}}
}

func newSet(owner *Instance, f Feature) *Set {
	return &Set{collectionBase{owner: owner, feature: f, unique: true}}
}

// newCollection selects a variant per the (ordered, unique) table in
// section 4.3.
func newCollection(owner *Instance, f Feature) Collection {
	switch {
	case f.Ordered() && f.Unique():
		return newOrderedSet(owner, f)
	case f.Ordered() && !f.Unique():
		return newList(owner, f)
	case !f.Ordered() && f.Unique():
		return newSet(owner, f)
	default:
		return newList(owner, f)
	}
}

// NewCollection builds an empty typed collection of the variant implied
// by feature's (Ordered, Unique) flags, bound to owner. Use it to seed a
// many-valued feature before calling Instance.ESet, or when building
// instances outside of EGet's lazy materialization (e.g. the loader
// package).
func NewCollection(owner *Instance, feature Feature) Collection {
	return newCollection(owner, feature)
}
