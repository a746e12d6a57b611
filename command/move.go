package command

import (
	"fmt"

	"github.com/efd6/goecore"
)

// Move relocates an existing element of a many-valued feature from one
// position to another. Exactly one of fromIndex or value is supplied at
// construction; the other is resolved against the collection in
// CanExecute.
type Move struct {
	base
	fromIndex  int
	hasFrom    bool
	toIndex    int
	collection ecore.Collection
}

// NewMoveFromIndex builds a move of whatever element sits at fromIndex
// to toIndex.
func NewMoveFromIndex(owner *ecore.Instance, featureName string, fromIndex, toIndex int) *Move {
	return &Move{
		base:      base{owner: owner, featureName: featureName},
		fromIndex: fromIndex,
		hasFrom:   true,
		toIndex:   toIndex,
	}
}

// NewMoveValue builds a move of value, wherever it currently sits, to
// toIndex.
func NewMoveValue(owner *ecore.Instance, featureName string, value interface{}, toIndex int) *Move {
	return &Move{
		base:    base{owner: owner, featureName: featureName, value: value},
		toIndex: toIndex,
	}
}

// NewMove is the general constructor: exactly one of fromIndex (haveFromIndex=true)
// or value (non-nil) must be supplied, matching the precondition
// commands.py enforces at construction time. Supplying both or neither
// fails with ErrConstruction.
func NewMove(owner *ecore.Instance, featureName string, fromIndex int, haveFromIndex bool, value interface{}, toIndex int) (*Move, error) {
	if haveFromIndex == (value != nil) {
		return nil, fmt.Errorf("%w: move requires exactly one of fromIndex or value", ErrConstruction)
	}
	if haveFromIndex {
		return NewMoveFromIndex(owner, featureName, fromIndex, toIndex), nil
	}
	return NewMoveValue(owner, featureName, value, toIndex), nil
}

// WithLabel attaches a free-text label and returns c for chaining.
func (c *Move) WithLabel(label string) *Move { c.label = label; return c }

// CanExecute resolves the missing half of (fromIndex, value) from the
// other, then requires 0 <= fromIndex < len(collection), toIndex >= 0,
// and value present in the collection.
func (c *Move) CanExecute() bool {
	if !c.resolveFeature() || c.toIndex < 0 {
		return false
	}
	coll, err := c.owner.EGet(c.feature.FeatureName())
	if err != nil {
		return false
	}
	c.collection, _ = coll.(ecore.Collection)
	if c.collection == nil {
		return false
	}
	if c.value == nil {
		v, ok := c.collection.At(c.fromIndex)
		if !ok {
			return false
		}
		c.value = v
	}
	if !c.hasFrom {
		idx, ok := c.collection.IndexOf(c.value)
		if !ok {
			return false
		}
		c.fromIndex = idx
		c.hasFrom = true
	}
	if c.fromIndex < 0 || c.fromIndex >= c.collection.Len() {
		return false
	}
	return c.collection.Contains(c.value)
}

// CanUndo additionally requires that the element currently at toIndex is
// still value.
func (c *Move) CanUndo() bool {
	if !c.base.CanUndo() || c.collection == nil {
		return false
	}
	at, ok := c.collection.At(c.toIndex)
	return ok && at == c.value
}

// Execute pops at fromIndex and inserts at toIndex.
func (c *Move) Execute() error {
	if !c.CanExecute() {
		return cannotExecute(c)
	}
	v, err := c.collection.PopAt(c.fromIndex)
	if err != nil {
		return err
	}
	if err := c.collection.InsertAt(c.toIndex, v); err != nil {
		return err
	}
	c.value = v
	c.executed = true
	return nil
}

// Undo pops at toIndex and re-inserts at fromIndex.
func (c *Move) Undo() error {
	v, err := c.collection.PopAt(c.toIndex)
	if err != nil {
		return err
	}
	return c.collection.InsertAt(c.fromIndex, v)
}

// Redo re-applies the move.
func (c *Move) Redo() error {
	v, err := c.collection.PopAt(c.fromIndex)
	if err != nil {
		return err
	}
	if err := c.collection.InsertAt(c.toIndex, v); err != nil {
		return err
	}
	c.value = v
	return nil
}

func (c *Move) String() string {
	name := c.featureName
	if c.feature != nil {
		name = c.feature.FeatureName()
	}
	return fmt.Sprintf("Move %v.%s[%d->%d]", c.owner, name, c.fromIndex, c.toIndex)
}
