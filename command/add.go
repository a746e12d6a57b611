package command

import (
	"fmt"

	"github.com/efd6/goecore"
)

// Add inserts a value into a many-valued feature, either at a given
// index or, when no index is given, at the tail.
type Add struct {
	base
	index      int
	hasIndex   bool
	collection ecore.Collection
}

// NewAdd builds a command that will append value to owner's many-valued
// feature (named by featureName) when executed.
func NewAdd(owner *ecore.Instance, featureName string, value interface{}) *Add {
	return &Add{base: base{owner: owner, featureName: featureName, value: value}}
}

// NewAddAt builds a command that will insert value at index, shifting
// later elements up.
func NewAddAt(owner *ecore.Instance, featureName string, value interface{}, index int) *Add {
	return &Add{base: base{owner: owner, featureName: featureName, value: value}, index: index, hasIndex: true}
}

// WithLabel attaches a free-text label and returns c for chaining.
func (c *Add) WithLabel(label string) *Add { c.label = label; return c }

// CanExecute requires the common feature resolution, a non-nil value,
// and, when an index was given, that 0 <= index <= len(collection). The
// index field is the command's own state, not a stray outer variable.
func (c *Add) CanExecute() bool {
	if !c.resolveFeature() || c.value == nil {
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
	if c.hasIndex {
		return c.index >= 0 && c.index <= c.collection.Len()
	}
	return true
}

// CanUndo additionally requires that value is still present in the
// collection.
func (c *Add) CanUndo() bool {
	return c.base.CanUndo() && c.collection != nil && c.collection.Contains(c.value)
}

// Execute inserts at index if one was given; otherwise it records
// index = len(collection) and appends.
func (c *Add) Execute() error {
	if !c.CanExecute() {
		return cannotExecute(c)
	}
	if c.hasIndex {
		if err := c.collection.InsertAt(c.index, c.value); err != nil {
			return err
		}
	} else {
		c.index = c.collection.Len()
		if err := c.collection.Append(c.value); err != nil {
			return err
		}
	}
	c.hasIndex = true
	c.executed = true
	return nil
}

// Undo pops the element at index.
func (c *Add) Undo() error {
	_, err := c.collection.PopAt(c.index)
	return err
}

// Redo re-inserts value at index.
func (c *Add) Redo() error { return c.collection.InsertAt(c.index, c.value) }

func (c *Add) String() string {
	name := c.featureName
	if c.feature != nil {
		name = c.feature.FeatureName()
	}
	return fmt.Sprintf("Add %v.%s <- %v", c.owner, name, c.value)
}
