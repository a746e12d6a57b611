package command

import (
	"fmt"

	"github.com/efd6/goecore"
)

// Remove detaches a value from a many-valued feature, either at a given
// index or, when no index is given, wherever the value is found.
type Remove struct {
	base
	index      int
	hasIndex   bool
	collection ecore.Collection
}

// NewRemove builds a command that will remove value from owner's
// many-valued feature (named by featureName) when executed, locating it
// by identity at execution time.
func NewRemove(owner *ecore.Instance, featureName string, value interface{}) *Remove {
	return &Remove{base: base{owner: owner, featureName: featureName, value: value}}
}

// NewRemoveAt builds a command that will remove whatever value sits at
// index when executed.
func NewRemoveAt(owner *ecore.Instance, featureName string, value interface{}, index int) *Remove {
	return &Remove{base: base{owner: owner, featureName: featureName, value: value}, index: index, hasIndex: true}
}

// WithLabel attaches a free-text label and returns c for chaining.
func (c *Remove) WithLabel(label string) *Remove { c.label = label; return c }

// CanExecute requires the common feature resolution, a non-nil value,
// and, when an index was given, that 0 <= index <= len(collection).
func (c *Remove) CanExecute() bool {
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

// Execute computes index from value if none was given, then pops at
// index.
func (c *Remove) Execute() error {
	if !c.CanExecute() {
		return cannotExecute(c)
	}
	if !c.hasIndex {
		idx, ok := c.collection.IndexOf(c.value)
		if !ok {
			return cannotExecute(c)
		}
		c.index = idx
		c.hasIndex = true
	}
	if _, err := c.collection.PopAt(c.index); err != nil {
		return err
	}
	c.executed = true
	return nil
}

// Undo re-inserts value at index.
func (c *Remove) Undo() error { return c.collection.InsertAt(c.index, c.value) }

// Redo pops at index again.
func (c *Remove) Redo() error {
	_, err := c.collection.PopAt(c.index)
	return err
}

func (c *Remove) String() string {
	name := c.featureName
	if c.feature != nil {
		name = c.feature.FeatureName()
	}
	return fmt.Sprintf("Remove %v.%s <- %v", c.owner, name, c.value)
}
