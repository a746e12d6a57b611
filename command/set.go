package command

import (
	"fmt"

	"github.com/efd6/goecore"
)

// Set writes a scalar feature, remembering the previous value so it can
// be restored on Undo.
type Set struct {
	base
	previous interface{}
}

// NewSet builds a command that will set owner's feature (named by
// featureName) to value when executed.
func NewSet(owner *ecore.Instance, featureName string, value interface{}) *Set {
	return &Set{base: base{owner: owner, featureName: featureName, value: value}}
}

// WithLabel attaches a free-text label and returns c for chaining.
func (c *Set) WithLabel(label string) *Set { c.label = label; return c }

// CanExecute requires the common feature resolution plus that the
// feature is scalar.
func (c *Set) CanExecute() bool {
	return c.resolveFeature() && !c.feature.Many()
}

// Execute records the feature's current value as previous, then writes
// value.
func (c *Set) Execute() error {
	if !c.CanExecute() {
		return cannotExecute(c)
	}
	prev, err := c.owner.EGet(c.feature.FeatureName())
	if err != nil {
		return err
	}
	if err := c.owner.ESet(c.feature.FeatureName(), c.value); err != nil {
		return err
	}
	c.previous = prev
	c.executed = true
	return nil
}

// Undo restores the previous value.
func (c *Set) Undo() error { return c.owner.ESet(c.feature.FeatureName(), c.previous) }

// Redo reapplies value.
func (c *Set) Redo() error { return c.owner.ESet(c.feature.FeatureName(), c.value) }

func (c *Set) String() string {
	name := c.featureName
	if c.feature != nil {
		name = c.feature.FeatureName()
	}
	return fmt.Sprintf("Set %v.%s <- %v", c.owner, name, c.value)
}
