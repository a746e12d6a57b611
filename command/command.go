// Package command implements reversible, feasibility-checked edits over
// an ecore instance graph: Set, Add, Remove, Move, and Compound, plus a
// linear undo/redo Stack.
package command

import (
	"errors"
	"fmt"

	"github.com/efd6/goecore"
)

// Sentinel errors specific to the command layer. Compare with errors.Is.
var (
	// ErrCannotExecute is returned when a command's CanExecute is false
	// at the moment the stack attempts to execute it.
	ErrCannotExecute = errors.New("command: cannot execute")

	// ErrEmptyStack is returned by Stack.Undo on an empty stack.
	ErrEmptyStack = errors.New("command: stack is empty")

	// ErrOutOfBounds is returned by Stack.Redo when there is no command
	// past the cursor.
	ErrOutOfBounds = errors.New("command: redo out of bounds")

	// ErrConstruction is returned by NewMove when from_index and value
	// are both or neither supplied.
	ErrConstruction = errors.New("command: invalid construction")
)

// Command is a reified mutation: feasibility-checked, executable,
// undoable, redoable.
type Command interface {
	CanExecute() bool
	Execute() error
	CanUndo() bool
	Undo() error
	Redo() error
	Label() string
}

// base holds the state common to Set/Add/Remove/Move, mirroring
// commands.py's AbstractCommand: an owner, a feature (possibly still
// unresolved by name), a value, and whether the command has run.
type base struct {
	owner       *ecore.Instance
	feature     ecore.Feature
	featureName string
	value       interface{}
	label       string
	executed    bool
}

// resolveFeature implements the common precondition: the feature must
// resolve through FindEStructuralFeature to the exact feature object. If
// the command was built from a bare name, the resolved feature replaces
// it in place.
func (b *base) resolveFeature() bool {
	if b.feature != nil {
		actual, ok := b.owner.Class().FindEStructuralFeature(b.feature.FeatureName())
		return ok && actual == b.feature
	}
	actual, ok := b.owner.Class().FindEStructuralFeature(b.featureName)
	if !ok {
		return false
	}
	b.feature = actual
	return true
}

// CanUndo reports whether the command has executed. Concrete commands
// extend this with their own additional requirements.
func (b *base) CanUndo() bool { return b.executed }

// Label returns the command's free-text label, if one was set.
func (b *base) Label() string { return b.label }

func cannotExecute(c Command) error {
	return fmt.Errorf("%w: %v", ErrCannotExecute, c)
}
