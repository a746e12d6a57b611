package command

import "fmt"

// Compound is an ordered sequence of commands executed and undone as a
// unit: CanExecute and CanUndo are the conjunction of the children's,
// Execute runs children in order, Undo runs them in reverse.
type Compound struct {
	label string
	items []Command
}

// NewCompound builds a compound wrapping the given commands in order.
func NewCompound(commands ...Command) *Compound {
	return &Compound{items: append([]Command{}, commands...)}
}

// WithLabel attaches a free-text label and returns c for chaining.
func (c *Compound) WithLabel(label string) *Compound { c.label = label; return c }

func (c *Compound) Label() string { return c.label }

// CanExecute is the conjunction of every child's CanExecute. An empty
// compound is trivially executable.
func (c *Compound) CanExecute() bool {
	for _, cmd := range c.items {
		if !cmd.CanExecute() {
			return false
		}
	}
	return true
}

// Execute runs every child in order, stopping at the first error. Note
// this is not atomic: a mid-sequence failure leaves earlier children
// applied.
func (c *Compound) Execute() error {
	for i, cmd := range c.items {
		if err := cmd.Execute(); err != nil {
			return fmt.Errorf("compound: child %d: %w", i, err)
		}
	}
	return nil
}

// CanUndo is the conjunction of every child's CanUndo.
func (c *Compound) CanUndo() bool {
	for _, cmd := range c.items {
		if !cmd.CanUndo() {
			return false
		}
	}
	return true
}

// Undo runs every child in reverse order, stopping at the first error.
func (c *Compound) Undo() error {
	for i := len(c.items) - 1; i >= 0; i-- {
		if err := c.items[i].Undo(); err != nil {
			return fmt.Errorf("compound: child %d: %w", i, err)
		}
	}
	return nil
}

// Redo re-executes every child in order.
func (c *Compound) Redo() error {
	for i, cmd := range c.items {
		if err := cmd.Redo(); err != nil {
			return fmt.Errorf("compound: child %d redo: %w", i, err)
		}
	}
	return nil
}

// Unwrap returns the sole child if len(c) == 1, otherwise c itself.
func (c *Compound) Unwrap() Command {
	if len(c.items) == 1 {
		return c.items[0]
	}
	return c
}

// Len returns the number of child commands.
func (c *Compound) Len() int { return len(c.items) }

// At returns the child command at index i.
func (c *Compound) At(i int) Command { return c.items[i] }

// Insert splices cmd into the sequence at index i, shifting later
// children up.
func (c *Compound) Insert(i int, cmd Command) {
	c.items = append(c.items, nil)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = cmd
}

// Append adds cmd to the tail of the sequence.
func (c *Compound) Append(cmd Command) { c.items = append(c.items, cmd) }

func (c *Compound) String() string { return fmt.Sprintf("Compound(%v)", c.items) }
