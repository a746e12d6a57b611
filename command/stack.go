package command

import "fmt"

// Stack is a linear undo/redo sequence with an integer cursor pointing
// at the most recently executed command; -1 means empty.
type Stack struct {
	commands []Command
	cursor   int
}

// NewStack builds an empty command stack.
func NewStack() *Stack { return &Stack{cursor: -1} }

// Len returns the number of commands currently on the stack (including
// any undone redo suffix).
func (s *Stack) Len() int { return len(s.commands) }

// Cursor returns the index of the most recently executed command, or -1
// if the stack is empty or fully unwound.
func (s *Stack) Cursor() int { return s.cursor }

// CanUndo reports whether Undo has a command to act on.
func (s *Stack) CanUndo() bool { return s.cursor >= 0 }

// CanRedo reports whether Redo has a command to act on.
func (s *Stack) CanRedo() bool { return s.cursor+1 < len(s.commands) }

// Execute runs each command in order, stopping at the first that cannot
// execute. Each successfully executed command is spliced at cursor+1,
// truncating any existing redo suffix, so a fresh execution after Undo
// discards the abandoned branch rather than corrupting Redo.
func (s *Stack) Execute(commands ...Command) error {
	for _, c := range commands {
		if !c.CanExecute() {
			return cannotExecute(c)
		}
		if err := c.Execute(); err != nil {
			return err
		}
		index := s.cursor + 1
		s.commands = append(s.commands[:index], c)
		s.cursor = index
	}
	return nil
}

// Undo undoes the command at the cursor and decrements it. Fails with
// ErrEmptyStack if the stack is empty or fully unwound. If the command at
// the cursor reports CanUndo false, Undo leaves it and the cursor as they
// are and returns nil.
func (s *Stack) Undo() error {
	if len(s.commands) == 0 || s.cursor < 0 {
		return ErrEmptyStack
	}
	top := s.commands[s.cursor]
	if top.CanUndo() {
		if err := top.Undo(); err != nil {
			return fmt.Errorf("undo: %w", err)
		}
		s.cursor--
	}
	return nil
}

// Redo redoes the command just past the cursor and advances it. Fails
// with ErrOutOfBounds if there is no such command.
func (s *Stack) Redo() error {
	next := s.cursor + 1
	if next >= len(s.commands) {
		return ErrOutOfBounds
	}
	if err := s.commands[next].Redo(); err != nil {
		return fmt.Errorf("redo: %w", err)
	}
	s.cursor = next
	return nil
}
