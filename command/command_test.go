package command

import (
	"errors"
	"testing"

	"github.com/efd6/goecore"
)

func newBag() (*ecore.Class, *ecore.Instance) {
	item := ecore.NewClass("Item")
	item.AddFeature(ecore.NewAttribute("label", ecore.String))

	bag := ecore.NewClass("Bag")
	bag.AddFeature(ecore.NewAttribute("label", ecore.String))
	bag.AddFeature(ecore.NewReference("items", item).WithBounds(0, -1).WithContainment(true))

	inst, err := bag.New()
	if err != nil {
		panic(err)
	}
	return item, inst
}

func TestSetExecuteUndoRedo(t *testing.T) {
	_, bag := newBag()
	set := NewSet(bag, "label", "hello")
	if !set.CanExecute() {
		t.Fatal("expected CanExecute true")
	}
	if err := set.Execute(); err != nil {
		t.Fatal(err)
	}
	got, _ := bag.EGet("label")
	if got != "hello" {
		t.Fatalf("label = %v, want hello", got)
	}

	if err := set.Undo(); err != nil {
		t.Fatal(err)
	}
	got, _ = bag.EGet("label")
	if got != "" {
		t.Fatalf("label after undo = %v, want empty", got)
	}

	if err := set.Redo(); err != nil {
		t.Fatal(err)
	}
	got, _ = bag.EGet("label")
	if got != "hello" {
		t.Fatalf("label after redo = %v, want hello", got)
	}
}

func TestSetRejectsManyValuedFeature(t *testing.T) {
	_, bag := newBag()
	set := NewSet(bag, "items", "nope")
	if set.CanExecute() {
		t.Error("Set on a many-valued feature should not be executable")
	}
}

func TestAddAppendAndIndexBounds(t *testing.T) {
	itemClass, bag := newBag()
	item, _ := itemClass.New()

	add := NewAddAt(bag, "items", item, 5)
	if add.CanExecute() {
		t.Error("Add at an out-of-range index should not be executable")
	}

	add = NewAdd(bag, "items", item)
	if !add.CanExecute() {
		t.Fatal("expected CanExecute true for tail append")
	}
	if err := add.Execute(); err != nil {
		t.Fatal(err)
	}
	kids, _ := bag.EGet("items")
	if kids.(ecore.Collection).Len() != 1 {
		t.Fatalf("items len = %d, want 1", kids.(ecore.Collection).Len())
	}

	if err := add.Undo(); err != nil {
		t.Fatal(err)
	}
	if kids.(ecore.Collection).Len() != 0 {
		t.Error("items should be empty after undo")
	}

	if err := add.Redo(); err != nil {
		t.Fatal(err)
	}
	if kids.(ecore.Collection).Len() != 1 {
		t.Error("items should contain one element after redo")
	}
}

func TestRemoveByValue(t *testing.T) {
	itemClass, bag := newBag()
	item1, _ := itemClass.New()
	item2, _ := itemClass.New()

	if err := NewStack().Execute(NewAdd(bag, "items", item1), NewAdd(bag, "items", item2)); err != nil {
		t.Fatal(err)
	}

	remove := NewRemove(bag, "items", item1)
	if !remove.CanExecute() {
		t.Fatal("expected CanExecute true")
	}
	if err := remove.Execute(); err != nil {
		t.Fatal(err)
	}
	kids, _ := bag.EGet("items")
	coll := kids.(ecore.Collection)
	if coll.Len() != 1 || coll.Contains(item1) {
		t.Fatalf("item1 should have been removed, len=%d", coll.Len())
	}

	if err := remove.Undo(); err != nil {
		t.Fatal(err)
	}
	if !coll.Contains(item1) {
		t.Error("item1 should be back after undo")
	}
}

func TestMoveRequiresExactlyOneOf(t *testing.T) {
	if _, err := NewMove(nil, "items", 0, true, "x", 0); !errors.Is(err, ErrConstruction) {
		t.Errorf("NewMove(both) = %v, want ErrConstruction", err)
	}
	if _, err := NewMove(nil, "items", 0, false, nil, 0); !errors.Is(err, ErrConstruction) {
		t.Errorf("NewMove(neither) = %v, want ErrConstruction", err)
	}
}

func TestMoveRelocatesElement(t *testing.T) {
	itemClass, bag := newBag()
	a, _ := itemClass.New()
	b, _ := itemClass.New()
	c, _ := itemClass.New()
	if err := NewStack().Execute(NewAdd(bag, "items", a), NewAdd(bag, "items", b), NewAdd(bag, "items", c)); err != nil {
		t.Fatal(err)
	}

	move := NewMoveValue(bag, "items", a, 2)
	if !move.CanExecute() {
		t.Fatal("expected CanExecute true")
	}
	if err := move.Execute(); err != nil {
		t.Fatal(err)
	}
	kids, _ := bag.EGet("items")
	coll := kids.(ecore.Collection)
	last, _ := coll.At(2)
	if last != a {
		t.Fatalf("element at index 2 = %v, want a", last)
	}

	if !move.CanUndo() {
		t.Fatal("expected CanUndo true right after execute")
	}
	if err := move.Undo(); err != nil {
		t.Fatal(err)
	}
	first, _ := coll.At(0)
	if first != a {
		t.Fatalf("element at index 0 after undo = %v, want a", first)
	}
}

func TestCompoundAllOrNothingCanExecute(t *testing.T) {
	_, bag := newBag()
	good := NewSet(bag, "label", "ok")
	bad := NewSet(bag, "items", "not scalar")
	compound := NewCompound(good, bad)
	if compound.CanExecute() {
		t.Error("Compound.CanExecute() should be false when any child cannot execute")
	}
}

func TestCompoundExecuteAndUndo(t *testing.T) {
	itemClass, bag := newBag()
	item, _ := itemClass.New()
	setLabel := NewSet(bag, "label", "full")
	addItem := NewAdd(bag, "items", item)
	compound := NewCompound(setLabel, addItem)

	if err := compound.Execute(); err != nil {
		t.Fatal(err)
	}
	label, _ := bag.EGet("label")
	if label != "full" {
		t.Fatalf("label = %v, want full", label)
	}
	kids, _ := bag.EGet("items")
	if kids.(ecore.Collection).Len() != 1 {
		t.Fatal("expected one item after compound execute")
	}

	if err := compound.Undo(); err != nil {
		t.Fatal(err)
	}
	label, _ = bag.EGet("label")
	if label != "" {
		t.Fatalf("label after compound undo = %v, want empty", label)
	}
	if kids.(ecore.Collection).Len() != 0 {
		t.Fatal("expected zero items after compound undo")
	}
}

func TestCompoundUnwrap(t *testing.T) {
	_, bag := newBag()
	solo := NewSet(bag, "label", "x")
	compound := NewCompound(solo)
	if compound.Unwrap() != Command(solo) {
		t.Error("Unwrap() of a single-child compound should return the child")
	}

	multi := NewCompound(solo, NewSet(bag, "label", "y"))
	if multi.Unwrap() != Command(multi) {
		t.Error("Unwrap() of a multi-child compound should return itself")
	}
}
