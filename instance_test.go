package ecore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTreeClasses() (node *Class, parentRef, childrenRef *Reference) {
	node = NewClass("Node")
	node.AddFeature(NewAttribute("name", String))
	children := NewReference("children", node).WithBounds(0, -1).WithContainment(true)
	parent := NewReference("parent", node)
	children.WithOpposite(parent)
	node.AddFeature(children)
	node.AddFeature(parent)
	return node, parent, children
}

func TestEGetNoSuchAttribute(t *testing.T) {
	node, _, _ := newTreeClasses()
	inst, _ := node.New()
	_, err := inst.EGet("bogus")
	require.ErrorIs(t, err, ErrNoSuchAttribute)
}

func TestEGetLazyDefaultAndCollection(t *testing.T) {
	node, _, _ := newTreeClasses()
	inst, _ := node.New()

	name, err := inst.EGet("name")
	require.NoError(t, err)
	require.Equal(t, "", name)

	kids, err := inst.EGet("children")
	require.NoError(t, err)
	coll, ok := kids.(Collection)
	require.Truef(t, ok, "children = %T, want Collection", kids)
	require.Equal(t, 0, coll.Len())
}

func TestESetScalarBadValue(t *testing.T) {
	node, _, _ := newTreeClasses()
	inst, _ := node.New()
	err := inst.ESet("name", 5)
	require.ErrorIs(t, err, ErrBadValue)
}

func TestContainmentBookkeeping(t *testing.T) {
	node, parentRef, childrenRef := newTreeClasses()
	root, _ := node.New()
	child, _ := node.New()

	kids, err := root.EGet("children")
	require.NoError(t, err)
	coll := kids.(Collection)
	require.NoError(t, coll.Append(child))

	require.Equal(t, root, child.EContainer())
	require.Equal(t, childrenRef, child.EContainmentFeature())

	got, err := child.EGet("parent")
	require.NoError(t, err)
	require.Equal(t, root, got)
	_ = parentRef
}

func TestGetRootWalksContainerChain(t *testing.T) {
	node, _, _ := newTreeClasses()
	root, _ := node.New()
	mid, _ := node.New()
	leaf, _ := node.New()

	rootKids, _ := root.EGet("children")
	rootKids.(Collection).Append(mid)
	midKids, _ := mid.EGet("children")
	midKids.(Collection).Append(leaf)

	require.Equal(t, root, GetRoot(leaf))
	require.Equal(t, root, GetRoot(root))
}

func TestOppositeScalarSymmetry(t *testing.T) {
	person := NewClass("Person")
	spouse := NewReference("spouse", person)
	spouse.WithOpposite(spouse)
	person.AddFeature(spouse)

	a, _ := person.New()
	b, _ := person.New()

	require.NoError(t, a.ESet("spouse", b))
	got, err := b.EGet("spouse")
	require.NoError(t, err)
	require.Equal(t, a, got)
}

// TestContainmentTransferBetweenContainers exercises scenario S1: moving an
// already-contained instance into a different containment collection must
// detach it from its previous container, preserving containment
// singularity (invariant 2).
func TestContainmentTransferBetweenContainers(t *testing.T) {
	node, _, _ := newTreeClasses()
	a1, _ := node.New()
	a2, _ := node.New()
	b, _ := node.New()

	a1Kids, err := a1.EGet("children")
	require.NoError(t, err)
	require.NoError(t, a1Kids.(Collection).Append(b))
	require.Equal(t, a1, b.EContainer())

	a2Kids, err := a2.EGet("children")
	require.NoError(t, err)
	require.NoError(t, a2Kids.(Collection).Append(b))

	require.Equal(t, a2, b.EContainer(), "b should now be contained by a2")
	require.False(t, a1Kids.(Collection).Contains(b), "a1.children must no longer contain b")
	require.True(t, a2Kids.(Collection).Contains(b), "a2.children must contain b")
	require.Equal(t, 0, a1Kids.(Collection).Len())
	require.Equal(t, 1, a2Kids.(Collection).Len())

	got, err := b.EGet("parent")
	require.NoError(t, err)
	require.Equal(t, a2, got, "b.parent opposite must follow the transfer")
}

// TestContainmentTransferFromScalarToCollection exercises the same
// singularity invariant when the prior container held the instance through
// a scalar containment feature rather than a many-valued one.
func TestContainmentTransferFromScalarToCollection(t *testing.T) {
	node := NewClass("Box")
	node.AddFeature(NewAttribute("name", String))
	single := NewReference("lid", node).WithContainment(true)
	many := NewReference("items", node).WithBounds(0, -1).WithContainment(true)
	node.AddFeature(single)
	node.AddFeature(many)

	holder, _ := node.New()
	other, _ := node.New()
	lid, _ := node.New()

	require.NoError(t, holder.ESet("lid", lid))
	require.Equal(t, holder, lid.EContainer())

	otherItems, err := other.EGet("items")
	require.NoError(t, err)
	require.NoError(t, otherItems.(Collection).Append(lid))

	require.Equal(t, other, lid.EContainer())
	gotLid, err := holder.EGet("lid")
	require.NoError(t, err)
	require.Nil(t, gotLid, "holder.lid must be cleared once lid moves to other.items")
}
