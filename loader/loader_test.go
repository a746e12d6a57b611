package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/efd6/goecore"
)

const doc = `
name: tree
ns_uri: http://example.org/tree
ns_prefix: tree
classes:
  - name: Node
    attributes:
      - name: label
        type: String
    references:
      - name: children
        type: Node
        upper: -1
        containment: true
        opposite: parent
      - name: parent
        type: Node
        opposite: children
`

func TestLoadBuildsClassesAndReferences(t *testing.T) {
	pkg, err := Load(strings.NewReader(doc), ecore.BootstrapPackage())
	if err != nil {
		t.Fatal(err)
	}

	classifier, ok := pkg.GetEClassifier("Node")
	if !ok {
		t.Fatal("expected Node classifier to be registered")
	}
	node, ok := classifier.(*ecore.Class)
	if !ok {
		t.Fatal("Node should resolve to a *ecore.Class")
	}

	children, ok := node.FindEStructuralFeature("children")
	if !ok {
		t.Fatal("expected children feature")
	}
	ref, ok := children.(*ecore.Reference)
	if !ok {
		t.Fatal("children should be a reference")
	}
	if !ref.Containment() {
		t.Error("children should be a containment reference")
	}
	if ref.Opposite() == nil || ref.Opposite().FeatureName() != "parent" {
		t.Error("children's opposite should resolve to parent")
	}

	// children omits both ordered and unique in the document; per Ecore's
	// defaults (ordered=true, unique=true) that must still build an
	// OrderedSet, not a bare List.
	inst0, err := node.New()
	require.NoError(t, err)
	kids, err := inst0.EGet("children")
	require.NoError(t, err)
	_, ok = kids.(*ecore.OrderedSet)
	require.Truef(t, ok, "children collection = %T, want *ecore.OrderedSet", kids)

	inst, err := node.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.ESet("label", "root"); err != nil {
		t.Fatal(err)
	}
}

func TestLoadUndeclaredSupertypeFails(t *testing.T) {
	bad := `
name: broken
classes:
  - name: Child
    super: [Missing]
`
	if _, err := Load(strings.NewReader(bad), ecore.BootstrapPackage()); err == nil {
		t.Error("expected an error for an undeclared supertype")
	}
}
