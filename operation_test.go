package ecore

import "testing"

func TestFindEOperationInherited(t *testing.T) {
	base := NewClass("Base")
	base.AddOperation(NewOperation("describe", String))

	derived := NewClass("Derived", base)
	derived.AddOperation(NewOperation("render", String, NewParameter("width", Integer)))

	if _, ok := derived.FindEOperation("describe"); !ok {
		t.Error("expected to find inherited operation describe")
	}
	op, ok := derived.FindEOperation("render")
	if !ok {
		t.Fatal("expected to find own operation render")
	}
	if len(op.Parameters()) != 1 || op.Parameters()[0].Name() != "width" {
		t.Errorf("render parameters = %v, want [width]", op.Parameters())
	}
	if op.ReturnType() != String {
		t.Errorf("render return type = %v, want String", op.ReturnType())
	}
}
