package ecore

import "testing"

func TestIsInstanceNilAlwaysSatisfies(t *testing.T) {
	for _, typ := range []Classifier{String, Integer, Boolean, NewClass("Widget")} {
		if !IsInstance(nil, typ) {
			t.Errorf("IsInstance(nil, %s) = false, want true", typ.Name())
		}
	}
}

func TestIsInstanceDataType(t *testing.T) {
	cases := []struct {
		name string
		v    interface{}
		t    Classifier
		want bool
	}{
		{"matching string", "hello", String, true},
		{"wrong host type", 5, String, false},
		{"matching int", 5, Integer, true},
		{"matching bool", true, Boolean, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsInstance(c.v, c.t); got != c.want {
				t.Errorf("IsInstance(%v, %s) = %v, want %v", c.v, c.t.Name(), got, c.want)
			}
		})
	}
}

func TestIsInstanceClassHierarchy(t *testing.T) {
	base := NewClass("Base")
	derived := NewClass("Derived", base)
	unrelated := NewClass("Unrelated")

	baseInst := base.NewUninitialized()
	derivedInst := derived.NewUninitialized()

	if !IsInstance(baseInst, base) {
		t.Error("base instance should satisfy base class")
	}
	if !IsInstance(derivedInst, base) {
		t.Error("derived instance should satisfy base class via eAllSuperTypes")
	}
	if IsInstance(baseInst, unrelated) {
		t.Error("base instance should not satisfy unrelated class")
	}
	if !IsInstance(derivedInst, derived) {
		t.Error("derived instance should satisfy its own class")
	}
}

func TestDataTypeDefaultValueClonesMaps(t *testing.T) {
	a := StringMap.DefaultValue().(map[string]string)
	a["x"] = "y"
	b := StringMap.DefaultValue().(map[string]string)
	if _, ok := b["x"]; ok {
		t.Error("DefaultValue should return independent map instances")
	}
}

func TestBooleanFromString(t *testing.T) {
	v, err := Boolean.FromString("true")
	if err != nil {
		t.Fatal(err)
	}
	if v != true {
		t.Errorf("FromString(true) = %v, want true", v)
	}
}

func TestIntegerFromStringError(t *testing.T) {
	if _, err := Integer.FromString("not-a-number"); err == nil {
		t.Error("expected a parse error for non-numeric input")
	}
}
