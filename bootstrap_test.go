package ecore

import "testing"

func TestEClassMetaClassFixpoint(t *testing.T) {
	if EClassClass.MetaClass() != EClassClass {
		t.Error("EClassClass should be its own metaclass")
	}
	if EAttributeClass.MetaClass() != EClassClass {
		t.Error("EAttributeClass's metaclass should be EClassClass")
	}
}

func TestBootstrapPackageRegistersCoreClassifiers(t *testing.T) {
	pkg := BootstrapPackage()
	for _, name := range []string{"EClass", "EAttribute", "EReference", "EPackage", "String", "Integer"} {
		if _, ok := pkg.GetEClassifier(name); !ok {
			t.Errorf("BootstrapPackage() missing classifier %q", name)
		}
	}
}

func TestPackageAddClassifierRejectsDuplicateName(t *testing.T) {
	pkg := NewPackage("p", "", "")
	if err := pkg.AddClassifier(NewClass("Widget")); err != nil {
		t.Fatal(err)
	}
	if err := pkg.AddClassifier(NewClass("Widget")); err == nil {
		t.Error("expected an error registering a duplicate classifier name")
	}
}
